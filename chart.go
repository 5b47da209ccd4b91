package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ChartDataset represents one data series. The color fields use Chart.js
// naming because they are spliced verbatim into the chart configuration.
type ChartDataset struct {
	Label           string    `json:"label" jsonschema:"description=Name of the data series (e.g. 'Sales'),required"`
	Data            []float64 `json:"data" jsonschema:"description=Ordered numeric values (e.g. [100, 150, 200]),required"`
	BackgroundColor string    `json:"backgroundColor,omitempty" jsonschema:"description=Optional fill color (e.g. 'rgba(54, 162, 235, 0.7)'). Defaults to the palette color for the dataset index."`
	BorderColor     string    `json:"borderColor,omitempty" jsonschema:"description=Optional border/line color. Defaults to the fill color at full opacity."`
}

// ChartArgs represents the arguments for the plot_data_chart tool
type ChartArgs struct {
	ChartType    string         `json:"chart_type" jsonschema:"description=Type of chart,enum=bar,enum=line,enum=pie,enum=doughnut,enum=radar,enum=scatter,enum=horizontalBar,required"`
	Labels       []string       `json:"labels" jsonschema:"description=X-axis labels (e.g. ['Jan', 'Feb', 'Mar']),required,minItems=1"`
	Datasets     []ChartDataset `json:"datasets" jsonschema:"description=Data series to plot,required,minItems=1"`
	Title        string         `json:"title,omitempty" jsonschema:"description=Optional chart title"`
	Theme        string         `json:"theme,omitempty" jsonschema:"description=Color theme,enum=light,enum=dark,enum=kakao"`
	ColorPalette string         `json:"color_palette,omitempty" jsonschema:"description=Color palette for datasets without explicit colors,enum=default,enum=pastel,enum=vibrant"`
	Width        int            `json:"width,omitempty" jsonschema:"description=Image width in pixels"`
	Height       int            `json:"height,omitempty" jsonschema:"description=Image height in pixels"`
}

// ChartDimensions echoes the rendered image size.
type ChartDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ChartResult is the structured result of a chart request.
type ChartResult struct {
	Success    bool            `json:"success"`
	Type       string          `json:"type"`
	ChartType  string          `json:"chart_type"`
	Title      string          `json:"title"`
	ImageURL   string          `json:"image_url"`
	Theme      string          `json:"theme"`
	Dimensions ChartDimensions `json:"dimensions"`
}

// radial chart kinds have no Cartesian axes, so gridline options are omitted
func isRadialChart(chartType string) bool {
	switch chartType {
	case "pie", "doughnut", "radar":
		return true
	}
	return false
}

// borderColorFor derives a solid border color by replacing the palette alpha
// tokens with "1". Custom colors without "0.7"/"0.8" pass through unchanged;
// that matches the renderer's observed behavior and is deliberate.
func borderColorFor(backgroundColor string) string {
	border := strings.ReplaceAll(backgroundColor, "0.7", "1")
	return strings.ReplaceAll(border, "0.8", "1")
}

// buildChartConfig assembles the Chart.js configuration object.
// Datasets missing explicit colors get palette colors cycled by index.
func buildChartConfig(args ChartArgs, theme ChartTheme) map[string]any {
	colors := getColorPalette(args.ColorPalette)

	datasets := make([]map[string]any, len(args.Datasets))
	for i, ds := range args.Datasets {
		backgroundColor := ds.BackgroundColor
		if backgroundColor == "" {
			backgroundColor = colors[i%len(colors)]
		}
		borderColor := ds.BorderColor
		if borderColor == "" {
			borderColor = borderColorFor(backgroundColor)
		}
		datasets[i] = map[string]any{
			"label":           ds.Label,
			"data":            ds.Data,
			"backgroundColor": backgroundColor,
			"borderColor":     borderColor,
		}
	}

	plugins := map[string]any{
		"legend": map[string]any{
			"labels": map[string]any{"color": theme.Font},
		},
	}
	if args.Title != "" {
		plugins["title"] = map[string]any{
			"display": true,
			"text":    args.Title,
			"color":   theme.Font,
			"font":    map[string]any{"size": 16},
		}
	}

	scales := map[string]any{}
	if !isRadialChart(args.ChartType) {
		scales = map[string]any{
			"x": map[string]any{
				"ticks": map[string]any{"color": theme.Font},
				"grid":  map[string]any{"color": theme.Grid},
			},
			"y": map[string]any{
				"ticks": map[string]any{"color": theme.Font},
				"grid":  map[string]any{"color": theme.Grid},
			},
		}
	}

	return map[string]any{
		"type": args.ChartType,
		"data": map[string]any{
			"labels":   args.Labels,
			"datasets": datasets,
		},
		"options": map[string]any{
			"responsive": false,
			"plugins":    plugins,
			"scales":     scales,
		},
	}
}

// buildChartURL serializes the configuration into the rendering endpoint's
// query string: ?c=<config>&w=<width>&h=<height>&bkg=<background>.
func buildChartURL(cfg Config, config map[string]any, width, height int, background string) (string, error) {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("marshal chart config: %w", err)
	}
	return cfg.QuickChartURL +
		"?c=" + url.QueryEscape(string(configJSON)) +
		"&w=" + strconv.Itoa(width) +
		"&h=" + strconv.Itoa(height) +
		"&bkg=" + url.QueryEscape(background), nil
}

// plotChart builds the chart URL, failing when it exceeds the configured
// length ceiling. The rendering service enforces its own URL budget, so
// oversized requests are rejected here instead of truncated.
func plotChart(cfg Config, args ChartArgs) (ChartResult, error) {
	theme := args.Theme
	if theme == "" {
		theme = "light"
	}
	themeConfig := getChartTheme(theme)

	width := args.Width
	if width <= 0 {
		width = cfg.DefaultChartWidth
	}
	height := args.Height
	if height <= 0 {
		height = cfg.DefaultChartHeight
	}

	config := buildChartConfig(args, themeConfig)
	chartURL, err := buildChartURL(cfg, config, width, height, themeConfig.Background)
	if err != nil {
		return ChartResult{}, err
	}

	if len(chartURL) > cfg.QuickChartMaxURLLength {
		return ChartResult{}, errors.New("Chart data too large. Reduce data points.")
	}

	return ChartResult{
		Success:    true,
		Type:       "chart",
		ChartType:  args.ChartType,
		Title:      args.Title,
		ImageURL:   chartURL,
		Theme:      theme,
		Dimensions: ChartDimensions{Width: width, Height: height},
	}, nil
}

func validateChartArgs(args ChartArgs) error {
	if args.ChartType == "" {
		return fmt.Errorf("chart_type cannot be empty")
	}
	if len(args.Labels) == 0 {
		return fmt.Errorf("labels must contain at least one item")
	}
	if len(args.Datasets) == 0 {
		return fmt.Errorf("datasets must contain at least one item")
	}
	return nil
}

func registerChartTool(srv *server.MCPServer, cfg Config) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ChartArgs
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		if err := validateChartArgs(args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := plotChart(cfg, args)
		if err != nil {
			return mcp.NewToolResultJSON(errorResult{Error: err.Error()})
		}
		return mcp.NewToolResultJSON(result)
	}

	tool := mcp.NewTool(
		"plot_data_chart",
		mcp.WithDescription(`Visualizes data as a rendered chart image.

Use this tool for comparing numbers, showing trends over time,
or displaying proportions and distributions.

Supported chart types:
  bar           : categorical comparison with vertical bars
  line          : trends over an ordered domain
  pie           : part-to-whole proportions
  doughnut      : pie with a hole
  radar         : multivariate comparison on radial axes
  scatter       : point cloud
  horizontalBar : categorical comparison with horizontal bars

Datasets without explicit colors are assigned palette colors cycled by
dataset index. Returns an image URL rendered by the chart endpoint; requests
whose encoded URL exceeds the configured ceiling fail with an explanatory
message instead.`),
		mcp.WithInputSchema[ChartArgs](),
	)

	srv.AddTool(tool, handler)
}
