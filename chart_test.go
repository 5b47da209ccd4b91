package main

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
)

func TestBuildChartConfigPaletteCycling(t *testing.T) {
	palette := colorPalettes["default"]
	datasets := make([]ChartDataset, 8)
	for i := range datasets {
		datasets[i] = ChartDataset{Label: "s", Data: []float64{1}}
	}

	config := buildChartConfig(ChartArgs{
		ChartType: "line",
		Labels:    []string{"a"},
		Datasets:  datasets,
	}, getChartTheme("light"))

	got := config["data"].(map[string]any)["datasets"].([]map[string]any)
	for i, ds := range got {
		want := palette[i%len(palette)]
		if ds["backgroundColor"] != want {
			t.Errorf("dataset %d: expected fill %q, got %v", i, want, ds["backgroundColor"])
		}
		wantBorder := strings.ReplaceAll(want, "0.7", "1")
		if ds["borderColor"] != wantBorder {
			t.Errorf("dataset %d: expected border %q, got %v", i, wantBorder, ds["borderColor"])
		}
	}
}

func TestBuildChartConfigExplicitColors(t *testing.T) {
	config := buildChartConfig(ChartArgs{
		ChartType: "bar",
		Labels:    []string{"a"},
		Datasets: []ChartDataset{{
			Label:           "custom",
			Data:            []float64{1},
			BackgroundColor: "#336699",
			BorderColor:     "#003366",
		}},
	}, getChartTheme("light"))

	ds := config["data"].(map[string]any)["datasets"].([]map[string]any)[0]
	if ds["backgroundColor"] != "#336699" {
		t.Errorf("explicit fill color not preserved: %v", ds["backgroundColor"])
	}
	if ds["borderColor"] != "#003366" {
		t.Errorf("explicit border color not preserved: %v", ds["borderColor"])
	}
}

func TestBorderColorFor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"default palette alpha", "rgba(54, 162, 235, 0.7)", "rgba(54, 162, 235, 1)"},
		{"vibrant palette alpha", "rgba(0, 123, 255, 0.8)", "rgba(0, 123, 255, 1)"},
		// colors without the known alpha tokens pass through unchanged
		{"hex color untouched", "#336699", "#336699"},
		{"other alpha untouched", "rgba(0, 0, 0, 0.5)", "rgba(0, 0, 0, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := borderColorFor(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildChartConfigScales(t *testing.T) {
	tests := []struct {
		chartType string
		wantAxes  bool
	}{
		{"bar", true},
		{"line", true},
		{"scatter", true},
		{"horizontalBar", true},
		{"pie", false},
		{"doughnut", false},
		{"radar", false},
	}

	for _, tt := range tests {
		t.Run(tt.chartType, func(t *testing.T) {
			config := buildChartConfig(ChartArgs{
				ChartType: tt.chartType,
				Labels:    []string{"a"},
				Datasets:  []ChartDataset{{Label: "s", Data: []float64{1}}},
			}, getChartTheme("dark"))

			scales := config["options"].(map[string]any)["scales"].(map[string]any)
			if tt.wantAxes && len(scales) == 0 {
				t.Error("expected x/y scales for Cartesian chart")
			}
			if !tt.wantAxes && len(scales) != 0 {
				t.Errorf("expected empty scales for radial chart, got %v", scales)
			}
		})
	}
}

func TestBuildChartConfigTitle(t *testing.T) {
	config := buildChartConfig(ChartArgs{
		ChartType: "bar",
		Labels:    []string{"a"},
		Datasets:  []ChartDataset{{Label: "s", Data: []float64{1}}},
		Title:     "Quarterly Revenue",
	}, getChartTheme("light"))

	plugins := config["options"].(map[string]any)["plugins"].(map[string]any)
	title, ok := plugins["title"].(map[string]any)
	if !ok {
		t.Fatal("expected title plugin")
	}
	if title["display"] != true || title["text"] != "Quarterly Revenue" {
		t.Errorf("unexpected title plugin: %v", title)
	}

	untitled := buildChartConfig(ChartArgs{
		ChartType: "bar",
		Labels:    []string{"a"},
		Datasets:  []ChartDataset{{Label: "s", Data: []float64{1}}},
	}, getChartTheme("light"))
	if _, ok := untitled["options"].(map[string]any)["plugins"].(map[string]any)["title"]; ok {
		t.Error("title plugin should be absent without a title")
	}
}

func TestPlotChartURL(t *testing.T) {
	cfg := testConfig()
	result, err := plotChart(cfg, ChartArgs{
		ChartType: "bar",
		Labels:    []string{"Jan", "Feb"},
		Datasets:  []ChartDataset{{Label: "Sales", Data: []float64{100, 150}}},
		Theme:     "light",
	})
	if err != nil {
		t.Fatalf("plot chart: %v", err)
	}

	if !strings.HasPrefix(result.ImageURL, cfg.QuickChartURL+"?c=") {
		t.Fatalf("unexpected URL: %q", result.ImageURL)
	}

	parsed, err := url.Parse(result.ImageURL)
	if err != nil {
		t.Fatalf("parse URL: %v", err)
	}
	query := parsed.Query()
	if query.Get("w") != "500" || query.Get("h") != "300" {
		t.Errorf("expected default dimensions 500x300, got %sx%s", query.Get("w"), query.Get("h"))
	}
	if query.Get("bkg") != "#ffffff" {
		t.Errorf("expected light background, got %q", query.Get("bkg"))
	}

	var config map[string]any
	if err := json.Unmarshal([]byte(query.Get("c")), &config); err != nil {
		t.Fatalf("query config is not valid JSON: %v", err)
	}
	if config["type"] != "bar" {
		t.Errorf("expected type=bar in config, got %v", config["type"])
	}

	if result.Dimensions.Width != 500 || result.Dimensions.Height != 300 {
		t.Errorf("unexpected echoed dimensions: %+v", result.Dimensions)
	}
}

func TestPlotChartCustomDimensions(t *testing.T) {
	result, err := plotChart(testConfig(), ChartArgs{
		ChartType: "line",
		Labels:    []string{"a"},
		Datasets:  []ChartDataset{{Label: "s", Data: []float64{1}}},
		Width:     900,
		Height:    450,
	})
	if err != nil {
		t.Fatalf("plot chart: %v", err)
	}
	if result.Dimensions.Width != 900 || result.Dimensions.Height != 450 {
		t.Errorf("unexpected dimensions: %+v", result.Dimensions)
	}
}

func TestPlotChartTitleKeyAlwaysPresent(t *testing.T) {
	result, err := plotChart(testConfig(), ChartArgs{
		ChartType: "bar",
		Labels:    []string{"a"},
		Datasets:  []ChartDataset{{Label: "s", Data: []float64{1}}},
	})
	if err != nil {
		t.Fatalf("plot chart: %v", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if _, ok := payload["title"]; !ok {
		t.Error("expected title key in result payload")
	}
}

func TestPlotChartURLCeiling(t *testing.T) {
	cfg := testConfig()
	cfg.QuickChartMaxURLLength = 100

	_, err := plotChart(cfg, ChartArgs{
		ChartType: "bar",
		Labels:    []string{"Jan", "Feb", "Mar"},
		Datasets:  []ChartDataset{{Label: "Sales", Data: []float64{100, 150, 200}}},
	})
	if err == nil {
		t.Fatal("expected error for oversized URL")
	}
	if err.Error() != "Chart data too large. Reduce data points." {
		t.Errorf("unexpected error message: %q", err)
	}
}

func TestValidateChartArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    ChartArgs
		wantErr bool
	}{
		{"valid", ChartArgs{ChartType: "bar", Labels: []string{"a"}, Datasets: []ChartDataset{{Label: "s", Data: []float64{1}}}}, false},
		{"missing type", ChartArgs{Labels: []string{"a"}, Datasets: []ChartDataset{{Label: "s"}}}, true},
		{"missing labels", ChartArgs{ChartType: "bar", Datasets: []ChartDataset{{Label: "s"}}}, true},
		{"missing datasets", ChartArgs{ChartType: "bar", Labels: []string{"a"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateChartArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
