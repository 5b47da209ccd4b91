package main

import "encoding/base64"

// visual constants shared by the tools
//
// every lookup falls back to a named default, so a request with an
// unknown theme/palette/style name still produces output.

// ChartTheme holds the colors applied to a rendered chart.
type ChartTheme struct {
	Background string
	Font       string
	Grid       string
}

var chartThemes = map[string]ChartTheme{
	"light": {Background: "#ffffff", Font: "#333333", Grid: "rgba(0, 0, 0, 0.1)"},
	"dark":  {Background: "#1e1e1e", Font: "#ffffff", Grid: "rgba(255, 255, 255, 0.1)"},
	"kakao": {Background: "#fee500", Font: "#191919", Grid: "rgba(0, 0, 0, 0.1)"},
}

var colorPalettes = map[string][]string{
	"default": {
		"rgba(54, 162, 235, 0.7)", "rgba(255, 99, 132, 0.7)",
		"rgba(75, 192, 192, 0.7)", "rgba(255, 206, 86, 0.7)",
		"rgba(153, 102, 255, 0.7)", "rgba(255, 159, 64, 0.7)",
	},
	"pastel": {
		"rgba(174, 198, 207, 0.7)", "rgba(255, 179, 186, 0.7)",
		"rgba(186, 255, 201, 0.7)", "rgba(255, 255, 186, 0.7)",
		"rgba(186, 225, 255, 0.7)", "rgba(255, 198, 255, 0.7)",
	},
	"vibrant": {
		"rgba(0, 123, 255, 0.8)", "rgba(220, 53, 69, 0.8)",
		"rgba(40, 167, 69, 0.8)", "rgba(255, 193, 7, 0.8)",
		"rgba(111, 66, 193, 0.8)", "rgba(253, 126, 20, 0.8)",
	},
}

// TableStyle holds the colors applied to HTML table output.
type TableStyle struct {
	HeaderBg    string
	HeaderColor string
	HighlightBg string
	Border      string
}

var tableStyles = map[string]TableStyle{
	"default": {HeaderBg: "#4CAF50", HeaderColor: "white", HighlightBg: "#E3F2FD", Border: "#ddd"},
	"dark":    {HeaderBg: "#333333", HeaderColor: "white", HighlightBg: "#444444", Border: "#555555"},
	"kakao":   {HeaderBg: "#fee500", HeaderColor: "#191919", HighlightBg: "#fff9c4", Border: "#e0e0e0"},
}

// getChartTheme returns the named theme, or "light" when unknown.
func getChartTheme(name string) ChartTheme {
	if t, ok := chartThemes[name]; ok {
		return t
	}
	return chartThemes["light"]
}

// getColorPalette returns the named palette, or "default" when unknown.
func getColorPalette(name string) []string {
	if p, ok := colorPalettes[name]; ok {
		return p
	}
	return colorPalettes["default"]
}

// getTableStyle returns the named style, or "default" when unknown.
func getTableStyle(name string) TableStyle {
	if s, ok := tableStyles[name]; ok {
		return s
	}
	return tableStyles["default"]
}

// themeDirective returns the Mermaid init line that selects a theme.
func themeDirective(theme string) string {
	return "%%{init: {'theme': '" + theme + "'}}%%"
}

// encodeMermaid encodes diagram code for use in mermaid.ink / mermaid.live URLs.
func encodeMermaid(code string) string {
	return base64.URLEncoding.EncodeToString([]byte(code))
}

// mermaidURLs builds the image and editor URLs for encoded diagram code.
func mermaidURLs(cfg Config, code string) (imageURL, editURL string) {
	encoded := encodeMermaid(code)
	return cfg.MermaidBaseURL + "/img/" + encoded, cfg.MermaidLiveURL + "/edit#base64:" + encoded
}
