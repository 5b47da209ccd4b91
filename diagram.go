package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DiagramArgs represents the arguments for the draw_logic_flow tool
type DiagramArgs struct {
	DiagramCode string `json:"diagram_code" jsonschema:"description=Mermaid.js syntax diagram code,required"`
	DiagramType string `json:"diagram_type,omitempty" jsonschema:"description=Type of diagram,enum=flowchart,enum=sequence,enum=state,enum=er,enum=gantt"`
	Theme       string `json:"theme,omitempty" jsonschema:"description=Visual theme,enum=default,enum=dark,enum=forest,enum=neutral"`
	Title       string `json:"title,omitempty" jsonschema:"description=Optional title for the diagram"`
}

// DiagramResult is the structured result of a diagram request.
type DiagramResult struct {
	Success     bool   `json:"success"`
	Type        string `json:"type"`
	DiagramType string `json:"diagram_type"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	EditURL     string `json:"edit_url"`
	Accessible  bool   `json:"accessible"`
	Theme       string `json:"theme"`
}

// renderDiagram prepends the theme directive to the diagram code, builds the
// image/editor URLs and probes the image URL once. The diagram type is
// informational only; malformed code is the rendering service's concern.
func renderDiagram(ctx context.Context, cfg Config, probe probeFunc, args DiagramArgs) DiagramResult {
	diagramType := args.DiagramType
	if diagramType == "" {
		diagramType = "flowchart"
	}
	theme := args.Theme
	if theme == "" {
		theme = "default"
	}

	themedCode := themeDirective(theme) + "\n" + args.DiagramCode
	imageURL, editURL := mermaidURLs(cfg, themedCode)

	return DiagramResult{
		Success:     true,
		Type:        "diagram",
		DiagramType: diagramType,
		Title:       args.Title,
		ImageURL:    imageURL,
		EditURL:     editURL,
		Accessible:  probe(ctx, imageURL),
		Theme:       theme,
	}
}

func validateDiagramArgs(args DiagramArgs) error {
	if args.DiagramCode == "" {
		return fmt.Errorf("diagram_code cannot be empty")
	}
	return nil
}

func registerDiagramTool(srv *server.MCPServer, cfg Config, probe probeFunc) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DiagramArgs
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		if err := validateDiagramArgs(args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultJSON(renderDiagram(ctx, cfg, probe, args))
	}

	tool := mcp.NewTool(
		"draw_logic_flow",
		mcp.WithDescription(`Visualizes processes, code logic and decision flows as a rendered diagram.

Use this tool when explaining processes, system architecture,
decision flows, or any step-by-step logic.

Accepts Mermaid.js syntax (flowchart, sequence, state, er, gantt) and returns
an image URL for direct viewing plus an editor URL for interactive editing.
The result also reports whether the image URL currently answers, so the
caller can fall back to the editor link when the renderer is unreachable.`),
		mcp.WithInputSchema[DiagramArgs](),
	)

	srv.AddTool(tool, handler)
}
