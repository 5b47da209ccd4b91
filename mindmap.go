package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MindmapBranch represents one branch radiating from the central topic
type MindmapBranch struct {
	Name     string   `json:"name" jsonschema:"description=Branch name,required"`
	Children []string `json:"children,omitempty" jsonschema:"description=Child labels under this branch"`
}

// MindmapArgs represents the arguments for the render_mindmap tool
type MindmapArgs struct {
	CentralTopic string          `json:"central_topic" jsonschema:"description=The central theme of the mindmap,required"`
	Branches     []MindmapBranch `json:"branches,omitempty" jsonschema:"description=Branches radiating from the central topic"`
	Theme        string          `json:"theme,omitempty" jsonschema:"description=Visual theme,enum=default,enum=dark,enum=forest,enum=neutral"`
	Title        string          `json:"title,omitempty" jsonschema:"description=Optional title"`
}

// MindmapResult is the structured result of a mindmap request.
type MindmapResult struct {
	Success     bool   `json:"success"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	EditURL     string `json:"edit_url"`
	Theme       string `json:"theme"`
	BranchCount int    `json:"branch_count"`
}

// buildMindmapDSL emits the indentation-based Mermaid mindmap outline:
// theme directive, the mindmap keyword, a root line, then one line per
// branch and one further-indented line per child.
func buildMindmapDSL(args MindmapArgs, theme string) string {
	lines := []string{
		themeDirective(theme),
		"mindmap",
		fmt.Sprintf("  root((%s))", args.CentralTopic),
	}

	for _, branch := range args.Branches {
		lines = append(lines, "    "+branch.Name)
		for _, child := range branch.Children {
			lines = append(lines, "      "+child)
		}
	}

	return strings.Join(lines, "\n")
}

// renderMindmap builds the outline and the image/editor URLs. Empty branch
// and child lists are permitted and simply produce a smaller outline; no
// reachability probe is performed.
func renderMindmap(cfg Config, args MindmapArgs) MindmapResult {
	theme := args.Theme
	if theme == "" {
		theme = "default"
	}

	imageURL, editURL := mermaidURLs(cfg, buildMindmapDSL(args, theme))

	title := args.Title
	if title == "" {
		title = args.CentralTopic
	}

	return MindmapResult{
		Success:     true,
		Type:        "mindmap",
		Title:       title,
		ImageURL:    imageURL,
		EditURL:     editURL,
		Theme:       theme,
		BranchCount: len(args.Branches),
	}
}

func validateMindmapArgs(args MindmapArgs) error {
	if args.CentralTopic == "" {
		return fmt.Errorf("central_topic cannot be empty")
	}
	return nil
}

func registerMindmapTool(srv *server.MCPServer, cfg Config) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args MindmapArgs
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		if err := validateMindmapArgs(args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultJSON(renderMindmap(cfg, args))
	}

	tool := mcp.NewTool(
		"render_mindmap",
		mcp.WithDescription(`Visualizes concepts, ideas and hierarchies as a mindmap.

Use this tool for organizing concepts, brainstorming results,
or showing hierarchical relationships.

Each branch has a name and an optional list of child labels. Returns an
image URL for direct viewing plus an editor URL for interactive editing.`),
		mcp.WithInputSchema[MindmapArgs](),
	)

	srv.AddTool(tool, handler)
}
