package skeleton

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// Resolver opens the root element for an MCP target: a URL for the
// browser-backed environment, a file path for snapshots. The returned
// cleanup releases whatever the resolution held open (a tab, a parse).
type Resolver interface {
	Resolve(ctx context.Context, target, selector string) (measure.Element, func(), error)
}

// RegisterMCP registers the pipeline's tools on an MCP server:
// skeleton_analyze, skeleton_generate, and skeleton_render.
func (p *Pipeline) RegisterMCP(srv *mcp.Server, resolve Resolver) {
	p.registerAnalyzeTool(srv, resolve)
	p.registerGenerateTool(srv, resolve)
	p.registerRenderTool(srv, resolve)
}

// inputSchema builds a JSON Schema object with type "object".
func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

type targetRequest struct {
	Target   string `json:"target"`
	Selector string `json:"selector,omitempty"`
	CacheKey string `json:"cache_key,omitempty"`
}

func targetSchema() map[string]any {
	return inputSchema(map[string]any{
		"target":    map[string]any{"type": "string", "description": "Page URL or snapshot file path"},
		"selector":  map[string]any{"type": "string", "description": "CSS selector of the component root (default: body)"},
		"cache_key": map[string]any{"type": "string", "description": "Optional memoization key"},
	}, []string{"target"})
}

func (p *Pipeline) registerAnalyzeTool(srv *mcp.Server, resolve Resolver) {
	tool := &mcp.Tool{
		Name:        "skeleton_analyze",
		Description: "Analyze a rendered component tree: geometry, style, semantic element types, layout.",
		InputSchema: targetSchema(),
	}
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, cleanup, _, errRes := p.resolveTarget(ctx, resolve, req)
		if errRes != nil {
			return errRes, nil
		}
		defer cleanup()

		res, err := p.Analyze(ctx, root)
		if err != nil {
			return toolError(err), nil
		}
		data, err := tree.MarshalResult(res)
		if err != nil {
			return toolError(fmt.Errorf("marshal: %w", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

func (p *Pipeline) registerGenerateTool(srv *mcp.Server, resolve Resolver) {
	tool := &mcp.Tool{
		Name:        "skeleton_generate",
		Description: "Analyze a rendered component tree and generate its skeleton placeholder configuration.",
		InputSchema: targetSchema(),
	}
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, cleanup, r, errRes := p.resolveTarget(ctx, resolve, req)
		if errRes != nil {
			return errRes, nil
		}
		defer cleanup()

		out, err := p.regenerateKeyed(ctx, root, r.CacheKey)
		if err != nil {
			return toolError(err), nil
		}
		return toolJSON(out)
	})
}

func (p *Pipeline) registerRenderTool(srv *mcp.Server, resolve Resolver) {
	tool := &mcp.Tool{
		Name:        "skeleton_render",
		Description: "Generate a skeleton for a rendered component tree and return it as standalone HTML.",
		InputSchema: targetSchema(),
	}
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, cleanup, r, errRes := p.resolveTarget(ctx, resolve, req)
		if errRes != nil {
			return errRes, nil
		}
		defer cleanup()

		out, err := p.regenerateKeyed(ctx, root, r.CacheKey)
		if err != nil {
			return toolError(err), nil
		}
		htmlOut, err := RenderHTML(out)
		if err != nil {
			return toolError(err), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: htmlOut}},
		}, nil
	})
}

// regenerateKeyed runs a full pass with a per-call cache key. The key
// travels in an options copy; tool calls dispatch on separate goroutines,
// so the shared pipeline options must stay read-only here.
func (p *Pipeline) regenerateKeyed(ctx context.Context, root measure.Element, cacheKey string) (*GenerationResult, error) {
	opts := p.opts
	if cacheKey != "" {
		opts.EnableCaching = true
		opts.CacheKey = cacheKey
	}
	return p.regenerate(ctx, root, opts)
}

func (p *Pipeline) resolveTarget(ctx context.Context, resolve Resolver, req *mcp.CallToolRequest) (measure.Element, func(), *targetRequest, *mcp.CallToolResult) {
	var r targetRequest
	if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
		return nil, nil, nil, toolError(fmt.Errorf("invalid arguments: %w", err))
	}
	root, cleanup, err := resolve.Resolve(ctx, r.Target, r.Selector)
	if err != nil {
		return nil, nil, nil, toolError(err)
	}
	return root, cleanup, &r, nil
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(err)
	return &res
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("marshal: %w", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
