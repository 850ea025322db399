// Command autoskeleton analyzes a rendered component tree and generates a
// matching skeleton placeholder configuration.
//
// Usage:
//
//	autoskeleton -url https://example.com -selector "#app"   # analyze a live page
//	autoskeleton -snapshot page.html -out html               # analyze an HTML snapshot
//	autoskeleton -serve :8080                                # preview server
//	autoskeleton -mcp                                        # MCP over stdio
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/afaq-khan2000/auto-skeleton/cache"
	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/skeleton"
)

func main() {
	pageURL := flag.String("url", "", "analyze a live page at this URL")
	snapshotPath := flag.String("snapshot", "", "analyze a static HTML snapshot file")
	sel := flag.String("selector", "", "CSS selector of the component root (default: body)")
	configPath := flag.String("config", "", "path to skeleton.yaml config file")
	serveAddr := flag.String("serve", "", "run the preview server on this address")
	mcpMode := flag.Bool("mcp", false, "serve the MCP tools over stdio")
	out := flag.String("out", "json", "output format: json, html")
	cacheDB := flag.String("cache-db", "", "SQLite file for persistent result caching")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := runOptions{
		pageURL:      *pageURL,
		snapshotPath: *snapshotPath,
		selector:     *sel,
		configPath:   *configPath,
		serveAddr:    *serveAddr,
		mcpMode:      *mcpMode,
		out:          *out,
		cacheDB:      *cacheDB,
	}
	if err := run(ctx, logger, opts); err != nil {
		logger.Error("autoskeleton: fatal", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	pageURL      string
	snapshotPath string
	selector     string
	configPath   string
	serveAddr    string
	mcpMode      bool
	out          string
	cacheDB      string
}

func run(ctx context.Context, logger *slog.Logger, opts runOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	store, err := openCache(cfg, opts.cacheDB, logger)
	if err != nil {
		return err
	}

	res := newDualResolver(logger)
	defer res.Close()

	p := skeleton.NewPipeline(res.Provider(), skeleton.PipelineConfig{
		Analyzer: cfg.AnalyzerConfig(),
		Options:  cfg.Options,
		Cache:    store,
		Logger:   logger,
	})

	switch {
	case opts.serveAddr != "":
		return runServe(ctx, logger, p, res, opts.serveAddr)
	case opts.mcpMode:
		return runMCP(ctx, logger, p, res)
	case opts.snapshotPath != "":
		return runOnce(ctx, p, res, opts.snapshotPath, opts.selector, opts.out)
	case opts.pageURL != "":
		return runOnce(ctx, p, res, opts.pageURL, opts.selector, opts.out)
	}

	fmt.Fprintln(os.Stderr, "usage: autoskeleton -url <url> | -snapshot <file> | -serve <addr> | -mcp")
	os.Exit(1)
	return nil
}

// loadConfig reads the named config file, or skeleton.yaml when present,
// or falls back to built-in defaults.
func loadConfig(path string) (*skeleton.FileConfig, error) {
	if path != "" {
		cfg, err := skeleton.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	if _, err := os.Stat("skeleton.yaml"); err == nil {
		return skeleton.LoadConfigFile("skeleton.yaml")
	}
	return &skeleton.FileConfig{}, nil
}

// openCache builds the shared result cache when caching is requested by
// config or by an explicit cache database flag.
func openCache(cfg *skeleton.FileConfig, cacheDB string, logger *slog.Logger) (skeleton.ResultCache, error) {
	if cacheDB == "" && !cfg.Options.EnableCaching {
		return nil, nil
	}
	copts := []cache.Option{cache.WithLogger(logger)}
	if cacheDB != "" {
		store, err := cache.OpenSQL(cacheDB)
		if err != nil {
			return nil, fmt.Errorf("open cache db: %w", err)
		}
		copts = append(copts, cache.WithStore(store))
	}
	c, err := cache.New(0, copts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// runOnce analyzes a single target and prints the result to stdout.
func runOnce(ctx context.Context, p *skeleton.Pipeline, res *dualResolver, target, sel, format string) error {
	root, cleanup, err := res.Resolve(ctx, target, sel)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := p.Regenerate(ctx, root)
	if err != nil {
		return err
	}
	return printResult(out, format)
}

func printResult(out *skeleton.GenerationResult, format string) error {
	if format == "html" {
		htmlOut, err := skeleton.RenderHTML(out)
		if err != nil {
			return err
		}
		fmt.Println(htmlOut)
		return nil
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	os.Stdout.Write(data)
	os.Stdout.Write([]byte("\n"))
	return nil
}

func runMCP(ctx context.Context, logger *slog.Logger, p *skeleton.Pipeline, res *dualResolver) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "autoskeleton",
		Version: "1.0.0",
	}, nil)
	p.RegisterMCP(srv, res)

	logger.Info("autoskeleton: MCP serving on stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// ensure the resolver satisfies the pipeline's contract.
var _ skeleton.Resolver = (*dualResolver)(nil)
var _ measure.Provider = (*dualProvider)(nil)
