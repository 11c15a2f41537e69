package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-container/internal/config"
	"github.com/ironsheep/image-container/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-container-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-container-mcp - MCP server for loading, resizing and comparing PNG/JPEG files")
			fmt.Println()
			fmt.Println("Usage: image-container-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug         Log level (default info)")
			fmt.Println("  IMAGE_MCP_JPEG_QUALITY=90         JPEG re-encode quality, 1-100")
			fmt.Println("  IMAGE_MCP_RESAMPLER=imaging       Resampler: imaging, bild, xdraw")
			fmt.Println("  IMAGE_MCP_FILTER=lanczos          Filter: nearest, box, linear, catmullrom, lanczos")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.Level())

	logger.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Str("resampler", cfg.Resampler).
		Str("filter", cfg.Filter).
		Int("jpeg_quality", cfg.JPEGQuality).
		Msg("image container MCP server starting")

	srv, err := server.NewWithConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create server")
	}
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
