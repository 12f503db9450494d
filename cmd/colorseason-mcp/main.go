package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/stylesense/colorseason/internal/config"
	"github.com/stylesense/colorseason/internal/server"
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
			fmt.Printf("colorseason-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colorseason-mcp - MCP server for seasonal color analysis")
			fmt.Println()
			fmt.Println("Usage: colorseason-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLORSEASON_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg := config.Load()

	// Logging goes to stderr; stdout carries the MCP protocol.
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "colorseason-mcp",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: os.Stderr,
	})
	logger.Debug("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	srv := server.New(logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
