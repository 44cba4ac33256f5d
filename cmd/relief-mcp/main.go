package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/dem-relief-mcp/internal/render"
	"github.com/ironsheep/dem-relief-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("dem-relief-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "render":
			logger := log.New(os.Stderr, "", log.Ltime)
			err := render.Run(render.NewFlagSet("render", os.Stderr), os.Args[2:], logger)
			if err != nil && !errors.Is(err, flag.ErrHelp) {
				logger.Fatalf("render: %v", err)
			}
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug {
		log.Printf("DEM Relief MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: cell size %g, azimuth %g°, altitude %g°",
			cfg.Defaults.CellSize, cfg.Defaults.Light.AzimuthDeg, cfg.Defaults.Light.AltitudeDeg)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("dem-relief-mcp - MCP server for shaded-relief rendering of elevation models")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dem-relief-mcp [options]          Serve MCP over stdin/stdout")
	fmt.Println("  dem-relief-mcp render [flags]     Render a DEM to PNG files and exit")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Render flags:")
	fmt.Println("  -in PATH         Grayscale DEM image (required)")
	fmt.Println("  -out DIR         Existing output directory (required)")
	fmt.Println("  -cell N          Ground distance per pixel (default 30)")
	fmt.Println("  -azimuth DEG     Light azimuth, clockwise from north (default 315)")
	fmt.Println("  -altitude DEG    Light altitude above the horizon (default 45)")
	fmt.Println("  -previews        Also write preview_<size>.png downscales")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  RELIEF_MCP_LOG_LEVEL=debug   Enable debug logging")
	fmt.Println("  RELIEF_CELL_SIZE=N           Default cell size for tool calls")
	fmt.Println("  RELIEF_AZIMUTH=DEG           Default light azimuth for tool calls")
	fmt.Println("  RELIEF_ALTITUDE=DEG          Default light altitude for tool calls")
	fmt.Println()
	fmt.Println("Configure the server in your MCP client (e.g., Claude Desktop).")
}
