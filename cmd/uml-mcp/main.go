package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/umltools/uml-mcp/internal/config"
	"github.com/umltools/uml-mcp/internal/diagram"
	"github.com/umltools/uml-mcp/internal/server"
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
			fmt.Printf("uml-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--list-tools", "list-tools":
			printTools()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// A missing .env file is fine; environment variables still apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("UML MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("PlantUML server: %s (local: %v)", cfg.PlantUMLServer, cfg.UseLocalPlantUML)
		log.Printf("Kroki server: %s (local: %v)", cfg.KrokiServer, cfg.UseLocalKroki)
		log.Printf("Output directory: %s", cfg.OutputDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("uml-mcp - MCP server for UML and diagram generation")
	fmt.Println()
	fmt.Println("Usage: uml-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println("  --list-tools     Print the registered MCP tools")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PLANTUML_SERVER          Remote PlantUML server URL")
	fmt.Println("  USE_LOCAL_PLANTUML       Prefer a local PlantUML server (true/false)")
	fmt.Println("  LOCAL_PLANTUML_SERVER    Local PlantUML server URL")
	fmt.Println("  KROKI_SERVER             Remote Kroki server URL")
	fmt.Println("  USE_LOCAL_KROKI          Prefer a local Kroki server (true/false)")
	fmt.Println("  LOCAL_KROKI_SERVER       Local Kroki server URL")
	fmt.Println("  UML_MCP_OUTPUT_DIR       Directory for rendered diagram files")
	fmt.Println("  UML_MCP_LOG_LEVEL=debug  Enable debug logging")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

// printTools lists every registered tool with its diagram type metadata.
func printTools() {
	heading := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen)

	heading.Println("Generic tool:")
	fmt.Printf("  %s  render any supported diagram type\n", name.Sprint("generate_uml"))
	fmt.Println()

	heading.Println("Typed tools:")
	for _, t := range server.TypedToolTypes() {
		def, err := diagram.Resolve(t)
		if err != nil {
			continue
		}
		fmt.Printf("  %s  %s\n", name.Sprint(server.ToolName(t)), def.Description)
	}
}
