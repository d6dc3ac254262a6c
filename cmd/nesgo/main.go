// Command nesgo is the gones NES emulator executable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gones/internal/cartridge"
	"gones/internal/config"
	"gones/internal/cpu"
	"gones/internal/present"
	"gones/internal/system"
	"gones/internal/trace"
	"gones/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "Path to NES ROM file")
		configFile = flag.String("config", "", "Path to configuration file")
		backend    = flag.String("backend", "", "Override the configured presentation backend (ebitengine, headless)")
		traceLevel = flag.String("trace", "", "Override the configured trace level (off, nestest, spew)")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVer {
		version.PrintBuildInfo()
		return
	}

	setupGracefulShutdown()

	configPath := *configFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *backend != "" {
		cfg.Window.Backend = *backend
	}
	if *traceLevel != "" {
		cfg.Trace.Level = *traceLevel
	}

	if *romFile == "" {
		log.Fatal("a ROM file is required: -rom <file>")
	}

	sys := system.New()
	if err := loadROM(sys, *romFile); err != nil {
		log.Fatalf("load ROM %s: %v", *romFile, err)
	}

	if sink, err := traceSink(cfg); err != nil {
		log.Fatalf("trace sink: %v", err)
	} else if sink != nil {
		sys.SetTracer(sink)
	}

	runner, err := present.NewRunner(sys, cfg)
	if err != nil {
		log.Fatalf("start presentation: %v", err)
	}
	defer runner.Close()

	fmt.Printf("nesgo: running %s on %s backend\n", *romFile, cfg.Window.Backend)
	if err := runner.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func loadROM(sys *system.System, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cart, err := cartridge.LoadFromReader(f)
	if err != nil {
		return err
	}
	sys.LoadCartridge(cart)
	return nil
}

// traceSink builds the configured diagnostic sink, or nil when tracing is
// off.
func traceSink(cfg *config.Config) (cpu.Tracer, error) {
	var w io.Writer = os.Stdout
	if cfg.Trace.Destination != "" && cfg.Trace.Destination != "stdout" {
		f, err := os.OpenFile(cfg.Trace.Destination, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		w = f
	}

	switch cfg.Trace.Level {
	case "nestest":
		return trace.NewTextSink(w), nil
	case "spew":
		return trace.NewSpewSink(w), nil
	default:
		return nil, nil
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\ninterrupt received, shutting down")
		os.Exit(0)
	}()
}
