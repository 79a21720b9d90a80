// main.go - Command line entry point for OrionDisplay

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

const Version = "0.9.2"

func boilerPlate() {
	fmt.Println("OrionDisplay - OrionRisc-128 display adapter")
	fmt.Printf("Version %s\n\n", Version)
}

func main() {
	var (
		backendName  string
		modeName     string
		scale        int
		demoName     string
		scriptPath   string
		perfMode     bool
		showFeatures bool
		showVersion  bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&backendName, "backend", "ebiten", "Display backend: ebiten, terminal or headless")
	flagSet.StringVar(&modeName, "mode", "graphics", "Startup display mode: graphics or text")
	flagSet.IntVar(&scale, "scale", 2, "Integer window scale factor")
	flagSet.StringVar(&demoName, "demo", "auto", "Demo scene ("+strings.Join(demoNames, ", ")+"), auto or none")
	flagSet.StringVar(&scriptPath, "script", "", "Run a Lua display script before entering the update loop")
	flagSet.BoolVar(&perfMode, "perf", false, "Run the 30Hz performance cadence")
	flagSet.BoolVar(&showFeatures, "features", false, "Print compiled features and exit")
	flagSet.BoolVar(&showVersion, "version", false, "Print version and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: oriondisplay [-backend ebiten|terminal|headless] [-mode graphics|text] [-scale N] [-demo name] [-script file.lua] [-perf]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if showVersion {
		fmt.Printf("OrionDisplay %s\n", Version)
		os.Exit(0)
	}
	if showFeatures {
		printFeatures()
		os.Exit(0)
	}

	backend, err := parseBackend(backendName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if modeName != "graphics" && modeName != "text" {
		fmt.Printf("Error: unknown mode %q\n", modeName)
		os.Exit(1)
	}
	demoName = resolveDemo(demoName, modeName, scriptPath)
	if demoName != "" && !validDemo(demoName) {
		fmt.Printf("Error: unknown demo %q; available: %s\n", demoName, strings.Join(demoNames, ", "))
		os.Exit(1)
	}

	// The terminal backend owns the tty, so the banner stays off it.
	if backend != VIDEO_BACKEND_TERMINAL {
		boilerPlate()
	}

	machine, err := NewMachine(MachineConfig{
		Backend:  backend,
		Scale:    scale,
		PerfMode: perfMode,
	})
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}

	if modeName == "text" {
		machine.Bus.Write32(ODC_MODE, ODC_MODE_TEXT)
	}

	if err := machine.Start(); err != nil {
		fmt.Printf("Failed to start display: %v\n", err)
		os.Exit(1)
	}
	defer machine.Stop()

	if scriptPath != "" {
		script := NewDisplayScript(machine.ODC)
		defer script.Close()
		if err := script.RunFile(scriptPath); err != nil {
			fmt.Printf("Script error: %v\n", err)
			machine.Stop()
			os.Exit(1)
		}
	}

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(stop)
	}()

	var onFrame func(uint64)
	if demoName != "" {
		name := demoName
		onFrame = func(frame uint64) {
			demoStep(machine, name, frame)
		}
	}
	machine.Run(stop, onFrame)
}

func parseBackend(name string) (int, error) {
	switch name {
	case "ebiten":
		return VIDEO_BACKEND_EBITEN, nil
	case "terminal":
		return VIDEO_BACKEND_TERMINAL, nil
	case "headless":
		return VIDEO_BACKEND_HEADLESS, nil
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}

// resolveDemo turns the "auto" and "none" placeholders into a scene
// name. Scripts drive the adapter themselves, so auto means no scene
// when a script is given.
func resolveDemo(demo, mode, scriptPath string) string {
	switch demo {
	case "none":
		return ""
	case "auto":
		if scriptPath != "" {
			return ""
		}
		if mode == "text" {
			return "text"
		}
		return "lines"
	}
	return demo
}
