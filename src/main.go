// Command elevride rides an elevator through lists of floors and reports on the way.
//
// Usage:
//
//	elevride [flags] [floors ...]
//
// Each positional argument is one ride, written as a comma separated list:
//
//	elevride -start 0 -height 100 1,20,3,9,100 0,11
//
// With no config file and no rides the built-in chocolate factory demo runs.
// -triplog-dump prints a trip log written by -triplog and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"elevride/src/config"
	"elevride/src/elev"
	"elevride/src/interactive"
	"elevride/src/scenario"
	"elevride/src/triplog"
	"elevride/src/types"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code, so deferred cleanup always happens.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("elevride", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Scenario YAML file")
	start := fs.Int("start", 0, "Starting floor")
	height := fs.Int("height", 100, "Top floor of the building")
	speed := fs.Float64("speed", config.DefaultSpeed, "Speed in floors per second")
	name := fs.String("name", config.DefaultName, "Elevator name")
	building := fs.String("building", config.DefaultBuildingName, "Building name")
	verbosity := fs.Int("v", config.DefaultVerbosity, "Reports per ride: 0 none, 1 final, 2 every floor")
	tripLogPath := fs.String("triplog", "", "Append a CBOR record of every ride to this file")
	tripLogDump := fs.String("triplog-dump", "", "Print the trips recorded in this file and exit")
	interactiveMode := fs.Bool("i", false, "Start an interactive prompt")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	elev.InitLogger(stderr, elev.ParseLogLevel(*logLevel))

	if *tripLogDump != "" {
		return dumpTripLog(*tripLogDump, stdout)
	}

	s := scenario.Default()
	if *configFile != "" {
		loaded, err := scenario.Load(*configFile)
		if err != nil {
			slog.Error("Failed to load scenario", "path", *configFile, "err", err)
			return 1
		}
		s = loaded
	}

	// Explicit flags win over the scenario.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			s.Elevator.Start = *start
		case "height":
			s.Elevator.Height = *height
		case "speed":
			s.Elevator.Speed = speed
		case "name":
			s.Elevator.Name = *name
		case "building":
			s.Elevator.Building = *building
		case "v":
			s.Verbosity = verbosity
		}
	})
	if fs.NArg() > 0 {
		rides, err := parseRides(fs.Args())
		if err != nil {
			slog.Error("Invalid ride", "err", err)
			return 1
		}
		s.Rides = rides
	}

	opts := []elev.Option{elev.WithOutput(stdout)}
	if *tripLogPath != "" {
		f, err := os.OpenFile(*tripLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("Failed to open trip log", "path", *tripLogPath, "err", err)
			return 1
		}
		defer f.Close()
		opts = append(opts, elev.WithTripRecorder(triplog.NewWriter(f)))
	}

	elevator, err := s.NewElevator(opts...)
	if err != nil {
		slog.Error("Failed to create elevator", "err", err)
		return 1
	}

	if *interactiveMode {
		return runInteractive(elevator, s.VerbosityLevel())
	}

	fmt.Fprintln(stdout, elevator)
	fmt.Fprint(stdout, "\n\n###### Now let's go for a ride! ######\n\n")
	if err := s.Run(elevator); err != nil {
		slog.Error("Ride rejected", "err", err)
		fmt.Fprintln(stdout, elevator.Summary())
		return 1
	}
	fmt.Fprintln(stdout, elevator.Summary())
	return 0
}

func runInteractive(elevator *elev.Elevator, verbosity types.Verbosity) int {
	mgr := elev.StartStateMgr(elevator)
	defer mgr.Stop()

	shell, err := interactive.New(mgr, verbosity)
	if err != nil {
		slog.Error("Failed to start prompt", "err", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	shell.Run(ctx)
	return 0
}

func dumpTripLog(path string, stdout io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open trip log", "path", path, "err", err)
		return 1
	}
	defer f.Close()

	n, err := triplog.Dump(stdout, f)
	if err != nil {
		slog.Error("Trip log is damaged", "path", path, "trips", n, "err", err)
		return 1
	}
	return 0
}

func parseRides(args []string) ([][]float64, error) {
	rides := make([][]float64, 0, len(args))
	for _, arg := range args {
		ride, err := elev.ParseFloorList(arg)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, nil
}
