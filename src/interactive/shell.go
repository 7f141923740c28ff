// Package interactive provides a readline prompt for riding an elevator by hand.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"elevride/src/config"
	"elevride/src/elev"
	"elevride/src/timefmt"
	"elevride/src/types"
	"elevride/src/utils"
)

// lineReader is the part of *readline.Instance the shell uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Shell reads commands and applies them to an elevator owned by a StateMgr.
type Shell struct {
	mgr       *elev.StateMgr
	out       io.Writer
	rl        lineReader
	closeOnce sync.Once
	verbosity types.Verbosity
}

// New opens a readline prompt and points the elevator's reports at it.
func New(mgr *elev.StateMgr, verbosity types.Verbosity) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(mgr, rl.Stdout(), verbosity)
	s.rl = rl
	mgr.Exec(func(e *elev.Elevator) {
		e.SetOutput(rl.Stdout())
	})
	return s, nil
}

func newShell(mgr *elev.StateMgr, out io.Writer, verbosity types.Verbosity) *Shell {
	return &Shell{mgr: mgr, out: out, verbosity: verbosity}
}

// Run reads commands until quit, EOF or ctx is done. Cancelling ctx closes the
// prompt, which unblocks a pending Readline.
func (s *Shell) Run(ctx context.Context) {
	finished := make(chan struct{})
	defer close(finished)
	defer s.closeReader()
	go func() {
		select {
		case <-ctx.Done():
			s.closeReader()
		case <-finished:
		}
	}()

	s.printHelp()
	for {
		line, err := s.rl.Readline()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
		if quit := s.Execute(line); quit {
			return
		}
	}
}

func (s *Shell) closeReader() {
	s.closeOnce.Do(func() {
		s.rl.Close()
	})
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "go", "g":
		s.cmdGo(args)
	case "preview", "p":
		s.cmdPreview(args)
	case "report", "r":
		fmt.Fprintln(s.out, s.mgr.Report())
	case "history", "h":
		s.cmdHistory()
	case "verbosity", "v":
		s.cmdVerbosity(args)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) cmdGo(args []string) {
	values, err := elev.ParseFloorList(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if err := s.mgr.Travel(values, s.verbosity); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdPreview(args []string) {
	values, err := elev.ParseFloorList(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	before, err := s.mgr.Snapshot()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	after, err := s.mgr.Preview(values)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Would stop at %s, ending on floor %d after %d floors (%s).\n",
		utils.FormatFloors(after.VisitedFloors[len(before.VisitedFloors):]),
		after.CurrentFloor,
		after.Odometer-before.Odometer,
		timefmt.Readable(after.ElapsedTime-before.ElapsedTime))
}

func (s *Shell) cmdHistory() {
	state, err := s.mgr.Snapshot()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, elev.HistorySummary(state))
}

func (s *Shell) cmdVerbosity(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Verbosity: %d\n", s.verbosity)
		return
	}
	level, err := strconv.Atoi(args[0])
	if err != nil || level < 0 {
		fmt.Fprintf(s.out, "Error: verbosity must be 0, 1 or 2, got %q\n", args[0])
		return
	}
	s.verbosity = types.Verbosity(level)
	fmt.Fprintf(s.out, "Verbosity: %d\n", s.verbosity)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Elevator Commands:
  go <floors>        - Ride through floors, e.g. go 1 20 3
  preview <floors>   - Show where a ride would end without moving
  report             - Print the status report
  history            - Print distance, time and floors visited
  verbosity [0-2]    - Show or set how many reports a ride prints
  help               - Show this help
  quit               - Exit`)
}
