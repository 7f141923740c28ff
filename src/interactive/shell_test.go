package interactive

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevride/src/elev"
	"elevride/src/types"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e, err := elev.New(0, 10, elev.WithName("Lift"), elev.WithOutput(&out))
	require.NoError(t, err)

	mgr := elev.StartStateMgr(e)
	t.Cleanup(mgr.Stop)
	return newShell(mgr, &out, types.Silent), &out
}

func TestShellGoAndHistory(t *testing.T) {
	s, out := newTestShell(t)

	assert.False(t, s.Execute("go 1 3"))
	assert.False(t, s.Execute("history"))
	assert.Contains(t, out.String(),
		"The elevator named Lift has traveled 3 total floors in 30.0 seconds. Here's where it has been so far: [0, 1, 3].")
}

func TestShellRejectsBadFloors(t *testing.T) {
	s, out := newTestShell(t)

	s.Execute("go 1.5")
	assert.Contains(t, out.String(), "Error: validation error")

	out.Reset()
	s.Execute("g up")
	assert.Contains(t, out.String(), "Error:")

	out.Reset()
	s.Execute("go 11")
	assert.Contains(t, out.String(), "above the top floor 10")

	out.Reset()
	s.Execute("history")
	assert.Contains(t, out.String(), "[0].")
}

func TestShellPreview(t *testing.T) {
	s, out := newTestShell(t)
	s.Execute("go 3")
	out.Reset()

	s.Execute("preview 5 5 1")
	assert.Equal(t, "Would stop at [5, 1], ending on floor 1 after 6 floors (1 minutes 0.0 seconds).\n", out.String())

	out.Reset()
	s.Execute("preview 3")
	assert.Contains(t, out.String(), "Error: validation error")

	out.Reset()
	s.Execute("report")
	assert.Contains(t, out.String(), "Lift is currently on floor 3 of a building with 10 floors.")
}

func TestShellVerbosity(t *testing.T) {
	s, out := newTestShell(t)

	s.Execute("verbosity 1")
	assert.Equal(t, types.FinalOnly, s.verbosity)

	out.Reset()
	s.Execute("go 2")
	assert.Contains(t, out.String(), "### REPORT ###")

	out.Reset()
	s.Execute("v loud")
	assert.Contains(t, out.String(), "Error: verbosity must be")
	assert.Equal(t, types.FinalOnly, s.verbosity)
}

func TestShellMisc(t *testing.T) {
	s, out := newTestShell(t)

	assert.False(t, s.Execute("   "))
	assert.False(t, s.Execute("dance"))
	assert.Contains(t, out.String(), "Unknown command: dance")

	assert.False(t, s.Execute("help"))
	assert.Contains(t, out.String(), "Elevator Commands:")

	assert.True(t, s.Execute("quit"))
	assert.True(t, s.Execute("EXIT"))
}

// scriptedReader hands out queued lines and blocks like a terminal once they run out.
type scriptedReader struct {
	lines  chan string
	closed chan struct{}
	once   sync.Once
}

func newScriptedReader(lines ...string) *scriptedReader {
	r := &scriptedReader{
		lines:  make(chan string, len(lines)),
		closed: make(chan struct{}),
	}
	for _, l := range lines {
		r.lines <- l
	}
	return r
}

func (r *scriptedReader) Readline() (string, error) {
	select {
	case l := <-r.lines:
		return l, nil
	case <-r.closed:
		return "", io.EOF
	}
}

func (r *scriptedReader) Close() error {
	r.once.Do(func() { close(r.closed) })
	return nil
}

func TestShellRunStopsWhenContextIsCancelled(t *testing.T) {
	s, out := newTestShell(t)
	reader := newScriptedReader("go 4")
	s.rl = reader

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		state, err := s.mgr.Snapshot()
		return err == nil && state.CurrentFloor == 4
	}, 2*time.Second, 10*time.Millisecond)

	// Run is now parked in Readline with nothing left to read.
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	select {
	case <-reader.closed:
	default:
		t.Fatal("reader was not closed")
	}
	assert.Contains(t, out.String(), "Elevator Commands:")
}

func TestShellRunEndsOnQuitAndEOF(t *testing.T) {
	s, _ := newTestShell(t)
	reader := newScriptedReader("go 2", "quit", "go 9")
	s.rl = reader
	s.Run(context.Background())

	state, err := s.mgr.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, state.VisitedFloors)
	assert.Len(t, reader.lines, 1)

	s2, out := newTestShell(t)
	eof := newScriptedReader()
	eof.Close()
	s2.rl = eof
	s2.Run(context.Background())
	assert.Contains(t, out.String(), "Exiting...")
}

func TestShellRejectsWordsAsFloors(t *testing.T) {
	s, out := newTestShell(t)
	s.Execute("go lobby")
	assert.Contains(t, out.String(), "Error: validation error: not a number")
}
