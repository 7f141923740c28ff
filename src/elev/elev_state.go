package elev

import "elevride/src/types"

// StateCmd is an operation run on the elevator by the manager goroutine.
type StateCmd struct {
	Exec func(e *Elevator)
}

// StateMgr owns an elevator and serializes its access.
type StateMgr struct {
	cmds chan StateCmd
	done chan struct{}
}

// StartStateMgr starts the goroutine that owns e. Callers must not touch e directly afterwards.
func StartStateMgr(e *Elevator) *StateMgr {
	mgr := &StateMgr{
		cmds: make(chan StateCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.cmds {
			cmd.Exec(e)
		}
	}()
	return mgr
}

// Exec runs fn on the manager goroutine and waits for it to return.
func (mgr *StateMgr) Exec(fn func(e *Elevator)) {
	finished := make(chan struct{})
	mgr.cmds <- StateCmd{
		Exec: func(e *Elevator) {
			defer close(finished)
			fn(e)
		},
	}
	<-finished
}

func (mgr *StateMgr) Travel(floors []float64, verbosity types.Verbosity) error {
	var err error
	mgr.Exec(func(e *Elevator) {
		err = e.TravelThroughFloats(floors, verbosity)
	})
	return err
}

func (mgr *StateMgr) Preview(floors []float64) (types.ElevState, error) {
	var (
		state types.ElevState
		err   error
	)
	mgr.Exec(func(e *Elevator) {
		state, err = e.previewFloats(floors)
	})
	return state, err
}

func (mgr *StateMgr) Snapshot() (types.ElevState, error) {
	var (
		state types.ElevState
		err   error
	)
	mgr.Exec(func(e *Elevator) {
		state, err = e.Snapshot()
	})
	return state, err
}

func (mgr *StateMgr) Report() string {
	var report string
	mgr.Exec(func(e *Elevator) {
		report = e.StatusReport()
	})
	return report
}

// Stop ends the manager goroutine once queued commands have run.
func (mgr *StateMgr) Stop() {
	close(mgr.cmds)
	<-mgr.done
}
