package elev_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevride/src/elev"
	"elevride/src/types"
)

func TestStateMgrSerializesTravel(t *testing.T) {
	mgr := elev.StartStateMgr(newQuiet(t, 0, 100))
	defer mgr.Stop()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(floor int) {
			defer wg.Done()
			assert.NoError(t, mgr.Travel([]float64{float64(floor), 0}, types.Silent))
		}(i + 1)
	}
	wg.Wait()

	state, err := mgr.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 110, state.Odometer)
	assert.Len(t, state.VisitedFloors, 21)
	assert.Equal(t, 0, state.CurrentFloor)
	assert.Equal(t, 10, state.Trips)
}

func TestStateMgrCommands(t *testing.T) {
	mgr := elev.StartStateMgr(newQuiet(t, 2, 10, elev.WithName("Lift")))
	defer mgr.Stop()

	assert.ErrorIs(t, mgr.Travel([]float64{2.5}, types.Silent), elev.ErrValidation)

	preview, err := mgr.Preview([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, 3, preview.Odometer)

	_, err = mgr.Preview([]float64{0.5})
	assert.ErrorIs(t, err, elev.ErrValidation)

	require.NoError(t, mgr.Travel([]float64{4.0}, types.Silent))
	assert.Contains(t, mgr.Report(), "Lift is currently on floor 4")

	var floor int
	mgr.Exec(func(e *elev.Elevator) {
		floor = e.CurrentFloor()
	})
	assert.Equal(t, 4, floor)
}
