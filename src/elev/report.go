package elev

import (
	"fmt"
	"strings"

	"elevride/src/timefmt"
	"elevride/src/types"
	"elevride/src/utils"
)

// StatusReport describes where the car is and, mid-traversal, how far it still has to go.
func (e *Elevator) StatusReport() string {
	var b strings.Builder
	s := &e.state
	b.WriteString("\n### REPORT ###\n")
	fmt.Fprintf(&b, "%s is currently on floor %d of %s with %d floors.",
		s.Name, s.CurrentFloor, s.BuildingName, s.BuildingHeight)

	if next, ok := s.NextFloor.Get(); ok {
		dist, _ := e.DistanceToNext()
		dir, _ := e.DirectionToNext()
		eta, _ := e.TimeToNext()
		fmt.Fprintf(&b, " The next floor (%d) is %d floors %s (ETA = %s).",
			next, abs(dist), dir, timefmt.Readable(eta))
		fmt.Fprintf(&b, " The final commanded floor (%d) is %d total floors away (ETA = %s).",
			s.FinalFloor.Floor, e.RemainingDistance(), timefmt.Readable(e.RemainingTime()))
	} else if s.FinalFloor.Set {
		fmt.Fprintf(&b, " Floor %d is the final commanded floor.", s.CurrentFloor)
	}
	return b.String()
}

func (e *Elevator) String() string {
	return e.StatusReport()
}

// HistorySummary is the one-line account of everything a car has done so far.
func HistorySummary(s types.ElevState) string {
	return fmt.Sprintf("The elevator named %s has traveled %d total floors in %s. Here's where it has been so far: %s.",
		s.Name, s.Odometer, timefmt.Readable(s.ElapsedTime), utils.FormatFloors(s.VisitedFloors))
}

func (e *Elevator) Summary() string {
	return HistorySummary(e.state)
}
