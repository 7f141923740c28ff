// Package triplog writes and reads CBOR streams of completed elevator trips.
//
// A trip log is an audit trail: one record per traversal, appended as the
// elevator rides. It is never used to restore an elevator.
package triplog

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"elevride/src/timefmt"
	"elevride/src/types"
	"elevride/src/utils"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trip CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create trip CBOR decoder mode: %v", err))
	}
}

// Writer appends trips to an underlying stream. It implements elev.TripRecorder.
type Writer struct {
	mu  sync.Mutex
	enc *cbor.Encoder
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: encMode.NewEncoder(w)}
}

func (w *Writer) Record(trip types.Trip) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(trip)
}

// ReadAll decodes every trip in r until EOF.
func ReadAll(r io.Reader) ([]types.Trip, error) {
	dec := decMode.NewDecoder(r)
	var trips []types.Trip
	for {
		var trip types.Trip
		err := dec.Decode(&trip)
		if errors.Is(err, io.EOF) {
			return trips, nil
		}
		if err != nil {
			return trips, fmt.Errorf("decode trip %d: %w", len(trips)+1, err)
		}
		trips = append(trips, trip)
	}
}

// FormatTrip renders one trip as a line of text.
func FormatTrip(trip types.Trip) string {
	return fmt.Sprintf("%s %s: from %d via %s, %d floors in %s",
		trip.ID, trip.Elevator, trip.From, utils.FormatFloors(trip.Floors),
		trip.Distance, timefmt.Readable(trip.Duration))
}

// Dump writes every trip in r to w, one per line.
func Dump(w io.Writer, r io.Reader) (int, error) {
	trips, err := ReadAll(r)
	for _, trip := range trips {
		fmt.Fprintln(w, FormatTrip(trip))
	}
	return len(trips), err
}

// Memory keeps recorded trips in order.
type Memory struct {
	mu    sync.Mutex
	trips []types.Trip
}

func (m *Memory) Record(trip types.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
	return nil
}

func (m *Memory) Trips() []types.Trip {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Trip(nil), m.trips...)
}
