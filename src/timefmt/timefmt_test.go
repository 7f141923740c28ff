package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadable(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0.0 seconds"},
		{"negative", -10000, "-10000.0 seconds"},
		{"under a minute", 59.94, "59.9 seconds"},
		{"one minute", 60, "1 minutes 0.0 seconds"},
		{"minutes", 90, "1 minutes 30.0 seconds"},
		{"one hour", 3600, "1 hours 0 minutes 0.0 seconds"},
		{"hours", 3.5*3600 + 43*60 + 12.3, "4 hours 13 minutes 12.3 seconds"},
		{"many days", 13*86400 + 43*3600 + 14*60 + 11.54, "355 hours 14 minutes 11.5 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Readable(tt.seconds))
		})
	}
}
