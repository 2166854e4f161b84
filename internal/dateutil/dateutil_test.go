package dateutil_test

import (
	"testing"
	"time"

	"github.com/beatrizcardc/ABNT-formatter/internal/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatAccessDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"abbreviated month", date(2024, time.January, 5), "5 jan. 2024"},
		{"may is never abbreviated", date(2024, time.May, 15), "15 maio 2024"},
		{"december", date(2023, time.December, 31), "31 dez. 2023"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dateutil.FormatAccessDate(tt.in); got != tt.want {
				t.Errorf("FormatAccessDate = %q, want %q", got, tt.want)
			}
		})
	}
}
