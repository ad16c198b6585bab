package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveRequestDays(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"single day", "2026-09-07", "2026-09-07", 1},
		{"inclusive range", "2026-09-07", "2026-09-09", 3},
		{"across month boundary", "2026-09-29", "2026-10-02", 4},
		{"inverted range", "2026-09-09", "2026-09-07", 0},
		{"malformed from", "garbage", "2026-09-07", 0},
		{"malformed to", "2026-09-07", "09/09/2026", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leave := &LeaveRequest{DateFrom: tc.from, DateTo: tc.to}
			assert.Equal(t, tc.want, leave.Days())
		})
	}
}
