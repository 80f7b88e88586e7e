package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToHour(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"12:00 PM", 12}, // noon
		{"12:00 AM", 0},  // midnight
		{"3:15 PM", 15},
		{"3:15 AM", 3},
		{"10:00 AM", 10},
		{"6 PM", 18},
		{"14:30", 14}, // 24h form, no meridiem
		{"0:05", 0},
		{"11:59 pm", 23}, // lowercase meridiem
		{"garbage", 0},
		{"", 0},
		{"25:00", 0},     // out of range hour
		{"13:00 PM", 0},  // contradictory meridiem
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.want, ParseTimeToHour(test.input))
		})
	}
}
