package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"8:00 am", "08:00"},
		{"8:30 am", "08:30"},
		{"9:00 am", "09:00"},
		{"11:30 am", "11:30"},
		{"12:00 am", "00:00"},
		{"12:30 am", "00:30"},
		{"12:00 pm", "12:00"},
		{"1:15 pm", "13:15"},
		{"11:30 pm", "23:30"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.label)
		assert.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestTo24Hour_RejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{
		"", "9:00", "9 am", "25:00 pm", "0:30 am", "13:00 pm",
		"9:60 am", "nueve am", "9:00 xm",
	} {
		_, err := To24Hour(label)
		assert.Error(t, err, label)
	}
}
