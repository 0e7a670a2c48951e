package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// To24Hour converts a display label like "9:00 am" into the 24-hour "HH:MM"
// format stored on citas. This is the join key for availability matching, so
// the output is always zero-padded: "12:00 am" -> "00:00", "9:00 am" ->
// "09:00", "12:30 pm" -> "12:30", "11:30 pm" -> "23:30".
func To24Hour(label string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return "", fmt.Errorf("invalid time label %q", label)
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("invalid time label %q", label)
	}

	h, err := strconv.Atoi(hm[0])
	if err != nil || h < 1 || h > 12 {
		return "", fmt.Errorf("invalid hour in time label %q", label)
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("invalid minutes in time label %q", label)
	}

	switch strings.ToLower(fields[1]) {
	case "am":
		if h == 12 {
			h = 0
		}
	case "pm":
		if h != 12 {
			h += 12
		}
	default:
		return "", fmt.Errorf("invalid meridiem in time label %q", label)
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}
