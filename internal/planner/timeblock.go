package planner

import "time"

// Block is one of the three intra-day scheduling buckets.
type Block string

const (
	BlockMorning   Block = "Morning"
	BlockAfternoon Block = "Afternoon"
	BlockEvening   Block = "Evening"

	// BlockNone is returned for timestamps that cannot be parsed.
	BlockNone Block = ""
)

// Accepted timestamp layouts, tried in order. Offsets are honored when
// present; naive timestamps are classified in their own clock time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BlockOf classifies a timestamp into a block using the clock hour of the
// timestamp itself, never a converted zone:
//
//	Morning   [04:00, 12:00)
//	Afternoon [12:00, 18:00)
//	Evening   [18:00, 04:00)   (wraps midnight)
//
// Returns BlockNone for unparsable input.
func BlockOf(raw string) Block {
	t, ok := parseTimestamp(raw)
	if !ok {
		return BlockNone
	}
	hour := t.Hour()
	switch {
	case hour >= 4 && hour < 12:
		return BlockMorning
	case hour >= 12 && hour < 18:
		return BlockAfternoon
	default:
		return BlockEvening
	}
}

// DateOf returns the YYYY-MM-DD component of a timestamp, or "" if the
// timestamp cannot be parsed.
func DateOf(raw string) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
