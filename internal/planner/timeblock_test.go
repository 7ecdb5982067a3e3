package planner

import "testing"

func TestBlockOf_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		ts   string
		want Block
	}{
		{"morning start", "2025-01-01T04:00:00", BlockMorning},
		{"mid morning", "2025-01-01T08:00:00", BlockMorning},
		{"morning end", "2025-01-01T11:59:59", BlockMorning},
		{"afternoon start", "2025-01-01T12:00:00", BlockAfternoon},
		{"afternoon end", "2025-01-01T17:59:00", BlockAfternoon},
		{"evening start", "2025-01-01T18:00:00", BlockEvening},
		{"late night wraps to evening", "2025-01-01T03:59:59Z", BlockEvening},
		{"midnight is evening", "2025-01-01T00:00:00", BlockEvening},
		{"date only defaults to evening", "2025-01-01", BlockEvening},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BlockOf(tc.ts); got != tc.want {
				t.Errorf("BlockOf(%q) = %q, want %q", tc.ts, got, tc.want)
			}
		})
	}
}

func TestBlockOf_UsesTimestampOwnClock(t *testing.T) {
	// 19:00 with a +07:00 offset is evening locally no matter what zone
	// the host runs in.
	if got := BlockOf("2025-06-10T19:00:00+07:00"); got != BlockEvening {
		t.Errorf("BlockOf with offset = %q, want %q", got, BlockEvening)
	}
}

func TestBlockOf_Unparsable(t *testing.T) {
	for _, ts := range []string{"", "not-a-time", "2025-13-40T99:00:00", "12:00"} {
		if got := BlockOf(ts); got != BlockNone {
			t.Errorf("BlockOf(%q) = %q, want BlockNone", ts, got)
		}
	}
}

func TestDateOf(t *testing.T) {
	if got := DateOf("2025-01-01T19:00:00Z"); got != "2025-01-01" {
		t.Errorf("DateOf = %q, want 2025-01-01", got)
	}
	if got := DateOf("garbage"); got != "" {
		t.Errorf("DateOf(garbage) = %q, want empty", got)
	}
}
