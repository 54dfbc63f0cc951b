package schedule

import "testing"

// A regra semiaberta: [a,b) e [c,d) colidem sse a < d e b > c.
// Encostar não é colidir.
func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660}

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{600, 660}, true},
		{"contained", Interval{615, 645}, true},
		{"overlaps start", Interval{570, 630}, true},
		{"overlaps end", Interval{630, 690}, true},
		{"covers", Interval{540, 720}, true},
		{"back to back before", Interval{540, 600}, false},
		{"back to back after", Interval{660, 720}, false},
		{"disjoint", Interval{720, 780}, false},
	}

	for _, c := range cases {
		if got := base.Overlaps(c.other); got != c.want {
			t.Errorf("%s: %+v overlaps %+v = %v, want %v", c.name, base, c.other, got, c.want)
		}
		// Simetria
		if got := c.other.Overlaps(base); got != c.want {
			t.Errorf("%s (reversed): got %v, want %v", c.name, got, c.want)
		}
	}
}
