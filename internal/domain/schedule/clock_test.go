package schedule

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:30", 0, true},
		{"ab:cd", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClockOrZero(t *testing.T) {
	if got := ClockOrZero("10:15"); got != 615 {
		t.Fatalf("expected 615, got %d", got)
	}
	if got := ClockOrZero("lixo"); got != 0 {
		t.Fatalf("expected 0 for malformed input, got %d", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		540:  "09:00",
		750:  "12:30",
		1439: "23:59",
	}
	for m, want := range cases {
		if got := FormatClock(m); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", m, got, want)
		}
	}
}
