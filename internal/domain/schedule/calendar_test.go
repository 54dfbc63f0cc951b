package schedule

import (
	"testing"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/models"
)

func openDay(start, end string) models.WorkDay {
	return models.WorkDay{
		Weekday:   1,
		Open:      true,
		StartTime: start,
		EndTime:   end,
	}
}

func TestWorkingWindow_ClosedDay(t *testing.T) {
	w := WorkingWindow(models.WorkDay{Weekday: 0, Open: false})
	if w.Open {
		t.Fatal("expected closed window")
	}
}

func TestWorkingWindow_InvalidTimes(t *testing.T) {
	day := openDay("lixo", "19:00")
	if w := WorkingWindow(day); w.Open {
		t.Fatal("malformed start time should yield closed window")
	}

	day = openDay("19:00", "09:00")
	if w := WorkingWindow(day); w.Open {
		t.Fatal("start >= end should yield closed window")
	}
}

func TestWorkingWindow_Lunch(t *testing.T) {
	day := openDay("09:00", "19:00")
	day.HasLunch = true
	day.LunchStart = "12:00"
	day.LunchEnd = "13:00"

	w := WorkingWindow(day)
	if !w.Open || w.Start != 540 || w.End != 1140 {
		t.Fatalf("unexpected window %+v", w)
	}
	if w.Lunch == nil || w.Lunch.Start != 720 || w.Lunch.End != 780 {
		t.Fatalf("unexpected lunch %+v", w.Lunch)
	}
}

func TestWorkingWindow_IllFormedLunchIgnored(t *testing.T) {
	day := openDay("09:00", "19:00")
	day.HasLunch = true
	day.LunchStart = "13:00"
	day.LunchEnd = "12:00"

	w := WorkingWindow(day)
	if !w.Open {
		t.Fatal("expected open window")
	}
	if w.Lunch != nil {
		t.Fatalf("ill-formed lunch should be ignored, got %+v", w.Lunch)
	}
}

func TestWindowFits(t *testing.T) {
	w := Window{
		Open:  true,
		Start: 540,
		End:   1140,
		Lunch: &Interval{Start: 720, End: 780},
	}

	cases := []struct {
		name string
		i    Interval
		want bool
	}{
		{"inside", Interval{600, 660}, true},
		{"before opening", Interval{480, 540}, false},
		{"ends after closing", Interval{1110, 1170}, false},
		{"ends exactly at closing", Interval{1080, 1140}, true},
		{"overlaps lunch", Interval{690, 750}, false},
		{"abuts lunch start", Interval{660, 720}, true},
		{"abuts lunch end", Interval{780, 840}, true},
	}
	for _, c := range cases {
		if got := w.Fits(c.i); got != c.want {
			t.Errorf("%s: Fits(%+v) = %v, want %v", c.name, c.i, got, c.want)
		}
	}

	closed := Window{}
	if closed.Fits(Interval{600, 660}) {
		t.Fatal("closed window should not fit anything")
	}
}

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek()
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}

	if week[0].Open {
		t.Fatal("sunday should be closed")
	}
	if !week[1].Open || week[1].StartTime != "09:00" || week[1].EndTime != "19:00" || !week[1].HasLunch {
		t.Fatalf("unexpected monday config %+v", week[1])
	}
	if week[6].EndTime != "18:00" || week[6].HasLunch {
		t.Fatalf("unexpected saturday config %+v", week[6])
	}
}
