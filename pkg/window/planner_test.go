package window

import (
	"errors"
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %q: %v", name, err)
	}
	return loc
}

func TestPlanDay_InvalidDate(t *testing.T) {
	tests := []string{"", "2025/01/02", "02-01-2025", "2025-13-01", "yesterday"}
	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			_, err := PlanDay(date, time.UTC)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("PlanDay(%q) error = %v, want ErrInvalidDate", date, err)
			}
		})
	}
}

func TestPlanDay_NormalDay(t *testing.T) {
	loc := mustLocation(t, "Europe/Zurich")
	windows, err := PlanDay("2025-01-15", loc)
	if err != nil {
		t.Fatalf("PlanDay() error = %v", err)
	}

	if len(windows) != WindowsPerDay {
		t.Fatalf("got %d windows, want %d", len(windows), WindowsPerDay)
	}

	for i, w := range windows {
		if !w.Start.Before(w.End) {
			t.Errorf("window %d: start %v not before end %v", i, w.Start, w.End)
		}
		if w.End.Sub(w.Start) != time.Hour {
			t.Errorf("window %d: width = %v, want 1h", i, w.End.Sub(w.Start))
		}
		if i > 0 && !windows[i-1].End.Equal(w.Start) {
			t.Errorf("gap between window %d end %v and window %d start %v", i-1, windows[i-1].End, i, w.Start)
		}
	}

	if got := windows[0].Start.Format("15:04"); got != "00:00" {
		t.Errorf("first window starts at %s local, want 00:00", got)
	}
	total := windows[len(windows)-1].End.Sub(windows[0].Start)
	if total != 24*time.Hour {
		t.Errorf("day spans %v, want 24h", total)
	}
}

func TestPlanDay_DSTTransitions(t *testing.T) {
	loc := mustLocation(t, "America/New_York")

	tests := []struct {
		name string
		date string
		span time.Duration
	}{
		{"spring forward", "2025-03-09", 23 * time.Hour},
		{"fall back", "2025-11-02", 25 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := PlanDay(tt.date, loc)
			if err != nil {
				t.Fatalf("PlanDay() error = %v", err)
			}
			if len(windows) != WindowsPerDay {
				t.Fatalf("got %d windows, want %d", len(windows), WindowsPerDay)
			}

			// Boundaries must stay contiguous and monotonic even when a
			// local hour is skipped or repeated.
			for i := 1; i < len(windows); i++ {
				if !windows[i-1].End.Equal(windows[i].Start) {
					t.Errorf("window %d not contiguous with predecessor", i)
				}
				if windows[i].End.Before(windows[i].Start) {
					t.Errorf("window %d: end before start", i)
				}
			}

			total := windows[len(windows)-1].End.Sub(windows[0].Start)
			if total != tt.span {
				t.Errorf("day spans %v, want %v", total, tt.span)
			}
		})
	}
}

func TestPlanDay_SkippedHourIsEmptyWindow(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	windows, err := PlanDay("2025-03-09", loc)
	if err != nil {
		t.Fatalf("PlanDay() error = %v", err)
	}

	// 02:00 does not exist on the spring-forward day.
	empties := 0
	for _, w := range windows {
		if w.Empty() {
			empties++
		}
	}
	if empties != 1 {
		t.Errorf("got %d empty windows, want exactly 1", empties)
	}
}

func TestPlanDay_Labels(t *testing.T) {
	windows, err := PlanDay("2025-06-01", time.UTC)
	if err != nil {
		t.Fatalf("PlanDay() error = %v", err)
	}
	if windows[0].Label != "2025-06-01 00:00-01:00" {
		t.Errorf("first label = %q", windows[0].Label)
	}
	if windows[23].Label != "2025-06-01 23:00-24:00" {
		t.Errorf("last label = %q", windows[23].Label)
	}
}
