package tui

import (
	"strings"
	"testing"
)

func TestThemeFor(t *testing.T) {
	for _, name := range ThemeOrder {
		if _, ok := Themes[name]; !ok {
			t.Fatalf("missing theme %s", name)
		}
	}
	if ThemeFor("unknown").Name != "Primary" {
		t.Fatalf("expected primary fallback")
	}
	if ThemeFor("dark").Name != "Dark" {
		t.Fatalf("expected dark theme")
	}
}

func TestNextTheme(t *testing.T) {
	if NextTheme("primary") != "secondary" {
		t.Fatalf("expected secondary after primary")
	}
	if NextTheme("transparent") != "primary" {
		t.Fatalf("expected wrap to primary")
	}
	if NextTheme("neon") != "primary" {
		t.Fatalf("expected unknown theme to restart the cycle")
	}
}

func TestWeekHeaderLabels(t *testing.T) {
	w := WeekHeader{Weekdays: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}}
	if got := strings.Join(w.Labels(), " "); got != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected labels %q", got)
	}
	w.WeekStart = 1
	labels := w.Labels()
	if labels[0] != "Mo" || labels[6] != "Su" {
		t.Fatalf("expected Monday start, got %v", labels)
	}
	if !strings.Contains(w.View(ThemeFor("primary")), "Mo") {
		t.Fatalf("expected labels in view")
	}
}
