package main

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"

	"github.com/padraicbc/speedtip/models"
	"github.com/padraicbc/speedtip/scoring"
)

func TestRenderTableAligned(t *testing.T) {
	tips := []models.Tip{
		{ViewerName: "Jiří Šťastný", PlayerName: "Tomáš Horák", PlayerClub: "Sokol Zlín", GuessedSpeed: 70},
		{ViewerName: "Al", PlayerName: "B", PlayerClub: "X", GuessedSpeed: 1234.5},
		{ViewerName: "Eva", PlayerName: "Tomáš Horák", PlayerClub: "Sokol Zlín", GuessedSpeed: 72.5},
	}
	out := renderTable(scoring.Evaluate(tips, scoring.Outcome{Winner: "Tomáš Horák", Speed: 70}), language.Czech)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3+len(tips)+1 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	width := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != width {
			t.Errorf("line %d width = %d, want %d:\n%s", i, w, width, out)
		}
	}
	if !strings.Contains(lines[3], "Jiří Šťastný") || !strings.Contains(lines[3], "gold*") {
		t.Errorf("first row = %q", lines[3])
	}
	if !strings.Contains(lines[5], "| - ") {
		t.Errorf("incorrect winner row should have no rank: %q", lines[5])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	out := renderTable(nil, language.English)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("empty table has %d lines, want 4:\n%s", got, out)
	}
	if !strings.Contains(out, "Viewer") {
		t.Error("header missing")
	}
}
