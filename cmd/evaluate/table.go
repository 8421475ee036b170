package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/padraicbc/speedtip/scoring"
)

var headers = []string{"#", "Medal", "Viewer", "Player", "Club", "Guess", "Diff", "Score"}

// renderTable lays results out as a boxed text table. Widths are measured in
// terminal cells so names with diacritics stay aligned.
func renderTable(results []scoring.Result, tag language.Tag) string {
	p := message.NewPrinter(tag)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rank := "-"
		if r.CorrectWinner {
			rank = p.Sprintf("%d", r.Rank)
		}
		medal := string(r.Medal)
		if r.Exact {
			medal += "*"
		}
		rows = append(rows, []string{
			rank,
			medal,
			r.ViewerName,
			r.PlayerName,
			r.PlayerClub,
			p.Sprintf("%.1f", r.GuessedSpeed),
			p.Sprintf("%.1f", r.SpeedDiff),
			p.Sprintf("%.1f", r.Score),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	divider := func() {
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteString("+")
		}
		b.WriteString("\n")
	}
	line := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	divider()
	line(headers)
	divider()
	for _, row := range rows {
		line(row)
	}
	divider()
	return b.String()
}
