package board

import (
	"math"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/padraicbc/speedtip/models"
)

func TestGroupByPlayerCzechOrder(t *testing.T) {
	tips := []models.Tip{
		{ID: 1, PlayerClub: "Sokol Zlín", PlayerName: "Tomáš Horák", GuessedSpeed: 80},
		{ID: 2, PlayerClub: "RMV Mosnang", PlayerName: "Björn Vogel", GuessedSpeed: 75},
		{ID: 3, PlayerClub: "Sokol Zlín", PlayerName: "Tomáš Horák", GuessedSpeed: 60},
		{ID: 4, PlayerClub: "Šitbořice", PlayerName: "Dominik Šabata", GuessedSpeed: 70},
		{ID: 5, PlayerClub: "Chrudim", PlayerName: "X", GuessedSpeed: 70},
		{ID: 6, PlayerClub: "Hradec", PlayerName: "Y", GuessedSpeed: 70},
	}

	groups := GroupByPlayer(tips, nil)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Club)
	}
	// Czech sorts "Ch" after "H" and "Š" after "S".
	want := []string{"Hradec", "Chrudim", "RMV Mosnang", "Sokol Zlín", "Šitbořice"}
	if strings.Join(keys, "|") != strings.Join(want, "|") {
		t.Fatalf("group order = %v, want %v", keys, want)
	}

	horak := groups[3]
	if horak.Key != "Sokol Zlín – Tomáš Horák" {
		t.Errorf("key = %q", horak.Key)
	}
	if len(horak.Tips) != 2 || horak.Tips[0].ID != 1 || horak.Tips[1].ID != 3 {
		t.Errorf("tips within group reordered: %+v", horak.Tips)
	}
}

func TestGroupByPlayerPluggableComparator(t *testing.T) {
	tips := []models.Tip{
		{PlayerClub: "Chrudim", PlayerName: "X"},
		{PlayerClub: "Hradec", PlayerName: "Y"},
	}
	groups := GroupByPlayer(tips, NewCollator(language.English))
	if groups[0].Club != "Chrudim" {
		t.Errorf("English collation put %q first", groups[0].Club)
	}
	groups = GroupByPlayer(tips, strings.Compare)
	if groups[0].Club != "Chrudim" {
		t.Errorf("byte order put %q first", groups[0].Club)
	}
}

func TestGroupByArchive(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	newer := time.Date(2026, 6, 14, 16, 5, 9, 0, time.UTC)
	older := time.Date(2026, 6, 13, 9, 0, 0, 0, time.UTC)

	tips := []models.Tip{
		{ID: 1, PlayerClub: "B", PlayerName: "b", ArchivedAt: &newer},
		{ID: 2, PlayerClub: "A", PlayerName: "a", ArchivedAt: &newer},
		{ID: 3, PlayerClub: "A", PlayerName: "a", ArchivedAt: &older},
		{ID: 4, PlayerClub: "A", PlayerName: "a"},
	}

	groups := GroupByArchive(tips, loc, strings.Compare)
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	if groups[0].Label != "14. 6. 18:05:09" {
		t.Errorf("label = %q, want local time 14. 6. 18:05:09", groups[0].Label)
	}
	if groups[0].Count != 2 || len(groups[0].Players) != 2 || groups[0].Players[0].Club != "A" {
		t.Errorf("first archive group = %+v", groups[0])
	}
	if groups[1].Label != "13. 6. 11:00:00" {
		t.Errorf("label = %q", groups[1].Label)
	}
	if groups[2].Label != UnknownArchive {
		t.Errorf("label = %q, want %q", groups[2].Label, UnknownArchive)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		speeds []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{70}, Summary{Count: 1, Mean: 70, Median: 70, Min: 70, Max: 70}},
		{"odd", []float64{80, 60, 70}, Summary{Count: 3, Mean: 70, Median: 70, StdDev: math.Sqrt(200.0 / 3), Min: 60, Max: 80}},
		{"even", []float64{60, 70, 90, 100}, Summary{Count: 4, Mean: 80, Median: 80, StdDev: math.Sqrt(250), Min: 60, Max: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips := make([]models.Tip, len(tt.speeds))
			for i, s := range tt.speeds {
				tips[i].GuessedSpeed = s
			}
			got := Summarize(tips)
			if got.Count != tt.want.Count || got.Min != tt.want.Min || got.Max != tt.want.Max {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			for _, p := range []struct {
				name      string
				got, want float64
			}{
				{"mean", got.Mean, tt.want.Mean},
				{"median", got.Median, tt.want.Median},
				{"stddev", got.StdDev, tt.want.StdDev},
			} {
				if math.Abs(p.got-p.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", p.name, p.got, p.want)
				}
			}
		})
	}
}
