package scoring

import (
	"math/rand"
	"testing"

	"github.com/padraicbc/speedtip/models"
)

func tip(id int64, player string, speed float64) models.Tip {
	return models.Tip{ID: id, PlayerName: player, GuessedSpeed: speed}
}

func TestEvaluateScenario(t *testing.T) {
	tips := []models.Tip{
		tip(1, "A", 65),
		tip(2, "B", 70),
		tip(3, "A", 72),
	}

	got := Evaluate(tips, Outcome{Winner: "A", Speed: 70})

	want := []struct {
		id    int64
		score float64
		rank  int
		medal Medal
		corr  bool
	}{
		{3, 1198, 1, Gold, true},
		{1, 1195, 2, Silver, true},
		{2, 200, 0, NoMedal, false},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		r := got[i]
		if r.ID != w.id || r.Score != w.score || r.Rank != w.rank || r.Medal != w.medal || r.CorrectWinner != w.corr {
			t.Errorf("result[%d] = {id:%d score:%v rank:%d medal:%q correct:%v}, want %+v",
				i, r.ID, r.Score, r.Rank, r.Medal, r.CorrectWinner, w)
		}
	}
	if got[2].Exact {
		t.Error("incorrect winner with zero diff must not be exact")
	}
}

func TestEvaluateEmpty(t *testing.T) {
	got := Evaluate(nil, Outcome{Winner: "A", Speed: 70})
	if len(got) != 0 {
		t.Fatalf("Evaluate(nil) = %v, want empty", got)
	}
}

func TestEvaluateNoCorrectWinner(t *testing.T) {
	tips := []models.Tip{tip(1, "B", 90), tip(2, "C", 70), tip(3, "B", 10)}
	got := Evaluate(tips, Outcome{Winner: "A", Speed: 70})
	for i, r := range got {
		if r.ID != tips[i].ID {
			t.Errorf("position %d id = %d, want original order id %d", i, r.ID, tips[i].ID)
		}
		if r.Medal != NoMedal || r.Rank != 0 {
			t.Errorf("id %d got medal %q rank %d, want none", r.ID, r.Medal, r.Rank)
		}
	}
}

func TestEvaluateExact(t *testing.T) {
	got := Evaluate([]models.Tip{tip(1, "A", 70)}, Outcome{Winner: "A", Speed: 70})
	if !got[0].Exact || got[0].Score != MaxScore {
		t.Fatalf("got exact=%v score=%v, want exact and %d", got[0].Exact, got[0].Score, MaxScore)
	}
}

func TestTiesTakeSeparateRanks(t *testing.T) {
	tips := []models.Tip{tip(1, "A", 68), tip(2, "A", 72), tip(3, "A", 80), tip(4, "A", 90)}
	got := Evaluate(tips, Outcome{Winner: "A", Speed: 70})

	wantIDs := []int64{1, 2, 3, 4}
	wantMedals := []Medal{Gold, Silver, Bronze, NoMedal}
	for i := range got {
		if got[i].ID != wantIDs[i] {
			t.Errorf("position %d id = %d, want %d", i, got[i].ID, wantIDs[i])
		}
		if got[i].Rank != i+1 {
			t.Errorf("position %d rank = %d, want %d", i, got[i].Rank, i+1)
		}
		if got[i].Medal != wantMedals[i] {
			t.Errorf("position %d medal = %q, want %q", i, got[i].Medal, wantMedals[i])
		}
	}
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name    string
		correct bool
		diff    float64
		want    float64
	}{
		{"exact winner", true, 0, 1200},
		{"winner far off", true, 500, 1000},
		{"wrong winner exact speed", false, 0, 200},
		{"wrong winner far off", false, 250, 0},
		{"fractional diff", true, 0.5, 1199.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.correct, tt.diff); got != tt.want {
				t.Errorf("Score(%v, %v) = %v, want %v", tt.correct, tt.diff, got, tt.want)
			}
		})
	}
}

func TestEvaluateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	players := []string{"A", "B", "C"}

	for run := 0; run < 200; run++ {
		n := rng.Intn(20)
		tips := make([]models.Tip, n)
		for i := range tips {
			tips[i] = tip(int64(i+1), players[rng.Intn(len(players))], float64(1+rng.Intn(300)))
		}
		out := Outcome{Winner: players[rng.Intn(len(players))], Speed: float64(1 + rng.Intn(300))}
		got := Evaluate(tips, out)

		seenIncorrect := false
		prevDiff := -1.0
		var lastIncorrectID int64
		for _, r := range got {
			if r.Score < 0 || r.Score > MaxScore {
				t.Fatalf("score %v out of range", r.Score)
			}
			if (r.Score == MaxScore) != (r.CorrectWinner && r.SpeedDiff == 0) {
				t.Fatalf("score %v with correct=%v diff=%v", r.Score, r.CorrectWinner, r.SpeedDiff)
			}
			if r.CorrectWinner {
				if seenIncorrect {
					t.Fatal("correct-winner entry after an incorrect one")
				}
				if r.SpeedDiff < prevDiff {
					t.Fatalf("speed diff decreased: %v after %v", r.SpeedDiff, prevDiff)
				}
				prevDiff = r.SpeedDiff
				continue
			}
			seenIncorrect = true
			if r.ID < lastIncorrectID {
				t.Fatalf("incorrect block reordered: id %d after %d", r.ID, lastIncorrectID)
			}
			lastIncorrectID = r.ID
		}

		again := make([]Result, len(got))
		copy(again, got)
		Sort(again)
		for i := range got {
			if got[i].ID != again[i].ID {
				t.Fatalf("Sort not idempotent at %d: %d vs %d", i, got[i].ID, again[i].ID)
			}
		}
	}
}
