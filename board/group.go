// Package board arranges tips for display: player groups, archive groups and
// a numeric summary of a round's guesses.
package board

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/padraicbc/speedtip/models"
)

// UnknownArchive labels archived tips without an archive timestamp.
const UnknownArchive = "unknown date"

// ArchiveLayout is the display granularity of archive groups.
const ArchiveLayout = "2. 1. 15:04:05"

// Comparator orders group keys; it returns <0, 0 or >0 like strings.Compare.
type Comparator func(a, b string) int

// NewCollator returns a locale-aware Comparator for tag.
// A collate.Collator is not safe for concurrent use, so one is built per
// Comparator and a Comparator should not be shared across goroutines.
func NewCollator(tag language.Tag) Comparator {
	c := collate.New(tag)
	return c.CompareString
}

// Czech is the default Comparator.
func Czech() Comparator {
	return NewCollator(language.Czech)
}

// PlayerGroup holds the tips naming one contestant.
type PlayerGroup struct {
	Key    string       `json:"key"`
	Club   string       `json:"club"`
	Player string       `json:"player"`
	Tips   []models.Tip `json:"tips"`
}

// ArchiveGroup holds the tips archived at the same moment.
type ArchiveGroup struct {
	Label   string        `json:"label"`
	Count   int           `json:"count"`
	Players []PlayerGroup `json:"players"`
}

// PlayerKey is the composite group key for a tip.
func PlayerKey(club, player string) string {
	return club + " – " + player
}

// GroupByPlayer groups tips by (club, player) and sorts groups by key.
// Tips keep their incoming order inside a group. A nil cmp means Czech().
func GroupByPlayer(tips []models.Tip, cmp Comparator) []PlayerGroup {
	if cmp == nil {
		cmp = Czech()
	}
	idx := map[string]int{}
	groups := []PlayerGroup{}
	for _, tip := range tips {
		key := PlayerKey(tip.PlayerClub, tip.PlayerName)
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, PlayerGroup{
				Key:    key,
				Club:   tip.PlayerClub,
				Player: tip.PlayerName,
			})
		}
		groups[i].Tips = append(groups[i].Tips, tip)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return cmp(groups[i].Key, groups[j].Key) < 0
	})
	return groups
}

// GroupByArchive groups archived tips by archive time formatted in loc, then
// by player. Archive groups keep the order in which they first appear, which
// for the archived listing is newest first.
func GroupByArchive(tips []models.Tip, loc *time.Location, cmp Comparator) []ArchiveGroup {
	if loc == nil {
		loc = time.Local
	}
	idx := map[string]int{}
	var order []string
	buckets := map[string][]models.Tip{}
	for _, tip := range tips {
		label := ArchiveLabel(tip.ArchivedAt, loc)
		if _, ok := idx[label]; !ok {
			idx[label] = len(order)
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], tip)
	}

	out := make([]ArchiveGroup, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		out = append(out, ArchiveGroup{
			Label:   label,
			Count:   len(b),
			Players: GroupByPlayer(b, cmp),
		})
	}
	return out
}

// ArchiveLabel formats an archive timestamp for grouping.
func ArchiveLabel(at *time.Time, loc *time.Location) string {
	if at == nil || at.IsZero() {
		return UnknownArchive
	}
	return at.In(loc).Format(ArchiveLayout)
}
