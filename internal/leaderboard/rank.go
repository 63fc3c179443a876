package leaderboard

import (
	"sort"

	"github.com/google/uuid"
)

// Rank orders entries by score descending and assigns 1-based positions.
// Equal scores break ties by earliest account creation, so two tied users
// keep the same relative order on every read. Pure projection: no writes,
// recomputed per request.
func Rank(entries []*Entry) []*Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].JoinedAt.Before(entries[j].JoinedAt)
	})

	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries
}

// ApplyDeltas fills each entry's week-over-week movement given last week's
// ranks. Positive delta means the user climbed. Users absent from the
// previous snapshot keep a zero delta.
func ApplyDeltas(entries []*Entry, previous map[uuid.UUID]int) {
	for _, e := range entries {
		if prev, ok := previous[e.UserID]; ok {
			e.RankDelta = prev - e.Rank
		}
	}
}
