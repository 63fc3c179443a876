package leaderboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func entry(score int, joined time.Time) *Entry {
	return &Entry{UserID: uuid.New(), Score: score, JoinedAt: joined}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	a := entry(50, base)
	b := entry(200, base.AddDate(0, 0, 1))
	c := entry(200, base.AddDate(0, 0, 2))
	d := entry(10, base)

	ranked := Rank([]*Entry{a, b, c, d})

	wantOrder := []*Entry{b, c, a, d}
	for i, want := range wantOrder {
		if ranked[i] != want {
			t.Fatalf("position %d: wrong entry (score %d)", i, ranked[i].Score)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d: rank = %d, want %d", i, ranked[i].Rank, i+1)
		}
	}

	// Tied scores get adjacent ranks and the sequence descends by score.
	if b.Rank != 1 || c.Rank != 2 {
		t.Errorf("tied entries should rank 1 and 2 by earliest join, got %d and %d", b.Rank, c.Rank)
	}
	if a.Rank != 3 || d.Rank != 4 {
		t.Errorf("expected ranks 3 and 4, got %d and %d", a.Rank, d.Rank)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatal("scores not descending")
		}
	}
}

func TestRankTieBreakIsStableAcrossRuns(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	older := entry(100, base)
	newer := entry(100, base.Add(time.Hour))

	for i := 0; i < 3; i++ {
		ranked := Rank([]*Entry{newer, older})
		if ranked[0] != older {
			t.Fatal("earliest account must win the tie every time")
		}
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}

func TestApplyDeltas(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	climber := entry(300, base)
	faller := entry(100, base)
	newcomer := entry(200, base)

	ranked := Rank([]*Entry{climber, faller, newcomer})

	previous := map[uuid.UUID]int{
		climber.UserID: 3,
		faller.UserID:  1,
	}
	ApplyDeltas(ranked, previous)

	if climber.RankDelta != 2 {
		t.Errorf("climber delta = %d, want 2", climber.RankDelta)
	}
	if faller.RankDelta != -2 {
		t.Errorf("faller delta = %d, want -2", faller.RankDelta)
	}
	if newcomer.RankDelta != 0 {
		t.Errorf("newcomer delta = %d, want 0", newcomer.RankDelta)
	}
}
