package score

import "testing"

func TestComputeIsDeterministic(t *testing.T) {
	m := Metrics{TasksCompleted: 7, TotalIncome: 1250, FocusMinutes: 95, HabitsCompleted: 4}

	first := DefaultWeights.Compute(m)
	second := DefaultWeights.Compute(m)

	if first != second {
		t.Fatalf("same metrics produced different scores: %d vs %d", first, second)
	}

	// 7*10 + 4*5 + (95/30)*5 + (1250/100)*1
	want := 70 + 20 + 15 + 12
	if first != want {
		t.Errorf("expected score %d, got %d", want, first)
	}
}

func TestComputeZeroMetrics(t *testing.T) {
	if got := DefaultWeights.Compute(Metrics{}); got != 0 {
		t.Errorf("expected 0 score for empty metrics, got %d", got)
	}
}

func TestResolveHustleLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Newbie Hustler"},
		{199, "Newbie Hustler"},
		{200, "Side Hustler"},
		{499, "Side Hustler"},
		{500, "Grinder"},
		{999, "Grinder"},
		{1000, "Boss Mode"},
		{1999, "Boss Mode"},
		{2000, "Empire Builder"},
		{1000000, "Empire Builder"},
		{-5, "Newbie Hustler"},
	}

	for _, c := range cases {
		if got := ResolveHustleLevel(c.score); got != c.want {
			t.Errorf("ResolveHustleLevel(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestResolveHustleLevelMonotonic(t *testing.T) {
	tier := func(name string) int {
		for i, l := range HustleLevels {
			if l.Name == name {
				return i
			}
		}
		t.Fatalf("unknown level %q", name)
		return -1
	}

	prev := -1
	for s := 0; s <= 3000; s++ {
		cur := tier(ResolveHustleLevel(s))
		if cur < prev {
			t.Fatalf("level dropped from tier %d to %d at score %d", prev, cur, s)
		}
		prev = cur
	}
}
