package draft

import (
	"testing"

	"github.com/google/uuid"
)

func TestPickerIndexSnakeOrder(t *testing.T) {
	e := NewEngine()

	// 4 members: round 1 runs 1..4, round 2 reverses.
	want := []int{0, 1, 2, 3, 3, 2, 1, 0, 0, 1, 2, 3}
	for i, expected := range want {
		overall := i + 1
		if got := e.PickerIndex(overall, 4); got != expected {
			t.Errorf("PickerIndex(%d, 4) = %d, want %d", overall, got, expected)
		}
	}
}

func TestPickerIndexMirrorProperty(t *testing.T) {
	e := NewEngine()

	// Within any round pair, pick p in an odd round and its mirror in the
	// following round land on the same member.
	for _, n := range []int{2, 3, 5, 8} {
		for overall := 1; overall <= n; overall++ {
			mirror := 2*n + 1 - overall
			if e.PickerIndex(overall, n) != e.PickerIndex(mirror, n) {
				t.Errorf("n=%d: PickerIndex(%d) != PickerIndex(%d)", n, overall, mirror)
			}
		}
	}
}

func TestRound(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		overall, n, want int
	}{
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{6, 3, 2},
		{7, 3, 3},
		{1, 2, 1},
		{12, 2, 6},
	}
	for _, tt := range tests {
		if got := e.Round(tt.overall, tt.n); got != tt.want {
			t.Errorf("Round(%d, %d) = %d, want %d", tt.overall, tt.n, got, tt.want)
		}
	}
}

func slots(counts ...int) []MemberSlot {
	s := make([]MemberSlot, len(counts))
	for i, c := range counts {
		s[i] = MemberSlot{UserID: uuid.New(), PickCount: c}
	}
	return s
}

func TestNextEligible(t *testing.T) {
	e := NewEngine()

	t.Run("normal advance", func(t *testing.T) {
		members := slots(1, 0, 0)
		turn, ok := e.NextEligible(2, members, 2)
		if !ok {
			t.Fatal("expected a turn")
		}
		if turn.Overall != 2 || turn.UserID != members[1].UserID {
			t.Errorf("got overall %d user %s, want overall 2 user %s", turn.Overall, turn.UserID, members[1].UserID)
		}
	})

	t.Run("skips full member", func(t *testing.T) {
		// Member at index 1 is already at cap; pick 2 jumps to index 2.
		members := slots(1, 2, 0)
		turn, ok := e.NextEligible(2, members, 2)
		if !ok {
			t.Fatal("expected a turn")
		}
		if turn.Overall != 3 || turn.UserID != members[2].UserID {
			t.Errorf("got overall %d, want skip to overall 3 for member 2", turn.Overall)
		}
	})

	t.Run("scans past a round boundary", func(t *testing.T) {
		// Only member 0 has capacity. Overalls 2..5 all map to members 1
		// and 2 (the snake repeats the edge), so the scan must reach
		// overall 6 to find member 0.
		members := slots(1, 2, 2)
		turn, ok := e.NextEligible(2, members, 2)
		if !ok {
			t.Fatal("expected a turn")
		}
		if turn.Overall != 6 || turn.UserID != members[0].UserID {
			t.Errorf("got overall %d user index unknown, want overall 6 member 0", turn.Overall)
		}
		if turn.Round != 2 {
			t.Errorf("got round %d, want 2", turn.Round)
		}
	})

	t.Run("draft complete", func(t *testing.T) {
		members := slots(2, 2, 2)
		if _, ok := e.NextEligible(7, members, 2); ok {
			t.Error("expected no turn when every roster is full")
		}
	})

	t.Run("no members", func(t *testing.T) {
		if _, ok := e.NextEligible(1, nil, 2); ok {
			t.Error("expected no turn with no members")
		}
	})
}

func TestFullDraftSequence(t *testing.T) {
	e := NewEngine()

	// 3 members, 2 rounds: overall order must be 0,1,2,2,1,0.
	members := slots(0, 0, 0)
	wantOrder := []int{0, 1, 2, 2, 1, 0}

	overall := 1
	for pickNum, wantIdx := range wantOrder {
		turn, ok := e.NextEligible(overall, members, 2)
		if !ok {
			t.Fatalf("pick %d: draft ended early", pickNum+1)
		}
		if turn.Overall != pickNum+1 {
			t.Fatalf("pick %d: got overall %d, want contiguous numbering", pickNum+1, turn.Overall)
		}
		if turn.UserID != members[wantIdx].UserID {
			t.Fatalf("pick %d: wrong picker", pickNum+1)
		}
		for i := range members {
			if members[i].UserID == turn.UserID {
				members[i].PickCount++
			}
		}
		overall = turn.Overall + 1
	}

	if _, ok := e.NextEligible(overall, members, 2); ok {
		t.Error("expected draft complete after final pick")
	}
}

func TestRoundRobinFallback(t *testing.T) {
	e := NewEngine()

	t.Run("starts at current slot", func(t *testing.T) {
		members := slots(1, 1, 0)
		// Overall 2 maps to slot index 1.
		userID, ok := e.RoundRobinFallback(2, members, 2)
		if !ok || userID != members[1].UserID {
			t.Errorf("got %s, want member 1", userID)
		}
	})

	t.Run("wraps past full members", func(t *testing.T) {
		members := slots(0, 2, 2)
		userID, ok := e.RoundRobinFallback(2, members, 2)
		if !ok || userID != members[0].UserID {
			t.Errorf("got %s, want member 0", userID)
		}
	})

	t.Run("everyone full", func(t *testing.T) {
		members := slots(2, 2)
		if _, ok := e.RoundRobinFallback(1, members, 2); ok {
			t.Error("expected no fallback picker")
		}
	})
}

func TestShuffleOrder(t *testing.T) {
	e := NewEngine()

	members := make([]MemberEntry, 6)
	for i := range members {
		members[i].UserID = uuid.New()
	}

	shuffled := e.ShuffleOrder(members)
	if len(shuffled) != len(members) {
		t.Fatalf("got %d members, want %d", len(shuffled), len(members))
	}

	seen := make(map[uuid.UUID]bool)
	for _, m := range shuffled {
		seen[m.UserID] = true
	}
	for _, m := range members {
		if !seen[m.UserID] {
			t.Errorf("member %s missing from shuffled order", m.UserID)
		}
	}
}
