package draft

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Engine owns the snake-draft turn math: whose turn a given overall pick
// belongs to, and how the turn advances when rosters fill up or a member is
// removed mid-draft. It is pure computation; the pick transaction drives it.
type Engine struct{}

// NewEngine creates a turn engine.
func NewEngine() *Engine {
	return &Engine{}
}

// MemberSlot pairs a draft-ordered member with their committed pick count.
type MemberSlot struct {
	UserID    uuid.UUID
	PickCount int
}

// Turn identifies the picker holding a specific overall pick number.
type Turn struct {
	Overall int
	Round   int
	UserID  uuid.UUID
}

// Round returns the 1-indexed round for overall pick p with n members.
func (e *Engine) Round(overall, n int) int {
	return (overall-1)/n + 1
}

// PickerIndex returns the zero-based index into the position-ordered member
// list of the picker for overall pick p with n members. Odd rounds run
// 1..N, even rounds reverse to N..1.
func (e *Engine) PickerIndex(overall, n int) int {
	i := (overall - 1) % n
	if e.Round(overall, n)%2 == 0 {
		i = n - 1 - i
	}
	return i
}

// NextEligible finds the first overall pick number >= startOverall whose
// snake-order picker still has roster capacity. Members removed mid-draft can
// leave the computed picker full, in which case the turn skips forward. The
// ordered slice must be sorted by draft position. Returns false when no
// member has capacity left, which means the draft is complete.
func (e *Engine) NextEligible(startOverall int, ordered []MemberSlot, rosterCap int) (Turn, bool) {
	n := len(ordered)
	if n == 0 {
		return Turn{}, false
	}

	// A window straddling a round boundary repeats the edge index, so n
	// consecutive overalls may miss a member. 2n always contains one full
	// round and therefore visits every index.
	overall := startOverall
	for attempts := 0; attempts < 2*n; attempts++ {
		idx := e.PickerIndex(overall, n)
		candidate := ordered[idx]
		if candidate.PickCount < rosterCap {
			return Turn{
				Overall: overall,
				Round:   e.Round(overall, n),
				UserID:  candidate.UserID,
			}, true
		}
		overall++
	}
	return Turn{}, false
}

// RoundRobinFallback reassigns the current turn after a mid-draft removal.
// It walks the remaining members in draft-position order starting from the
// slot the current overall pick maps to, returning the first one with open
// roster capacity. Plain round-robin is acceptable here; removal is rare and
// forward progress matters more than snake fidelity.
func (e *Engine) RoundRobinFallback(currentOverall int, ordered []MemberSlot, rosterCap int) (uuid.UUID, bool) {
	n := len(ordered)
	if n == 0 {
		return uuid.Nil, false
	}

	start := (currentOverall - 1) % n
	for attempts := 0; attempts < n; attempts++ {
		candidate := ordered[(start+attempts)%n]
		if candidate.PickCount < rosterCap {
			return candidate.UserID, true
		}
	}
	return uuid.Nil, false
}

// ShuffleOrder returns a random permutation of members, used to assign draft
// positions 1..N at draft start.
func (e *Engine) ShuffleOrder(members []MemberEntry) []MemberEntry {
	shuffled := make([]MemberEntry, len(members))
	copy(shuffled, members)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
