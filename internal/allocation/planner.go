// Package allocation places guests into (floor, wing) buckets.
//
// Both planners are pure: they take a snapshot of guests and bucket capacities
// and return a result without touching storage. Given the same guest order and
// the same buckets the output is identical; nothing iterates over a map.
package allocation

import (
	"sort"
	"strings"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

type state struct {
	buckets []domain.Bucket
	index   map[domain.BucketKey]int
}

func newState(buckets []domain.Bucket) *state {
	st := &state{index: make(map[domain.BucketKey]int, len(buckets))}
	for _, b := range buckets {
		if b.Key.Empty() {
			continue
		}
		if i, ok := st.index[b.Key]; ok {
			st.buckets[i].Capacity += b.Capacity
			continue
		}
		st.index[b.Key] = len(st.buckets)
		st.buckets = append(st.buckets, domain.Bucket{Key: b.Key, Capacity: b.Capacity})
	}

	sort.SliceStable(st.buckets, func(i, j int) bool {
		return st.buckets[i].Key.Less(st.buckets[j].Key)
	})
	for i, b := range st.buckets {
		st.index[b.Key] = i
	}

	return st
}

func (s *state) has(key domain.BucketKey) bool {
	_, ok := s.index[key]
	return ok
}

func (s *state) remaining(key domain.BucketKey) int {
	i, ok := s.index[key]
	if !ok {
		return 0
	}
	return s.buckets[i].Remaining()
}

func (s *state) take(key domain.BucketKey) {
	if i, ok := s.index[key]; ok {
		s.buckets[i].Allocated++
	}
}

func (s *state) free(key domain.BucketKey) {
	if i, ok := s.index[key]; ok && s.buckets[i].Allocated > 0 {
		s.buckets[i].Allocated--
	}
}

// largest returns the bucket with the most remaining capacity that can hold
// at least need guests. Earlier buckets win ties. -1 if none.
func (s *state) largest(need int) int {
	best := -1
	for i, b := range s.buckets {
		if b.Remaining() < need || b.Remaining() <= 0 {
			continue
		}
		if best < 0 || b.Remaining() > s.buckets[best].Remaining() {
			best = i
		}
	}
	return best
}

func (s *state) snapshot() []domain.Bucket {
	out := make([]domain.Bucket, len(s.buckets))
	copy(out, s.buckets)
	return out
}

func keyOf(g *domain.Guest) domain.BucketKey {
	return domain.BucketKey{Floor: g.AllocatedFloor, Wing: g.AllocatedWing}
}

// Auto runs the greedy group planner over every guest that is not already
// placed in a known bucket with room to spare. With reset set, every guest
// is re-planned from empty buckets.
func Auto(guests []domain.Guest, buckets []domain.Bucket, reset bool) *domain.AllocationResult {
	st := newState(buckets)
	placement := make(map[string]domain.BucketKey, len(guests))

	var pending []int
	for i := range guests {
		key := keyOf(&guests[i])
		if !reset && st.has(key) && st.remaining(key) > 0 {
			st.take(key)
			placement[guests[i].ID] = key
			continue
		}
		pending = append(pending, i)
	}

	for _, members := range partition(guests, pending) {
		placeGroup(st, guests, members, placement)
	}

	res := &domain.AllocationResult{}
	resolveProximity(st, guests, pending, placement)
	res.Warnings = proximityWarnings(guests, placement)

	for _, i := range pending {
		g := guests[i]
		key, ok := placement[g.ID]
		if !ok {
			res.Unplaced = append(res.Unplaced, g)
			continue
		}
		res.Assignments = append(res.Assignments, domain.Assignment{
			GuestID:   g.ID,
			GuestName: g.Name,
			Floor:     key.Floor,
			Wing:      key.Wing,
		})
	}
	res.Buckets = st.snapshot()

	return res
}

// partition groups guest indices by group name in order of first appearance.
// Guests without a group each form their own group.
func partition(guests []domain.Guest, pending []int) [][]int {
	var groups [][]int
	byName := make(map[string]int)
	for _, i := range pending {
		name := strings.TrimSpace(guests[i].Group)
		if name == "" {
			groups = append(groups, []int{i})
			continue
		}
		gi, ok := byName[name]
		if !ok {
			byName[name] = len(groups)
			groups = append(groups, []int{i})
			continue
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}

func placeGroup(st *state, guests []domain.Guest, members []int, placement map[string]domain.BucketKey) {
	if b := st.largest(len(members)); b >= 0 {
		key := st.buckets[b].Key
		for _, m := range members {
			st.take(key)
			placement[guests[m].ID] = key
		}
		return
	}

	rest := members
	for len(rest) > 0 {
		b := st.largest(1)
		if b < 0 {
			return
		}
		key := st.buckets[b].Key
		n := min(st.buckets[b].Remaining(), len(rest))
		for _, m := range rest[:n] {
			st.take(key)
			placement[guests[m].ID] = key
		}
		rest = rest[n:]
	}
}

// proximityPasses bounds how often chained requests are re-resolved; a
// cycle of requests may otherwise move guests back and forth forever.
const proximityPasses = 3

// resolveProximity moves pending guests into the bucket of the guest they
// asked to be near while that bucket has room. Requests that chain through
// another pending guest are settled by repeating the pass until nothing moves.
func resolveProximity(
	st *state,
	guests []domain.Guest,
	pending []int,
	placement map[string]domain.BucketKey,
) {
	for pass := 0; pass < proximityPasses; pass++ {
		moved := false
		for _, i := range pending {
			g := guests[i]
			if strings.TrimSpace(g.ProximityRequest) == "" {
				continue
			}
			t := findByName(guests, g.ProximityRequest, g.ID)
			if t < 0 {
				continue
			}
			target, ok := placement[guests[t].ID]
			if !ok {
				continue
			}
			cur, placed := placement[g.ID]
			if placed && cur == target {
				continue
			}
			if st.remaining(target) <= 0 {
				continue
			}

			if placed {
				st.free(cur)
			}
			st.take(target)
			placement[g.ID] = target
			moved = true
		}
		if !moved {
			return
		}
	}
}

// proximityWarnings checks every guest with a request against the final
// placement, kept guests included.
func proximityWarnings(guests []domain.Guest, placement map[string]domain.BucketKey) []domain.AllocationWarning {
	var warnings []domain.AllocationWarning
	for i := range guests {
		if w, ok := checkProximity(guests, guests[i], placement); ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// findByName returns the index of the first guest other than self whose name
// matches, ignoring case and surrounding spaces.
func findByName(guests []domain.Guest, name, self string) int {
	name = strings.TrimSpace(name)
	for i := range guests {
		if guests[i].ID == self {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(guests[i].Name), name) {
			return i
		}
	}
	return -1
}

func proximityWarning(g domain.Guest, msg string) domain.AllocationWarning {
	return domain.AllocationWarning{
		Code:    domain.WarningUnresolvedProximity,
		GuestID: g.ID,
		Message: msg,
	}
}
