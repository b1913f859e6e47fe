package allocation

import (
	"fmt"
	"strings"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

// Manual applies explicit guest placements in order on top of the current
// snapshot. The last override for a guest wins. An empty floor and wing
// clears the guest's placement.
func Manual(
	guests []domain.Guest,
	buckets []domain.Bucket,
	overrides []domain.AllocationOverride,
) (*domain.AllocationResult, error) {
	st := newState(buckets)

	byID := make(map[string]int, len(guests))
	placement := make(map[string]domain.BucketKey, len(guests))
	for i := range guests {
		byID[guests[i].ID] = i
		key := keyOf(&guests[i])
		if st.has(key) {
			st.take(key)
			placement[guests[i].ID] = key
		}
	}

	var touched []int
	seen := make(map[string]bool)
	for _, o := range overrides {
		i, ok := byID[o.GuestID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrGuestNotFound, o.GuestID)
		}

		key := domain.BucketKey{Floor: o.Floor, Wing: o.Wing}
		if !key.Empty() && !st.has(key) {
			return nil, fmt.Errorf("%w: unknown bucket %s/%s", domain.ErrValidation, o.Floor, o.Wing)
		}

		cur, placed := placement[o.GuestID]
		switch {
		case placed && cur == key:
		case key.Empty():
			if placed {
				st.free(cur)
				delete(placement, o.GuestID)
			}
		default:
			if st.remaining(key) <= 0 {
				return nil, fmt.Errorf("%w: %s/%s", domain.ErrBucketFull, key.Floor, key.Wing)
			}
			if placed {
				st.free(cur)
			}
			st.take(key)
			placement[o.GuestID] = key
		}

		if !seen[o.GuestID] {
			seen[o.GuestID] = true
			touched = append(touched, i)
		}
	}

	res := &domain.AllocationResult{}
	for _, i := range touched {
		g := guests[i]
		key := placement[g.ID]
		res.Assignments = append(res.Assignments, domain.Assignment{
			GuestID:   g.ID,
			GuestName: g.Name,
			Floor:     key.Floor,
			Wing:      key.Wing,
		})

		if w, ok := checkProximity(guests, g, placement); ok {
			res.Warnings = append(res.Warnings, w)
		}
	}
	res.Buckets = st.snapshot()

	return res, nil
}

func checkProximity(guests []domain.Guest, g domain.Guest, placement map[string]domain.BucketKey) (domain.AllocationWarning, bool) {
	if strings.TrimSpace(g.ProximityRequest) == "" {
		return domain.AllocationWarning{}, false
	}
	t := findByName(guests, g.ProximityRequest, g.ID)
	if t < 0 {
		return proximityWarning(g, fmt.Sprintf("requested guest %q not found", g.ProximityRequest)), true
	}
	mine, ok := placement[g.ID]
	if !ok {
		return domain.AllocationWarning{}, false
	}
	if theirs, ok := placement[guests[t].ID]; !ok || theirs != mine {
		return proximityWarning(g, fmt.Sprintf("not placed with %q", guests[t].Name)), true
	}
	return domain.AllocationWarning{}, false
}
