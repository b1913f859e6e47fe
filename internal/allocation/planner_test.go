package allocation

import (
	"fmt"
	"testing"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucket(floor, wing string, capacity int) domain.Bucket {
	return domain.Bucket{Key: domain.BucketKey{Floor: floor, Wing: wing}, Capacity: capacity}
}

func placements(res *domain.AllocationResult) map[string]domain.BucketKey {
	out := make(map[string]domain.BucketKey)
	for _, a := range res.Assignments {
		out[a.GuestID] = a.Key()
	}
	return out
}

func TestAuto_ProximityFallsBackWhenBucketsTooSmall(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "A", Group: "X"},
		{ID: "b", Name: "B", Group: "X", ProximityRequest: "A"},
	}
	buckets := []domain.Bucket{bucket("1", "east", 1), bucket("1", "west", 1)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	require.Len(t, p, 2)
	assert.NotEqual(t, p["a"], p["b"])
	assert.Empty(t, res.Unplaced)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, domain.WarningUnresolvedProximity, res.Warnings[0].Code)
	assert.Equal(t, "b", res.Warnings[0].GuestID)
}

func TestAuto_ProximitySatisfiedWithLargeBucket(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "A", Group: "X"},
		{ID: "b", Name: "B", Group: "X", ProximityRequest: "A"},
	}
	buckets := []domain.Bucket{
		bucket("1", "east", 1),
		bucket("1", "west", 1),
		bucket("2", "east", 2),
	}

	res := Auto(guests, buckets, false)

	p := placements(res)
	assert.Equal(t, domain.BucketKey{Floor: "2", Wing: "east"}, p["a"])
	assert.Equal(t, p["a"], p["b"])
	assert.Empty(t, res.Warnings)
}

func TestAuto_ProximityOverridesGroupPlacement(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "Alice", Group: "X"},
		{ID: "b", Name: "Bob", Group: "Y", ProximityRequest: " alice "},
	}
	buckets := []domain.Bucket{bucket("1", "A", 2), bucket("1", "B", 3)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "B"}, p["a"])
	assert.Equal(t, p["a"], p["b"])
	assert.Empty(t, res.Warnings)
}

func TestAuto_ProximityTargetMissing(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "A", ProximityRequest: "Nobody"},
	}

	res := Auto(guests, []domain.Bucket{bucket("1", "A", 1)}, false)

	require.Len(t, res.Assignments, 1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, domain.WarningUnresolvedProximity, res.Warnings[0].Code)
}

func TestAuto_WholeGroupGoesToLargestFittingBucket(t *testing.T) {
	guests := []domain.Guest{
		{ID: "x1", Group: "X"}, {ID: "x2", Group: "X"}, {ID: "x3", Group: "X"},
		{ID: "y1", Group: "Y"}, {ID: "y2", Group: "Y"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 3), bucket("2", "A", 4)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	for _, id := range []string{"x1", "x2", "x3"} {
		assert.Equal(t, domain.BucketKey{Floor: "2", Wing: "A"}, p[id], id)
	}
	for _, id := range []string{"y1", "y2"} {
		assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "A"}, p[id], id)
	}
}

func TestAuto_SplitsGroupAcrossBuckets(t *testing.T) {
	guests := []domain.Guest{
		{ID: "x1", Group: "X"}, {ID: "x2", Group: "X"},
		{ID: "x3", Group: "X"}, {ID: "x4", Group: "X"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 1), bucket("1", "B", 3)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "B"}, p["x1"])
	assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "B"}, p["x3"])
	assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "A"}, p["x4"])
	assert.Empty(t, res.Unplaced)
}

func TestAuto_UnplacedGuestsAreNotAnError(t *testing.T) {
	guests := []domain.Guest{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	res := Auto(guests, []domain.Bucket{bucket("1", "A", 2)}, false)

	assert.Len(t, res.Assignments, 2)
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, "c", res.Unplaced[0].ID)
}

func TestAuto_NoBuckets(t *testing.T) {
	guests := []domain.Guest{{ID: "a"}, {ID: "b"}}

	res := Auto(guests, nil, false)

	assert.Empty(t, res.Assignments)
	assert.Len(t, res.Unplaced, 2)
}

func TestAuto_KeepsExistingPlacements(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", AllocatedFloor: "1", AllocatedWing: "A"},
		{ID: "b"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 1), bucket("1", "B", 1)}

	res := Auto(guests, buckets, false)

	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "b", res.Assignments[0].GuestID)
	assert.Equal(t, domain.BucketKey{Floor: "1", Wing: "B"}, res.Assignments[0].Key())
}

func TestAuto_ResetReplansEveryone(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Group: "X", AllocatedFloor: "1", AllocatedWing: "A"},
		{ID: "b", Group: "X", AllocatedFloor: "1", AllocatedWing: "B"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 1), bucket("1", "B", 1), bucket("2", "A", 2)}

	res := Auto(guests, buckets, true)

	p := placements(res)
	assert.Equal(t, domain.BucketKey{Floor: "2", Wing: "A"}, p["a"])
	assert.Equal(t, domain.BucketKey{Floor: "2", Wing: "A"}, p["b"])
}

func TestAuto_Deterministic(t *testing.T) {
	var guests []domain.Guest
	for i := 0; i < 40; i++ {
		g := domain.Guest{
			ID:    fmt.Sprintf("g%02d", i),
			Name:  fmt.Sprintf("Guest %d", i),
			Group: fmt.Sprintf("group-%d", i%7),
		}
		if i%5 == 0 {
			g.ProximityRequest = fmt.Sprintf("Guest %d", (i+11)%40)
		}
		guests = append(guests, g)
	}
	buckets := []domain.Bucket{
		bucket("3", "north", 6), bucket("1", "south", 5),
		bucket("2", "east", 9), bucket("1", "north", 4),
		bucket("2", "west", 7),
	}

	first := Auto(guests, buckets, false)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Auto(guests, buckets, false))
	}
}

func TestAuto_BucketOrderDoesNotMatter(t *testing.T) {
	guests := []domain.Guest{{ID: "a", Group: "X"}, {ID: "b", Group: "X"}, {ID: "c"}}

	one := Auto(guests, []domain.Bucket{bucket("1", "A", 2), bucket("2", "A", 2)}, false)
	two := Auto(guests, []domain.Bucket{bucket("2", "A", 2), bucket("1", "A", 2)}, false)

	assert.Equal(t, one.Assignments, two.Assignments)
}

func TestAuto_ProximityChainWarnsWhenLinkBreaks(t *testing.T) {
	guests := []domain.Guest{
		{ID: "c", Name: "C", ProximityRequest: "B"},
		{ID: "b", Name: "B", ProximityRequest: "A"},
		{ID: "a", Name: "A"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 2), bucket("1", "B", 2), bucket("1", "C", 2)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	require.Len(t, p, 3)
	assert.Equal(t, p["a"], p["b"])

	warned := make(map[string]bool)
	for _, w := range res.Warnings {
		assert.Equal(t, domain.WarningUnresolvedProximity, w.Code)
		warned[w.GuestID] = true
	}
	assert.False(t, warned["b"])
	if p["c"] != p["b"] {
		assert.True(t, warned["c"], "c is apart from b without a warning")
	}
}

func TestAuto_ProximityChainFollowsMovedTarget(t *testing.T) {
	guests := []domain.Guest{
		{ID: "c", Name: "C", ProximityRequest: "B"},
		{ID: "b", Name: "B", ProximityRequest: "A"},
		{ID: "a", Name: "A"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 3), bucket("1", "B", 3), bucket("1", "C", 3)}

	res := Auto(guests, buckets, false)

	p := placements(res)
	require.Len(t, p, 3)
	assert.Equal(t, p["a"], p["b"])
	assert.Equal(t, p["b"], p["c"])
	assert.Empty(t, res.Warnings)
}

func TestAuto_ProximityCycleTerminates(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "A", ProximityRequest: "B"},
		{ID: "b", Name: "B", ProximityRequest: "C"},
		{ID: "c", Name: "C", ProximityRequest: "A"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 1), bucket("1", "B", 1), bucket("1", "C", 1)}

	res := Auto(guests, buckets, false)

	assert.Len(t, res.Assignments, 3)
	assert.Len(t, res.Warnings, 3)
}

func TestAuto_WarnsForKeptGuestApartFromTarget(t *testing.T) {
	guests := []domain.Guest{
		{ID: "a", Name: "A", ProximityRequest: "B", AllocatedFloor: "1", AllocatedWing: "A"},
		{ID: "b", Name: "B", AllocatedFloor: "1", AllocatedWing: "B"},
	}
	buckets := []domain.Bucket{bucket("1", "A", 1), bucket("1", "B", 1)}

	res := Auto(guests, buckets, false)

	assert.Empty(t, res.Assignments)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, domain.WarningUnresolvedProximity, res.Warnings[0].Code)
	assert.Equal(t, "a", res.Warnings[0].GuestID)
}
