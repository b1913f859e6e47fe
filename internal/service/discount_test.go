package service

import (
	"context"
	"testing"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tierRules() []domain.DiscountRule {
	return []domain.DiscountRule{
		{ID: "d5", MinRooms: 5, DiscountPct: dec("10"), IsActive: true},
		{ID: "d10", MinRooms: 10, DiscountPct: dec("20"), IsActive: true},
	}
}

func TestResolveTier_Thresholds(t *testing.T) {
	tests := []struct {
		booked int
		want   string
		tierID string
	}{
		{booked: 0, want: "0"},
		{booked: 4, want: "0"},
		{booked: 5, want: "10", tierID: "d5"},
		{booked: 7, want: "10", tierID: "d5"},
		{booked: 10, want: "20", tierID: "d10"},
		{booked: 12, want: "20", tierID: "d10"},
	}

	for _, tt := range tests {
		tier := ResolveTier(tierRules(), tt.booked)
		assert.True(t, dec(tt.want).Equal(tier.Percent), "booked=%d got %s", tt.booked, tier.Percent)
		if tt.tierID == "" {
			assert.Nil(t, tier.QualifyingTier)
			continue
		}
		require.NotNil(t, tier.QualifyingTier)
		assert.Equal(t, tt.tierID, tier.QualifyingTier.ID)
	}
}

func TestResolveTier_IgnoresInactive(t *testing.T) {
	rules := append(tierRules(), domain.DiscountRule{ID: "d8", MinRooms: 8, DiscountPct: dec("50"), IsActive: false})

	tier := ResolveTier(rules, 9)

	assert.True(t, dec("10").Equal(tier.Percent))
}

func TestResolveTier_TieBreaksOnPercent(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: "low", MinRooms: 5, DiscountPct: dec("5"), IsActive: true},
		{ID: "high", MinRooms: 5, DiscountPct: dec("15"), IsActive: true},
	}

	tier := ResolveTier(rules, 6)

	require.NotNil(t, tier.QualifyingTier)
	assert.Equal(t, "high", tier.QualifyingTier.ID)
}

func TestResolveTier_NextTier(t *testing.T) {
	tier := ResolveTier(tierRules(), 7)

	require.NotNil(t, tier.NextTier)
	assert.Equal(t, "d10", tier.NextTier.ID)
	assert.Equal(t, 3, tier.RoomsToNext)

	tier = ResolveTier(tierRules(), 15)
	assert.Nil(t, tier.NextTier)
}

func TestResolveTier_Monotonic(t *testing.T) {
	rules := []domain.DiscountRule{
		{MinRooms: 3, DiscountPct: dec("2.5"), IsActive: true},
		{MinRooms: 5, DiscountPct: dec("10"), IsActive: true},
		{MinRooms: 10, DiscountPct: dec("20"), IsActive: true},
		{MinRooms: 10, DiscountPct: dec("15"), IsActive: true},
		{MinRooms: 25, DiscountPct: dec("30"), IsActive: true},
	}

	prev := ResolveTier(rules, 0).Percent
	for booked := 1; booked <= 40; booked++ {
		cur := ResolveTier(rules, booked).Percent
		assert.True(t, cur.GreaterThanOrEqual(prev), "booked=%d: %s < %s", booked, cur, prev)
		prev = cur
	}
}

func TestDiscountResolver_ResolveDiscount(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	ruleRepo := mocks.NewMockRuleRepo(t)
	inventory := mocks.NewMockInventoryStore(t)
	r := NewDiscountResolver(eventRepo, ruleRepo, inventory)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	ruleRepo.EXPECT().ListDiscountRules(mock.Anything, "e1").Return(tierRules(), nil)
	inventory.EXPECT().BookedTotal(mock.Anything, "e1").Return(domain.Inventory{TotalRooms: 30, BookedRooms: 12}, nil)

	tier, err := r.ResolveDiscount(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, dec("20").Equal(tier.Percent))
	assert.Equal(t, 12, tier.BookedRooms)
}

func TestDiscountResolver_EventNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	r := NewDiscountResolver(eventRepo, mocks.NewMockRuleRepo(t), mocks.NewMockInventoryStore(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := r.ResolveDiscount(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
