package domain

import "github.com/shopspring/decimal"

type CostEstimate struct {
	Pax         int             `json:"pax"`
	Nights      int             `json:"nights"`
	RoomsNeeded int             `json:"rooms_needed"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Rooms       decimal.Decimal `json:"rooms"`
	Food        decimal.Decimal `json:"food"`
	Catering    decimal.Decimal `json:"catering"`
	AddOns      decimal.Decimal `json:"addons"`
	Total       decimal.Decimal `json:"total"`
	PerPax      decimal.Decimal `json:"per_pax"`
}
