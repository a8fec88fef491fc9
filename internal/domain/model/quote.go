package model

import (
	"github.com/shopspring/decimal"
)

// Default quote identity, matching the carrier contract the service fulfils.
const (
	ServiceName = "Spedizione Personalizzata"
	ServiceCode = "CUSTOM"
	Currency    = "EUR"
)

// LineItem is one shipment line: a unit weight in grams (zero when the
// upstream order carries no weight) and a quantity.
type LineItem struct {
	UnitWeightGrams float64
	Quantity        int
}

// PricedPallet binds one capacity-bounded chunk of the shipment's mass to the
// tariff bracket selected for it. Pallets exist only for the duration of a
// quote computation.
type PricedPallet struct {
	// WeightKg is the mass carved onto this pallet.
	WeightKg float64 `json:"weight_kg"`
	// BracketKg is the threshold of the selected bracket.
	BracketKg float64 `json:"bracket_kg"`
	// Price is the bracket price accumulated into the base cost.
	Price decimal.Decimal `json:"price"`
}

// Allocation is the result of decomposing a shipment into priced pallets.
type Allocation struct {
	Pallets  []PricedPallet
	BaseCost decimal.Decimal
}

// Quote is the final shipping rate returned to the caller. Immutable once
// built; TotalPriceCents is in minor currency units.
type Quote struct {
	ServiceName     string `json:"service_name"`
	ServiceCode     string `json:"service_code"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Currency        string `json:"currency"`
	Description     string `json:"description"`
}

// Breakdown carries every intermediate value of a successful quote
// computation. It is attached to the response only when diagnostics are
// requested and never changes the outcome.
type Breakdown struct {
	RawRegion     string          `json:"raw_region"`
	Region        RegionKey       `json:"region"`
	TotalKg       float64         `json:"total_kg"`
	MarginedKg    float64         `json:"margined_kg"`
	PalletCount   int             `json:"pallet_count"`
	Pallets       []PricedPallet  `json:"pallets"`
	BaseCost      decimal.Decimal `json:"base_cost"`
	FuelSurcharge decimal.Decimal `json:"fuel_surcharge"`
	FixedFee      decimal.Decimal `json:"fixed_fee"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VAT           decimal.Decimal `json:"vat"`
	TotalCents    int64           `json:"total_cents"`
	TariffVersion int64           `json:"tariff_version"`
}
