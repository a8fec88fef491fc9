package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/spedire/rate-service/internal/domain/model"
)

// PricingConfig holds every knob of the quote computation. The source price
// lists this service grew out of hard-coded inconsistent values for pallet
// capacity and weight margin; both are explicit configuration here so every
// observed variant is expressible without touching code.
type PricingConfig struct {
	// MaxPalletKg is the capacity of a single pallet. Must be > 0.
	MaxPalletKg float64
	// MarginFactor is the multiplicative safety buffer applied to the
	// declared weight before allocation (1.0 for none, 1.1 for +10%).
	MarginFactor float64
	// DefaultGrams is the per-item fallback weight for items shipped
	// without one.
	DefaultGrams float64
	// FuelSurchargeRate is the fraction of the base cost added as fuel
	// surcharge.
	FuelSurchargeRate decimal.Decimal
	// FixedFee is an optional flat fee added after the fuel surcharge.
	FixedFee decimal.Decimal
	// VATRate is the tax rate applied to the post-surcharge subtotal.
	VATRate decimal.Decimal
}

// DefaultPricingConfig returns the production pricing parameters.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		MaxPalletKg:       1000,
		MarginFactor:      1.1,
		DefaultGrams:      1000,
		FuelSurchargeRate: decimal.NewFromFloat(0.025),
		FixedFee:          decimal.Zero,
		VATRate:           decimal.NewFromFloat(0.22),
	}
}

// Validate rejects pricing parameters the allocator cannot work with.
func (c PricingConfig) Validate() error {
	if c.MaxPalletKg <= 0 {
		return fmt.Errorf("max pallet capacity must be positive, got %v", c.MaxPalletKg)
	}
	if c.MarginFactor < 1.0 {
		return fmt.Errorf("margin factor must be >= 1.0, got %v", c.MarginFactor)
	}
	if c.DefaultGrams <= 0 {
		return fmt.Errorf("default item weight must be positive, got %v", c.DefaultGrams)
	}
	if c.FuelSurchargeRate.IsNegative() || c.VATRate.IsNegative() || c.FixedFee.IsNegative() {
		return fmt.Errorf("surcharge, fee and VAT must not be negative")
	}
	return nil
}

// TariffProvider hands out the current immutable tariff table snapshot.
type TariffProvider interface {
	Active() (*model.TariffTable, error)
}

// QuoteInput is one shipment to price.
type QuoteInput struct {
	RawRegion   string
	Items       []model.LineItem
	Diagnostics bool
}

// QuoteResult is a successful quote, with the intermediate breakdown attached
// when diagnostics were requested.
type QuoteResult struct {
	Quote     model.Quote
	Breakdown *model.Breakdown
}

// RateQuoter defines the quoting operation exposed to the HTTP layer.
type RateQuoter interface {
	Quote(input QuoteInput) (QuoteResult, error)
}

// RateCalculator computes shipping quotes against tariff table snapshots.
// All computation is pure and bounded; the only collaborator is the tariff
// provider, which is read once per quote.
type RateCalculator struct {
	tariffs TariffProvider
	cfg     PricingConfig
	cache   *quoteCache
}

// CalculatorOption configures a RateCalculator.
type CalculatorOption func(*RateCalculator)

// WithQuoteCache enables caching of assembled quotes keyed by region and
// total weight. The cache must be invalidated when the tariff table changes;
// see TariffService.
func WithQuoteCache(c *quoteCache) CalculatorOption {
	return func(r *RateCalculator) {
		r.cache = c
	}
}

// NewRateCalculator creates a RateCalculator for the given tariff provider
// and pricing parameters.
func NewRateCalculator(tariffs TariffProvider, cfg PricingConfig, opts ...CalculatorOption) *RateCalculator {
	r := &RateCalculator{tariffs: tariffs, cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TotalKg reduces the line items to one total mass in kilograms. Items with a
// missing or non-positive unit weight fall back to defaultGrams; a missing
// quantity counts as one. An empty list yields 0, which Quote rejects.
func TotalKg(items []model.LineItem, defaultGrams float64) float64 {
	totalGrams := 0.0
	for _, item := range items {
		grams := item.UnitWeightGrams
		if grams <= 0 {
			grams = defaultGrams
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		totalGrams += grams * float64(qty)
	}
	return totalGrams / 1000
}

// Allocate decomposes the margin-adjusted total mass into priced pallets.
//
// Each iteration carves min(remaining, MaxPalletKg) onto a pallet and charges
// the bracket selected for that pallet's weight. All but possibly the last
// pallet weigh exactly MaxPalletKg, so the loop runs
// ceil(totalKg*MarginFactor / MaxPalletKg) times.
func (r *RateCalculator) Allocate(table *model.TariffTable, region model.RegionKey, totalKg float64) (model.Allocation, float64, error) {
	marginedKg := totalKg * r.cfg.MarginFactor

	alloc := model.Allocation{BaseCost: decimal.Zero}
	remaining := marginedKg
	for remaining > 0 {
		palletKg := math.Min(remaining, r.cfg.MaxPalletKg)
		bracket, err := table.Lookup(region, palletKg)
		if err != nil {
			return model.Allocation{}, 0, err
		}
		alloc.Pallets = append(alloc.Pallets, model.PricedPallet{
			WeightKg:  palletKg,
			BracketKg: bracket.WeightKg,
			Price:     bracket.Price,
		})
		alloc.BaseCost = alloc.BaseCost.Add(bracket.Price)
		remaining -= palletKg
	}
	return alloc, marginedKg, nil
}

// Assemble applies fuel surcharge, fixed fee and VAT to the base cost:
//
//	subtotal = baseCost * (1 + fuelRate) + fixedFee
//	total    = subtotal * (1 + vatRate)
//
// The result is rounded half away from zero to integer cents. The
// intermediate fuel, subtotal and VAT amounts are returned unrounded for the
// diagnostics payload.
func (r *RateCalculator) Assemble(baseCost decimal.Decimal) (cents int64, fuel, subtotal, vat decimal.Decimal) {
	fuel = baseCost.Mul(r.cfg.FuelSurchargeRate)
	subtotal = baseCost.Add(fuel).Add(r.cfg.FixedFee)
	vat = subtotal.Mul(r.cfg.VATRate)
	total := subtotal.Add(vat)
	cents = total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return cents, fuel, subtotal, vat
}

// Quote prices one shipment end to end: resolve the region, aggregate the
// weight, allocate pallets against the current tariff snapshot and assemble
// the final price. Diagnostics only add the breakdown to a successful result,
// never change it.
func (r *RateCalculator) Quote(input QuoteInput) (QuoteResult, error) {
	region, err := model.ResolveRegion(input.RawRegion)
	if err != nil {
		return QuoteResult{}, err
	}

	totalKg := TotalKg(input.Items, r.cfg.DefaultGrams)
	if totalKg <= 0 {
		return QuoteResult{}, ErrInvalidWeight
	}

	table, err := r.tariffs.Active()
	if err != nil || table == nil {
		return QuoteResult{}, ErrTariffsUnavailable
	}

	if r.cache != nil && !input.Diagnostics {
		if quote, ok := r.cache.Get(cacheKey(region, totalKg)); ok {
			return QuoteResult{Quote: quote}, nil
		}
	}

	alloc, marginedKg, err := r.Allocate(table, region, totalKg)
	if err != nil {
		return QuoteResult{}, &RegionNotFoundError{Raw: input.RawRegion, Resolved: region}
	}

	cents, fuel, subtotal, vat := r.Assemble(alloc.BaseCost)

	quote := model.Quote{
		ServiceName:     model.ServiceName,
		ServiceCode:     model.ServiceCode,
		TotalPriceCents: cents,
		Currency:        model.Currency,
		Description:     describe(alloc.Pallets),
	}

	if r.cache != nil && !input.Diagnostics {
		r.cache.Set(cacheKey(region, totalKg), quote)
	}

	result := QuoteResult{Quote: quote}
	if input.Diagnostics {
		result.Breakdown = &model.Breakdown{
			RawRegion:     input.RawRegion,
			Region:        region,
			TotalKg:       totalKg,
			MarginedKg:    marginedKg,
			PalletCount:   len(alloc.Pallets),
			Pallets:       alloc.Pallets,
			BaseCost:      alloc.BaseCost,
			FuelSurcharge: fuel,
			FixedFee:      r.cfg.FixedFee,
			Subtotal:      subtotal,
			VAT:           vat,
			TotalCents:    cents,
			TariffVersion: table.Version(),
		}
	}
	return result, nil
}

// describe summarizes the pallet count and the heaviest bracket used, in the
// wording the downstream checkout displays to customers.
func describe(pallets []model.PricedPallet) string {
	maxBracket := 0.0
	for _, p := range pallets {
		if p.BracketKg > maxBracket {
			maxBracket = p.BracketKg
		}
	}
	return fmt.Sprintf("Bancali: %d, fascia fino a %skg", len(pallets), strconv.FormatFloat(maxBracket, 'f', -1, 64))
}

// cacheKey identifies a quote by region and total weight in whole grams.
func cacheKey(region model.RegionKey, totalKg float64) string {
	return string(region) + "|" + strconv.FormatInt(int64(math.Round(totalKg*1000)), 10)
}
