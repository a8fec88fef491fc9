package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spedire/rate-service/internal/domain/model"
)

// calculatorTable builds the fixture used across the calculator tests:
// two brackets for MILANO, one for ROMA.
func calculatorTable(t *testing.T) *model.TariffTable {
	t.Helper()
	table, err := model.NewTariffTable([]model.TariffRecord{
		{Region: "MILANO", WeightKg: 500, Price: decimal.NewFromFloat(50.00)},
		{Region: "MILANO", WeightKg: 1000, Price: decimal.NewFromFloat(70.00)},
		{Region: "ROMA", WeightKg: 1000, Price: decimal.NewFromFloat(80.00)},
	}, 3)
	require.NoError(t, err)
	return table
}

// staticProvider hands out a fixed table (or error) for calculator tests.
type staticProvider struct {
	table *model.TariffTable
	err   error
}

func (p *staticProvider) Active() (*model.TariffTable, error) {
	return p.table, p.err
}

func TestTotalKg(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.LineItem
		expected float64
	}{
		{
			name:     "empty list yields zero",
			items:    nil,
			expected: 0,
		},
		{
			name:     "single item",
			items:    []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}},
			expected: 600,
		},
		{
			name: "quantity multiplies unit weight",
			items: []model.LineItem{
				{UnitWeightGrams: 250000, Quantity: 4},
			},
			expected: 1000,
		},
		{
			name: "missing weight falls back to default",
			items: []model.LineItem{
				{UnitWeightGrams: 0, Quantity: 3},
			},
			expected: 3,
		},
		{
			name: "missing quantity counts as one",
			items: []model.LineItem{
				{UnitWeightGrams: 500000, Quantity: 0},
			},
			expected: 500,
		},
		{
			name: "mixed lines accumulate",
			items: []model.LineItem{
				{UnitWeightGrams: 100000, Quantity: 2},
				{UnitWeightGrams: 0, Quantity: 1},
				{UnitWeightGrams: 500, Quantity: 2},
			},
			expected: 202,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TotalKg(tt.items, 1000), 1e-9)
		})
	}
}

func TestAllocate(t *testing.T) {
	table := calculatorTable(t)
	calc := NewRateCalculator(&staticProvider{table: table}, DefaultPricingConfig())

	tests := []struct {
		name           string
		region         model.RegionKey
		totalKg        float64
		wantPallets    int
		wantMarginedKg float64
		wantBaseCost   string
		wantBrackets   []float64
	}{
		{
			name:           "single pallet within first bracket",
			region:         "MILANO",
			totalKg:        200,
			wantPallets:    1,
			wantMarginedKg: 220,
			wantBaseCost:   "50",
			wantBrackets:   []float64{500},
		},
		{
			name:           "margin pushes into the next bracket",
			region:         "MILANO",
			totalKg:        600,
			wantPallets:    1,
			wantMarginedKg: 660,
			wantBaseCost:   "70",
			wantBrackets:   []float64{1000},
		},
		{
			name:           "overflow splits across pallets",
			region:         "MILANO",
			totalKg:        2500,
			wantPallets:    3,
			wantMarginedKg: 2750,
			wantBaseCost:   "210",
			wantBrackets:   []float64{1000, 1000, 1000},
		},
		{
			name:           "margin overflows exact capacity onto a second pallet",
			region:         "ROMA",
			totalKg:        1000,
			wantPallets:    2,
			wantMarginedKg: 1100,
			wantBaseCost:   "160",
			wantBrackets:   []float64{1000, 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, marginedKg, err := calc.Allocate(table, tt.region, tt.totalKg)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantMarginedKg, marginedKg, 1e-9)
			require.Len(t, alloc.Pallets, tt.wantPallets)
			assert.True(t, alloc.BaseCost.Equal(mustDecimal(t, tt.wantBaseCost)),
				"base cost: got %s, want %s", alloc.BaseCost, tt.wantBaseCost)
			for i, p := range alloc.Pallets {
				assert.Equal(t, tt.wantBrackets[i], p.BracketKg, "pallet %d bracket", i)
			}
		})
	}

	t.Run("unknown region fails", func(t *testing.T) {
		_, _, err := calc.Allocate(table, "TORINO", 100)
		assert.ErrorIs(t, err, model.ErrRegionNotFound)
	})

	t.Run("weight above every bracket clamps to the last one", func(t *testing.T) {
		cfg := DefaultPricingConfig()
		cfg.MaxPalletKg = 2000
		cfg.MarginFactor = 1.0
		clampCalc := NewRateCalculator(&staticProvider{table: table}, cfg)

		alloc, _, err := clampCalc.Allocate(table, "MILANO", 1500)
		require.NoError(t, err)
		require.Len(t, alloc.Pallets, 1)
		assert.Equal(t, float64(1000), alloc.Pallets[0].BracketKg)
		assert.True(t, alloc.BaseCost.Equal(decimal.NewFromInt(70)))
	})
}

func TestAssemble(t *testing.T) {
	calc := NewRateCalculator(&staticProvider{}, DefaultPricingConfig())

	cents, fuel, subtotal, vat := calc.Assemble(decimal.NewFromInt(100))
	assert.Equal(t, int64(12505), cents)
	assert.True(t, fuel.Equal(mustDecimal(t, "2.5")), "fuel: %s", fuel)
	assert.True(t, subtotal.Equal(mustDecimal(t, "102.5")), "subtotal: %s", subtotal)
	assert.True(t, vat.Equal(mustDecimal(t, "22.55")), "vat: %s", vat)
}

func TestAssembleRoundsHalfAwayFromZero(t *testing.T) {
	// 70 * 1.025 * 1.22 = 87.535, exactly half a cent up.
	calc := NewRateCalculator(&staticProvider{}, DefaultPricingConfig())

	cents, _, _, _ := calc.Assemble(decimal.NewFromInt(70))
	assert.Equal(t, int64(8754), cents)
}

func TestAssembleWithFixedFee(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.FixedFee = decimal.NewFromFloat(5.00)
	calc := NewRateCalculator(&staticProvider{}, cfg)

	// 100 * 1.025 + 5 = 107.5; 107.5 * 1.22 = 131.15
	cents, _, subtotal, _ := calc.Assemble(decimal.NewFromInt(100))
	assert.True(t, subtotal.Equal(mustDecimal(t, "107.5")))
	assert.Equal(t, int64(13115), cents)
}

func TestQuote(t *testing.T) {
	provider := &staticProvider{table: calculatorTable(t)}
	calc := NewRateCalculator(provider, DefaultPricingConfig())

	tests := []struct {
		name            string
		region          string
		items           []model.LineItem
		wantCents       int64
		wantDescription string
	}{
		{
			name:            "province code expands through the alias table",
			region:          "MI",
			items:           []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}},
			wantCents:       8754,
			wantDescription: "Bancali: 1, fascia fino a 1000kg",
		},
		{
			name:            "full province name",
			region:          "milano",
			items:           []model.LineItem{{UnitWeightGrams: 200000, Quantity: 1}},
			wantCents:       6253,
			wantDescription: "Bancali: 1, fascia fino a 500kg",
		},
		{
			name:            "heavy shipment spans several pallets",
			region:          "MI",
			items:           []model.LineItem{{UnitWeightGrams: 1250000, Quantity: 2}},
			wantCents:       26261,
			wantDescription: "Bancali: 3, fascia fino a 1000kg",
		},
		{
			name:            "items without weight use the default",
			region:          "RM",
			items:           []model.LineItem{{UnitWeightGrams: 0, Quantity: 2}},
			wantCents:       10004,
			wantDescription: "Bancali: 1, fascia fino a 1000kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Quote(QuoteInput{RawRegion: tt.region, Items: tt.items})
			require.NoError(t, err)

			assert.Equal(t, model.ServiceName, result.Quote.ServiceName)
			assert.Equal(t, model.ServiceCode, result.Quote.ServiceCode)
			assert.Equal(t, model.Currency, result.Quote.Currency)
			assert.Equal(t, tt.wantCents, result.Quote.TotalPriceCents)
			assert.Equal(t, tt.wantDescription, result.Quote.Description)
			assert.Nil(t, result.Breakdown)
		})
	}
}

func TestQuoteErrors(t *testing.T) {
	table := calculatorTable(t)

	tests := []struct {
		name     string
		provider TariffProvider
		input    QuoteInput
		check    func(t *testing.T, err error)
	}{
		{
			name:     "blank destination",
			provider: &staticProvider{table: table},
			input:    QuoteInput{RawRegion: "  ", Items: []model.LineItem{{UnitWeightGrams: 1000, Quantity: 1}}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidDestination)
			},
		},
		{
			name:     "no items",
			provider: &staticProvider{table: table},
			input:    QuoteInput{RawRegion: "MI"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidWeight)
			},
		},
		{
			name:     "no table installed",
			provider: &staticProvider{err: ErrTariffsUnavailable},
			input:    QuoteInput{RawRegion: "MI", Items: []model.LineItem{{UnitWeightGrams: 1000, Quantity: 1}}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTariffsUnavailable)
			},
		},
		{
			name:     "region with no tariff entries",
			provider: &staticProvider{table: table},
			input:    QuoteInput{RawRegion: "to", Items: []model.LineItem{{UnitWeightGrams: 1000, Quantity: 1}}},
			check: func(t *testing.T, err error) {
				var notFound *RegionNotFoundError
				require.True(t, errors.As(err,&notFound))
				assert.Equal(t, "to", notFound.Raw)
				assert.Equal(t, model.RegionKey("TORINO"), notFound.Resolved)
				assert.ErrorIs(t, err, model.ErrRegionNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewRateCalculator(tt.provider, DefaultPricingConfig())
			_, err := calc.Quote(tt.input)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestQuoteDiagnostics(t *testing.T) {
	provider := &staticProvider{table: calculatorTable(t)}
	calc := NewRateCalculator(provider, DefaultPricingConfig())

	plain, err := calc.Quote(QuoteInput{
		RawRegion: "MI",
		Items:     []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}},
	})
	require.NoError(t, err)

	diag, err := calc.Quote(QuoteInput{
		RawRegion:   "MI",
		Items:       []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}},
		Diagnostics: true,
	})
	require.NoError(t, err)

	// Diagnostics never change the price.
	assert.Equal(t, plain.Quote, diag.Quote)

	require.NotNil(t, diag.Breakdown)
	b := diag.Breakdown
	assert.Equal(t, "MI", b.RawRegion)
	assert.Equal(t, model.RegionKey("MILANO"), b.Region)
	assert.InDelta(t, 600, b.TotalKg, 1e-9)
	assert.InDelta(t, 660, b.MarginedKg, 1e-9)
	assert.Equal(t, 1, b.PalletCount)
	assert.True(t, b.BaseCost.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, int64(8754), b.TotalCents)
	assert.Equal(t, int64(3), b.TariffVersion)
}

func TestQuoteCaching(t *testing.T) {
	provider := &staticProvider{table: calculatorTable(t)}
	cache := NewQuoteCache(16, time.Minute)
	calc := NewRateCalculator(provider, DefaultPricingConfig(), WithQuoteCache(cache))

	input := QuoteInput{RawRegion: "MI", Items: []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}}}

	first, err := calc.Quote(input)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// Swap the underlying table without clearing the cache: the cached quote
	// keeps being served, which is exactly why TariffService clears it on
	// every replacement.
	stale, err := model.NewTariffTable([]model.TariffRecord{
		{Region: "MILANO", WeightKg: 1000, Price: decimal.NewFromFloat(999)},
	}, 4)
	require.NoError(t, err)
	provider.table = stale

	second, err := calc.Quote(input)
	require.NoError(t, err)
	assert.Equal(t, first.Quote, second.Quote)

	cache.Clear()
	third, err := calc.Quote(input)
	require.NoError(t, err)
	assert.NotEqual(t, first.Quote.TotalPriceCents, third.Quote.TotalPriceCents)
}

func TestQuoteDiagnosticsBypassCache(t *testing.T) {
	provider := &staticProvider{table: calculatorTable(t)}
	cache := NewQuoteCache(16, time.Minute)
	calc := NewRateCalculator(provider, DefaultPricingConfig(), WithQuoteCache(cache))

	result, err := calc.Quote(QuoteInput{
		RawRegion:   "MI",
		Items:       []model.LineItem{{UnitWeightGrams: 600000, Quantity: 1}},
		Diagnostics: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Breakdown)
	assert.Equal(t, 0, cache.Len())
}

func TestPricingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PricingConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*PricingConfig) {},
		},
		{
			name:    "zero pallet capacity",
			mutate:  func(c *PricingConfig) { c.MaxPalletKg = 0 },
			wantErr: "max pallet capacity",
		},
		{
			name:    "margin below one",
			mutate:  func(c *PricingConfig) { c.MarginFactor = 0.9 },
			wantErr: "margin factor",
		},
		{
			name:    "non-positive default weight",
			mutate:  func(c *PricingConfig) { c.DefaultGrams = 0 },
			wantErr: "default item weight",
		},
		{
			name:    "negative VAT",
			mutate:  func(c *PricingConfig) { c.VATRate = decimal.NewFromFloat(-0.1) },
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPricingConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
