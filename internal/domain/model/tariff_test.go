package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testRecords() []TariffRecord {
	// Deliberately unordered: the table must sort per region itself.
	return []TariffRecord{
		{Region: "MILANO", WeightKg: 1000, Price: price("70")},
		{Region: "MILANO", WeightKg: 500, Price: price("40")},
		{Region: "Roma", WeightKg: 500, Price: price("55")},
		{Region: "rm", WeightKg: 1000, Price: price("90")},
	}
}

func TestNewTariffTable(t *testing.T) {
	table, err := NewTariffTable(testRecords(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), table.Version())
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []RegionKey{"MILANO", "ROMA"}, table.Regions())

	brackets, err := table.BracketsFor("MILANO")
	require.NoError(t, err)
	require.Len(t, brackets, 2)
	assert.Equal(t, 500.0, brackets[0].WeightKg)
	assert.Equal(t, 1000.0, brackets[1].WeightKg)
}

func TestNewTariffTable_NormalizesRegionAliases(t *testing.T) {
	// "Roma" and "rm" must merge into one region.
	table, err := NewTariffTable(testRecords(), 1)
	require.NoError(t, err)

	brackets, err := table.BracketsFor("ROMA")
	require.NoError(t, err)
	assert.Len(t, brackets, 2)
}

func TestNewTariffTable_InvariantViolations(t *testing.T) {
	tests := []struct {
		name    string
		records []TariffRecord
	}{
		{
			name:    "no records",
			records: nil,
		},
		{
			name: "non-positive threshold",
			records: []TariffRecord{
				{Region: "MILANO", WeightKg: 0, Price: price("40")},
			},
		},
		{
			name: "negative price",
			records: []TariffRecord{
				{Region: "MILANO", WeightKg: 500, Price: price("-1")},
			},
		},
		{
			name: "duplicate threshold in region",
			records: []TariffRecord{
				{Region: "MILANO", WeightKg: 500, Price: price("40")},
				{Region: "mi", WeightKg: 500, Price: price("45")},
			},
		},
		{
			name: "empty region name",
			records: []TariffRecord{
				{Region: "  ", WeightKg: 500, Price: price("40")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTariffTable(tt.records, 1)
			assert.Error(t, err)
		})
	}
}

func TestTariffTable_Lookup(t *testing.T) {
	table, err := NewTariffTable(testRecords(), 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		region     RegionKey
		weightKg   float64
		expectedKg float64
	}{
		{name: "below first bracket", region: "MILANO", weightKg: 100, expectedKg: 500},
		{name: "exactly on threshold selects that bracket", region: "MILANO", weightKg: 500, expectedKg: 500},
		{name: "between brackets", region: "MILANO", weightKg: 600, expectedKg: 1000},
		{name: "exactly on last threshold", region: "MILANO", weightKg: 1000, expectedKg: 1000},
		{name: "above every bracket clamps to last", region: "MILANO", weightKg: 2500, expectedKg: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := table.Lookup(tt.region, tt.weightKg)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKg, entry.WeightKg)
		})
	}
}

func TestTariffTable_Lookup_RegionNotFound(t *testing.T) {
	table, err := NewTariffTable(testRecords(), 1)
	require.NoError(t, err)

	_, err = table.Lookup("ATLANTIS", 100)
	assert.ErrorIs(t, err, ErrRegionNotFound)

	_, err = table.BracketsFor("ATLANTIS")
	assert.ErrorIs(t, err, ErrRegionNotFound)
}
