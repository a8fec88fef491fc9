package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrRegionNotFound is returned when a region has no tariff entries.
	ErrRegionNotFound = errors.New("region not found in tariff table")
	// ErrEmptyTariffTable is returned when a table is built from zero records.
	ErrEmptyTariffTable = errors.New("tariff table has no records")
)

// TariffRecord is a single raw record of the externally supplied price list:
// "a shipment of up to WeightKg destined for Region costs Price".
// No ordering is assumed from the source; NewTariffTable sorts per region.
type TariffRecord struct {
	Region   string          `json:"region"`
	WeightKg float64         `json:"weight_kg"`
	Price    decimal.Decimal `json:"price"`
}

// UnmarshalJSON accepts both the service's keys and the legacy capitalized
// keys of the spreadsheet export this service replaced
// ({"Provincia", "Peso", "Prezzo"}), so existing tariffs.json files keep
// working unchanged.
func (r *TariffRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Region    string          `json:"region"`
		Provincia string          `json:"Provincia"`
		WeightKg  float64         `json:"weight_kg"`
		Peso      float64         `json:"Peso"`
		Price     decimal.Decimal `json:"price"`
		Prezzo    decimal.Decimal `json:"Prezzo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Region = raw.Region
	if r.Region == "" {
		r.Region = raw.Provincia
	}
	r.WeightKg = raw.WeightKg
	if r.WeightKg == 0 {
		r.WeightKg = raw.Peso
	}
	r.Price = raw.Price
	if r.Price.IsZero() && !raw.Prezzo.IsZero() {
		r.Price = raw.Prezzo
	}
	return nil
}

// TariffEntry is one validated price bracket of a region.
type TariffEntry struct {
	Region   RegionKey       `json:"region"`
	WeightKg float64         `json:"weight_kg"`
	Price    decimal.Decimal `json:"price"`
}

// TariffTable holds per-region bracket lists sorted ascending by weight
// threshold. A table is immutable after construction; hot reloads swap whole
// table snapshots rather than mutating one in place, so an in-flight quote
// never observes a partial update.
type TariffTable struct {
	brackets map[RegionKey][]TariffEntry
	version  int64
	entries  int
}

// NewTariffTable builds a table from raw records, normalizing region names,
// sorting each region's brackets and validating the bracket invariants.
//
// Invariant violations (non-positive threshold, negative price, duplicate
// threshold within a region) are construction errors: a malformed price list
// must never be coerced into a table the allocator would happily misprice
// against.
func NewTariffTable(records []TariffRecord, version int64) (*TariffTable, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTariffTable
	}

	brackets := make(map[RegionKey][]TariffEntry)
	for i, rec := range records {
		region, err := ResolveRegion(rec.Region)
		if err != nil {
			return nil, fmt.Errorf("record %d: empty region", i)
		}
		if rec.WeightKg <= 0 {
			return nil, fmt.Errorf("record %d (%s): weight threshold must be positive, got %v", i, region, rec.WeightKg)
		}
		if rec.Price.IsNegative() {
			return nil, fmt.Errorf("record %d (%s): price must not be negative, got %s", i, region, rec.Price)
		}
		brackets[region] = append(brackets[region], TariffEntry{
			Region:   region,
			WeightKg: rec.WeightKg,
			Price:    rec.Price,
		})
	}

	entries := 0
	for region, list := range brackets {
		sort.Slice(list, func(i, j int) bool { return list[i].WeightKg < list[j].WeightKg })
		for i := 1; i < len(list); i++ {
			if list[i].WeightKg == list[i-1].WeightKg {
				return nil, fmt.Errorf("region %s: duplicate weight threshold %v", region, list[i].WeightKg)
			}
		}
		brackets[region] = list
		entries += len(list)
	}

	return &TariffTable{brackets: brackets, version: version, entries: entries}, nil
}

// BracketsFor returns the region's brackets sorted ascending by threshold.
// The returned slice is shared with the table and must not be modified.
func (t *TariffTable) BracketsFor(region RegionKey) ([]TariffEntry, error) {
	list, ok := t.brackets[region]
	if !ok || len(list) == 0 {
		return nil, ErrRegionNotFound
	}
	return list, nil
}

// Lookup selects the bracket for a single pallet of weightKg destined for
// region: the smallest bracket whose threshold is >= weightKg. A weight equal
// to a threshold selects that bracket. A weight above every threshold clamps
// to the largest bracket; the last bracket reads as "at or above this weight
// it still costs this price".
func (t *TariffTable) Lookup(region RegionKey, weightKg float64) (TariffEntry, error) {
	list, err := t.BracketsFor(region)
	if err != nil {
		return TariffEntry{}, err
	}
	idx := sort.Search(len(list), func(i int) bool { return list[i].WeightKg >= weightKg })
	if idx == len(list) {
		idx = len(list) - 1
	}
	return list[idx], nil
}

// Regions returns the sorted list of regions present in the table.
func (t *TariffTable) Regions() []RegionKey {
	regions := make([]RegionKey, 0, len(t.brackets))
	for region := range t.brackets {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}

// Version identifies the snapshot this table was built from.
func (t *TariffTable) Version() int64 {
	return t.version
}

// Len returns the total number of entries across all regions.
func (t *TariffTable) Len() int {
	return t.entries
}
