//go:build ignore

// This script writes a sample tariffs.json for local development.
// Run with: go run scripts/seed_tariffs.go [path]
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

type record struct {
	Region   string  `json:"region"`
	WeightKg float64 `json:"weight_kg"`
	Price    string  `json:"price"`
}

func main() {
	path := "tariffs.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	brackets := []struct {
		weightKg float64
		price    string
	}{
		{100, "25.00"},
		{300, "38.00"},
		{500, "50.00"},
		{750, "61.00"},
		{1000, "70.00"},
	}

	// A small spread of northern, central and southern provinces, priced
	// progressively further from the Milan hub.
	surcharges := map[string]float64{
		"MILANO":  0,
		"TORINO":  3,
		"BOLOGNA": 5,
		"ROMA":    10,
		"NAPOLI":  14,
		"BARI":    18,
		"PALERMO": 28,
	}

	var records []record
	for region, extra := range surcharges {
		for _, b := range brackets {
			var base float64
			fmt.Sscanf(b.price, "%f", &base)
			records = append(records, record{
				Region:   region,
				WeightKg: b.weightKg,
				Price:    fmt.Sprintf("%.2f", base+extra),
			})
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding tariffs: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d tariff records for %d provinces to %s\n", len(records), len(surcharges), path)
	fmt.Println("Start the service with TARIFFS_FILE=" + path)
}
