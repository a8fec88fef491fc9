package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spedire/rate-service/internal/domain/model"
)

var convertCmd = &cobra.Command{
	Use:   "convert <matrix.csv>",
	Short: "Convert a CSV price matrix to tariff records",
	Long: `Convert a spreadsheet-exported CSV price matrix to the JSON tariff
record format.

The expected layout is the one carriers hand over: the first column holds the
weight bracket thresholds in kg, every other column is a destination province,
and each cell is the price for one pallet in that bracket. Empty cells are
skipped. Prices may use either a dot or a comma as decimal separator.

Example input:

  Peso,Milano,Roma,Napoli
  100,50.00,55.00,60.00
  500,"62,50","68,00","71,00"
  1000,70.00,80.00,85.00`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var (
	convertOutput string
	convertDelim  string
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")
	convertCmd.Flags().StringVar(&convertDelim, "delimiter", ",", "CSV field delimiter")
}

func runConvert(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := convertMatrix(f, []rune(convertDelim)[0])
	if err != nil {
		return fmt.Errorf("converting %s: %w", args[0], err)
	}

	// Converted output must pass the same validation the service applies.
	table, err := model.NewTariffTable(records, 0)
	if err != nil {
		return fmt.Errorf("converted records are invalid: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if convertOutput == "" {
		cmd.OutOrStdout().Write(data)
	} else {
		if err := os.WriteFile(convertOutput, data, 0o644); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", convertOutput)
	}

	cmd.Printf("Converted %d records across %d regions\n", table.Len(), len(table.Regions()))
	return nil
}

// convertMatrix parses the price matrix into flat tariff records.
func convertMatrix(r io.Reader, delimiter rune) ([]model.TariffRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header needs a weight column and at least one province column")
	}
	regions := header[1:]

	var records []model.TariffRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		weight, err := parseNumber(row[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: weight %q: %w", line, row[0], err)
		}

		for i, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" || i >= len(regions) {
				continue
			}
			price, err := parsePrice(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: price %q: %w", line, regions[i], cell, err)
			}
			records = append(records, model.TariffRecord{
				Region:   strings.TrimSpace(regions[i]),
				WeightKg: weight,
				Price:    price,
			})
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no price cells found")
	}
	return records, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}

func parsePrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}
