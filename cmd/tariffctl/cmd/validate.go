package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spedire/rate-service/internal/domain/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tariffs.json>",
	Short: "Validate a tariff file locally",
	Long: `Validate a tariff JSON file against the invariants the service enforces
on upload: positive weight thresholds, non-negative prices, no duplicate
thresholds within a region, at least one record. Legacy spreadsheet-export
keys (Provincia, Peso, Prezzo) are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	table, err := loadTariffFile(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s is valid: %d records, %d regions\n", args[0], table.Len(), len(table.Regions()))
	for _, region := range table.Regions() {
		brackets, err := table.BracketsFor(region)
		if err != nil {
			return err
		}
		last := brackets[len(brackets)-1]
		cmd.Printf("  %-20s %d brackets, up to %skg\n", region, len(brackets),
			formatWeight(last.WeightKg))
	}
	return nil
}

func loadTariffFile(path string) (*model.TariffTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []model.TariffRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	table, err := model.NewTariffTable(records, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func formatWeight(kg float64) string {
	return fmt.Sprintf("%g", kg)
}
