package dto

import "github.com/spedire/rate-service/internal/domain/model"

// TariffSummary describes the active tariff table snapshot.
type TariffSummary struct {
	Version int64    `json:"version" example:"3"`
	Entries int      `json:"entries" example:"214"`
	Regions []string `json:"regions"`
} // @name TariffSummary

// NewTariffSummary builds the summary for a table snapshot.
func NewTariffSummary(table *model.TariffTable) TariffSummary {
	regions := table.Regions()
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	return TariffSummary{
		Version: table.Version(),
		Entries: table.Len(),
		Regions: names,
	}
}

// RegionTariffs lists the weight brackets of one region, sorted ascending by
// threshold.
type RegionTariffs struct {
	Region   string              `json:"region" example:"MILANO"`
	Brackets []model.TariffEntry `json:"brackets"`
} // @name RegionTariffs
