// Package service contains the business logic for the rate service.
package service

import (
	"errors"
	"fmt"

	"github.com/spedire/rate-service/internal/domain/model"
)

var (
	// ErrInvalidWeight is returned when the aggregated shipment weight is not
	// positive (empty item list, or every item normalized to zero).
	ErrInvalidWeight = errors.New("total shipment weight must be positive")

	// ErrTariffsUnavailable is returned when no tariff table snapshot can be
	// obtained. This is a service-level failure, distinct from a table that
	// simply has no entries for the requested region.
	ErrTariffsUnavailable = errors.New("tariff table unavailable")
)

// RegionNotFoundError reports a resolved region with zero tariff entries.
// It carries both the raw input and the resolved key so the caller can see
// what the resolver did with its input.
type RegionNotFoundError struct {
	Raw      string
	Resolved model.RegionKey
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("province %q (%s) not found in tariff table", e.Raw, e.Resolved)
}

// Unwrap makes errors.Is(err, model.ErrRegionNotFound) hold.
func (e *RegionNotFoundError) Unwrap() error {
	return model.ErrRegionNotFound
}

// TariffPersistError reports a repository failure while storing a replacement
// tariff table. Distinguishes infrastructure failures from record validation
// failures, which are returned raw.
type TariffPersistError struct {
	Err error
}

func (e *TariffPersistError) Error() string {
	return fmt.Sprintf("persisting tariff table: %v", e.Err)
}

func (e *TariffPersistError) Unwrap() error {
	return e.Err
}
