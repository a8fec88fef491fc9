// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/spedire/rate-service/internal/domain/model"
)

// TariffRepositoryInterface defines the tariff table persistence operations.
type TariffRepositoryInterface interface {
	GetActive(ctx context.Context) (*TariffTableDocument, error)
	Replace(ctx context.Context, records []model.TariffRecord, createdBy string) (*TariffTableDocument, error)
	List(ctx context.Context, limit int) ([]TariffTableDocument, error)
}
