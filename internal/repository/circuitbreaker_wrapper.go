package repository

import (
	"context"

	"github.com/spedire/rate-service/internal/circuitbreaker"
	"github.com/spedire/rate-service/internal/domain/model"
)

// TariffRepositoryWithCircuitBreaker wraps TariffRepository with circuit
// breaker protection so a struggling database cannot stall every quote.
type TariffRepositoryWithCircuitBreaker struct {
	repo           *TariffRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTariffRepositoryWithCircuitBreaker creates the wrapper.
func NewTariffRepositoryWithCircuitBreaker(repo *TariffRepository, cb *circuitbreaker.CircuitBreaker) *TariffRepositoryWithCircuitBreaker {
	return &TariffRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active tariff table with circuit breaker protection.
// An open circuit reports "no table" rather than an error; the service keeps
// running on its in-memory snapshot.
func (r *TariffRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*TariffTableDocument, error) {
	var result *TariffTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Replace persists a new tariff table version with circuit breaker protection.
// Unlike reads, an open circuit fails the replacement: the caller must not
// believe an upload was stored when it was not.
func (r *TariffRepositoryWithCircuitBreaker) Replace(ctx context.Context, records []model.TariffRecord, createdBy string) (*TariffTableDocument, error) {
	var result *TariffTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Replace(ctx, records, createdBy)
		return cbErr
	})
	return result, err
}

// List returns tariff table versions with circuit breaker protection.
func (r *TariffRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]TariffTableDocument, error) {
	var result []TariffTableDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TariffRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
