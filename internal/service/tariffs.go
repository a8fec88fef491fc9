package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/spedire/rate-service/internal/domain/model"
	"github.com/spedire/rate-service/internal/metrics"
	"github.com/spedire/rate-service/internal/repository"
)

// TariffService owns the current tariff table snapshot and its lifecycle:
// bootstrap from the database or a seed file, atomic replacement on upload,
// and quote cache invalidation.
//
// The snapshot is held in an atomic.Value and only ever swapped wholesale, so
// a quote running concurrently with a replacement sees either the old or the
// new table, never a mix.
type TariffService struct {
	repo     repository.TariffRepositoryInterface
	cache    *quoteCache
	snapshot atomic.Value // *model.TariffTable

	// mu serializes replacements; reads go through the atomic.Value only.
	mu      sync.Mutex
	version int64
}

// NewTariffService creates a TariffService. repo may be nil (file-only
// deployments); cache may be nil (caching disabled).
func NewTariffService(repo repository.TariffRepositoryInterface, cache *quoteCache) *TariffService {
	return &TariffService{repo: repo, cache: cache}
}

// Active returns the current snapshot, or ErrTariffsUnavailable when none has
// been installed yet.
func (s *TariffService) Active() (*model.TariffTable, error) {
	if v := s.snapshot.Load(); v != nil {
		if table, ok := v.(*model.TariffTable); ok {
			return table, nil
		}
	}
	return nil, ErrTariffsUnavailable
}

// Bootstrap installs the active table from the database, if one exists.
func (s *TariffService) Bootstrap(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	doc, err := s.repo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("loading active tariff table: %w", err)
	}
	if doc == nil {
		return nil
	}
	table, err := model.NewTariffTable(doc.Records, int64(doc.Version))
	if err != nil {
		return fmt.Errorf("stored tariff table is invalid: %w", err)
	}
	s.install(table)
	log.Info().Int("version", doc.Version).Int("entries", table.Len()).Msg("Tariff table loaded from database")
	return nil
}

// LoadFromFile installs a table from a JSON seed file (an array of tariff
// records, legacy spreadsheet-export keys included). Used when the service
// runs without a database, and as the initial table before the first upload.
func (s *TariffService) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tariff file: %w", err)
	}
	var records []model.TariffRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing tariff file %s: %w", path, err)
	}
	table, err := model.NewTariffTable(records, 1)
	if err != nil {
		return fmt.Errorf("tariff file %s: %w", path, err)
	}
	s.install(table)
	log.Info().Str("path", path).Int("entries", table.Len()).Msg("Tariff table loaded from file")
	return nil
}

// Replace validates the records, persists them as the new active table when a
// repository is configured, and swaps the snapshot. The quote cache is
// cleared after the swap so no stale price survives a tariff change.
func (s *TariffService) Replace(ctx context.Context, records []model.TariffRecord, updatedBy string) (*model.TariffTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate before anything is persisted.
	if _, err := model.NewTariffTable(records, 0); err != nil {
		return nil, err
	}

	version := s.version + 1
	if s.repo != nil {
		doc, err := s.repo.Replace(ctx, records, updatedBy)
		if err != nil {
			return nil, &TariffPersistError{Err: err}
		}
		version = int64(doc.Version)
	}

	table, err := model.NewTariffTable(records, version)
	if err != nil {
		return nil, err
	}

	s.install(table)
	if s.cache != nil {
		s.cache.Clear()
	}
	log.Info().Int64("version", version).Int("entries", table.Len()).Str("updated_by", updatedBy).Msg("Tariff table replaced")
	return table, nil
}

func (s *TariffService) install(table *model.TariffTable) {
	s.snapshot.Store(table)
	s.version = table.Version()
	metrics.UpdateTariffSnapshot(table.Len(), len(table.Regions()), table.Version())
}
