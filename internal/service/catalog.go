package service

import (
	"log/slog"
	"sync"

	"github.com/catalens/catalens/internal/catalog"
	"github.com/catalens/catalens/internal/config"
	"github.com/catalens/catalens/internal/store"
)

// CatalogService owns the load-once catalog lifecycle: the table is built
// on the first Load call and every later call returns the same table. The
// source is assumed immutable for the process lifetime, so there is no
// invalidation.
type CatalogService struct {
	cfg       *config.Config
	logger    *slog.Logger
	snapshots *store.SnapshotStore // nil when the snapshot cache is disabled

	mu    sync.Mutex
	table *catalog.Table
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cfg *config.Config, logger *slog.Logger, snapshots *store.SnapshotStore) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		cfg:       cfg,
		logger:    logger,
		snapshots: snapshots,
	}
}

// Load returns the catalog table, building it on first use. Snapshot hit
// beats CSV parse; both produce the same enriched records.
func (s *CatalogService) Load() (*catalog.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table != nil {
		return s.table, nil
	}

	path := s.cfg.Data.File

	var digest string
	if s.snapshots != nil {
		d, err := store.DigestFile(path)
		if err == nil {
			digest = d
			if records, ok := s.snapshots.GetSnapshot(digest); ok {
				s.logger.Info("catalog restored from snapshot",
					"path", path, "records", len(records))
				s.table = catalog.FromRecords(records)
				return s.table, nil
			}
		}
	}

	table, err := catalog.Load(path)
	if err != nil {
		s.logger.Error("catalog load failed", "path", path, "error", err)
		return nil, err
	}

	stats := table.Stats()
	s.logger.Info("catalog loaded",
		"path", path,
		"rows", stats.Rows,
		"records", table.Len(),
		"duplicates_dropped", stats.Duplicates)
	if stats.MalformedDates > 0 {
		s.logger.Warn("rows retained without year/month after unparsable date_added",
			"count", stats.MalformedDates)
	}
	if stats.SkippedTypes > 0 {
		s.logger.Warn("rows dropped for unrecognized type value",
			"count", stats.SkippedTypes)
	}

	if s.snapshots != nil && digest != "" {
		if err := s.snapshots.SaveSnapshot(digest, table.Records()); err != nil {
			s.logger.Warn("failed to save catalog snapshot", "error", err)
		}
	}

	s.table = table
	return table, nil
}
