package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalens/catalens/internal/config"
	"github.com/catalens/catalens/internal/domain"
	"github.com/catalens/catalens/internal/log"
	"github.com/catalens/catalens/internal/store"
)

const testCSV = "show_id,type,title,director,country,date_added,rating,listed_in\n" +
	`s1,Movie,Inferno,,United States,5/1/2019,PG-13,"Drama, Comedy"` + "\n" +
	"s2,TV Show,Dark Minds,Unknown,Japan,,TV-MA,Drama\n"

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0644))
	return path
}

func testConfig(dataFile string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Data.File = dataFile
	return cfg
}

func TestLoadOnce(t *testing.T) {
	svc := NewCatalogService(testConfig(writeTestCSV(t)), log.NullLogger(), nil)

	first, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())

	second, err := svc.Load()
	require.NoError(t, err)
	assert.Same(t, first, second, "the table is built once per process")
}

func TestLoadMissingSource(t *testing.T) {
	svc := NewCatalogService(testConfig("/nonexistent/catalog.csv"), log.NullLogger(), nil)

	_, err := svc.Load()
	require.Error(t, err)

	var loadErr *domain.DataLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadPopulatesSnapshot(t *testing.T) {
	path := writeTestCSV(t)

	snapshots, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer snapshots.Close()

	svc := NewCatalogService(testConfig(path), log.NullLogger(), snapshots)
	table, err := svc.Load()
	require.NoError(t, err)

	digest, err := store.DigestFile(path)
	require.NoError(t, err)

	records, ok := snapshots.GetSnapshot(digest)
	require.True(t, ok)
	assert.Len(t, records, table.Len())
}

func TestLoadRestoresFromSnapshot(t *testing.T) {
	path := writeTestCSV(t)
	cacheDir := t.TempDir()

	snapshots, err := store.Open(cacheDir)
	require.NoError(t, err)

	// First service populates the snapshot
	first := NewCatalogService(testConfig(path), log.NullLogger(), snapshots)
	firstTable, err := first.Load()
	require.NoError(t, err)
	require.NoError(t, snapshots.Close())

	// A fresh process restores from it and sees the same aggregates
	reopened, err := store.Open(cacheDir)
	require.NoError(t, err)
	defer reopened.Close()

	second := NewCatalogService(testConfig(path), log.NullLogger(), reopened)
	secondTable, err := second.Load()
	require.NoError(t, err)

	assert.Equal(t, firstTable.Len(), secondTable.Len())
	assert.Equal(t, firstTable.GenreCounts(), secondTable.GenreCounts())
	assert.Equal(t, firstTable.CountByYear(), secondTable.CountByYear())
	assert.Equal(t, firstTable.CountByType(), secondTable.CountByType())
}
