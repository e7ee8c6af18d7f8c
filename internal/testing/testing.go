// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/songday/internal/models"
	"github.com/desertthunder/songday/internal/shared"
)

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	Tracks   []models.Track
	AuthErr  error
	FetchErr error
	Calls    int
}

func (m *MockCatalog) Authenticate(ctx context.Context) error {
	return m.AuthErr
}

func (m *MockCatalog) PlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	m.Calls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.Tracks, nil
}

func (m *MockCatalog) Name() string { return "mock-catalog" }

// MockEnricher is a test double for [services.Enricher]
//
// Links is keyed by track title; titles without an entry return an error, which
// callers must treat as an absent link.
type MockEnricher struct {
	Links map[string]string
	Err   error
	Calls int
}

func (m *MockEnricher) FindVideoLink(ctx context.Context, title, artist string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if link, ok := m.Links[title]; ok {
		return link, nil
	}
	return "", errors.New("no match")
}

func (m *MockEnricher) Name() string { return "mock-enricher" }

// NewTestDB opens an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Every pooled connection to :memory: would open a fresh database.
	db.SetMaxOpenConns(1)

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
