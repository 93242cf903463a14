package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSupplementRepository_Default(t *testing.T) {
	repo, err := LoadSupplementRepository("")
	require.NoError(t, err)

	catalog, err := repo.GetSupplements(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Extra baggage", catalog[0].Name)
	assert.Equal(t, 5.0, catalog[0].Price)
	assert.Equal(t, SupplementID("extra baggage"), catalog[0].ID)
}

func TestLoadSupplementRepository_YAML(t *testing.T) {
	petID := uuid.New()
	path := writeCatalog(t, "supplements.yaml", `
supplements:
  - name: Extra baggage
    price: 5
  - id: `+petID.String()+`
    name: Pet
    price: 2.5
`)

	repo, err := LoadSupplementRepository(path)
	require.NoError(t, err)

	catalog, err := repo.GetSupplements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Supplement{
		{ID: SupplementID("Extra baggage"), Name: "Extra baggage", Price: 5},
		{ID: petID, Name: "Pet", Price: 2.5},
	}, catalog)
}

func TestLoadSupplementRepository_JSON(t *testing.T) {
	path := writeCatalog(t, "supplements.json", `{"supplements":[{"name":"Airport","price":3}]}`)

	repo, err := LoadSupplementRepository(path)
	require.NoError(t, err)

	catalog, _ := repo.GetSupplements(context.Background())
	require.Len(t, catalog, 1)
	assert.Equal(t, "Airport", catalog[0].Name)
}

func TestLoadSupplementRepository_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative price", content: "supplements:\n  - name: Pet\n    price: -1\n"},
		{name: "missing name", content: "supplements:\n  - price: 1\n"},
		{name: "bad id", content: "supplements:\n  - id: nope\n    name: Pet\n    price: 1\n"},
		{name: "duplicate", content: "supplements:\n  - name: Pet\n    price: 1\n  - name: pet\n    price: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSupplementRepository(writeCatalog(t, "supplements.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadSupplementRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveSupplements_DropsUnknownKeepsDuplicates(t *testing.T) {
	baggage := models.Supplement{ID: uuid.New(), Name: "Extra baggage", Price: 5}
	repo := NewSupplementRepository([]models.Supplement{baggage})

	resolved, err := repo.ResolveSupplements(context.Background(), []uuid.UUID{baggage.ID, uuid.New(), baggage.ID})

	require.NoError(t, err)
	assert.Equal(t, []models.Supplement{baggage, baggage}, resolved)
}
