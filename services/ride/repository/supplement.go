package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/services/ride"
	"github.com/spf13/viper"
)

// supplementNamespace seeds ids for catalog entries declared without one
var supplementNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/piresc/taximeter/supplements"))

// SupplementID returns the stable id of a supplement declared only by name
func SupplementID(name string) uuid.UUID {
	return uuid.NewSHA1(supplementNamespace, []byte(strings.ToLower(strings.TrimSpace(name))))
}

// DefaultSupplements is the catalog used when no catalog file is configured
func DefaultSupplements() []models.Supplement {
	return []models.Supplement{
		{ID: SupplementID("Extra baggage"), Name: "Extra baggage", Price: 5.0},
	}
}

type supplementEntry struct {
	ID    string  `mapstructure:"id"`
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
}

type supplementRepo struct {
	catalog []models.Supplement
	byID    map[uuid.UUID]models.Supplement
}

// NewSupplementRepository serves a fixed catalog
func NewSupplementRepository(catalog []models.Supplement) ride.SupplementRepo {
	r := &supplementRepo{
		catalog: append([]models.Supplement{}, catalog...),
		byID:    make(map[uuid.UUID]models.Supplement, len(catalog)),
	}
	for _, s := range catalog {
		r.byID[s.ID] = s
	}
	return r
}

// LoadSupplementRepository reads the catalog from a yaml, json or toml file.
// An empty path yields the default catalog.
func LoadSupplementRepository(path string) (ride.SupplementRepo, error) {
	if path == "" {
		return NewSupplementRepository(DefaultSupplements()), nil
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		return nil, err
	}

	logger.Info("Supplement catalog loaded",
		logger.String("path", path),
		logger.Int("supplements", len(catalog)))

	return NewSupplementRepository(catalog), nil
}

func loadCatalog(path string) ([]models.Supplement, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read supplement catalog: %w", err)
	}

	var entries []supplementEntry
	if err := v.UnmarshalKey("supplements", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode supplement catalog: %w", err)
	}

	catalog := make([]models.Supplement, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("supplement %d has no name", i)
		}
		if e.Price < 0 {
			return nil, fmt.Errorf("supplement %q has a negative price", e.Name)
		}

		id := SupplementID(e.Name)
		if e.ID != "" {
			parsed, err := uuid.Parse(e.ID)
			if err != nil {
				return nil, fmt.Errorf("supplement %q has an invalid id: %w", e.Name, err)
			}
			id = parsed
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate supplement id %s", id)
		}
		seen[id] = true

		catalog = append(catalog, models.Supplement{ID: id, Name: e.Name, Price: e.Price})
	}

	return catalog, nil
}

// GetSupplements returns the catalog in declaration order
func (r *supplementRepo) GetSupplements(ctx context.Context) ([]models.Supplement, error) {
	return append([]models.Supplement{}, r.catalog...), nil
}

// ResolveSupplements maps ids to catalog entries; unknown ids are dropped
func (r *supplementRepo) ResolveSupplements(ctx context.Context, ids []uuid.UUID) ([]models.Supplement, error) {
	resolved := make([]models.Supplement, 0, len(ids))
	for _, id := range ids {
		s, ok := r.byID[id]
		if !ok {
			logger.DebugCtx(ctx, "Ignoring unknown supplement", logger.String("supplement_id", id.String()))
			continue
		}
		resolved = append(resolved, s)
	}
	return resolved, nil
}
