package database

import (
	"fmt"

	"github.com/example/landing/internal/cache"
	"github.com/example/landing/pkg/models"
)

// HelpRepository handles lookups of the in-app help, cached per query
type HelpRepository struct {
	catalogCache *cache.Cache[struct{}, []models.HelpCatalog]
	helpCache    *cache.Cache[int64, []models.Help]
}

// NewHelpRepository creates a new repository instance
func NewHelpRepository() *HelpRepository {
	return &HelpRepository{
		catalogCache: cache.New(func(struct{}) ([]models.HelpCatalog, error) {
			var list []models.HelpCatalog
			err := DB.Select(&list, "SELECT * FROM help_catalog ORDER BY id")
			if err != nil {
				return nil, fmt.Errorf("failed to get help catalog list: %v", err)
			}
			return list, nil
		}),
		helpCache: cache.New(func(catalogID int64) ([]models.Help, error) {
			var list []models.Help
			err := DB.Select(&list, "SELECT * FROM help WHERE catalog_id = $1 ORDER BY id", catalogID)
			if err != nil {
				return nil, fmt.Errorf("failed to get help list: %v", err)
			}
			return list, nil
		}),
	}
}

// GetHelpCatalogList returns all help catalogs, cached after the first call
func (r *HelpRepository) GetHelpCatalogList() ([]models.HelpCatalog, error) {
	return r.catalogCache.Get(struct{}{})
}

// GetHelpList returns the help entries of one catalog, cached per catalog
func (r *HelpRepository) GetHelpList(catalogID int64) ([]models.Help, error) {
	return r.helpCache.Get(catalogID)
}

// Invalidate drops both caches
func (r *HelpRepository) Invalidate() {
	r.catalogCache.Invalidate()
	r.helpCache.Invalidate()
}
