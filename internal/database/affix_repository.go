package database

import (
	"fmt"

	"github.com/example/landing/internal/cache"
	"github.com/example/landing/pkg/models"
)

// AffixRepository handles lookups of the affix reference, cached per query
type AffixRepository struct {
	catalogCache *cache.Cache[struct{}, []models.AffixCatalog]
	affixCache   *cache.Cache[int64, []models.Affix]
}

// NewAffixRepository creates a new repository instance
func NewAffixRepository() *AffixRepository {
	return &AffixRepository{
		catalogCache: cache.New(func(struct{}) ([]models.AffixCatalog, error) {
			var list []models.AffixCatalog
			err := DB.Select(&list, "SELECT * FROM affix_catalog ORDER BY id")
			if err != nil {
				return nil, fmt.Errorf("failed to get affix catalog list: %v", err)
			}
			return list, nil
		}),
		affixCache: cache.New(func(catalogID int64) ([]models.Affix, error) {
			var list []models.Affix
			err := DB.Select(&list, "SELECT * FROM affix WHERE catalog_id = $1 ORDER BY id", catalogID)
			if err != nil {
				return nil, fmt.Errorf("failed to get affix list: %v", err)
			}
			return list, nil
		}),
	}
}

// GetAffixCatalogList returns all affix catalogs, cached after the first call
func (r *AffixRepository) GetAffixCatalogList() ([]models.AffixCatalog, error) {
	return r.catalogCache.Get(struct{}{})
}

// GetAffixList returns the affixes of one catalog, cached per catalog
func (r *AffixRepository) GetAffixList(catalogID int64) ([]models.Affix, error) {
	return r.affixCache.Get(catalogID)
}

// Invalidate drops both caches
func (r *AffixRepository) Invalidate() {
	r.catalogCache.Invalidate()
	r.affixCache.Invalidate()
}
