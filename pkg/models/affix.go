package models

// AffixType groups affix catalogs by kind
type AffixType string

const (
	// AffixTypePrefix marks prefix catalogs
	AffixTypePrefix AffixType = "PREFIX"
	// AffixTypeSuffix marks suffix catalogs
	AffixTypeSuffix AffixType = "SUFFIX"
	// AffixTypeMixed marks catalogs that combine both
	AffixTypeMixed AffixType = "MIXED"
)

// AffixCatalog is one section of the affix reference
type AffixCatalog struct {
	ID          int64     `json:"id" db:"id"`
	Type        AffixType `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
}

// Affix is a single entry within an affix catalog
type Affix struct {
	ID        int64  `json:"id" db:"id"`
	CatalogID int64  `json:"catalog_id" db:"catalog_id"`
	Text      string `json:"text" db:"text"`
	Meaning   string `json:"meaning" db:"meaning"`
	Example   string `json:"example" db:"example"`
}
