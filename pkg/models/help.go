package models

// HelpCatalog is one section of the in-app help
type HelpCatalog struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Help is a single help entry within a catalog
type Help struct {
	ID        int64  `json:"id" db:"id"`
	CatalogID int64  `json:"catalog_id" db:"catalog_id"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
}
