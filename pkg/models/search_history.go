package models

// SearchHistory is one dictionary lookup the user performed
type SearchHistory struct {
	ID         int64  `json:"id" db:"id"`
	Spelling   string `json:"spelling" db:"spelling"`
	SearchDate string `json:"search_date" db:"search_date"` // YYYY-MM-DD
}
