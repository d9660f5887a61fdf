package models

// Word represents a single dictionary entry
type Word struct {
	ID       int64  `json:"id" db:"id"`
	Spelling string `json:"spelling" db:"spelling"`
	Ipa      string `json:"ipa" db:"ipa"`
	Cn       string `json:"cn" db:"cn"`               // JSON: part of speech -> explanations
	En       string `json:"en" db:"en"`               // JSON: part of speech -> explanations
	PronName string `json:"pron_name" db:"pron_name"` // pronunciation asset name
}
