package models

// Course represents a scraped or imported course listing.
// Rows are created by the ingestion side; this service only reads them.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
	ECTS        *int    `json:"ects,omitempty" db:"ects"`               // Nullable
	Professor   *string `json:"professor,omitempty" db:"professor"`     // Nullable
	Link        *string `json:"link,omitempty" db:"link"`               // Nullable
}
