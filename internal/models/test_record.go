package models

import "time"

// TestRecord is the outcome of one finished test. Accuracy is a percentage in
// [0, 100]; Duration is in seconds.
type TestRecord struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Accuracy     float64   `json:"accuracy"`
	Duration     float64   `json:"duration"`
	Total        int       `json:"total"`
	Correct      int       `json:"correct"`
	KanaType     string    `json:"kanaType,omitempty"`
	KanaCategory string    `json:"kanaCategory,omitempty"`
}

const (
	SortByDate     = "date"
	SortByAccuracy = "accuracy"
	SortByDuration = "duration"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type RecordSort struct {
	By    string
	Order string
}
