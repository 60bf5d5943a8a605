package models

import "time"

type MistakeEntry struct {
	Kana               KanaItem  `json:"kana"`
	ConsecutiveCorrect int       `json:"consecutiveCorrect"`
	CreatedAt          time.Time `json:"createdAt"`
}
