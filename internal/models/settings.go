package models

const (
	KanaTypeHiragana = "hiragana"
	KanaTypeKatakana = "katakana"
	KanaTypeBoth     = "both"

	CategorySeion  = "seion"
	CategoryDakuon = "dakuon"
	CategoryYouon  = "youon"
	CategoryAll    = "all"

	PlayOrderSequential = "sequential"
	PlayOrderRandom     = "random"
)

type Settings struct {
	KanaType             string `json:"kanaType" toml:"kana-type"`
	KanaCategory         string `json:"kanaCategory" toml:"kana-category"`
	PlayOrder            string `json:"playOrder" toml:"play-order"`
	PlayInterval         int    `json:"playInterval" toml:"play-interval"`
	RequiredCorrectCount int    `json:"requiredCorrectCount" toml:"required-correct-count"`
}

// DefaultSettings is the value seeded into an empty store.
func DefaultSettings() Settings {
	return Settings{
		KanaType:             KanaTypeHiragana,
		KanaCategory:         CategorySeion,
		PlayOrder:            PlayOrderSequential,
		PlayInterval:         3,
		RequiredCorrectCount: 3,
	}
}
