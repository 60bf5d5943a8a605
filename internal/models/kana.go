package models

// KanaItem is a single entry of the reference table. Two items are the same
// kana when both the script form and the romaji match.
type KanaItem struct {
	Kana   string `json:"kana"`
	Romaji string `json:"romaji"`
}

// Equal reports whether k and other identify the same kana.
func (k KanaItem) Equal(other KanaItem) bool {
	return k.Kana == other.Kana && k.Romaji == other.Romaji
}

func (k KanaItem) String() string {
	return k.Kana + "/" + k.Romaji
}
