package models

// Question is one multiple-choice prompt of a test.
type Question struct {
	Kana    KanaItem   `json:"kana"`
	Options []KanaItem `json:"options"`
}

// Answer is the learner's reply to a Question.
type Answer struct {
	Kana   KanaItem `json:"kana"`
	Chosen KanaItem `json:"chosen"`
}

// Correct reports whether the chosen option matches the prompt by romaji.
func (a Answer) Correct() bool {
	return a.Chosen.Romaji == a.Kana.Romaji
}
