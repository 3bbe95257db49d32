package models

// Summary is one text backend's answer to the merged POI prompt.
type Summary struct {
	Provider string `json:"provider"`
	Text     string `json:"text"`
}

// SummaryPair is the result of the POI pipeline: one synthesis per text backend.
type SummaryPair struct {
	Primary   Summary `json:"primary"`
	Secondary Summary `json:"secondary"`
}
