package models

// HeartRateSample is a single decoded heart-rate measurement
type HeartRateSample struct {
	TS  string `json:"ts"` // RFC3339 timestamp
	BPM int    `json:"bpm"`
}
