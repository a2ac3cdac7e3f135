package models

import "database/sql"

// ScoreRow is one persisted (video, method, dimension) score. Score is
// NULL when normalization declared the value unavailable; the row is
// still stored so sample counts stay honest.
type ScoreRow struct {
	VideoID   string
	Method    string
	Dimension string
	Score     sql.NullFloat64
	RunNumber int
}

// GoldVideo is a gold-standard video with its cached transcript.
type GoldVideo struct {
	VideoID    string
	Transcript string
}

// MethodGoldPair joins one model score with the human rating for the
// same video and dimension.
type MethodGoldPair struct {
	Method     string
	Dimension  string
	VideoID    string
	ModelScore sql.NullFloat64
	HumanScore float64
}
