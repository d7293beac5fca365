// Package types contains common types used across the application
package types

// Row is a scored, ranked projection of a company record. Rows are derived
// on demand and never stored.
type Row struct {
	Rank   int            `json:"rank"`
	Name   string         `json:"name"`
	Score  float64        `json:"score"`
	Values map[string]int `json:"values"`
}
