package mdblist

import (
	"strconv"
	"strings"
)

// Result mirrors one entry of the search payload.
type Result struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
	Type  string  `json:"type"`
	Year  int     `json:"year"`
}

// SearchResponse is the envelope returned by the search endpoint. Fields other
// than search are ignored.
type SearchResponse struct {
	Search []Result `json:"search"`
}

// DisplayYear returns the year as text, or an empty string when unknown.
func (r Result) DisplayYear() string {
	if r.Year <= 0 {
		return ""
	}
	return strconv.Itoa(r.Year)
}

// DisplayScore formats the score without trailing zeros ("8.7", "73").
func (r Result) DisplayScore() string {
	return strconv.FormatFloat(r.Score, 'f', -1, 64)
}

// DisplayType returns the upper-cased category label, e.g. "MOVIE".
func (r Result) DisplayType() string {
	return strings.ToUpper(strings.TrimSpace(r.Type))
}
