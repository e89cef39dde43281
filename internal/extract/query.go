package extract

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// CourtType selects which portal family a query targets.
type CourtType string

const (
	HighCourt     CourtType = "high_court"
	DistrictCourt CourtType = "district_court"
)

// Valid reports whether the court type is one of the known portal families.
func (t CourtType) Valid() bool {
	return t == HighCourt || t == DistrictCourt
}

// CaseQuery holds the validated inputs for one case lookup. It is built per
// request, drives navigation and identity, and is not retained afterwards.
type CaseQuery struct {
	CaseType   string    `json:"case_type"`
	CaseNumber string    `json:"case_number"`
	Year       int       `json:"year"`
	CourtType  CourtType `json:"court_type"`
	CourtName  string    `json:"court_name"`
}

// Hash returns the query's deduplication identity.
func (q CaseQuery) Hash() string {
	return GenerateQueryHash(q.CaseType, q.CaseNumber, q.Year, q.CourtName)
}

// GenerateQueryHash derives a stable digest over the four query-defining
// fields, lower-cased and joined with underscores. Used for deduplication
// hints, not integrity; md5 matches what older deployments stored.
func GenerateQueryHash(caseType, caseNumber string, year int, courtName string) string {
	joined := strings.ToLower(fmt.Sprintf("%s_%s_%d_%s", caseType, caseNumber, year, courtName))
	sum := md5.Sum([]byte(joined))
	return hex.EncodeToString(sum[:])
}
