package database

import (
	"time"

	"gorm.io/gorm"
)

// Query records one case lookup: the four identity fields, the derived
// query hash, the raw portal response and the parsed record as JSON.
type Query struct {
	gorm.Model
	CaseType     string    `json:"case_type"`
	CaseNumber   string    `json:"case_number"`
	Year         int       `json:"year"`
	CourtType    string    `json:"court_type"`
	CourtName    string    `json:"court_name"`
	QueryHash    string    `json:"query_hash" gorm:"index"`
	RawResponse  string    `json:"raw_response" gorm:"type:text"`
	ParsedData   string    `json:"parsed_data" gorm:"type:text"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
	QueryTime    time.Time `json:"query_time"`
	IPAddress    string    `json:"ip_address"`
}

// Judgment records a downloaded judgment PDF tied to the query it came from.
type Judgment struct {
	gorm.Model
	QueryID      uint      `json:"query_id"`
	Filename     string    `json:"filename"`
	FilePath     string    `json:"file_path"`
	SourceURL    string    `json:"source_url"`
	DownloadTime time.Time `json:"download_time"`
}

// CauseListFetch records one cause-list snapshot for a court and date, with
// the extracted entries as JSON.
type CauseListFetch struct {
	gorm.Model
	CourtType string    `json:"court_type"`
	CourtName string    `json:"court_name"`
	ListDate  string    `json:"list_date"`
	Entries   string    `json:"entries" gorm:"type:text"`
	CaseCount int       `json:"case_count"`
	FetchTime time.Time `json:"fetch_time"`
}

func (Query) TableName() string {
	return "queries"
}

func (Judgment) TableName() string {
	return "judgments"
}

func (CauseListFetch) TableName() string {
	return "cause_list_fetches"
}
