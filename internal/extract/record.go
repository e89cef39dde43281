package extract

import "strings"

// JudgmentLink points at a downloadable judgment or order document.
type JudgmentLink struct {
	Text string `json:"text"`
	Href string `json:"url"`
}

// CaseRecord is a best-effort snapshot of a case-status page. Fields the
// page did not yield stay empty; partial extraction is the expected outcome,
// not an error.
type CaseRecord struct {
	Petitioner  string         `json:"petitioner"`
	Respondent  string         `json:"respondent"`
	FilingDate  string         `json:"filing_date"`
	NextHearing string         `json:"next_hearing"`
	CaseStatus  string         `json:"case_status"`
	Judgments   []JudgmentLink `json:"judgments"`
}

// ExtractCaseRecord scans every label/value table row in the document and
// assembles a case record. Labels are matched by substring, first matching
// rule wins per row, and a later row overwrites an earlier one for the same
// field. Rows with fewer than two cells are skipped; the function never
// fails on malformed structure.
func ExtractCaseRecord(doc Document) *CaseRecord {
	record := &CaseRecord{Judgments: []JudgmentLink{}}

	for _, row := range doc.Rows() {
		if len(row) < 2 {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])

		switch {
		case strings.Contains(label, "petitioner") || strings.Contains(label, "plaintiff"):
			record.Petitioner = CleanText(value)
		case strings.Contains(label, "respondent") || strings.Contains(label, "defendant"):
			record.Respondent = CleanText(value)
		case strings.Contains(label, "filing") && strings.Contains(label, "date"):
			record.FilingDate = FormatDate(CleanText(value))
		case strings.Contains(label, "next") && (strings.Contains(label, "hearing") || strings.Contains(label, "date")):
			record.NextHearing = FormatDate(CleanText(value))
		case strings.Contains(label, "status"):
			record.CaseStatus = CleanText(value)
		}
	}

	record.Judgments = ExtractJudgmentLinks(doc)

	return record
}

// Keywords identifying judgment links by visible text and by target.
var (
	judgmentTextWords = []string{"judgment", "order", "download"}
	judgmentHrefWords = []string{"pdf", "download"}
)

// ExtractJudgmentLinks classifies the document's hyperlinks, keeping those
// whose visible text mentions a judgment, order or download and whose target
// looks like a PDF or download endpoint. Document order is preserved and
// duplicates are kept.
func ExtractJudgmentLinks(doc Document) []JudgmentLink {
	links := []JudgmentLink{}

	for _, link := range doc.Links() {
		text := strings.ToLower(link.Text)
		href := strings.ToLower(link.Href)

		if containsAny(text, judgmentTextWords) && containsAny(href, judgmentHrefWords) {
			links = append(links, JudgmentLink{
				Text: strings.TrimSpace(link.Text),
				Href: link.Href,
			})
		}
	}

	return links
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}
