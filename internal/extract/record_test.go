package extract

import (
	"reflect"
	"testing"
)

// stubDoc is a canned document for exercising the extractors without a
// parser.
type stubDoc struct {
	rows   [][]string
	tables map[string][]Table
	links  []Link
	markup string
}

func (d stubDoc) Rows() [][]string                      { return d.rows }
func (d stubDoc) TablesWithMarker(marker string) []Table { return d.tables[marker] }
func (d stubDoc) Links() []Link                          { return d.links }
func (d stubDoc) Markup() string                         { return d.markup }

func TestExtractCaseRecord(t *testing.T) {
	doc := stubDoc{rows: [][]string{
		{"Petitioner Name", "John Doe"},
		{"Respondent Name", "Jane Smith"},
		{"Case Status", "Pending"},
	}}

	record := ExtractCaseRecord(doc)

	want := &CaseRecord{
		Petitioner: "John Doe",
		Respondent: "Jane Smith",
		CaseStatus: "Pending",
		Judgments:  []JudgmentLink{},
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("expected %+v, got %+v", want, record)
	}
}

func TestExtractCaseRecordLabelVariants(t *testing.T) {
	tests := []struct {
		name  string
		row   []string
		check func(*CaseRecord) (string, string)
	}{
		{
			name:  "plaintiff maps to petitioner",
			row:   []string{"Plaintiff", "ACME Corp"},
			check: func(r *CaseRecord) (string, string) { return r.Petitioner, "ACME Corp" },
		},
		{
			name:  "defendant maps to respondent",
			row:   []string{"Defendant", "John Roe"},
			check: func(r *CaseRecord) (string, string) { return r.Respondent, "John Roe" },
		},
		{
			name:  "filing date normalized",
			row:   []string{"Filing Date", "15/03/2024"},
			check: func(r *CaseRecord) (string, string) { return r.FilingDate, "2024-03-15" },
		},
		{
			name:  "next hearing date normalized",
			row:   []string{"Next Hearing Date", "01/04/2024"},
			check: func(r *CaseRecord) (string, string) { return r.NextHearing, "2024-04-01" },
		},
		{
			name:  "next date alone maps to next hearing",
			row:   []string{"Next Date", "02/04/2024"},
			check: func(r *CaseRecord) (string, string) { return r.NextHearing, "2024-04-02" },
		},
		{
			name:  "stage of case with status keyword",
			row:   []string{"Case Status / Stage", "Disposed"},
			check: func(r *CaseRecord) (string, string) { return r.CaseStatus, "Disposed" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ExtractCaseRecord(stubDoc{rows: [][]string{tt.row}})
			got, want := tt.check(record)
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestExtractCaseRecordLastRowWins(t *testing.T) {
	doc := stubDoc{rows: [][]string{
		{"Case Status", "Pending"},
		{"Case Status", "Disposed"},
	}}

	record := ExtractCaseRecord(doc)
	if record.CaseStatus != "Disposed" {
		t.Errorf("expected last matching row to win, got %q", record.CaseStatus)
	}
}

func TestExtractCaseRecordSkipsMalformedRows(t *testing.T) {
	doc := stubDoc{rows: [][]string{
		{},
		{"Single Cell"},
		{"Unrelated Label", "ignored"},
		{"Petitioner", "John Doe"},
	}}

	record := ExtractCaseRecord(doc)

	if record.Petitioner != "John Doe" {
		t.Errorf("expected petitioner %q, got %q", "John Doe", record.Petitioner)
	}
	if record.Respondent != "" || record.FilingDate != "" || record.NextHearing != "" || record.CaseStatus != "" {
		t.Errorf("expected remaining fields absent, got %+v", record)
	}
}

func TestExtractCaseRecordEmptyDocument(t *testing.T) {
	record := ExtractCaseRecord(stubDoc{})

	if !reflect.DeepEqual(record, &CaseRecord{Judgments: []JudgmentLink{}}) {
		t.Errorf("expected empty record, got %+v", record)
	}
}

func TestExtractJudgmentLinks(t *testing.T) {
	doc := stubDoc{links: []Link{
		{Text: "Download Order", Href: "x.pdf"},
		{Text: "Home", Href: "index.html"},
		{Text: "Final Judgment", Href: "/download?id=42"},
		{Text: "Judgment", Href: "about.html"},
		{Text: "Sitemap", Href: "map.pdf"},
	}}

	links := ExtractJudgmentLinks(doc)

	want := []JudgmentLink{
		{Text: "Download Order", Href: "x.pdf"},
		{Text: "Final Judgment", Href: "/download?id=42"},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("expected %+v, got %+v", want, links)
	}
}

func TestExtractJudgmentLinksKeepsDuplicates(t *testing.T) {
	link := Link{Text: "Download Order", Href: "same.pdf"}
	doc := stubDoc{links: []Link{link, link}}

	links := ExtractJudgmentLinks(doc)
	if len(links) != 2 {
		t.Errorf("expected duplicates preserved, got %d links", len(links))
	}
}
