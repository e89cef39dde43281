package htmldoc

import (
	"reflect"
	"testing"

	"github.com/epsilon003/Illegally-Blonde/internal/extract"
)

const casePage = `
<html><body>
<div class="container">
<table class="case-details">
<tr><td>Petitioner   Name</td><td> John   Doe </td></tr>
<tr><td>Respondent Name</td><td>Jane Smith</td></tr>
<tr><td>Filing Date</td><td>15/03/2024</td></tr>
<tr><td>Case Status</td><td>Pending</td></tr>
</table>
<a href="order_1.pdf">Download Order</a>
<a href="index.html">Home</a>
<a>No href anchor</a>
</div>
</body></html>`

func TestParseRows(t *testing.T) {
	doc, err := Parse(casePage)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rows := doc.Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	want := []string{"Petitioner Name", "John Doe"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("expected first row %v, got %v", want, rows[0])
	}
}

func TestParseLinks(t *testing.T) {
	doc, err := Parse(casePage)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	links := doc.Links()
	want := []extract.Link{
		{Text: "Download Order", Href: "order_1.pdf"},
		{Text: "Home", Href: "index.html"},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("expected %v, got %v", want, links)
	}
}

func TestParseMarkup(t *testing.T) {
	doc, err := Parse(casePage)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.Markup() != casePage {
		t.Error("expected raw markup to round-trip unchanged")
	}
}

func TestTablesWithMarker(t *testing.T) {
	page := `
<table class="causelist-table">
<tr><th>Case Number</th><th>Parties</th><th>Court Room</th><th>Time</th></tr>
<tr><td>CS/1/2024</td><td>A vs B</td><td>Room 1</td><td>10:00 AM</td></tr>
</table>
<table class="other">
<tr><td>ignored</td></tr>
</table>`

	doc, err := Parse(page)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tables := doc.TablesWithMarker("causelist-table")
	if len(tables) != 1 {
		t.Fatalf("expected 1 marked table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tables[0].Rows))
	}

	want := []string{"CS/1/2024", "A vs B", "Room 1", "10:00 AM"}
	if !reflect.DeepEqual(tables[0].Rows[1], want) {
		t.Errorf("expected %v, got %v", want, tables[0].Rows[1])
	}
}

// End-to-end over a realistic result page: parse then extract.
func TestExtractCaseRecordFromParsedPage(t *testing.T) {
	doc, err := Parse(casePage)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	record := extract.ExtractCaseRecord(doc)

	if record.Petitioner != "John Doe" {
		t.Errorf("expected petitioner John Doe, got %q", record.Petitioner)
	}
	if record.Respondent != "Jane Smith" {
		t.Errorf("expected respondent Jane Smith, got %q", record.Respondent)
	}
	if record.FilingDate != "2024-03-15" {
		t.Errorf("expected filing date 2024-03-15, got %q", record.FilingDate)
	}
	if record.CaseStatus != "Pending" {
		t.Errorf("expected status Pending, got %q", record.CaseStatus)
	}
	if record.NextHearing != "" {
		t.Errorf("expected next hearing absent, got %q", record.NextHearing)
	}

	wantLinks := []extract.JudgmentLink{{Text: "Download Order", Href: "order_1.pdf"}}
	if !reflect.DeepEqual(record.Judgments, wantLinks) {
		t.Errorf("expected judgments %v, got %v", wantLinks, record.Judgments)
	}
}
