package extract

import "sort"

// CauseListMarker identifies cause-list tables on eCourts pages.
const CauseListMarker = "causelist-table"

// CauseListEntry is one hearing scheduled for a court and date. Time is kept
// in the court's display format, not parsed.
type CauseListEntry struct {
	CaseNumber string `json:"case_number"`
	Parties    string `json:"parties"`
	CourtRoom  string `json:"court_room"`
	Time       string `json:"time"`
}

// ExtractCauseList scans every cause-list table, skipping each table's
// header row and reading case number, parties, court room and time from the
// first four cells. Entries are sorted by the literal time string ascending:
// a lexical comparison on the display value, so "10:00 AM" sorts before
// "9:00 AM" unless the portal zero-pads hours. Returns an empty slice when
// no cause-list tables are present.
func ExtractCauseList(doc Document) []CauseListEntry {
	entries := []CauseListEntry{}

	for _, table := range doc.TablesWithMarker(CauseListMarker) {
		if len(table.Rows) < 2 {
			continue
		}
		for _, row := range table.Rows[1:] {
			if len(row) < 4 {
				continue
			}
			entries = append(entries, CauseListEntry{
				CaseNumber: row[0],
				Parties:    row[1],
				CourtRoom:  row[2],
				Time:       row[3],
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return entries
}
