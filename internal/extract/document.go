package extract

// Link is a hyperlink element with its visible text and target reference.
type Link struct {
	Text string
	Href string
}

// Table is a single table's rows, each row the extracted text of its cells.
type Table struct {
	Rows [][]string
}

// Document is the narrow view of a fetched page that the extractors work
// against. It is implemented by an adapter around an HTML parser; the
// extractors never touch the parser directly.
type Document interface {
	// Rows returns every table row in the document in order.
	Rows() [][]string
	// TablesWithMarker returns the tables carrying the given marker
	// (a CSS class on eCourts pages).
	TablesWithMarker(marker string) []Table
	// Links returns all hyperlink elements in document order.
	Links() []Link
	// Markup returns the full raw markup of the page.
	Markup() string
}
