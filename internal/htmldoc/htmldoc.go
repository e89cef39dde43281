// Package htmldoc adapts parsed HTML to the document model the extractors
// consume, keeping the parser dependency out of the extraction core.
package htmldoc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/epsilon003/Illegally-Blonde/internal/extract"
)

// Doc wraps a goquery document and implements extract.Document.
type Doc struct {
	doc *goquery.Document
	raw string
}

// Parse builds a document from raw page markup.
func Parse(markup string) (*Doc, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return &Doc{doc: doc, raw: markup}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func cellText(sel *goquery.Selection) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(sel.Text(), " "))
}

// Rows returns every table row in the document, each row the text of its
// td/th cells.
func (d *Doc) Rows() [][]string {
	var rows [][]string
	d.doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cellText(cell))
		})
		rows = append(rows, cells)
	})
	return rows
}

// TablesWithMarker returns the tables whose class attribute carries the
// given marker.
func (d *Doc) TablesWithMarker(marker string) []extract.Table {
	var tables []extract.Table
	d.doc.Find("table." + marker).Each(func(_ int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, cellText(cell))
			})
			rows = append(rows, cells)
		})
		tables = append(tables, extract.Table{Rows: rows})
	})
	return tables
}

// Links returns every anchor with an href, in document order.
func (d *Doc) Links() []extract.Link {
	var links []extract.Link
	d.doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		links = append(links, extract.Link{
			Text: cellText(a),
			Href: href,
		})
	})
	return links
}

// Markup returns the raw page markup the document was parsed from.
func (d *Doc) Markup() string {
	return d.raw
}
