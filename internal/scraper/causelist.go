package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/extract"
	"github.com/epsilon003/Illegally-Blonde/internal/htmldoc"
)

// FetchCauseList navigates the Daily Cause List flow for a court and date
// and extracts the scheduled hearings, sorted by their display time. The raw
// page HTML is returned for audit storage.
func (s *Scraper) FetchCauseList(ctx context.Context, courtType extract.CourtType, courtName, date string) ([]extract.CauseListEntry, string, error) {
	page, err := s.newPage(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create page: %w", err)
	}
	defer page.MustClose()

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.ScraperTimeout)
	defer cancel()
	page = page.Context(fetchCtx)

	courtURL := s.baseURL(courtType)
	s.logger.Info("Navigating to cause list", "url", courtURL, "court", courtName, "date", date)

	if err := page.Navigate(courtURL); err != nil {
		return nil, "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		s.logger.Warn("Page load timed out, continuing", "error", err)
	}
	time.Sleep(2 * time.Second)

	if link := s.findLinkByText(page, "Daily Cause List"); link != nil {
		link.MustClick()
		time.Sleep(1 * time.Second)
	}

	dateInput, err := page.Element("#causeListDate")
	if err != nil {
		return nil, s.snapshot(page), fmt.Errorf("cause list date input not found: %w", err)
	}
	dateInput.MustInput(date)

	searchBtn, err := page.Element("#searchCauseList")
	if err != nil {
		return nil, s.snapshot(page), fmt.Errorf("cause list search button not found: %w", err)
	}
	searchBtn.MustClick()
	s.logger.Debug("Submitted cause list search", "date", date)
	time.Sleep(3 * time.Second)

	html := s.snapshot(page)

	if err := s.screenForCaptcha(html); err != nil {
		return nil, html, err
	}

	doc, err := htmldoc.Parse(html)
	if err != nil {
		return nil, html, fmt.Errorf("failed to parse cause list page: %w", err)
	}

	entries := extract.ExtractCauseList(doc)
	s.logger.Info("Cause list extracted", "court", courtName, "date", date, "entries", len(entries))

	return entries, html, nil
}
