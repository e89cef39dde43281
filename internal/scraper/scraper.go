package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/config"
	"github.com/epsilon003/Illegally-Blonde/internal/extract"
	"github.com/epsilon003/Illegally-Blonde/internal/htmldoc"
	"github.com/epsilon003/Illegally-Blonde/pkg/logger"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Scraper drives a browser session against the eCourts portals and hands
// page snapshots to the extraction core. One page is used per fetch; page
// creation is serialized under the mutex.
type Scraper struct {
	cfg     *config.Config
	Browser *rod.Browser // Made public for testing
	mu      sync.Mutex
	logger  *logger.Logger
}

// NewScraper launches the browser and returns a scraper bound to it.
func NewScraper(cfg *config.Config, logger *logger.Logger) (*Scraper, error) {
	l := launcher.New().
		Headless(cfg.HeadlessMode).
		Set("user-agent", cfg.UserAgent).
		Set("disable-blink-features", "AutomationControlled").
		Delete("enable-automation")

	if cfg.BrowserPath != "" {
		l = l.Bin(cfg.BrowserPath)
	}

	if cfg.LogLevel == "debug" {
		l = l.Devtools(true)
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL).MustConnect()

	return &Scraper{
		cfg:     cfg,
		Browser: browser,
		logger:  logger,
	}, nil
}

// Close shuts the browser down.
func (s *Scraper) Close() error {
	return s.Browser.Close()
}

// baseURL returns the portal entry point for a court type.
func (s *Scraper) baseURL(courtType extract.CourtType) string {
	if courtType == extract.DistrictCourt {
		return s.cfg.DistrictCourtBaseURL
	}
	return s.cfg.HighCourtBaseURL
}

// FetchCase navigates the portal for the query's court type, submits the
// search form and extracts a case record from the result page. The raw page
// HTML is returned alongside the record for audit storage.
func (s *Scraper) FetchCase(ctx context.Context, query extract.CaseQuery) (*extract.CaseRecord, string, error) {
	page, err := s.newPage(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create page: %w", err)
	}
	defer page.MustClose()

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.ScraperTimeout)
	defer cancel()
	page = page.Context(fetchCtx)

	var html string
	if query.CourtType == extract.DistrictCourt {
		html, err = s.submitDistrictCourtSearch(page, query)
	} else {
		html, err = s.submitHighCourtSearch(page, query)
	}
	if err != nil {
		return nil, html, err
	}

	record, err := s.parseSnapshot(html)
	if err != nil {
		return nil, html, err
	}

	if msg := s.checkForErrors(html); msg != "" {
		return nil, html, fmt.Errorf("search error: %s", msg)
	}

	return record, html, nil
}

// submitHighCourtSearch fills and submits the high-court case-status form.
func (s *Scraper) submitHighCourtSearch(page *rod.Page, query extract.CaseQuery) (string, error) {
	courtURL := s.baseURL(extract.HighCourt)
	s.logger.Info("Navigating to high court portal", "url", courtURL)

	if err := page.Navigate(courtURL); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		s.logger.Warn("Page load timed out, continuing", "error", err)
	}
	time.Sleep(2 * time.Second)

	// Open the Case Number search tab
	if tab := s.findLinkByText(page, "Case Number"); tab != nil {
		tab.MustClick()
		time.Sleep(1 * time.Second)
	}

	caseTypeSelect, err := page.Element("#caseType")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("case type select not found: %w", err)
	}
	caseTypeSelect.MustSelect(query.CaseType)
	s.logger.Debug("Selected case type", "type", query.CaseType)

	caseNumberInput, err := page.Element("#caseNumber")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("case number input not found: %w", err)
	}
	caseNumberInput.MustInput(query.CaseNumber)
	s.logger.Debug("Entered case number", "number", query.CaseNumber)

	yearInput, err := page.Element("#caseYear")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("year input not found: %w", err)
	}
	yearInput.MustInput(fmt.Sprintf("%d", query.Year))
	s.logger.Debug("Entered year", "year", query.Year)

	searchBtn, err := page.Element("#searchBtn")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("search button not found: %w", err)
	}
	searchBtn.MustClick()
	s.logger.Debug("Submitted high court search form")
	time.Sleep(3 * time.Second)

	return s.snapshot(page), nil
}

// submitDistrictCourtSearch fills and submits the district-court case-status
// form; the field layout differs from the high-court portal.
func (s *Scraper) submitDistrictCourtSearch(page *rod.Page, query extract.CaseQuery) (string, error) {
	courtURL := s.baseURL(extract.DistrictCourt)
	s.logger.Info("Navigating to district court portal", "url", courtURL)

	if err := page.Navigate(courtURL); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		s.logger.Warn("Page load timed out, continuing", "error", err)
	}
	time.Sleep(2 * time.Second)

	if link := s.findLinkByText(page, "Case Status"); link != nil {
		link.MustClick()
		time.Sleep(1 * time.Second)
	}

	caseTypeInput, err := page.Element("input[name='case_type']")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("case type input not found: %w", err)
	}
	caseTypeInput.MustInput(query.CaseType)

	caseNumberInput, err := page.Element("input[name='case_no']")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("case number input not found: %w", err)
	}
	caseNumberInput.MustInput(query.CaseNumber)

	yearInput, err := page.Element("input[name='case_year']")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("year input not found: %w", err)
	}
	yearInput.MustInput(fmt.Sprintf("%d", query.Year))

	submitBtn, err := page.Element("[name='submit']")
	if err != nil {
		return s.snapshot(page), fmt.Errorf("submit button not found: %w", err)
	}
	submitBtn.MustClick()
	s.logger.Debug("Submitted district court search form")
	time.Sleep(3 * time.Second)

	return s.snapshot(page), nil
}

// parseSnapshot screens the snapshot for a CAPTCHA challenge and, if clean,
// runs the extractors over it.
func (s *Scraper) parseSnapshot(html string) (*extract.CaseRecord, error) {
	if err := s.screenForCaptcha(html); err != nil {
		return nil, err
	}

	doc, err := htmldoc.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse result page: %w", err)
	}

	return extract.ExtractCaseRecord(doc), nil
}

// newPage opens a fresh page with a realistic viewport and headers.
func (s *Scraper) newPage(ctx context.Context) (*rod.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.Browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	page.MustSetViewport(1920, 1080, 1, false)
	page.MustSetExtraHeaders("Accept-Language", "en-US,en;q=0.9")

	return page.Context(ctx), nil
}

// snapshot returns the page HTML, or an empty string when even that fails.
func (s *Scraper) snapshot(page *rod.Page) string {
	html, err := page.HTML()
	if err != nil {
		s.logger.Warn("Failed to capture page HTML", "error", err)
		return ""
	}
	return html
}

// findLinkByText returns the first anchor whose text contains the given
// fragment, or nil.
func (s *Scraper) findLinkByText(page *rod.Page, fragment string) *rod.Element {
	links, err := page.Elements("a")
	if err != nil {
		return nil
	}
	for _, link := range links {
		text, err := link.Text()
		if err == nil && strings.Contains(text, fragment) {
			return link
		}
	}
	return nil
}

// checkForErrors looks for portal-side failure messages in the snapshot.
func (s *Scraper) checkForErrors(html string) string {
	lower := strings.ToLower(html)
	phrases := []string{
		"no records found",
		"no record found",
		"invalid case number",
		"case not found",
		"no data available",
	}
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

// CaseResult is the outcome of one query in a bulk fetch.
type CaseResult struct {
	Query   extract.CaseQuery
	Record  *extract.CaseRecord
	RawHTML string
	Err     error
}

// FetchCaseConcurrent runs multiple case fetches with bounded parallelism.
func (s *Scraper) FetchCaseConcurrent(ctx context.Context, queries []extract.CaseQuery) []CaseResult {
	results := make([]CaseResult, len(queries))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentFetches)

	for i, query := range queries {
		wg.Add(1)
		go func(index int, q extract.CaseQuery) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			record, rawHTML, err := s.FetchCase(ctx, q)

			results[index] = CaseResult{
				Query:   q,
				Record:  record,
				RawHTML: rawHTML,
				Err:     err,
			}
		}(i, query)
	}

	wg.Wait()
	return results
}
