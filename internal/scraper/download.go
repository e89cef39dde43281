package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/config"
	"github.com/epsilon003/Illegally-Blonde/internal/database"
	"github.com/epsilon003/Illegally-Blonde/internal/extract"
	"github.com/epsilon003/Illegally-Blonde/pkg/logger"
	"gorm.io/gorm"
)

// JudgmentDownloader fetches judgment PDFs and records them against the
// query they belong to.
type JudgmentDownloader struct {
	db       *gorm.DB
	logger   *logger.Logger
	cfg      *config.Config
	savePath string
	client   *http.Client
}

// NewJudgmentDownloader creates a downloader writing under the configured
// download directory.
func NewJudgmentDownloader(db *gorm.DB, logger *logger.Logger, cfg *config.Config) *JudgmentDownloader {
	return &JudgmentDownloader{
		db:       db,
		logger:   logger,
		cfg:      cfg,
		savePath: cfg.DownloadPath,
		client: &http.Client{
			Timeout: cfg.DownloadTimeout,
		},
	}
}

// Download resolves the judgment link, fetches the PDF and records a
// judgment row for the owning query. Returns the stored record.
func (d *JudgmentDownloader) Download(ctx context.Context, queryID uint, href string) (*database.Judgment, error) {
	fileURL := d.resolveURL(href)

	if err := os.MkdirAll(d.savePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", d.cfg.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := extract.SanitizeFilename(fmt.Sprintf("judgment_%d_%s.pdf", queryID, timestamp))
	fullPath := filepath.Join(d.savePath, filename)

	file, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, resp.Body)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	judgment := &database.Judgment{
		QueryID:      queryID,
		Filename:     filename,
		FilePath:     fullPath,
		SourceURL:    fileURL,
		DownloadTime: time.Now(),
	}
	if err := d.db.Create(judgment).Error; err != nil {
		d.logger.Error("Failed to record judgment download", "error", err)
	}

	d.logger.Info("Judgment downloaded",
		"queryID", queryID,
		"size", size,
		"path", fullPath)

	return judgment, nil
}

// resolveURL makes a portal-relative judgment link absolute.
func (d *JudgmentDownloader) resolveURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base := strings.TrimSuffix(d.cfg.HighCourtBaseURL, "/")
	return base + "/" + strings.TrimPrefix(href, "/")
}

// CleanupOld removes downloaded judgments older than the given number of
// days, along with their database rows' file references.
func (d *JudgmentDownloader) CleanupOld(daysToKeep int) error {
	cutoff := time.Now().AddDate(0, 0, -daysToKeep)

	var judgments []database.Judgment
	if err := d.db.Where("download_time < ? AND file_path != ?", cutoff, "").Find(&judgments).Error; err != nil {
		return err
	}

	for _, judgment := range judgments {
		if err := os.Remove(judgment.FilePath); err != nil && !os.IsNotExist(err) {
			d.logger.Warn("Failed to remove judgment file", "path", judgment.FilePath, "error", err)
			continue
		}

		judgment.FilePath = ""
		d.db.Save(&judgment)

		d.logger.Info("Removed old judgment file", "judgmentID", judgment.ID)
	}

	return nil
}
