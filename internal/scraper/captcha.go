package scraper

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/extract"
)

// screenForCaptcha aborts extraction when the snapshot is a challenge page.
// Solving challenges is out of scope; the snapshot is kept on disk so an
// operator can inspect what the portal served.
func (s *Scraper) screenForCaptcha(html string) error {
	if !extract.DetectCaptcha(html) {
		return nil
	}

	s.logger.Warn("CAPTCHA challenge detected, aborting extraction")

	if path, err := s.saveChallengeSnapshot(html); err == nil {
		s.logger.Info("Challenge page saved for inspection", "path", path)
	} else {
		s.logger.Warn("Failed to save challenge page", "error", err)
	}

	return extract.ErrCaptchaRequired
}

// saveChallengeSnapshot writes the challenge page under the data directory.
func (s *Scraper) saveChallengeSnapshot(html string) (string, error) {
	dir := "./data/captchas"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("challenge_%d.html", time.Now().Unix())
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", err
	}

	return path, nil
}
