package extract

import (
	"errors"
	"strings"
)

// ErrCaptchaRequired signals that the portal served a challenge page and
// extraction was aborted; manual intervention is required.
var ErrCaptchaRequired = errors.New("captcha detected - manual intervention required")

var captchaIndicators = []string{
	"captcha",
	"recaptcha",
	"security check",
	"verify you are human",
	"g-recaptcha",
}

// DetectCaptcha reports whether the markup contains a known challenge
// indicator. A true result means the caller must not attempt to parse a
// record from the page.
func DetectCaptcha(markup string) bool {
	lower := strings.ToLower(markup)
	for _, indicator := range captchaIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
