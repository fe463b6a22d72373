// Package fetch - platform.go provides ATS platform detection, the posting
// domain allow-list, and platform-specific content selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known ATS job board platform.
type Platform string

const (
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformAshby is the AshbyHQ ATS platform
	PlatformAshby Platform = "ashby"
	// PlatformWorkable is the Workable ATS platform
	PlatformWorkable Platform = "workable"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// allowedDomains are the posting-site host suffixes extraction is restricted
// to, keyed by the platform they identify.
var allowedDomains = map[string]Platform{
	"lever.co":      PlatformLever,
	"greenhouse.io": PlatformGreenhouse,
	"ashbyhq.com":   PlatformAshby,
	"workable.com":  PlatformWorkable,
}

// DetectPlatform identifies the ATS platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for suffix, platform := range allowedDomains {
		if strings.Contains(host, suffix) {
			return platform
		}
	}
	return PlatformUnknown
}

// IsAllowedURL reports whether a URL's host belongs to one of the supported
// ATS platforms. Extraction is refused for any other host.
func IsAllowedURL(urlStr string) bool {
	return DetectPlatform(urlStr) != PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a
// specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLever:
		return []string{
			".posting-page",
			".posting-description",
			".section-wrapper.page-full-width",
			".content",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
		}
	case PlatformAshby:
		return []string{
			"#job-overview",
			".ashby-job-posting-description",
			"[class*='jobPosting']",
			"main",
		}
	case PlatformWorkable:
		return []string{
			"[data-ui='job-description']",
			".job-description",
			".section--text",
			"main",
		}
	default:
		return []string{
			".job-description",
			".job-content",
			"#job-description",
			".posting-content",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific
// platform.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".post-apply",
		)
	case PlatformAshby:
		return append(common,
			"[class*='applicationForm']",
			"[class*='applyButton']",
		)
	case PlatformWorkable:
		return append(common,
			"[data-ui='application-form']",
			".apply-section",
		)
	default:
		return common
	}
}
