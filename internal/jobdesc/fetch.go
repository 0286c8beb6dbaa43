// Package jobdesc retrieves job posting text from a URL for keyword
// embedding and AI suggestions. Plain HTTP fetching covers server-rendered
// pages; JavaScript-rendered boards fall back to a headless browser.
package jobdesc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeBuilder/1.0)"

// Error represents a failure while retrieving a job posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FetchText retrieves the job posting at urlStr and returns its visible
// text. When the plain HTTP result looks like an unrendered SPA shell and
// allowBrowser is set, the page is re-fetched through a headless browser.
func FetchText(ctx context.Context, urlStr string, allowBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := extractText(html)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to parse page", Cause: err}
	}

	if allowBrowser && looksUnrendered(text) {
		rendered, berr := renderWithBrowser(ctx, urlStr, DefaultTimeout)
		if berr != nil {
			// Keep whatever the plain fetch produced.
			return text, nil
		}
		if renderedText, perr := extractText(rendered); perr == nil && len(renderedText) > len(text) {
			return renderedText, nil
		}
	}

	return text, nil
}

func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	return string(body), nil
}

// contentSelectors are tried in order before falling back to body.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// extractText parses HTML and returns the visible posting text with noise
// elements removed and whitespace normalized.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
