// Package jobs fetches job postings and reduces them to visible text.
package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; TailorBackend/1.0)"

	// maxTextBytes caps the job text handed to the prompt builder so one
	// oversized page cannot blow the model's context window.
	maxTextBytes = 64 << 10
)

// FetchError reports a failed job-description retrieval.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch job %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch job %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Fetcher retrieves job postings over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher constructs a Fetcher with default transport settings.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
}

// FetchText retrieves the page at rawURL and returns its visible job text.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: rawURL, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &FetchError{URL: rawURL, Message: "unsupported scheme " + parsed.Scheme}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "build request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Job boards commonly answer 403/999 to non-browser clients.
		return "", &FetchError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "read body", Cause: err}
	}

	text, err := extractMainText(string(body))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "parse HTML", Cause: err}
	}
	if text == "" {
		return "", &FetchError{URL: rawURL, Message: "page has no visible text"}
	}
	return truncate(text), nil
}

// Normalize passes raw job text through the same whitespace cleanup and
// truncation applied to fetched pages.
func Normalize(text string) string {
	return truncate(cleanWhitespace(text))
}

// contentSelectors are tried in order before falling back to body.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

func extractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return cleanWhitespace(main.Text()), nil
}

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

func truncate(text string) string {
	if len(text) <= maxTextBytes {
		return text
	}
	// Back off to a rune boundary so the cut never leaves a partial
	// UTF-8 sequence at the end.
	cut := maxTextBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
