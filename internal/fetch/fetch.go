// Package fetch retrieves job posting pages over HTTP, with a headless
// browser fallback for JavaScript-rendered boards. It hands raw HTML to the
// ingestion layer and never interprets posting content itself.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobAgent/1.0)"

// Result holds the raw content retrieved from a posting URL.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int

	// Rendered is true when the HTML came from the browser fallback.
	Rendered bool
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string

	// UseBrowserFallback renders the page in a headless browser when the
	// plain HTTP response looks like an empty SPA shell.
	UseBrowserFallback bool
	Verbose            bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:            DefaultTimeout,
		UserAgent:          DefaultUserAgent,
		UseBrowserFallback: true,
	}
}

// Posting retrieves the HTML for a job posting URL. When the response body
// is too short to contain a posting and the browser fallback is enabled,
// the page is re-fetched through headless Chrome.
func Posting(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := plainHTTP(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	if opts.UseBrowserFallback && looksLikeEmptyShell(result.HTML) {
		html, berr := renderWithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if berr != nil {
			// The static HTML is still usable; browser failure is not fatal.
			return result, nil
		}
		result.HTML = html
		result.Rendered = true
	}

	return result, nil
}

func plainHTTP(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}
