package discover

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// HTML attributes scanned for candidate media URLs
const (
	attrSrc  = "src"
	attrHref = "href"
)

// Discoverer scans a webpage for embedded video links. URLs whose host is
// already a known video-hosting domain are passed through untouched, the
// extractor understands those natively (including playlists).
type Discoverer struct {
	client  *http.Client
	domains []string
	log     *slog.Logger
}

// New creates a discoverer with a page-fetch timeout and the list of
// recognized video-hosting domain substrings.
func New(timeout time.Duration, domains []string) *Discoverer {
	return &Discoverer{
		client:  &http.Client{Timeout: timeout},
		domains: domains,
		log:     slog.Default(),
	}
}

// Discover returns the set of candidate media URLs for pageURL.
//
// If the page contains no matching elements, the page URL itself is returned
// as the single candidate (assumed to be a direct media link). A fetch or
// parse failure yields an empty result and an error; callers must treat that
// as "nothing to download".
func (d *Discoverer) Discover(ctx context.Context, pageURL string) ([]string, error) {
	if d.isVideoHost(pageURL) {
		d.log.Info("detected video domain, using URL directly", "url", pageURL)
		return []string{pageURL}, nil
	}

	d.log.Info("scanning webpage for embedded video links", "url", pageURL)

	doc, err := d.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract video URLs: %w", err)
	}

	candidates := d.collectCandidates(doc)
	if len(candidates) == 0 {
		d.log.Info("no video links found in page, assuming direct video or playlist", "url", pageURL)
		return []string{pageURL}, nil
	}

	return candidates, nil
}

// isVideoHost reports whether the URL's host matches a known video domain
func (d *Discoverer) isVideoHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, domain := range d.domains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}

// containsVideoDomain reports whether the value mentions a known video domain
func (d *Discoverer) containsVideoDomain(value string) bool {
	for _, domain := range d.domains {
		if strings.Contains(value, domain) {
			return true
		}
	}
	return false
}

// fetchDocument fetches the page and parses it into a queryable document
func (d *Discoverer) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// collectCandidates extracts candidate media URLs from the parsed markup,
// deduplicated and with empty values dropped.
func (d *Discoverer) collectCandidates(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var candidates []string

	add := func(value string) {
		if value == "" || seen[value] {
			return
		}
		seen[value] = true
		candidates = append(candidates, value)
	}

	// <video> tags and their nested <source> children
	doc.Find("video").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr(attrSrc); ok {
			add(src)
		}
	})
	doc.Find("video source").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr(attrSrc); ok {
			add(src)
		}
	})

	// <iframe> tags for embedded players
	doc.Find("iframe").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr(attrSrc); ok && d.containsVideoDomain(src) {
			add(src)
		}
	})

	// <a> tags pointing to video domains
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr(attrHref); ok && d.containsVideoDomain(href) {
			add(href)
		}
	})

	return candidates
}
