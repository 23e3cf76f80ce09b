package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Afrik-Presse/liens-afrique/internal/classifier"
	"github.com/Afrik-Presse/liens-afrique/internal/domain"
	"github.com/Afrik-Presse/liens-afrique/pkg/httpclient"

	"github.com/PuerkitoBio/goquery"
)

// minTitleRunes is the exclusive lower bound on anchor text length. Shorter
// anchors are navigation chrome, not article headlines.
const minTitleRunes = 10

// URLFilter accepts or rejects an absolute article URL for a provider.
type URLFilter func(absoluteURL string) bool

// containsFilter builds a URLFilter requiring the given path segment.
func containsFilter(segment string) URLFilter {
	return func(absoluteURL string) bool {
		return strings.Contains(absoluteURL, segment)
	}
}

// pathFilter returns a filter for the configured segment, falling back to
// the provider's default segment when none is configured.
func pathFilter(configured, fallback string) URLFilter {
	if segment := strings.TrimSpace(configured); segment != "" {
		return containsFilter(segment)
	}
	return containsFilter(fallback)
}

// responseSnippet returns a truncated snippet of the response body for error messages.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}

// fetchListing retrieves the raw HTML of a listing page.
func fetchListing(ctx context.Context, client httpclient.Client, pageURL, providerID string, headers map[string]string) ([]byte, error) {
	resp, err := client.Get(ctx, pageURL, headers)
	if err != nil {
		return nil, fmt.Errorf("fetch %s listing: %w", providerID, err)
	}

	body := resp.Body()
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, fmt.Errorf("%s listing returned status %d body: %s", providerID, code, responseSnippet(body))
	}

	return body, nil
}

// extractListing walks the document's anchors in order and emits one record
// per qualifying distinct URL. An anchor qualifies when it has a non-empty
// href, its trimmed text is longer than minTitleRunes, the resolved URL
// passes the provider filter and the classifier recognizes African content
// in the text or URL. The first occurrence of a URL wins; later duplicates
// are dropped. Malformed anchors are skipped, never reported.
func extractListing(doc *goquery.Document, baseURL, source string, accept URLFilter, cls *classifier.Classifier) []domain.Article {
	var articles []domain.Article
	seen := make(map[string]struct{})

	doc.Find("a").Each(func(_ int, anchor *goquery.Selection) {
		href, ok := anchor.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}

		fullURL := resolveURL(href, baseURL)
		title := strings.TrimSpace(anchor.Text())

		if utf8.RuneCountInString(title) <= minTitleRunes {
			return
		}
		if accept != nil && !accept(fullURL) {
			return
		}
		if !cls.IsAfrican(title, fullURL) {
			return
		}
		if _, dup := seen[fullURL]; dup {
			return
		}

		seen[fullURL] = struct{}{}
		articles = append(articles, domain.Article{
			Title:  title,
			URL:    fullURL,
			Source: source,
		})
	})

	return articles
}

// fetchAndExtract runs the full listing pipeline for one provider page.
func fetchAndExtract(
	ctx context.Context,
	client httpclient.Client,
	cfg Provider,
	baseURL, source string,
	accept URLFilter,
	cls *classifier.Classifier,
) ([]domain.Article, error) {
	raw, err := fetchListing(ctx, client, baseURL, cfg.ID, Headers(cfg))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s listing html: %w", cfg.ID, err)
	}

	return extractListing(doc, baseURL, source, accept, cls), nil
}

// resolveURL resolves a possibly relative URL against a base URL.
func resolveURL(raw, base string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.IsAbs() {
		return parsed.String()
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return raw
	}

	return baseURL.ResolveReference(parsed).String()
}
