package wordsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"golang.org/x/net/html"
)

const defaultFetchTimeout = 30 * time.Second

// Fetcher downloads the ranked corpus for one language.
type Fetcher interface {
	Fetch(ctx context.Context) ([]string, error)
}

// Scraper fetches a ranked word table from an HTML page. Every <td> inside
// the container whose class list contains Class contributes one word.
type Scraper struct {
	URL    string
	Class  string
	Client *http.Client
	Filter FilterFunc
}

// Fetch downloads the page and extracts its words in document order.
func (s Scraper) Fetch(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort close for response body.
			_ = cerr
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.URL, resp.Status)
	}
	words, err := ParseWordTable(resp.Body, s.Class)
	if err != nil {
		return nil, err
	}
	if s.Filter != nil {
		filtered := words[:0]
		for _, w := range words {
			if s.Filter(w) {
				filtered = append(filtered, w)
			}
		}
		words = filtered
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("scrape %s: %w", s.URL, ErrEmptyWordSource)
	}
	return words, nil
}

// ParseWordTable returns the text of every table cell below the first
// element carrying class, skipping empty and purely numeric cells.
func ParseWordTable(r io.Reader, class string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	root := findByClass(doc, class)
	if root == nil {
		return nil, fmt.Errorf("no element with class %q: %w", class, ErrEmptyWordSource)
	}
	var words []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			text := strings.TrimSpace(nodeText(n))
			if text != "" && !isNumeric(text) {
				words = append(words, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return words, nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, name := range strings.Fields(attr.Val) {
			if name == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
