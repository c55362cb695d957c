package ingest

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// bpsBase is the Census Building Permits Survey per-place directory; one
// directory per year, containing CSVs whose names drift between vintages.
const bpsBase = "https://www2.census.gov/econ/bps/Place/%d/"

// DiscoverPlaceCSVs lists the place-level CSV files in a BPS year directory
// by parsing the server's HTML index.
func DiscoverPlaceCSVs(ctx context.Context, f *Fetcher, year int) ([]string, error) {
	base := fmt.Sprintf(bpsBase, year)
	data, err := f.Get(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("list %d: %w", year, err)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse listing %d: %w", year, err)
	}

	return placeCSVLinks(base, doc), nil
}

// placeCSVLinks filters a directory listing down to place-level CSV links,
// resolving relative hrefs against the listing URL.
func placeCSVLinks(base string, doc *html.Node) []string {
	var urls []string
	for _, href := range collectHrefs(doc) {
		lower := strings.ToLower(href)
		if !strings.HasSuffix(lower, ".csv") || !strings.Contains(lower, "place") {
			continue
		}
		if strings.HasPrefix(href, "http") {
			urls = append(urls, href)
		} else {
			urls = append(urls, base+strings.TrimPrefix(href, "./"))
		}
	}
	return urls
}

// collectHrefs walks the document and returns every anchor href
func collectHrefs(doc *html.Node) []string {
	var hrefs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return hrefs
}
