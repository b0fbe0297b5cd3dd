package senado

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/currency"
	"civitas_backend/platform/logger"

	"golang.org/x/net/html"
)

// DefaultTransparencyPageURL is the senate transparency page. %s is the
// senate registration code.
const DefaultTransparencyPageURL = "https://www6g.senado.leg.br/transparencia/sen/%s"

// ScrapeAdapter extracts labeled currency figures from a senator's
// transparency page. The page publishes per-category annual totals, so each
// extracted figure becomes one line item with the label as its category.
type ScrapeAdapter struct {
	pageURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewScrapeAdapter creates the senate transparency scrape adapter. pageURL
// must contain one %s placeholder for the senate code.
func NewScrapeAdapter(pageURL string, timeout time.Duration, log *logger.Logger) *ScrapeAdapter {
	if pageURL == "" {
		pageURL = DefaultTransparencyPageURL
	}
	return &ScrapeAdapter{
		pageURL:    pageURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (a *ScrapeAdapter) Name() string { return "senado-scrape" }

func (a *ScrapeAdapter) Provenance() sources.Provenance { return sources.ProvenanceScrape }

// FetchExpenses scrapes the transparency page for the senator.
func (a *ScrapeAdapter) FetchExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, *sources.Failure) {
	if off.ExternalID == "" {
		return nil, sources.Fail(sources.FailureNotFound, "official has no senate code")
	}

	reqURL := fmt.Sprintf(a.pageURL, off.ExternalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, sources.Fail(sources.FailureSourceUnavailable, "create request: "+err.Error())
	}
	req.Header.Set("User-Agent", "CivitasBot/1.0")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, sources.Fail(sources.FailureSourceUnavailable, "request failed: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, sources.Fail(sources.FailureNotFound, "senator page not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, sources.Fail(sources.FailureSourceUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, sources.Fail(sources.FailureMalformedPayload, "parse html: "+err.Error())
	}

	items := ExtractLabeledAmounts(doc, year)
	if len(items) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, "no labeled amounts on page")
	}

	return items, nil
}

// ExtractLabeledAmounts walks the parsed page and collects (label, amount)
// pairs from two-cell table rows and dt/dd definition lists. The amount
// cell must parse as a Brazilian-formatted currency value.
func ExtractLabeledAmounts(doc *html.Node, year int) []sources.ExpenseLineItem {
	items := make([]sources.ExpenseLineItem, 0)
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	addPair := func(label, amount string) {
		label = strings.TrimSuffix(strings.TrimSpace(label), ":")
		if label == "" {
			return
		}
		value, err := currency.ParseBRL(amount)
		if err != nil {
			return
		}
		items = append(items, sources.ExpenseLineItem{
			Date:     yearStart,
			Category: label,
			NetValue: value,
		})
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "tr":
				cells := elementTexts(n, "td", "th")
				if len(cells) == 2 {
					addPair(cells[0], cells[1])
				}
				return
			case "dl":
				pairDefinitionList(n, addPair)
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return items
}

func pairDefinitionList(dl *html.Node, addPair func(label, amount string)) {
	label := ""
	for child := dl.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.Data {
		case "dt":
			label = collectText(child)
		case "dd":
			if label != "" {
				addPair(label, collectText(child))
				label = ""
			}
		}
	}
}

func elementTexts(root *html.Node, tags ...string) []string {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	texts := make([]string, 0, 4)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && wanted[n.Data] {
			texts = append(texts, collectText(n))
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return texts
}

func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
