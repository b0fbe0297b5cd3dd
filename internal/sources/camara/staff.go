package camara

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"golang.org/x/net/html"
)

// DefaultStaffPageURL is the deputy office-staff page. %s is the chamber id.
const DefaultStaffPageURL = "https://www.camara.leg.br/deputados/%s/pessoal-gabinete"

// StaffAdapter scrapes the deputy's office page for (name, code, role)
// staff rows.
type StaffAdapter struct {
	pageURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewStaffAdapter creates the chamber staff scrape adapter. pageURL must
// contain one %s placeholder for the deputy id.
func NewStaffAdapter(pageURL string, timeout time.Duration, log *logger.Logger) *StaffAdapter {
	if pageURL == "" {
		pageURL = DefaultStaffPageURL
	}
	return &StaffAdapter{
		pageURL:    pageURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (a *StaffAdapter) Name() string { return "camara-staff" }

func (a *StaffAdapter) Provenance() sources.Provenance { return sources.ProvenanceScrape }

// FetchStaff scrapes the deputy's office page and extracts staff rows.
func (a *StaffAdapter) FetchStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, *sources.Failure) {
	if off.ExternalID == "" {
		return nil, sources.Fail(sources.FailureNotFound, "official has no chamber id")
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

	if resp.StatusCode != http.StatusOK {
		return nil, sources.Fail(sources.FailureSourceUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, sources.Fail(sources.FailureMalformedPayload, "parse html: "+err.Error())
	}

	members := ExtractStaffRows(doc)
	if len(members) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, "no staff rows on page")
	}

	return members, nil
}

// ExtractStaffRows walks the parsed page and extracts (name, code, role)
// triples from table rows. Header rows are discarded, not treated as data.
func ExtractStaffRows(doc *html.Node) []sources.StaffMember {
	members := make([]sources.StaffMember, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells := cellTexts(n)
			if member, ok := staffRowToMember(cells); ok {
				members = append(members, member)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return members
}

func staffRowToMember(cells []string) (sources.StaffMember, bool) {
	if len(cells) < 3 {
		return sources.StaffMember{}, false
	}

	name := strings.TrimSpace(cells[0])
	role := strings.TrimSpace(cells[2])
	if name == "" || role == "" {
		return sources.StaffMember{}, false
	}

	// Rows repeating the column labels are headers, not data.
	if isHeaderLabel(name) || isHeaderLabel(role) {
		return sources.StaffMember{}, false
	}

	return sources.StaffMember{
		Name:     name,
		Position: role,
		Status:   "active",
		Source:   sources.ProvenanceScrape,
	}, true
}

func isHeaderLabel(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "função", "funcao", "funcionário", "funcionario", "nome", "nome do funcionário", "ponto":
		return true
	}
	return false
}

func cellTexts(row *html.Node) []string {
	texts := make([]string, 0, 4)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			texts = append(texts, nodeText(n))
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(row)

	return texts
}

func nodeText(n *html.Node) string {
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
