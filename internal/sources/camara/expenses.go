// Package camara provides adapters for the federal chamber open-data API and
// the deputies' office pages.
package camara

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"
)

const (
	// DefaultBaseURL is the federal chamber open-data API.
	DefaultBaseURL = "https://dadosabertos.camara.leg.br"

	itemsPerPage = 100
	maxPages     = 30
)

// FlexNumber handles JSON values that can be either string or number. The
// chamber API normally returns numbers, but archived payloads carry strings.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexNumber(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			// Treated as zero downstream, not as a payload failure.
			*f = 0
			return nil
		}
		*f = FlexNumber(parsed)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexNumber", string(data))
}

// ExpensesAdapter queries the chamber's per-deputy expense endpoint.
// Queries are keyed by calendar year, support an optional month filter and
// order by document date descending.
type ExpensesAdapter struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	month      int
}

// NewExpensesAdapter creates the chamber expense adapter. month narrows the
// query to one calendar month when 1-12; zero fetches the whole year.
func NewExpensesAdapter(baseURL string, timeout time.Duration, month int, log *logger.Logger) *ExpensesAdapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ExpensesAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		month:      month,
	}
}

func (a *ExpensesAdapter) Name() string { return "camara-api" }

func (a *ExpensesAdapter) Provenance() sources.Provenance { return sources.ProvenanceOfficialAPI }

type expensePage struct {
	Dados []apiExpense `json:"dados"`
	Links []apiLink    `json:"links"`
}

type apiLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type apiExpense struct {
	Ano               int        `json:"ano"`
	Mes               int        `json:"mes"`
	TipoDespesa       string     `json:"tipoDespesa"`
	CodDocumento      int64      `json:"codDocumento"`
	DataDocumento     string     `json:"dataDocumento"`
	NumDocumento      string     `json:"numDocumento"`
	ValorLiquido      FlexNumber `json:"valorLiquido"`
	NomeFornecedor    string     `json:"nomeFornecedor"`
	CnpjCpfFornecedor string     `json:"cnpjCpfFornecedor"`
}

// FetchExpenses returns the deputy's expense line items for the year.
func (a *ExpensesAdapter) FetchExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, *sources.Failure) {
	if off.ExternalID == "" {
		return nil, sources.Fail(sources.FailureNotFound, "official has no chamber id")
	}

	items := make([]sources.ExpenseLineItem, 0)

	for page := 1; page <= maxPages; page++ {
		raw, failure := a.fetchPage(ctx, off.ExternalID, year, page)
		if failure != nil {
			return nil, failure
		}

		for _, exp := range raw.Dados {
			items = append(items, normalizeExpense(exp))
		}

		if !hasNextPage(raw.Links) || len(raw.Dados) == 0 {
			break
		}
	}

	if len(items) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, fmt.Sprintf("no expenses for year %d", year))
	}

	return items, nil
}

func (a *ExpensesAdapter) fetchPage(ctx context.Context, deputyID string, year, page int) (*expensePage, *sources.Failure) {
	params := url.Values{}
	params.Set("ano", strconv.Itoa(year))
	if a.month >= 1 && a.month <= 12 {
		params.Set("mes", strconv.Itoa(a.month))
	}
	params.Set("ordem", "DESC")
	params.Set("ordenarPor", "dataDocumento")
	params.Set("itens", strconv.Itoa(itemsPerPage))
	params.Set("pagina", strconv.Itoa(page))

	reqURL := fmt.Sprintf("%s/api/v2/deputados/%s/despesas?%s", a.baseURL, url.PathEscape(deputyID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, sources.Fail(sources.FailureSourceUnavailable, "create request: "+err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, sources.Fail(sources.FailureSourceUnavailable, "request failed: "+err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue to decode
	case http.StatusNotFound:
		return nil, sources.Fail(sources.FailureNotFound, "deputy unknown to chamber api")
	default:
		return nil, sources.Fail(sources.FailureSourceUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var payload expensePage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, sources.Fail(sources.FailureMalformedPayload, "decode: "+err.Error())
	}

	return &payload, nil
}

func normalizeExpense(exp apiExpense) sources.ExpenseLineItem {
	item := sources.ExpenseLineItem{
		SupplierName: exp.NomeFornecedor,
		SupplierID:   exp.CnpjCpfFornecedor,
		Category:     exp.TipoDespesa,
		NetValue:     float64(exp.ValorLiquido),
		DocumentID:   exp.NumDocumento,
	}

	if exp.DataDocumento != "" {
		if parsed, err := time.Parse("2006-01-02", exp.DataDocumento); err == nil {
			item.Date = parsed
		} else if parsed, err := time.Parse(time.RFC3339, exp.DataDocumento); err == nil {
			item.Date = parsed
		}
	}
	if item.Date.IsZero() && exp.Ano > 0 && exp.Mes >= 1 && exp.Mes <= 12 {
		item.Date = time.Date(exp.Ano, time.Month(exp.Mes), 1, 0, 0, 0, 0, time.UTC)
	}

	return item
}

func hasNextPage(links []apiLink) bool {
	for _, link := range links {
		if link.Rel == "next" && link.Href != "" {
			return true
		}
	}
	return false
}
