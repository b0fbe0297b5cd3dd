// Package senado provides adapters for federal senators' expense data: a
// third-party mirror API first, then a scrape of the senate's own
// transparency pages.
package senado

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/currency"
	"civitas_backend/platform/logger"
)

// DefaultMirrorBaseURL is the third-party senate expense mirror.
const DefaultMirrorBaseURL = "https://api.ops.net.br"

// mirrorSenatorIDs maps senate registration codes to the mirror's own ids.
// Senators missing from this table are resolved through the mirror's
// search-by-name endpoint.
var mirrorSenatorIDs = map[string]int{
	"5672": 913,
	"5386": 862,
	"5979": 1021,
	"5895": 987,
	"5627": 905,
	"5732": 934,
}

// MirrorAdapter queries the third-party mirror for senator expenses.
type MirrorAdapter struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewMirrorAdapter creates the senate mirror adapter.
func NewMirrorAdapter(baseURL string, timeout time.Duration, log *logger.Logger) *MirrorAdapter {
	if baseURL == "" {
		baseURL = DefaultMirrorBaseURL
	}
	return &MirrorAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (a *MirrorAdapter) Name() string { return "senado-mirror" }

func (a *MirrorAdapter) Provenance() sources.Provenance { return sources.ProvenanceMirrorAPI }

type mirrorSenator struct {
	ID   int    `json:"id"`
	Nome string `json:"nome_parlamentar"`
}

type mirrorExpense struct {
	Data       string `json:"data"`
	Fornecedor string `json:"fornecedor"`
	CNPJ       string `json:"cnpj_cpf"`
	Tipo       string `json:"tipo_despesa"`
	// Valor comes back in Brazilian format, e.g. "1.234,56".
	Valor     string `json:"valor_reembolsado"`
	Documento string `json:"documento"`
}

// FetchExpenses resolves the senator's mirror id and fetches the year's
// expense records.
func (a *MirrorAdapter) FetchExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, *sources.Failure) {
	mirrorID, failure := a.resolveMirrorID(ctx, off)
	if failure != nil {
		return nil, failure
	}

	reqURL := fmt.Sprintf("%s/api/senadores/%d/despesas?ano=%d", a.baseURL, mirrorID, year)
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

	if resp.StatusCode == http.StatusNotFound {
		return nil, sources.Fail(sources.FailureNotFound, "senator unknown to mirror")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, sources.Fail(sources.FailureSourceUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var raw []mirrorExpense
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, sources.Fail(sources.FailureMalformedPayload, "decode: "+err.Error())
	}
	if len(raw) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, fmt.Sprintf("no mirror expenses for year %d", year))
	}

	items := make([]sources.ExpenseLineItem, 0, len(raw))
	for _, exp := range raw {
		item := sources.ExpenseLineItem{
			SupplierName: exp.Fornecedor,
			SupplierID:   exp.CNPJ,
			Category:     exp.Tipo,
			NetValue:     currency.ParseBRLOrZero(exp.Valor),
			DocumentID:   exp.Documento,
		}
		if parsed, err := time.Parse("2006-01-02", exp.Data); err == nil {
			item.Date = parsed
		} else if parsed, err := time.Parse("02/01/2006", exp.Data); err == nil {
			item.Date = parsed
		}
		items = append(items, item)
	}

	return items, nil
}

// resolveMirrorID uses the pre-registered mapping first and falls back to
// the mirror's senators-list search by name.
func (a *MirrorAdapter) resolveMirrorID(ctx context.Context, off officials.Official) (int, *sources.Failure) {
	if id, ok := mirrorSenatorIDs[off.ExternalID]; ok {
		return id, nil
	}

	params := url.Values{}
	params.Set("search", off.Name)
	reqURL := fmt.Sprintf("%s/api/senadores?%s", a.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, sources.Fail(sources.FailureSourceUnavailable, "create request: "+err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, sources.Fail(sources.FailureSourceUnavailable, "search failed: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, sources.Fail(sources.FailureSourceUnavailable, fmt.Sprintf("search status %d", resp.StatusCode))
	}

	var candidates []mirrorSenator
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return 0, sources.Fail(sources.FailureMalformedPayload, "decode search: "+err.Error())
	}

	wanted := normalizeName(off.Name)
	for _, candidate := range candidates {
		if normalizeName(candidate.Nome) == wanted {
			return candidate.ID, nil
		}
	}

	return 0, sources.Fail(sources.FailureNotFound, "no mirror match for "+off.Name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
