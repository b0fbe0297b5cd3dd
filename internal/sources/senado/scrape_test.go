package senado

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"golang.org/x/net/html"
)

const transparencyPage = `
<html><body>
<table>
  <tr><td>Cotas para Exercício da Atividade Parlamentar:</td><td>R$ 38.471,20</td></tr>
  <tr><td>Passagens Aéreas</td><td>1.234,56</td></tr>
  <tr><td>Coluna A</td><td>Coluna B</td></tr>
  <tr><td>Três</td><td>células</td><td>aqui</td></tr>
</table>
<dl>
  <dt>Pessoal de Gabinete</dt>
  <dd>R$ 92.000,00</dd>
  <dt>Sem valor</dt>
  <dd>não disponível</dd>
</dl>
</body></html>`

func TestExtractLabeledAmounts(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(transparencyPage))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	items := ExtractLabeledAmounts(doc, 2025)

	if len(items) != 3 {
		t.Fatalf("expected 3 labeled amounts, got %d: %+v", len(items), items)
	}

	if items[0].Category != "Cotas para Exercício da Atividade Parlamentar" {
		t.Fatalf("trailing colon should be stripped, got %q", items[0].Category)
	}
	if items[0].NetValue != 38471.20 {
		t.Fatalf("expected 38471.20, got %v", items[0].NetValue)
	}
	if items[1].NetValue != 1234.56 {
		t.Fatalf("expected 1234.56, got %v", items[1].NetValue)
	}
	if items[2].Category != "Pessoal de Gabinete" || items[2].NetValue != 92000 {
		t.Fatalf("unexpected dl item: %+v", items[2])
	}

	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, item := range items {
		if !item.Date.Equal(yearStart) {
			t.Fatalf("item %q dated %v, want year start", item.Category, item.Date)
		}
	}
}

func TestScrapeAdapter_FetchExpenses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/5672") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(transparencyPage))
	}))
	defer server.Close()

	adapter := NewScrapeAdapter(server.URL+"/transparencia/sen/%s", 5*time.Second, logger.New("test"))

	off := officials.Official{ExternalID: "5672", Branch: officials.BranchFederalSenator}
	items, failure := adapter.FetchExpenses(context.Background(), off, 2025)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	_, failure = adapter.FetchExpenses(context.Background(),
		officials.Official{ExternalID: "0000", Branch: officials.BranchFederalSenator}, 2025)
	if failure == nil || failure.Kind != sources.FailureNotFound {
		t.Fatalf("expected not-found for unknown senator, got %v", failure)
	}
}
