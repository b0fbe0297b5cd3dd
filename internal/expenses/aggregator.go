// Package expenses aggregates raw expense line items into the canonical
// per-official yearly summary.
package expenses

import (
	"time"

	"civitas_backend/internal/sources"
)

// UncategorizedLabel groups line items whose source left the free-text
// category blank. Every item contributes to exactly one category bucket, so
// category totals always add up to the summary total.
const UncategorizedLabel = "NÃO CLASSIFICADO"

// CategoryBreakdown is the per-category slice of a summary. Percentage is
// always derived from the summary total, never stored independently.
type CategoryBreakdown struct {
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage_of_total"`
}

// SupplierBreakdown is the per-supplier slice of a summary.
type SupplierBreakdown struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Summary is the canonical expense summary for one official and year.
type Summary struct {
	Total            float64                      `json:"total"`
	MonthlyAverage   float64                      `json:"monthly_average"`
	Categories       map[string]CategoryBreakdown `json:"categories"`
	Suppliers        map[string]SupplierBreakdown `json:"suppliers"`
	TransactionCount int                          `json:"transaction_count"`
	Source           sources.Provenance           `json:"source"`
	LastUpdated      time.Time                    `json:"last_updated"`
}

// Summarize reduces raw line items into a Summary. Missing or unparseable
// values arrive as zero and are included, never treated as fatal. An empty
// input yields an all-zero summary, not an error.
//
// MonthlyAverage divides the annual total by 12 unconditionally, even for
// partial-year data. That is the source system's annualization policy,
// preserved as-is.
func Summarize(items []sources.ExpenseLineItem, provenance sources.Provenance, now time.Time) Summary {
	summary := Summary{
		Categories:       make(map[string]CategoryBreakdown),
		Suppliers:        make(map[string]SupplierBreakdown),
		TransactionCount: len(items),
		Source:           provenance,
		LastUpdated:      now,
	}

	for _, item := range items {
		summary.Total += item.NetValue

		label := item.Category
		if label == "" {
			label = UncategorizedLabel
		}
		breakdown := summary.Categories[label]
		breakdown.Total += item.NetValue
		breakdown.Count++
		summary.Categories[label] = breakdown

		if item.SupplierName != "" {
			supplier := summary.Suppliers[item.SupplierName]
			supplier.Total += item.NetValue
			supplier.Count++
			summary.Suppliers[item.SupplierName] = supplier
		}
	}

	// Percentages are computed after the full pass so they always derive
	// from the final total. A zero total yields zero percentages, not NaN.
	if summary.Total != 0 {
		for label, breakdown := range summary.Categories {
			breakdown.Percentage = breakdown.Total / summary.Total * 100
			summary.Categories[label] = breakdown
		}
	}

	summary.MonthlyAverage = summary.Total / 12

	return summary
}
