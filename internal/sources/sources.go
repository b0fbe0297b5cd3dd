// Package sources defines the contract between upstream data source adapters
// and the fallback orchestrator. Each adapter fetches exactly one category of
// data (expenses or staff) from exactly one upstream source and either
// returns normalized raw records or a Failure signal. Adapters never retry
// and never let an error escape their boundary; escalation is the
// orchestrator's job, by moving to the next fallback tier.
package sources

import (
	"context"
	"time"

	"civitas_backend/internal/officials"
)

// Category selects which kind of data an adapter serves.
type Category string

const (
	CategoryExpenses Category = "expenses"
	CategoryStaff    Category = "staff"
)

// Provenance identifies which fallback tier produced a payload. Every
// derived summary carries exactly one; consumers must treat "synthesized"
// data as illustrative, never authoritative.
type Provenance string

const (
	ProvenanceOfficialAPI     Provenance = "official-api"
	ProvenanceMirrorAPI       Provenance = "mirror-api"
	ProvenanceScrape          Provenance = "scrape"
	ProvenanceStaticReference Provenance = "static-reference"
	ProvenanceSynthesized     Provenance = "synthesized"
)

// FailureKind classifies why an adapter could not produce a payload.
type FailureKind string

const (
	// FailureSourceUnavailable covers network errors, timeouts and
	// non-success HTTP statuses.
	FailureSourceUnavailable FailureKind = "source-unavailable"
	// FailureMalformedPayload covers unexpected payload shapes.
	FailureMalformedPayload FailureKind = "malformed-payload"
	// FailureNotFound means the official is unknown to this source.
	FailureNotFound FailureKind = "not-found"
	// FailureParse covers currency/date parse errors severe enough to
	// invalidate the whole payload.
	FailureParse FailureKind = "parse-failure"
	// FailureEmptyResult means the source answered but had no records.
	FailureEmptyResult FailureKind = "empty-result"
)

// Failure is the adapter-local error signal. It carries a short diagnostic
// reason but is never raised as a Go error past the adapter boundary.
type Failure struct {
	Kind   FailureKind
	Reason string
}

// Fail builds a Failure.
func Fail(kind FailureKind, reason string) *Failure {
	return &Failure{Kind: kind, Reason: reason}
}

func (f *Failure) String() string {
	if f == nil {
		return ""
	}
	return string(f.Kind) + ": " + f.Reason
}

// ExpenseLineItem is one upstream expense transaction, normalized from the
// source-specific shape. Held only in memory during a single aggregation
// pass; never persisted.
type ExpenseLineItem struct {
	Date         time.Time
	SupplierName string
	SupplierID   string
	// Category is a free-text label; sources disagree on taxonomy, so it
	// stays an opaque string rather than a closed enum.
	Category   string
	NetValue   float64
	DocumentID string
}

// StaffMember is one office staff record, normalized from the source shape.
type StaffMember struct {
	Name            string     `json:"name"`
	Position        string     `json:"position"`
	EstimatedSalary float64    `json:"estimated_salary"`
	HireDate        string     `json:"hire_date,omitempty"` // optional, may be "unknown"
	Status          string     `json:"status"`              // active | inactive
	Source          Provenance `json:"source"`
}

// ExpenseAdapter fetches expense line items for one official and year.
type ExpenseAdapter interface {
	// Name identifies the adapter for logging.
	Name() string
	// Provenance is the tier tag stamped on summaries built from this
	// adapter's payloads.
	Provenance() Provenance
	// FetchExpenses returns normalized line items or a Failure. An empty
	// result set is a Failure (FailureEmptyResult), so the orchestrator
	// can move on to the next tier.
	FetchExpenses(ctx context.Context, off officials.Official, year int) ([]ExpenseLineItem, *Failure)
}

// StaffAdapter fetches the office staff roster for one official.
type StaffAdapter interface {
	Name() string
	Provenance() Provenance
	FetchStaff(ctx context.Context, off officials.Official) ([]StaffMember, *Failure)
}
