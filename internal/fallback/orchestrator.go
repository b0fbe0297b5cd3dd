package fallback

import (
	"context"
	"fmt"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
	"civitas_backend/platform/logger"
)

// Registry holds the constructed adapters by name, so chain configuration
// can reference them declaratively.
type Registry struct {
	expenses map[string]sources.ExpenseAdapter
	staff    map[string]sources.StaffAdapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		expenses: make(map[string]sources.ExpenseAdapter),
		staff:    make(map[string]sources.StaffAdapter),
	}
}

// RegisterExpenses adds an expense adapter under its Name().
func (r *Registry) RegisterExpenses(adapter sources.ExpenseAdapter) {
	r.expenses[adapter.Name()] = adapter
}

// RegisterStaff adds a staff adapter under its Name().
func (r *Registry) RegisterStaff(adapter sources.StaffAdapter) {
	r.staff[adapter.Name()] = adapter
}

// Orchestrator resolves payloads by walking a branch's adapter chain in
// priority order and stopping at the first usable payload. It never raises
// an error past its boundary: when every tier fails it returns a
// deterministic synthesized placeholder, so downstream consumers always
// have something to render.
type Orchestrator struct {
	expenseChains map[officials.Branch][]sources.ExpenseAdapter
	staffChains   map[officials.Branch][]sources.StaffAdapter
	log           *logger.Logger
}

// New builds an Orchestrator, validating that every configured adapter name
// is registered.
func New(cfg Config, reg *Registry, log *logger.Logger) (*Orchestrator, error) {
	o := &Orchestrator{
		expenseChains: make(map[officials.Branch][]sources.ExpenseAdapter),
		staffChains:   make(map[officials.Branch][]sources.StaffAdapter),
		log:           log,
	}

	for branch, names := range cfg.Expenses {
		chain := make([]sources.ExpenseAdapter, 0, len(names))
		for _, name := range names {
			adapter, ok := reg.expenses[name]
			if !ok {
				return nil, fmt.Errorf("unknown expense adapter %q for branch %q", name, branch)
			}
			chain = append(chain, adapter)
		}
		o.expenseChains[officials.Branch(branch)] = chain
	}

	for branch, names := range cfg.Staff {
		chain := make([]sources.StaffAdapter, 0, len(names))
		for _, name := range names {
			adapter, ok := reg.staff[name]
			if !ok {
				return nil, fmt.Errorf("unknown staff adapter %q for branch %q", name, branch)
			}
			chain = append(chain, adapter)
		}
		o.staffChains[officials.Branch(branch)] = chain
	}

	return o, nil
}

// ResolveExpenses walks the expense chain for the official's branch and
// returns the first non-empty payload with its provenance. On total failure
// it returns a synthesized placeholder tagged "synthesized".
func (o *Orchestrator) ResolveExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, sources.Provenance) {
	for _, adapter := range o.expenseChains[off.Branch] {
		items, failure := adapter.FetchExpenses(ctx, off, year)
		if failure != nil {
			o.log.SourceFailure(adapter.Name(), string(sources.CategoryExpenses), off.ID.String(), failure.String())
			continue
		}
		if len(items) == 0 {
			o.log.SourceFailure(adapter.Name(), string(sources.CategoryExpenses), off.ID.String(), "empty payload")
			continue
		}
		return items, adapter.Provenance()
	}

	o.log.Info("expenses fell through to synthesis",
		"official_id", off.ID.String(), "branch", string(off.Branch), "year", year)
	return synth.Expenses(off, year), sources.ProvenanceSynthesized
}

// ResolveStaff walks the staff chain analogously.
func (o *Orchestrator) ResolveStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, sources.Provenance) {
	for _, adapter := range o.staffChains[off.Branch] {
		members, failure := adapter.FetchStaff(ctx, off)
		if failure != nil {
			o.log.SourceFailure(adapter.Name(), string(sources.CategoryStaff), off.ID.String(), failure.String())
			continue
		}
		if len(members) == 0 {
			o.log.SourceFailure(adapter.Name(), string(sources.CategoryStaff), off.ID.String(), "empty payload")
			continue
		}
		return members, adapter.Provenance()
	}

	o.log.Info("staff fell through to synthesis",
		"official_id", off.ID.String(), "branch", string(off.Branch))
	return synth.Staff(off), sources.ProvenanceSynthesized
}
