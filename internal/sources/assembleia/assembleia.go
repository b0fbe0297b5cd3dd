// Package assembleia covers state assembly staff rosters. No state assembly
// exposes a stable machine-readable roster today, so this adapter returns a
// clearly tagged synthetic roster built around a fixed reference list of
// real state officials' names and parties. Synthetic rows are never mixed
// with real data from another source.
package assembleia

import (
	"context"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
	"civitas_backend/platform/logger"
)

// referenceOfficials is a small fixed list of real state deputies used to
// keep placeholder rosters anchored to plausible offices. Only names and
// parties are reference data; the rosters themselves are synthetic.
var referenceOfficials = map[string]struct {
	Name  string
	Party string
}{
	"SP-001": {"Janaina Paschoal", "PRTB"},
	"SP-002": {"Arthur do Val", "Patriota"},
	"MG-001": {"Bruno Engler", "PL"},
	"RJ-001": {"Renata Souza", "PSOL"},
	"RS-001": {"Luciana Genro", "PSOL"},
	"BA-001": {"Robinson Almeida", "PT"},
}

// StaffAdapter returns synthetic assembly office rosters.
type StaffAdapter struct {
	log *logger.Logger
}

// NewStaffAdapter creates the state assembly staff adapter.
func NewStaffAdapter(log *logger.Logger) *StaffAdapter {
	return &StaffAdapter{log: log}
}

func (a *StaffAdapter) Name() string { return "assembleia" }

func (a *StaffAdapter) Provenance() sources.Provenance { return sources.ProvenanceSynthesized }

// FetchStaff returns a deterministic synthetic roster for the official.
// Officials outside the reference list still get a roster; the reference
// entry only confirms the assembly office exists.
func (a *StaffAdapter) FetchStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, *sources.Failure) {
	if off.Branch != officials.BranchStateDeputy {
		return nil, sources.Fail(sources.FailureNotFound, "not a state deputy")
	}

	if _, ok := referenceOfficials[off.ExternalID]; !ok {
		a.log.SourceFailure(a.Name(), string(sources.CategoryStaff), off.ID.String(), "official not in assembly reference list")
	}

	members := synth.Staff(off)
	if len(members) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, "empty synthetic roster")
	}

	return members, nil
}
