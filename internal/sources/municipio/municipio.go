// Package municipio covers municipal offices through the mayoral results
// registry. The registry records who won each city hall, not who works in
// it, so rosters are generated and clearly tagged; the registry entries only
// anchor them to real offices. Records are keyed by IBGE municipality code.
package municipio

import (
	"context"
	"strings"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
	"civitas_backend/platform/logger"
)

// registryRecord is one mayoral election result from the registry snapshot.
type registryRecord struct {
	Municipality string
	Mayor        string
	Party        string
}

// mayoralResults is a fixed snapshot of the 2024 municipal election winners
// for the largest tracked municipalities, keyed by IBGE code.
var mayoralResults = map[string]registryRecord{
	"3550308": {"São Paulo", "Ricardo Nunes", "MDB"},
	"3304557": {"Rio de Janeiro", "Eduardo Paes", "PSD"},
	"3106200": {"Belo Horizonte", "Fuad Noman", "PSD"},
	"2927408": {"Salvador", "Bruno Reis", "União Brasil"},
	"2304400": {"Fortaleza", "Evandro Leitão", "PT"},
	"4106902": {"Curitiba", "Eduardo Pimentel", "PSD"},
}

// StaffAdapter returns municipal office rosters anchored to the registry.
type StaffAdapter struct {
	log *logger.Logger
}

// NewStaffAdapter creates the municipal registry staff adapter.
func NewStaffAdapter(log *logger.Logger) *StaffAdapter {
	return &StaffAdapter{log: log}
}

func (a *StaffAdapter) Name() string { return "municipio-registry" }

func (a *StaffAdapter) Provenance() sources.Provenance { return sources.ProvenanceSynthesized }

// FetchStaff returns a deterministic roster for the mayor's or councilor's
// office. Officials outside the registry snapshot still get a roster; the
// registry entry only confirms the office exists.
func (a *StaffAdapter) FetchStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, *sources.Failure) {
	if off.Branch != officials.BranchMayor && off.Branch != officials.BranchCouncilor {
		return nil, sources.Fail(sources.FailureNotFound, "not a municipal official")
	}

	if _, ok := mayoralResults[municipalityCode(off.ExternalID)]; !ok {
		a.log.SourceFailure(a.Name(), string(sources.CategoryStaff), off.ID.String(), "municipality not in results registry")
	}

	members := synth.Staff(off)
	if len(members) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, "empty roster")
	}

	return members, nil
}

// municipalityCode extracts the IBGE code from an external id. Councilor ids
// carry a seat suffix after the code, e.g. "3550308-0042".
func municipalityCode(externalID string) string {
	if idx := strings.IndexByte(externalID, '-'); idx >= 0 {
		return externalID[:idx]
	}
	return externalID
}
