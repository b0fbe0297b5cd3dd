// Package officials defines the elected-official directory model consumed by
// the aggregation pipeline. Officials are created and edited by the directory
// CRUD layer; this pipeline only reads identities and writes back summaries.
package officials

import (
	"github.com/google/uuid"
)

// Branch identifies the office an official holds. It determines which
// upstream sources can serve data for the official.
type Branch string

const (
	BranchFederalDeputy  Branch = "federal-deputy"
	BranchFederalSenator Branch = "federal-senator"
	BranchStateDeputy    Branch = "state-deputy"
	BranchMayor          Branch = "mayor"
	BranchCouncilor      Branch = "councilor"
)

// IsFederal reports whether the branch is served by federal sources, which
// are the most reliable and therefore processed first in batch runs.
func (b Branch) IsFederal() bool {
	return b == BranchFederalDeputy || b == BranchFederalSenator
}

// Official is one tracked elected representative.
type Official struct {
	ID         uuid.UUID
	ExternalID string // upstream identifier, source-specific
	Branch     Branch
	State      string
	Party      string
	Name       string
}
