// Package staff estimates office payroll from raw staff rosters, real or
// synthesized, and produces the canonical staff summary.
package staff

import (
	"time"

	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
)

// Summary is the canonical staff summary for one official.
type Summary struct {
	TotalStaff            int                   `json:"total_staff"`
	EstimatedTotalPayroll float64               `json:"estimated_total_payroll"`
	Positions             map[string]int        `json:"positions"`
	Members               []sources.StaffMember `json:"members"`
	Source                sources.Provenance    `json:"source"`
	LastUpdated           time.Time             `json:"last_updated"`
}

// Summarize reduces a roster into a Summary. Members without an estimated
// salary get one from the static position reference table (case-insensitive
// exact match, then substring, then the default salary).
func Summarize(members []sources.StaffMember, provenance sources.Provenance, now time.Time) Summary {
	summary := Summary{
		TotalStaff:  len(members),
		Positions:   make(map[string]int),
		Members:     make([]sources.StaffMember, 0, len(members)),
		Source:      provenance,
		LastUpdated: now,
	}

	for _, member := range members {
		if member.EstimatedSalary == 0 {
			member.EstimatedSalary = synth.SalaryFor(member.Position)
		}
		if member.Status == "" {
			member.Status = "active"
		}
		if member.Source == "" {
			member.Source = provenance
		}

		summary.EstimatedTotalPayroll += member.EstimatedSalary
		summary.Positions[member.Position]++
		summary.Members = append(summary.Members, member)
	}

	return summary
}
