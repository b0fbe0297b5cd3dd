// Package transparencia serves a static reference snapshot of real senate
// office staff records, used when live sources fail. The snapshot is an
// embedded CSV keyed by the senate code embedded in each record's URI.
package transparencia

import (
	"context"
	_ "embed"
	"encoding/csv"
	"strings"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
	"civitas_backend/platform/logger"
)

//go:embed staff_reference.csv
var staffReferenceCSV string

// StaffAdapter answers staff lookups from the embedded reference snapshot.
type StaffAdapter struct {
	records []referenceRecord
	log     *logger.Logger
}

type referenceRecord struct {
	uri      string
	name     string
	position string
	status   string
	hireDate string
}

// NewStaffAdapter parses the embedded snapshot once at construction.
func NewStaffAdapter(log *logger.Logger) (*StaffAdapter, error) {
	records, err := parseReference(staffReferenceCSV)
	if err != nil {
		return nil, err
	}
	return &StaffAdapter{records: records, log: log}, nil
}

func (a *StaffAdapter) Name() string { return "transparencia-csv" }

func (a *StaffAdapter) Provenance() sources.Provenance { return sources.ProvenanceStaticReference }

// FetchStaff returns the reference staff rows whose URI embeds the
// official's senate code.
func (a *StaffAdapter) FetchStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, *sources.Failure) {
	if off.ExternalID == "" {
		return nil, sources.Fail(sources.FailureNotFound, "official has no senate code")
	}

	needle := "/sen/" + off.ExternalID + "/"
	members := make([]sources.StaffMember, 0)
	for _, record := range a.records {
		if !strings.Contains(record.uri, needle) {
			continue
		}
		members = append(members, sources.StaffMember{
			Name:            record.name,
			Position:        record.position,
			EstimatedSalary: synth.SalaryFor(record.position),
			HireDate:        record.hireDate,
			Status:          record.status,
			Source:          sources.ProvenanceStaticReference,
		})
	}

	if len(members) == 0 {
		return nil, sources.Fail(sources.FailureEmptyResult, "official not in reference snapshot")
	}

	return members, nil
}

func parseReference(raw string) ([]referenceRecord, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	records := make([]referenceRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			// Header or short row.
			continue
		}
		status := strings.ToLower(strings.TrimSpace(row[3]))
		if status != "active" && status != "inactive" {
			status = "active"
		}
		records = append(records, referenceRecord{
			uri:      strings.TrimSpace(row[0]),
			name:     strings.TrimSpace(row[1]),
			position: strings.TrimSpace(row[2]),
			status:   status,
			hireDate: strings.TrimSpace(row[4]),
		})
	}

	return records, nil
}
