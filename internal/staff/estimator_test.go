package staff

import (
	"testing"
	"time"

	"civitas_backend/internal/sources"
	"civitas_backend/internal/sources/synth"
)

func TestSummarize_PayrollAndPositions(t *testing.T) {
	members := []sources.StaffMember{
		{Name: "A", Position: "Secretário Parlamentar", EstimatedSalary: 8200},
		{Name: "B", Position: "Secretário Parlamentar", EstimatedSalary: 8200},
		{Name: "C", Position: "Motorista", EstimatedSalary: 3200},
	}

	summary := Summarize(members, sources.ProvenanceScrape, time.Now())

	if summary.TotalStaff != 3 {
		t.Fatalf("expected 3 staff, got %d", summary.TotalStaff)
	}
	if summary.EstimatedTotalPayroll != 19600 {
		t.Fatalf("expected payroll 19600, got %v", summary.EstimatedTotalPayroll)
	}
	if summary.Positions["Secretário Parlamentar"] != 2 {
		t.Fatalf("expected 2 secretaries, got %d", summary.Positions["Secretário Parlamentar"])
	}
	if summary.Positions["Motorista"] != 1 {
		t.Fatalf("expected 1 driver, got %d", summary.Positions["Motorista"])
	}
	if summary.Source != sources.ProvenanceScrape {
		t.Fatalf("expected scrape provenance, got %q", summary.Source)
	}
}

func TestSummarize_FillsMissingSalariesFromReferenceTable(t *testing.T) {
	members := []sources.StaffMember{
		{Name: "A", Position: "Motorista"},
		{Name: "B", Position: "cargo totalmente desconhecido"},
	}

	summary := Summarize(members, sources.ProvenanceStaticReference, time.Now())

	if summary.Members[0].EstimatedSalary != 3200 {
		t.Fatalf("expected Motorista filled at 3200, got %v", summary.Members[0].EstimatedSalary)
	}
	if summary.Members[1].EstimatedSalary != synth.DefaultSalary {
		t.Fatalf("expected default salary %v, got %v", synth.DefaultSalary, summary.Members[1].EstimatedSalary)
	}
	if summary.EstimatedTotalPayroll != 3200+synth.DefaultSalary {
		t.Fatalf("expected payroll %v, got %v", 3200+synth.DefaultSalary, summary.EstimatedTotalPayroll)
	}
}

func TestSummarize_DefaultsStatusAndSource(t *testing.T) {
	members := []sources.StaffMember{
		{Name: "A", Position: "Recepcionista"},
		{Name: "B", Position: "Motorista", Status: "inactive", Source: sources.ProvenanceScrape},
	}

	summary := Summarize(members, sources.ProvenanceStaticReference, time.Now())

	if summary.Members[0].Status != "active" {
		t.Fatalf("expected defaulted status active, got %q", summary.Members[0].Status)
	}
	if summary.Members[0].Source != sources.ProvenanceStaticReference {
		t.Fatalf("expected defaulted source, got %q", summary.Members[0].Source)
	}
	if summary.Members[1].Status != "inactive" {
		t.Fatalf("existing status should be kept, got %q", summary.Members[1].Status)
	}
	if summary.Members[1].Source != sources.ProvenanceScrape {
		t.Fatalf("existing source should be kept, got %q", summary.Members[1].Source)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, sources.ProvenanceSynthesized, time.Now())
	if summary.TotalStaff != 0 || summary.EstimatedTotalPayroll != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
