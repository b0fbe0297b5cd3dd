package synth

import (
	"reflect"
	"testing"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"

	"github.com/google/uuid"
)

func TestSalaryFor(t *testing.T) {
	tests := []struct {
		position string
		want     float64
	}{
		{"Secretário Parlamentar", 8200},
		{"secretário parlamentar", 8200},
		{"  MOTORISTA  ", 3200},
		{"Chefe de Gabinete do Deputado", 12800}, // substring match
		{"Assessor", 0},                          // resolved below, ambiguous substring
		{"cargo inexistente qualquer", DefaultSalary},
		{"", DefaultSalary},
	}

	for _, tc := range tests {
		got := SalaryFor(tc.position)
		if tc.position == "Assessor" {
			// "Assessor" is a substring of more than one table key; any
			// table salary is acceptable, just never the default.
			if got == DefaultSalary {
				t.Fatalf("SalaryFor(%q) fell through to default", tc.position)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("SalaryFor(%q) = %v, want %v", tc.position, got, tc.want)
		}
	}
}

func TestSalaryFor_ExactBeatsSubstring(t *testing.T) {
	// "Assessor Parlamentar" is itself a table key and also a substring of
	// nothing else; the exact match must win with its own salary.
	if got := SalaryFor("Assessor Parlamentar"); got != 6100 {
		t.Fatalf("SalaryFor exact match = %v, want 6100", got)
	}
}

func TestStaff_DeterministicPerOfficial(t *testing.T) {
	off := officials.Official{
		ID:     uuid.MustParse("3f8f9a3c-66a1-4b43-9d93-111111111111"),
		Branch: officials.BranchFederalSenator,
		Name:   "Senador Exemplo",
	}

	first := Staff(off)
	second := Staff(off)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("synthesized roster is not deterministic for the same official")
	}
}

func TestStaff_BandBounds(t *testing.T) {
	tests := []struct {
		branch   officials.Branch
		min, max int
	}{
		{officials.BranchFederalDeputy, 8, 17},
		{officials.BranchFederalSenator, 10, 24},
		{officials.BranchStateDeputy, 6, 14},
		{officials.BranchCouncilor, 3, 9},
	}

	for _, tc := range tests {
		for i := 0; i < 20; i++ {
			off := officials.Official{ID: uuid.New(), Branch: tc.branch}
			roster := Staff(off)
			if len(roster) < tc.min || len(roster) > tc.max {
				t.Fatalf("branch %q roster size %d outside [%d, %d]",
					tc.branch, len(roster), tc.min, tc.max)
			}
		}
	}
}

func TestStaff_MembersAreTaggedSynthesized(t *testing.T) {
	off := officials.Official{ID: uuid.New(), Branch: officials.BranchFederalDeputy}
	for _, member := range Staff(off) {
		if member.Source != sources.ProvenanceSynthesized {
			t.Fatalf("member %q tagged %q, want synthesized", member.Name, member.Source)
		}
		if member.EstimatedSalary <= 0 {
			t.Fatalf("member %q has no salary", member.Name)
		}
	}
}

func TestExpenses_DeterministicAndWithinYear(t *testing.T) {
	off := officials.Official{ID: uuid.MustParse("3f8f9a3c-66a1-4b43-9d93-222222222222")}

	first := Expenses(off, 2025)
	second := Expenses(off, 2025)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("synthesized expenses are not deterministic")
	}

	for _, item := range first {
		if item.Date.Year() != 2025 {
			t.Fatalf("item dated %v outside requested year", item.Date)
		}
		if item.NetValue <= 0 {
			t.Fatalf("item %q has non-positive value %v", item.Category, item.NetValue)
		}
	}

	other := Expenses(off, 2024)
	if reflect.DeepEqual(first, other) {
		t.Fatal("different years should synthesize different payloads")
	}
}
