package municipio

import (
	"context"
	"reflect"
	"testing"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
)

func TestFetchStaff_MayorGetsDeterministicRoster(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:         uuid.MustParse("7d9f4b11-aaaa-4bbb-8ccc-000000000003"),
		ExternalID: "3550308",
		Branch:     officials.BranchMayor,
	}

	first, failure := adapter.FetchStaff(context.Background(), off)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty roster")
	}

	second, _ := adapter.FetchStaff(context.Background(), off)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("roster must be deterministic per official")
	}

	for _, member := range first {
		if member.Source != sources.ProvenanceSynthesized {
			t.Fatalf("member %q tagged %q, want synthesized", member.Name, member.Source)
		}
	}
}

func TestFetchStaff_CouncilorSeatSuffixMatchesRegistry(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:         uuid.New(),
		ExternalID: "3304557-0042",
		Branch:     officials.BranchCouncilor,
	}

	members, failure := adapter.FetchStaff(context.Background(), off)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(members) == 0 {
		t.Fatal("expected a roster for a registry-listed municipality")
	}
}

func TestFetchStaff_RejectsOtherBranches(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:     uuid.New(),
		Branch: officials.BranchFederalDeputy,
	}

	_, failure := adapter.FetchStaff(context.Background(), off)
	if failure == nil || failure.Kind != sources.FailureNotFound {
		t.Fatalf("expected not-found for non-municipal official, got %v", failure)
	}
}

func TestFetchStaff_UnlistedMunicipalityStillGetsRoster(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:         uuid.New(),
		ExternalID: "9999999",
		Branch:     officials.BranchMayor,
	}

	members, failure := adapter.FetchStaff(context.Background(), off)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(members) == 0 {
		t.Fatal("unlisted municipalities still get a roster")
	}
}
