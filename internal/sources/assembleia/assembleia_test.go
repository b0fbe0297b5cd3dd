package assembleia

import (
	"context"
	"reflect"
	"testing"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
)

func TestFetchStaff_StateDeputyGetsDeterministicRoster(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:         uuid.MustParse("7d9f4b11-aaaa-4bbb-8ccc-000000000002"),
		ExternalID: "SP-001",
		Branch:     officials.BranchStateDeputy,
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

func TestFetchStaff_RejectsOtherBranches(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:     uuid.New(),
		Branch: officials.BranchFederalSenator,
	}

	_, failure := adapter.FetchStaff(context.Background(), off)
	if failure == nil || failure.Kind != sources.FailureNotFound {
		t.Fatalf("expected not-found for non-state-deputy, got %v", failure)
	}
}

func TestFetchStaff_UnlistedStateDeputyStillGetsRoster(t *testing.T) {
	adapter := NewStaffAdapter(logger.New("test"))

	off := officials.Official{
		ID:         uuid.New(),
		ExternalID: "XX-999",
		Branch:     officials.BranchStateDeputy,
	}

	members, failure := adapter.FetchStaff(context.Background(), off)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(members) == 0 {
		t.Fatal("unlisted state deputies still get a synthetic roster")
	}
}
