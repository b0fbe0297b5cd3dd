package transparencia

import (
	"context"
	"testing"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"
)

func TestFetchStaff_KnownSenateCode(t *testing.T) {
	adapter, err := NewStaffAdapter(logger.New("test"))
	if err != nil {
		t.Fatalf("NewStaffAdapter: %v", err)
	}

	off := officials.Official{ExternalID: "5672", Branch: officials.BranchFederalSenator}
	members, failure := adapter.FetchStaff(context.Background(), off)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(members) != 6 {
		t.Fatalf("expected 6 reference rows for code 5672, got %d", len(members))
	}

	for _, member := range members {
		if member.Source != sources.ProvenanceStaticReference {
			t.Fatalf("member %q tagged %q, want static-reference", member.Name, member.Source)
		}
		if member.EstimatedSalary <= 0 {
			t.Fatalf("member %q has no estimated salary", member.Name)
		}
	}

	var inactive int
	for _, member := range members {
		if member.Status == "inactive" {
			inactive++
		}
	}
	if inactive != 1 {
		t.Fatalf("expected 1 inactive member for code 5672, got %d", inactive)
	}
}

func TestFetchStaff_CodeMatchIsPathSegmentBound(t *testing.T) {
	adapter, err := NewStaffAdapter(logger.New("test"))
	if err != nil {
		t.Fatalf("NewStaffAdapter: %v", err)
	}

	// "567" is a prefix of code 5672 but no record belongs to it; the match
	// must require the full /sen/<code>/ segment.
	off := officials.Official{ExternalID: "567", Branch: officials.BranchFederalSenator}
	_, failure := adapter.FetchStaff(context.Background(), off)
	if failure == nil || failure.Kind != sources.FailureEmptyResult {
		t.Fatalf("expected empty-result for prefix code, got %v", failure)
	}
}

func TestFetchStaff_MissingExternalID(t *testing.T) {
	adapter, err := NewStaffAdapter(logger.New("test"))
	if err != nil {
		t.Fatalf("NewStaffAdapter: %v", err)
	}

	_, failure := adapter.FetchStaff(context.Background(), officials.Official{})
	if failure == nil || failure.Kind != sources.FailureNotFound {
		t.Fatalf("expected not-found failure, got %v", failure)
	}
}
