package updater

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeStore struct {
	mu        sync.Mutex
	officials []officials.Official
	persisted []uuid.UUID
	failOn    map[uuid.UUID]error
	listErr   error
}

func (s *fakeStore) GetByID(_ context.Context, id uuid.UUID) (officials.Official, error) {
	for _, off := range s.officials {
		if off.ID == id {
			return off, nil
		}
	}
	return officials.Official{}, errors.New("not found")
}

func (s *fakeStore) List(_ context.Context) ([]officials.Official, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.officials, nil
}

func (s *fakeStore) UpdateSummaries(_ context.Context, id uuid.UUID, _ interface{}, _ interface{}, _ time.Time) error {
	if err := s.failOn[id]; err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = append(s.persisted, id)
	return nil
}

type fakeResolver struct {
	mu       sync.Mutex
	resolved []uuid.UUID
	panicOn  uuid.UUID
}

func (r *fakeResolver) ResolveExpenses(_ context.Context, off officials.Official, _ int) ([]sources.ExpenseLineItem, sources.Provenance) {
	if off.ID == r.panicOn {
		panic("adapter blew up")
	}
	r.mu.Lock()
	r.resolved = append(r.resolved, off.ID)
	r.mu.Unlock()
	return []sources.ExpenseLineItem{{Category: "Telefonia", NetValue: 100}}, sources.ProvenanceOfficialAPI
}

func (r *fakeResolver) ResolveStaff(_ context.Context, off officials.Official) ([]sources.StaffMember, sources.Provenance) {
	return []sources.StaffMember{{Name: "Ana", Position: "Motorista"}}, sources.ProvenanceScrape
}

func makeOfficials(branches ...officials.Branch) []officials.Official {
	all := make([]officials.Official, 0, len(branches))
	for i, branch := range branches {
		all = append(all, officials.Official{
			ID:     uuid.New(),
			Branch: branch,
			Name:   "Oficial " + string(rune('A'+i)),
		})
	}
	return all
}

func TestRun_AllSucceed(t *testing.T) {
	store := &fakeStore{officials: makeOfficials(
		officials.BranchFederalDeputy,
		officials.BranchFederalSenator,
		officials.BranchStateDeputy,
		officials.BranchCouncilor,
		officials.BranchFederalDeputy,
	)}

	u := New(store, &fakeResolver{}, 3, 0, logger.New("test"))

	result, err := u.Run(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 5 || result.Succeeded != 5 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(store.persisted) != 5 {
		t.Fatalf("expected 5 persists, got %d", len(store.persisted))
	}
}

func TestRun_OneFailureDoesNotBlockOthers(t *testing.T) {
	all := makeOfficials(
		officials.BranchFederalDeputy,
		officials.BranchFederalSenator,
		officials.BranchStateDeputy,
		officials.BranchCouncilor,
		officials.BranchMayor,
	)
	store := &fakeStore{
		officials: all,
		failOn:    map[uuid.UUID]error{all[1].ID: errors.New("write refused")},
	}

	u := New(store, &fakeResolver{}, 3, 0, logger.New("test"))

	result, err := u.Run(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 5 || result.Succeeded != 4 || result.Failed != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	for _, id := range store.persisted {
		if id == all[1].ID {
			t.Fatal("failing official must not appear in persisted set")
		}
	}
}

func TestRun_PanicIsContained(t *testing.T) {
	all := makeOfficials(
		officials.BranchFederalDeputy,
		officials.BranchFederalSenator,
		officials.BranchStateDeputy,
	)
	store := &fakeStore{officials: all}
	resolver := &fakeResolver{panicOn: all[0].ID}

	u := New(store, resolver, 2, 0, logger.New("test"))

	result, err := u.Run(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Succeeded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRun_FederalOfficialsProcessedFirst(t *testing.T) {
	all := makeOfficials(
		officials.BranchCouncilor,
		officials.BranchFederalSenator,
		officials.BranchMayor,
		officials.BranchFederalDeputy,
	)
	store := &fakeStore{officials: all}
	resolver := &fakeResolver{}

	// Batch size 1 serializes the run so resolve order is observable.
	u := New(store, resolver, 1, 0, logger.New("test"))

	if _, err := u.Run(context.Background(), 2025); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(resolver.resolved) != 4 {
		t.Fatalf("expected 4 resolves, got %d", len(resolver.resolved))
	}
	if resolver.resolved[0] != all[1].ID || resolver.resolved[1] != all[3].ID {
		t.Fatalf("federal officials must run first, got order %v", resolver.resolved)
	}
}

func TestRun_PausesBetweenBatches(t *testing.T) {
	store := &fakeStore{officials: makeOfficials(
		officials.BranchFederalDeputy,
		officials.BranchFederalDeputy,
		officials.BranchFederalDeputy,
		officials.BranchFederalDeputy,
	)}

	pause := 50 * time.Millisecond
	u := New(store, &fakeResolver{}, 2, pause, logger.New("test"))

	start := time.Now()
	if _, err := u.Run(context.Background(), 2025); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 4 officials at batch size 2 means exactly one inter-batch pause.
	if elapsed := time.Since(start); elapsed < pause {
		t.Fatalf("run finished in %v, expected at least one %v pause", elapsed, pause)
	}
}

func TestRun_ListErrorAborts(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}
	u := New(store, &fakeResolver{}, 3, 0, logger.New("test"))

	if _, err := u.Run(context.Background(), 2025); err == nil {
		t.Fatal("expected error when listing officials fails")
	}
}

func TestRunOne(t *testing.T) {
	all := makeOfficials(officials.BranchFederalDeputy)
	store := &fakeStore{officials: all}
	u := New(store, &fakeResolver{}, 3, 0, logger.New("test"))

	if err := u.RunOne(context.Background(), all[0].ID, 2025); err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if len(store.persisted) != 1 || store.persisted[0] != all[0].ID {
		t.Fatalf("expected one persist for the official, got %v", store.persisted)
	}

	if err := u.RunOne(context.Background(), uuid.New(), 2025); err == nil {
		t.Fatal("expected error for unknown official")
	}
}
