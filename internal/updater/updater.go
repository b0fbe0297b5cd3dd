// Package updater drives the full-directory batch refresh: it partitions
// tracked officials by branch, walks them in fixed-size batches with bounded
// parallelism, and pauses between batches so upstream sources are never
// hammered. The batch size is the sole concurrency bound and the sole
// defense against upstream throttling.
package updater

import (
	"context"
	"fmt"
	"time"

	"civitas_backend/internal/expenses"
	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/internal/staff"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// OfficialStore is the persistence collaborator: identity reads plus the
// summary upsert. The pipeline treats it as a key-value upsert target.
type OfficialStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (officials.Official, error)
	List(ctx context.Context) ([]officials.Official, error)
	UpdateSummaries(ctx context.Context, id uuid.UUID, expenses interface{}, staff interface{}, updatedAt time.Time) error
}

// Resolver is the fallback orchestrator surface the updater needs.
type Resolver interface {
	ResolveExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, sources.Provenance)
	ResolveStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, sources.Provenance)
}

// Result is the final tally of a run.
type Result struct {
	Succeeded int
	Failed    int
	Total     int
}

// taskState tracks one official through the run. States are terminal once
// reached; a failed official is not retried within the same run.
type taskState string

const (
	statePending   taskState = "pending"
	stateFetching  taskState = "fetching"
	stateSucceeded taskState = "succeeded"
	stateFailed    taskState = "failed"
)

// Updater is the batch update scheduler.
type Updater struct {
	store      OfficialStore
	resolver   Resolver
	log        *logger.Logger
	batchSize  int
	batchPause time.Duration
}

// New creates an Updater. batchSize must be at least 1.
func New(store OfficialStore, resolver Resolver, batchSize int, batchPause time.Duration, log *logger.Logger) *Updater {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Updater{
		store:      store,
		resolver:   resolver,
		log:        log,
		batchSize:  batchSize,
		batchPause: batchPause,
	}
}

// Run refreshes every tracked official for the given year and returns the
// final counts. One official's failure never aborts its batch or the run.
func (u *Updater) Run(ctx context.Context, year int) (Result, error) {
	all, err := u.store.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list officials: %w", err)
	}

	ordered := partitionFederalFirst(all)
	result := Result{Total: len(ordered)}
	states := make([]taskState, len(ordered))
	for i := range states {
		states[i] = statePending
	}

	u.log.Info("batch update starting",
		"total", result.Total, "batch_size", u.batchSize, "year", year)

	for start := 0; start < len(ordered); start += u.batchSize {
		end := start + u.batchSize
		if end > len(ordered) {
			end = len(ordered)
		}
		batch := ordered[start:end]

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(u.batchSize)

		for i, off := range batch {
			idx := start + i
			off := off
			states[idx] = stateFetching

			group.Go(func() error {
				if err := u.refreshOfficial(groupCtx, off, year); err != nil {
					states[idx] = stateFailed
					u.log.Warn("official update failed",
						"official_id", off.ID.String(), "name", off.Name, "error", err)
				} else {
					states[idx] = stateSucceeded
				}
				// Always nil: failures are counted, never propagated, so
				// they cannot cancel the rest of the batch.
				return nil
			})
		}

		_ = group.Wait()

		if end < len(ordered) && u.batchPause > 0 {
			select {
			case <-ctx.Done():
				return tally(states, result), ctx.Err()
			case <-time.After(u.batchPause):
			}
		}
	}

	result = tally(states, result)
	u.log.Info("batch update finished",
		"succeeded", result.Succeeded, "failed", result.Failed, "total", result.Total)

	return result, nil
}

// RunOne refreshes a single official outside the batch machinery, for the
// synchronous and queued single-official paths.
func (u *Updater) RunOne(ctx context.Context, id uuid.UUID, year int) error {
	off, err := u.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.refreshOfficial(ctx, off, year)
}

// refreshOfficial is the per-official task: resolve both categories,
// aggregate, persist once. Panics in adapter or aggregation code are
// contained here so a batch can never be torn down by one official.
func (u *Updater) refreshOfficial(ctx context.Context, off officials.Official, year int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic refreshing official: %v", r)
		}
	}()

	now := time.Now().UTC()

	items, expenseProvenance := u.resolver.ResolveExpenses(ctx, off, year)
	expenseSummary := expenses.Summarize(items, expenseProvenance, now)

	members, staffProvenance := u.resolver.ResolveStaff(ctx, off)
	staffSummary := staff.Summarize(members, staffProvenance, now)

	if err := u.store.UpdateSummaries(ctx, off.ID, expenseSummary, staffSummary, now); err != nil {
		return fmt.Errorf("persist summaries: %w", err)
	}

	u.log.Debug("official updated",
		"official_id", off.ID.String(),
		"expense_source", string(expenseProvenance),
		"staff_source", string(staffProvenance))

	return nil
}

// partitionFederalFirst orders officials so federal branches run before
// state and municipal ones; federal upstreams are the most reliable.
func partitionFederalFirst(all []officials.Official) []officials.Official {
	ordered := make([]officials.Official, 0, len(all))
	for _, off := range all {
		if off.Branch.IsFederal() {
			ordered = append(ordered, off)
		}
	}
	for _, off := range all {
		if !off.Branch.IsFederal() {
			ordered = append(ordered, off)
		}
	}
	return ordered
}

func tally(states []taskState, result Result) Result {
	result.Succeeded = 0
	result.Failed = 0
	for _, state := range states {
		switch state {
		case stateSucceeded:
			result.Succeeded++
		case stateFailed:
			result.Failed++
		}
	}
	return result
}
