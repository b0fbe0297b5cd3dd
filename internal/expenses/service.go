package expenses

import (
	"context"
	"time"

	"civitas_backend/internal/officials"
	"civitas_backend/internal/sources"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
)

// OfficialReader provides official identities from the directory.
type OfficialReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (officials.Official, error)
}

// SummaryWriter persists derived expense summaries.
type SummaryWriter interface {
	UpdateExpenses(ctx context.Context, id uuid.UUID, expenses interface{}, updatedAt time.Time) error
}

// Resolver is the fallback orchestrator's expense surface.
type Resolver interface {
	ResolveExpenses(ctx context.Context, off officials.Official, year int) ([]sources.ExpenseLineItem, sources.Provenance)
}

// OfficialExpenses is the on-demand response shape.
type OfficialExpenses struct {
	Politician PoliticianDTO `json:"politician"`
	Expenses   Summary       `json:"expenses"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PoliticianDTO is the official identity echoed back on the on-demand path.
type PoliticianDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Branch string    `json:"branch"`
	State  string    `json:"state"`
	Party  string    `json:"party"`
}

// Service runs the synchronous per-official expense path: resolve through
// the fallback chain, aggregate, persist, return.
type Service struct {
	reader   OfficialReader
	writer   SummaryWriter
	resolver Resolver
	log      *logger.Logger
}

// NewService creates the expense service.
func NewService(reader OfficialReader, writer SummaryWriter, resolver Resolver, log *logger.Logger) *Service {
	return &Service{reader: reader, writer: writer, resolver: resolver, log: log}
}

// GetExpenses fetches, aggregates and persists the official's expense
// summary for the year. Source failures never surface here; reduced trust
// shows up only as the summary's provenance tag.
func (s *Service) GetExpenses(ctx context.Context, id uuid.UUID, year int) (OfficialExpenses, error) {
	off, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return OfficialExpenses{}, err
	}

	items, provenance := s.resolver.ResolveExpenses(ctx, off, year)
	now := time.Now().UTC()
	summary := Summarize(items, provenance, now)

	if s.writer != nil {
		if err := s.writer.UpdateExpenses(ctx, off.ID, summary, now); err != nil {
			// Persistence trouble must not break the read path.
			s.log.DatabaseError("update expenses", err)
		}
	}

	return OfficialExpenses{
		Politician: PoliticianDTO{
			ID:     off.ID,
			Name:   off.Name,
			Branch: string(off.Branch),
			State:  off.State,
			Party:  off.Party,
		},
		Expenses:  summary,
		UpdatedAt: now,
	}, nil
}
