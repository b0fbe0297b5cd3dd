package staff

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

// SummaryWriter persists derived staff summaries.
type SummaryWriter interface {
	UpdateStaff(ctx context.Context, id uuid.UUID, staff interface{}, updatedAt time.Time) error
}

// Resolver is the fallback orchestrator's staff surface.
type Resolver interface {
	ResolveStaff(ctx context.Context, off officials.Official) ([]sources.StaffMember, sources.Provenance)
}

// PoliticianDTO is the official identity echoed back on the on-demand path.
type PoliticianDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Branch string    `json:"branch"`
	State  string    `json:"state"`
	Party  string    `json:"party"`
}

// OfficialStaff is the on-demand response shape.
type OfficialStaff struct {
	Politician PoliticianDTO `json:"politician"`
	Staff      Summary       `json:"staff"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Service runs the synchronous per-official staff path.
type Service struct {
	reader   OfficialReader
	writer   SummaryWriter
	resolver Resolver
	log      *logger.Logger
}

// NewService creates the staff service.
func NewService(reader OfficialReader, writer SummaryWriter, resolver Resolver, log *logger.Logger) *Service {
	return &Service{reader: reader, writer: writer, resolver: resolver, log: log}
}

// GetStaff fetches, estimates and persists the official's staff summary.
func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (OfficialStaff, error) {
	off, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return OfficialStaff{}, err
	}

	members, provenance := s.resolver.ResolveStaff(ctx, off)
	now := time.Now().UTC()
	summary := Summarize(members, provenance, now)

	if s.writer != nil {
		if err := s.writer.UpdateStaff(ctx, off.ID, summary, now); err != nil {
			s.log.DatabaseError("update staff", err)
		}
	}

	return OfficialStaff{
		Politician: PoliticianDTO{
			ID:     off.ID,
			Name:   off.Name,
			Branch: string(off.Branch),
			State:  off.State,
			Party:  off.Party,
		},
		Staff:     summary,
		UpdatedAt: now,
	}, nil
}
