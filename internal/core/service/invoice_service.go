package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// InvoiceService generates invoice documents from scoped, aggregated work.
type InvoiceService struct {
	projects ports.ProjectRepository
	entries  ports.WorkEntryRepository
	prices   ports.PriceRepository
	renderer ports.InvoiceRenderer
	log      zerolog.Logger
}

func NewInvoiceService(
	projects ports.ProjectRepository,
	entries ports.WorkEntryRepository,
	prices ports.PriceRepository,
	renderer ports.InvoiceRenderer,
	log zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		projects: projects,
		entries:  entries,
		prices:   prices,
		renderer: renderer,
		log:      log,
	}
}

// Generate builds the invoice for one project. The actor must own the
// project (or be a super admin); the rate table is always the project
// owner's price list, whoever is asking. Generation is a pure, synchronous
// transform; the only failure mode beyond authorization is a missing
// template, which is fatal for the request.
func (s *InvoiceService) Generate(ctx context.Context, actor domain.Actor, projectID string) (*ports.InvoiceResult, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(actor, project.ManagedBy) {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.ListForProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.List(ctx, domain.Scope{Mode: domain.ScopeOwned, OwnerID: project.ManagedBy})
	if err != nil {
		return nil, err
	}

	items, totals := Aggregate(entries, BuildRateTable(prices))

	content, err := s.renderer.Render(project, items, totals)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", project.ID).Msg("invoice rendering failed")
		return nil, err
	}

	s.log.Info().
		Str("project_id", project.ID).
		Int("line_items", len(items)).
		Str("total_amount", totals.Amount.StringFixed(2)).
		Msg("invoice generated")

	return &ports.InvoiceResult{
		Filename: invoiceFilename(project.Name, time.Now().UTC()),
		Content:  content,
	}, nil
}

// invoiceFilename is deterministic given the project name and date.
func invoiceFilename(projectName string, date time.Time) string {
	return fmt.Sprintf("Invoice_%s_%s.xlsx", projectName, date.Format("2006-01-02"))
}
