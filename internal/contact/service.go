// Package contact forwards contact form submissions to the remote leads
// table. Submissions are fire-and-forget from the site's point of view:
// one formatted payload, one remote write, no retry and no local queue.
package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/Enjoy-Consult/restopro-site-web/internal/airtable"
	"github.com/Enjoy-Consult/restopro-site-web/internal/mapping"
	"github.com/Enjoy-Consult/restopro-site-web/pkg/models"
)

// RecordCreator is the slice of the Airtable client the service writes
// through.
type RecordCreator interface {
	CreateRecord(ctx context.Context, table string, fields map[string]any) (airtable.Record, error)
}

// SubmissionResult carries the remote-assigned identifier of a stored lead.
type SubmissionResult struct {
	ID string `json:"id"`
}

type Service struct {
	store      RecordCreator
	leadsTable string
	now        func() time.Time
}

// NewService builds the submission service. now stamps the contact date
// column and may be nil for the wall clock.
func NewService(store RecordCreator, leadsTable string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, leadsTable: leadsTable, now: now}
}

// Submit formats the request and performs exactly one remote write. Errors
// from the client pass through untouched so the caller can distinguish a
// rejected write from an unreachable upstream.
func (s *Service) Submit(ctx context.Context, req models.ContactRequest) (SubmissionResult, error) {
	fields := mapping.LeadFields(req, s.now())
	rec, err := s.store.CreateRecord(ctx, s.leadsTable, fields)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("submit lead: %w", err)
	}
	return SubmissionResult{ID: rec.ID}, nil
}
