package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/store"
)

// Creator writes one document to the content store
type Creator interface {
	Create(ctx context.Context, doc store.Document) (store.CreateResult, error)
}

// Service turns valid requests into contact submissions
type Service struct {
	creator Creator
	now     func() time.Time
}

// Option configures the service
type Option func(*Service)

// WithClock overrides the submission timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a contact service writing through creator
func NewService(creator Creator, opts ...Option) *Service {
	s := &Service{creator: creator, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the request and creates exactly one submission document.
// Invalid requests fail with *ValidationError; store failures are wrapped.
func (s *Service) Submit(ctx context.Context, req Request) (string, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}

	locale := req.Locale
	if locale == "" {
		locale = string(i18n.DefaultLocale)
	}

	submission := models.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Service,
		Message:     req.Message,
		Locale:      locale,
		SubmittedAt: s.now().UTC(),
		Status:      models.SubmissionNew,
	}

	result, err := s.creator.Create(ctx, store.Document(submission.Document()))
	if err != nil {
		return "", fmt.Errorf("failed to save contact submission: %w", err)
	}

	slog.Info("contact submission saved", "id", result.ID, "locale", locale)
	return result.ID, nil
}
