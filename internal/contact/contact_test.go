package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/store"
)

type fakeCreator struct {
	docs []store.Document
	err  error
}

func (c *fakeCreator) Create(_ context.Context, doc store.Document) (store.CreateResult, error) {
	if c.err != nil {
		return store.CreateResult{}, c.err
	}
	c.docs = append(c.docs, doc)
	return store.CreateResult{ID: "submission-1"}, nil
}

func TestValidateIdentifiesFailingFields(t *testing.T) {
	fields := Request{Name: "A", Email: "bad", Message: "short"}.Validate()

	want := []string{"email", "message", "name"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d field errors, got %+v", len(want), fields)
	}
	for i, f := range fields {
		if f.Field != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], f.Field)
		}
		if f.Message == "" {
			t.Errorf("field %s has no message", f.Field)
		}
	}
}

func TestValidateOptionalFields(t *testing.T) {
	base := Request{Name: "Jane Doe", Email: "jane@example.com", Message: "I would like a quote"}
	if fields := base.Validate(); len(fields) != 0 {
		t.Fatalf("expected valid request, got %+v", fields)
	}

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"bad contact method", Request{Name: base.Name, Email: base.Email, Message: base.Message, ContactMethod: "fax"}, "contactMethod"},
		{"bad locale", Request{Name: base.Name, Email: base.Email, Message: base.Message, Locale: "fr"}, "locale"},
		{"missing email", Request{Name: base.Name, Message: base.Message}, "email"},
		{"multibyte name too short", Request{Name: "Ö", Email: base.Email, Message: base.Message}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.req.Validate()
			if len(fields) != 1 || fields[0].Field != tt.field {
				t.Errorf("expected single %s error, got %+v", tt.field, fields)
			}
		})
	}
}

func TestSubmitCreatesOneDocument(t *testing.T) {
	creator := &fakeCreator{}
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	svc := NewService(creator, WithClock(func() time.Time { return fixed }))

	id, err := svc.Submit(context.Background(), Request{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Service: "garden-maintenance",
		Message: "I would like a quote for garden work",
		Locale:  "de",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if id != "submission-1" {
		t.Errorf("unexpected id %q", id)
	}

	if len(creator.docs) != 1 {
		t.Fatalf("expected exactly one document, got %d", len(creator.docs))
	}
	doc := creator.docs[0]
	if doc["_type"] != "contactSubmission" || doc["status"] != "new" || doc["locale"] != "de" {
		t.Errorf("unexpected document: %v", doc)
	}
	if doc["subject"] != "garden-maintenance" {
		t.Errorf("service should map to subject, got %v", doc["subject"])
	}
	if _, ok := doc["phone"]; ok {
		t.Error("empty phone should be omitted")
	}
	if doc["submittedAt"] != "2026-03-01T08:30:00Z" {
		t.Errorf("expected UTC timestamp, got %v", doc["submittedAt"])
	}
}

func TestSubmitDefaultsLocale(t *testing.T) {
	creator := &fakeCreator{}
	svc := NewService(creator)

	if _, err := svc.Submit(context.Background(), Request{Name: "Jane", Email: "jane@example.com", Message: "Please call me back"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if creator.docs[0]["locale"] != "en" {
		t.Errorf("expected default locale en, got %v", creator.docs[0]["locale"])
	}
}

func TestSubmitErrors(t *testing.T) {
	creator := &fakeCreator{}
	svc := NewService(creator)

	_, err := svc.Submit(context.Background(), Request{Name: "A"})
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(creator.docs) != 0 {
		t.Error("invalid request must not create a document")
	}

	creator.err = store.ErrWriteRejected
	_, err = svc.Submit(context.Background(), Request{Name: "Jane", Email: "jane@example.com", Message: "Please call me back"})
	if !errors.Is(err, store.ErrWriteRejected) {
		t.Errorf("expected wrapped write rejection, got %v", err)
	}
}
