package models

import "time"

// SubmissionStatus tracks how far a human reviewer got with an inquiry
type SubmissionStatus string

const (
	SubmissionNew SubmissionStatus = "new"
)

// ContactSubmission is the document written for every accepted contact request
type ContactSubmission struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Subject     string           `json:"subject,omitempty"`
	Message     string           `json:"message"`
	Locale      string           `json:"locale"`
	SubmittedAt time.Time        `json:"submittedAt"`
	Status      SubmissionStatus `json:"status"`
}

// Document converts the submission into a store document of type contactSubmission
func (s ContactSubmission) Document() map[string]any {
	doc := map[string]any{
		"_type":       "contactSubmission",
		"name":        s.Name,
		"email":       s.Email,
		"message":     s.Message,
		"locale":      s.Locale,
		"submittedAt": s.SubmittedAt.UTC().Format(time.RFC3339),
		"status":      string(s.Status),
	}
	if s.Phone != "" {
		doc["phone"] = s.Phone
	}
	if s.Subject != "" {
		doc["subject"] = s.Subject
	}
	return doc
}
