package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Donation bounds of the contributor form, in whole dollars.
const (
	MinDonation  = 5
	MaxDonation  = 2000
	DonationStep = 5
)

// Answers accepted by the legal disclosure questions.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// Branches a state contractor may be tied to.
const (
	BranchLegislative = "Legislative"
	BranchExecutive   = "Executive"
)

// SubmissionRecord is the Connecticut SEEC individual contributor form as
// entered by the donor. JSON keys match the form input names.
type SubmissionRecord struct {
	FirstName          string   `json:"your-first-name"`
	MiddleInitial      string   `json:"text-initial"`
	LastName           string   `json:"your-last-name"`
	Email              string   `json:"your-email"`
	Phone              string   `json:"tel-number"`
	Donation           int      `json:"donation"`
	Street             string   `json:"your-street"`
	City               string   `json:"your-city"`
	State              string   `json:"your-state"`
	Zip                string   `json:"your-zip"`
	Under18            bool     `json:"checkbox-under18"`
	Age                string   `json:"text-age"`
	Employer           string   `json:"employer"`
	Occupation         string   `json:"occupation"`
	Lobbyist           string   `json:"checkbox-lobby"`
	LobbyistSpouse     string   `json:"checkbox-spouse"`
	ElectedOfficial    string   `json:"checkbox-elected"`
	Contractor         string   `json:"checkbox-contractor"`
	ContractorBranches []string `json:"checkbox-branch"`
	ContractorOfficial string   `json:"checkbox-contractor-official"`
	PrequalHolder      string   `json:"checkbox-holder"`
	Signature          string   `json:"digital-signature"`
}

// DonorName is the name used in the donor greeting.
func (r SubmissionRecord) DonorName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// LastSubmission is the snapshot kept under lastSEECSubmission for the
// thank-you page, including the outcome of both notification dispatches.
type LastSubmission struct {
	ID               string           `json:"id,omitempty"`
	FormData         SubmissionRecord `json:"formData"`
	NotificationSent bool             `json:"notificationSent"`
	ConfirmationSent bool             `json:"confirmationSent"`
	Timestamp        time.Time        `json:"timestamp"`
}

// StoredSubmission is one archived contributor form.
type StoredSubmission struct {
	ID               string           `json:"id"`
	Record           SubmissionRecord `json:"record"`
	NotificationSent bool             `json:"notification_sent"`
	ConfirmationSent bool             `json:"confirmation_sent"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ValidationError reports every rejected field of a form at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a problem with field; the first message per field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil returns e when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
