// File: models/lead.go
package models

import "time"

// Profession is the closed set of partner professions on the join form.
type Profession string

const (
	ProfessionDealer        Profession = "Dealer"
	ProfessionArchitect     Profession = "Architect"
	ProfessionCivilEngineer Profession = "Civil Engineer"
	ProfessionContractor    Profession = "Contractor"
	ProfessionOther         Profession = "Other"
)

// Professions lists every accepted profession value.
var Professions = []Profession{
	ProfessionDealer,
	ProfessionArchitect,
	ProfessionCivilEngineer,
	ProfessionContractor,
	ProfessionOther,
}

// ValidProfession reports whether v is a member of the profession set.
func ValidProfession(v string) bool {
	for _, p := range Professions {
		if string(p) == v {
			return true
		}
	}
	return false
}

// Lead is a prospective-partner submission captured through the join form.
// It is constructed once per successful submission and never updated.
type Lead struct {
	ID              string     `bson:"id" json:"id" firestore:"id"`
	FirstName       string     `bson:"firstName" json:"firstName" firestore:"firstName"`
	LastName        string     `bson:"lastName" json:"lastName" firestore:"lastName"`
	ContactNumber   string     `bson:"contactNumber" json:"contactNumber" firestore:"contactNumber"`
	Profession      Profession `bson:"profession" json:"profession" firestore:"profession"`
	OtherProfession string     `bson:"otherProfession,omitempty" json:"otherProfession,omitempty" firestore:"otherProfession,omitempty"`
	State           string     `bson:"state" json:"state" firestore:"state"`
	City            string     `bson:"city" json:"city" firestore:"city"`
	Pincode         string     `bson:"pincode" json:"pincode" firestore:"pincode"`
	RecaptchaToken  string     `bson:"recaptchaToken" json:"recaptchaToken" firestore:"recaptchaToken"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
}

// SubmissionStatus tracks one submission attempt through the pipeline.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSucceeded  SubmissionStatus = "succeeded"
	StatusFailed     SubmissionStatus = "failed"
)

// SubmissionRequest carries the raw form fields of one join-request attempt.
type SubmissionRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ContactNumber   string `json:"contactNumber"`
	Profession      string `json:"profession"`
	OtherProfession string `json:"otherProfession"`
	State           string `json:"state"`
	City            string `json:"city"`
	Pincode         string `json:"pincode"`
	RecaptchaToken  string `json:"recaptchaToken"`
	RemoteIP        string `json:"-"`
}

// SubmissionResult is the terminal state of one attempt, rendered to the caller.
type SubmissionResult struct {
	Status      SubmissionStatus  `json:"status"`
	LeadID      string            `json:"leadId,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	ErrorCode   string            `json:"errorCode,omitempty"`
	Error       string            `json:"error,omitempty"`
}
