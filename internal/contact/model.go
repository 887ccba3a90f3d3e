package contact

import (
	"net/http"
	"regexp"
	"strings"
)

// Form field names as submitted by the website contact form.
const (
	fieldName            = "name"
	fieldEmail           = "email"
	fieldPhone           = "phone"
	fieldCompany         = "company"
	fieldExistingWebsite = "existing_website"
	fieldInterest        = "interest"
	fieldService         = "service"
	fieldBudget          = "budget"
	fieldMessage         = "message"
	fieldConsent         = "consent"
	fieldPackage         = "selected_package"
	fieldSelectedService = "selected_service"
	fieldHoneypot        = "_gotcha"
)

// Submission is the canonical parsed contact form. Missing fields are empty
// strings so composition can treat absence uniformly. A Submission is
// read-only once built.
type Submission struct {
	Name            string
	Email           string
	Phone           string
	Company         string
	ExistingWebsite string
	Interest        string
	Service         string
	Budget          string
	Message         string
	Consent         string
	SelectedPackage string
	SelectedService string
}

// SubmissionFromRequest reads every recognized field from the parsed form.
// The request form must already be parsed.
func SubmissionFromRequest(r *http.Request) Submission {
	return Submission{
		Name:            r.FormValue(fieldName),
		Email:           r.FormValue(fieldEmail),
		Phone:           r.FormValue(fieldPhone),
		Company:         r.FormValue(fieldCompany),
		ExistingWebsite: r.FormValue(fieldExistingWebsite),
		Interest:        r.FormValue(fieldInterest),
		Service:         r.FormValue(fieldService),
		Budget:          r.FormValue(fieldBudget),
		Message:         r.FormValue(fieldMessage),
		Consent:         r.FormValue(fieldConsent),
		SelectedPackage: r.FormValue(fieldPackage),
		SelectedService: r.FormValue(fieldSelectedService),
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the required-field checks in order; the first failure
// wins. All other fields are optional and unchecked.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		return ErrInvalidEmail
	}
	return nil
}
