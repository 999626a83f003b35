package server

import (
	"net/http"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/contact"
	"github.com/rentany/site/internal/ui"
)

// sentParam marks the post-submission confirmation view of the contact page.
const sentParam = "sent"

type feature struct {
	Title       string
	Description string
}

type stat struct {
	Value string
	Label string
}

type homeContent struct {
	Headline string
	Features []feature
	Stats    []stat
}

type aboutContent struct {
	Mission string
	Values  []feature
}

var home = homeContent{
	Headline: "Find Your Perfect Rental",
	Features: []feature{
		{"Verified Listings", "Every property is checked by our team before it goes live."},
		{"Secure Payments", "Pay deposits and rent through a protected checkout."},
		{"Local Support", "Talk to people who know your neighbourhood."},
	},
	Stats: []stat{
		{"10K+", "Active Listings"},
		{"50K+", "Happy Renters"},
		{"200+", "Cities"},
		{"24/7", "Support"},
	},
}

var about = aboutContent{
	Mission: "We connect renters and property owners through a marketplace built on trust and transparency.",
	Values: []feature{
		{"Trust", "Clear terms and verified owners on every listing."},
		{"Simplicity", "From search to signed lease in a few steps."},
		{"Community", "Rentals that work for tenants and owners alike."},
	},
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) error {
	return s.render(w, r, http.StatusOK, "home", "", home)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) error {
	return s.render(w, r, http.StatusOK, "about", "About", about)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) error {
	return s.render(w, r, http.StatusNotFound, "error", "Page Not Found", ui.NotFoundErrorDisplay())
}

// contactField is the view model of one contact form input.
type contactField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Required    bool
	Multiline   bool
	Value       string
	Error       string
	Class       string
}

type contactContent struct {
	Submitted    bool
	Fields       []contactField
	ContactEmail string
	ContactLink  string
	SupportEmail string
	SupportLink  string
}

type fieldSpec struct {
	label       string
	inputType   string
	placeholder string
	required    bool
	multiline   bool
}

var contactFieldSpecs = map[contact.Field]fieldSpec{
	contact.FieldName:    {"Full Name", "text", "John Doe", true, false},
	contact.FieldEmail:   {"Email Address", "email", "john@example.com", true, false},
	contact.FieldPhone:   {"Phone Number", "tel", "+1 (555) 123-4567", false, false},
	contact.FieldSubject: {"Subject", "text", "How can we help?", true, false},
	contact.FieldMessage: {"Message", "", "Tell us more about your inquiry...", true, true},
}

func (s *Server) contactContent(state *contact.State) contactContent {
	fields := make([]contactField, 0, len(contact.Fields))
	for _, f := range contact.Fields {
		spec := contactFieldSpecs[f]
		errMsg := state.Errors.Get(f)
		class := ui.InputClass(ui.InputDefault, ui.SizeMedium, errMsg)
		if spec.multiline {
			class = ui.TextareaClass(ui.InputDefault, errMsg)
		}
		fields = append(fields, contactField{
			Name:        string(f),
			Label:       spec.label,
			Type:        spec.inputType,
			Placeholder: spec.placeholder,
			Required:    spec.required,
			Multiline:   spec.multiline,
			Value:       state.Form.Value(f),
			Error:       errMsg,
			Class:       class,
		})
	}
	return contactContent{
		Submitted:    state.Submitted,
		Fields:       fields,
		ContactEmail: s.site.ContactEmail,
		ContactLink:  s.site.ContactLink,
		SupportEmail: s.site.SupportEmail,
		SupportLink:  s.site.SupportLink,
	}
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) error {
	state := contact.NewState()
	state.Submitted = r.URL.Query().Get(sentParam) == "1"
	return s.render(w, r, http.StatusOK, "contact", "Contact", s.contactContent(state))
}

// handleContactSubmit validates a posted form. Invalid input re-renders the
// form with per-field errors; a successful submission redirects to the
// confirmation view so a reload cannot resubmit.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		return apperr.New("invalid contact form body",
			apperr.WithCode(apperr.CodeValidation),
			apperr.WithStatus(http.StatusBadRequest),
			apperr.WithCause(err),
		)
	}

	state := contact.NewState()
	state.Apply(contact.FormFromValues(r.PostForm))
	form := state.Form

	ok, err := state.Submit(r.Context(), s.submitter)
	if err != nil {
		return submissionError(err)
	}
	if !ok {
		return s.render(w, r, http.StatusUnprocessableEntity, "contact", "Contact", s.contactContent(state))
	}

	s.submitted(form)
	http.Redirect(w, r, "/contact?"+sentParam+"=1", http.StatusSeeOther)
	return nil
}

// submissionError is the error for a submitter failure, shared by the form
// and the JSON API so both report it the same way.
func submissionError(cause error) *apperr.Error {
	e := apperr.NetworkError("contact submission failed", http.StatusBadGateway)
	e.Cause = cause
	return e
}

func (s *Server) submitted(form contact.Form) {
	s.logger.Info("contact form submitted", "subject", form.Subject)
	if s.onSubmit != nil {
		s.onSubmit(form)
	}
}
