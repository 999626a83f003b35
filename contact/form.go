// Package contact implements the contact form: field validation, per-field
// error bookkeeping and the simulated submission flow.
//
// The package is transport agnostic. The HTTP layer builds a [State] from
// posted values, calls [State.Submit] and renders whatever the state says.
package contact

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names a single input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// minMessageLength is the minimum trimmed message length, counted in runes.
const minMessageLength = 10

// Validation messages. They double as message catalog keys for translation.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgSubjectRequired = "Subject is required"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters long"
	MsgPhoneInvalid    = "Please enter a valid phone number"
)

// notSpaceOrAt matches any rune that is neither whitespace nor "@".
// Whitespace includes vertical tab, Unicode separators and the BOM, not
// just the ASCII set of \s.
const notSpaceOrAt = `[^\s\x0B\p{Z}\x{FEFF}@]`

var (
	emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// isSpace reports whether r is whitespace in the sense of the email
// pattern above.
func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// stripPhoneSeparators removes whitespace, dashes and parentheses before
// the phone pattern is applied.
func stripPhoneSeparators(phone string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, phone)
}

// Form holds the five values of the contact form.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Errors maps a field to its validation message. Fields that pass are absent.
type Errors map[Field]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Get returns the message for f, or "" when f passed.
func (e Errors) Get(f Field) string {
	return e[f]
}

// ParseField converts a raw input name into a [Field].
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// FormFromValues reads a [Form] from submitted form values. Unknown keys are ignored.
func FormFromValues(values url.Values) Form {
	return Form{
		Name:    values.Get(string(FieldName)),
		Email:   values.Get(string(FieldEmail)),
		Phone:   values.Get(string(FieldPhone)),
		Subject: values.Get(string(FieldSubject)),
		Message: values.Get(string(FieldMessage)),
	}
}

// Value returns the current value of f.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

// set assigns value to field and reports whether field is known.
func (f *Form) set(field Field, value string) bool {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return false
	}
	return true
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}

// Validate checks every field of f and returns the failures.
//
// Rules:
//   - name and subject are required (non-blank after trimming)
//   - email is required and must look like local@domain.tld
//   - message is required and at least 10 characters after trimming
//   - phone is optional; when present, whitespace, dashes and parentheses are
//     stripped and the rest must be an optional "+" and up to 16 digits
//     not starting with 0
func Validate(f Form) Errors {
	errs := make(Errors)

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(f.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(f.Subject) == "" {
		errs[FieldSubject] = MsgSubjectRequired
	}

	message := strings.TrimSpace(f.Message)
	if message == "" {
		errs[FieldMessage] = MsgMessageRequired
	} else if utf8.RuneCountInString(message) < minMessageLength {
		errs[FieldMessage] = MsgMessageTooShort
	}

	if f.Phone != "" && !phonePattern.MatchString(stripPhoneSeparators(f.Phone)) {
		errs[FieldPhone] = MsgPhoneInvalid
	}

	return errs
}
