package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validForm() Form {
	return Form{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "",
		Subject: "Viewing request",
		Message: "I would like to see the flat on Friday.",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	errs := Validate(validForm())
	if !errs.Valid() {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidate_SingleEmptyField(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldName, MsgNameRequired},
		{FieldEmail, MsgEmailRequired},
		{FieldSubject, MsgSubjectRequired},
		{FieldMessage, MsgMessageRequired},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			f := validForm()
			f.set(tt.field, "")

			got := Validate(f)
			want := Errors{tt.field: tt.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_BlankAfterTrim(t *testing.T) {
	f := validForm()
	f.Name = "   "
	f.Subject = "\t\n"

	got := Validate(f)
	want := Errors{FieldName: MsgNameRequired, FieldSubject: MsgSubjectRequired}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email   string
		wantErr string
	}{
		{"not-an-email", MsgEmailInvalid},
		{"a@b", MsgEmailInvalid},
		{"a b@c.de", MsgEmailInvalid},
		{"a\u00a0b@c.de", MsgEmailInvalid},
		{"a@c.de\u2028x", MsgEmailInvalid},
		{"a@b.co", ""},
		{"first.last@sub.example.org", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			f := validForm()
			f.Email = tt.email
			if got := Validate(f).Get(FieldEmail); got != tt.wantErr {
				t.Errorf("email error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidate_MessageLength(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr string
	}{
		{"nine characters", "123456789", MsgMessageTooShort},
		{"ten characters", "1234567890", ""},
		{"padded nine", "   123456789   ", MsgMessageTooShort},
		{"multibyte ten", "éééééééééé", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.Message = tt.message
			if got := Validate(f).Get(FieldMessage); got != tt.wantErr {
				t.Errorf("message error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr string
	}{
		{"", ""},
		{"abc", MsgPhoneInvalid},
		{"(555) 123-4567", ""},
		{"555\t123\t4567", ""},
		{"555\u00a0123\u00a04567", ""},
		{"+44 20 7946 0958", ""},
		{"0123456", MsgPhoneInvalid},
		{"+12345678901234567", MsgPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			f := validForm()
			f.Phone = tt.phone
			if got := Validate(f).Get(FieldPhone); got != tt.wantErr {
				t.Errorf("phone error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyFormReportsRequiredFieldsOnly(t *testing.T) {
	got := Validate(Form{})
	for _, f := range []Field{FieldName, FieldEmail, FieldSubject, FieldMessage} {
		if got.Get(f) == "" {
			t.Errorf("expected error for %s", f)
		}
	}
	if got.Get(FieldPhone) != "" {
		t.Errorf("phone is optional, got error %q", got.Get(FieldPhone))
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, ok := ParseField(string(f))
		if !ok || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, ok)
		}
	}
	if _, ok := ParseField("website"); ok {
		t.Error("ParseField(website) should fail")
	}
}

func TestFormFromValues(t *testing.T) {
	values := url.Values{
		"name":    {"Jane"},
		"email":   {"jane@example.com"},
		"phone":   {"555"},
		"subject": {"Hi"},
		"message": {strings.Repeat("x", 12)},
		"extra":   {"ignored"},
	}

	got := FormFromValues(values)
	want := Form{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "555",
		Subject: "Hi",
		Message: strings.Repeat("x", 12),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormFromValues() mismatch (-want +got):\n%s", diff)
	}
}
