package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassify_Codes(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{CodeNetwork, Class{SeverityHigh, CategoryNetwork}},
		{CodeServer, Class{SeverityHigh, CategoryServer}},
		{CodeAuthentication, Class{SeverityMedium, CategoryAuthentication}},
		{CodeAuthorization, Class{SeverityMedium, CategoryAuthorization}},
		{CodeValidation, Class{SeverityLow, CategoryValidation}},
		{CodeNotFound, Class{SeverityLow, CategoryNotFound}},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			got := Classify(New("x", WithCode(tt.code)))
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   Class
	}{
		{500, Class{SeverityHigh, CategoryServer}},
		{503, Class{SeverityHigh, CategoryServer}},
		{401, Class{SeverityMedium, CategoryAuthentication}},
		{403, Class{SeverityMedium, CategoryAuthorization}},
		{404, Class{SeverityLow, CategoryNotFound}},
		{400, Class{SeverityLow, CategoryValidation}},
		{422, Class{SeverityLow, CategoryValidation}},
		{302, Class{SeverityMedium, CategoryUnknown}},
		{0, Class{SeverityMedium, CategoryUnknown}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			got := Classify(New("x", WithStatus(tt.status)))
			if got != tt.want {
				t.Errorf("Classify(status %d) = %+v, want %+v", tt.status, got, tt.want)
			}
		})
	}
}

func TestClassify_CodeTakesPrecedenceOverStatus(t *testing.T) {
	err := New("x", WithCode(CodeValidation), WithStatus(http.StatusInternalServerError))
	got := Classify(err)
	want := Class{SeverityLow, CategoryValidation}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassify_UnrecognisedCodeIsUnknown(t *testing.T) {
	// the status is ignored once a code is present
	err := New("x", WithCode("RATE_LIMITED"), WithStatus(http.StatusForbidden))
	got := Classify(err)
	want := Class{SeverityMedium, CategoryUnknown}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassify_StatusAndCodeAgree(t *testing.T) {
	// a 5xx and SERVER_ERROR must not diverge
	byStatus := Classify(New("x", WithStatus(500)))
	byCode := Classify(New("x", WithCode(CodeServer)))
	if byStatus != byCode {
		t.Errorf("status 500 = %+v, SERVER_ERROR = %+v", byStatus, byCode)
	}
}

func TestClassify_PlainErrors(t *testing.T) {
	if got := Classify(errors.New("boom")); got != unknownClass {
		t.Errorf("Classify(plain) = %+v, want %+v", got, unknownClass)
	}
	if got := Classify(nil); got != unknownClass {
		t.Errorf("Classify(nil) = %+v, want %+v", got, unknownClass)
	}

	wrapped := fmt.Errorf("render: %w", New("gone", WithCode(CodeNotFound)))
	if got := Classify(wrapped).Category; got != CategoryNotFound {
		t.Errorf("Classify(wrapped) category = %q, want %q", got, CategoryNotFound)
	}
}

func TestClass_HTTPStatus(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{CategoryNotFound, http.StatusNotFound},
		{CategoryAuthentication, http.StatusUnauthorized},
		{CategoryAuthorization, http.StatusForbidden},
		{CategoryValidation, http.StatusBadRequest},
		{CategoryNetwork, http.StatusBadGateway},
		{CategoryServer, http.StatusInternalServerError},
		{CategoryUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := (Class{Category: tt.category}).HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	categories := []Category{
		CategoryNetwork, CategoryValidation, CategoryAuthentication,
		CategoryAuthorization, CategoryNotFound, CategoryServer, CategoryUnknown,
	}
	seen := make(map[string]Category)
	for _, c := range categories {
		msg := UserMessage(c)
		if msg == "" {
			t.Errorf("UserMessage(%s) is empty", c)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("UserMessage(%s) duplicates %s", c, prev)
		}
		seen[msg] = c
	}

	err := NetworkError("dial failed", 0)
	if err.UserMessage() != UserMessage(CategoryNetwork) {
		t.Errorf("UserMessage() = %q", err.UserMessage())
	}
}
