package apperr

import "net/http"

// Severity is a coarse urgency label used for logging and display.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Category is the closed classification of an error's likely cause.
type Category string

const (
	CategoryNetwork        Category = "network"
	CategoryValidation     Category = "validation"
	CategoryAuthentication Category = "authentication"
	CategoryAuthorization  Category = "authorization"
	CategoryNotFound       Category = "not-found"
	CategoryServer         Category = "server"
	CategoryUnknown        Category = "unknown"
)

// Class is the result of classifying an error.
type Class struct {
	Severity Severity
	Category Category
}

// codeClasses is the single lookup table for coded errors. Status buckets
// in classifyStatus agree with it: a 5xx is classified exactly like
// SERVER_ERROR, a 404 like NOT_FOUND_ERROR, and so on.
var codeClasses = map[Code]Class{
	CodeNetwork:        {SeverityHigh, CategoryNetwork},
	CodeServer:         {SeverityHigh, CategoryServer},
	CodeAuthentication: {SeverityMedium, CategoryAuthentication},
	CodeAuthorization:  {SeverityMedium, CategoryAuthorization},
	CodeValidation:     {SeverityLow, CategoryValidation},
	CodeNotFound:       {SeverityLow, CategoryNotFound},
}

var unknownClass = Class{SeverityMedium, CategoryUnknown}

// Classify derives severity and category for err.
//
// Precedence: a code, when present, is looked up in the code table and an
// unrecognised code is medium/unknown; otherwise a status code is bucketed
// (>=500 server, 401 authentication, 403 authorization, 404 not found,
// other 4xx validation); otherwise the error is medium/unknown. Errors that
// are not *Error classify as unknown.
func Classify(err error) Class {
	e := Wrap(err)
	if e == nil {
		return unknownClass
	}
	if e.Code != "" {
		if c, ok := codeClasses[e.Code]; ok {
			return c
		}
		return unknownClass
	}
	return classifyStatus(e.StatusCode)
}

func classifyStatus(status int) Class {
	switch {
	case status >= http.StatusInternalServerError:
		return codeClasses[CodeServer]
	case status == http.StatusUnauthorized:
		return codeClasses[CodeAuthentication]
	case status == http.StatusForbidden:
		return codeClasses[CodeAuthorization]
	case status == http.StatusNotFound:
		return codeClasses[CodeNotFound]
	case status >= http.StatusBadRequest:
		return codeClasses[CodeValidation]
	default:
		return unknownClass
	}
}

// HTTPStatus returns the response status a page should use for c.
func (c Class) HTTPStatus() int {
	switch c.Category {
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryAuthentication:
		return http.StatusUnauthorized
	case CategoryAuthorization:
		return http.StatusForbidden
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the user-facing message for a category.
func UserMessage(c Category) string {
	switch c {
	case CategoryNetwork:
		return "Unable to connect to our servers. Please check your internet connection and try again."
	case CategoryAuthentication:
		return "Please log in to access this feature."
	case CategoryAuthorization:
		return "You don't have permission to perform this action."
	case CategoryNotFound:
		return "The requested resource could not be found."
	case CategoryValidation:
		return "Please check your input and try again."
	case CategoryServer:
		return "A server error occurred. Please try again later."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// UserMessage returns the user-facing message for e's category.
func (e *Error) UserMessage() string {
	return UserMessage(Classify(e).Category)
}
