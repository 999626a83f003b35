package ui

// Action is a recovery link offered by an error display.
type Action struct {
	Label   string
	Href    string
	Variant ButtonVariant
}

// Details is developer-facing information shown only in development.
type Details struct {
	Message string
	ErrorID string
	Stack   string
}

// ErrorDisplay is the view model of the shared error panel.
type ErrorDisplay struct {
	Title   string
	Message string
	Actions []Action
	// Details is nil unless the display should expose them.
	Details *Details
}

// ActionClass returns the button classes for the i-th of n actions. A
// single action spans the full width.
func (d ErrorDisplay) ActionClass(i int) string {
	a := d.Actions[i]
	variant := a.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	width := "flex-1"
	if len(d.Actions) == 1 {
		width = "w-full"
	}
	return ButtonClass(variant, SizeMedium, width)
}

// WithDetails returns a copy of d carrying details when show is true.
func (d ErrorDisplay) WithDetails(show bool, details Details) ErrorDisplay {
	if show {
		d.Details = &details
	}
	return d
}

// NetworkErrorDisplay is shown when an outbound call failed.
func NetworkErrorDisplay(retryHref string) ErrorDisplay {
	return ErrorDisplay{
		Title:   "Connection Error",
		Message: "Unable to connect to our servers. Please check your internet connection and try again.",
		Actions: []Action{{Label: "Try Again", Href: retryHref, Variant: ButtonPrimary}},
	}
}

// NotFoundErrorDisplay is shown for unknown pages.
func NotFoundErrorDisplay() ErrorDisplay {
	return ErrorDisplay{
		Title:   "Page Not Found",
		Message: "The page you're looking for doesn't exist or has been moved.",
		Actions: []Action{{Label: "Go Home", Href: "/", Variant: ButtonPrimary}},
	}
}

// UnauthorizedErrorDisplay is shown for authentication and authorization failures.
func UnauthorizedErrorDisplay(loginHref string) ErrorDisplay {
	return ErrorDisplay{
		Title:   "Access Denied",
		Message: "You don't have permission to access this resource. Please log in and try again.",
		Actions: []Action{{Label: "Log In", Href: loginHref, Variant: ButtonPrimary}},
	}
}

// LoadingErrorDisplay is shown when a page failed to render its content.
func LoadingErrorDisplay(retryHref string) ErrorDisplay {
	return ErrorDisplay{
		Title:   "Loading Error",
		Message: "We encountered an issue while loading this content. This might be a temporary problem.",
		Actions: []Action{
			{Label: "Try Again", Href: retryHref, Variant: ButtonPrimary},
			{Label: "Go Home", Href: "/", Variant: ButtonOutline},
		},
	}
}

// BoundaryErrorDisplay is the generic "something went wrong" panel.
func BoundaryErrorDisplay(retryHref string) ErrorDisplay {
	return ErrorDisplay{
		Title:   "Something went wrong!",
		Message: "We're sorry, but something unexpected happened. Our team has been notified and is working to fix the issue.",
		Actions: []Action{
			{Label: "Try Again", Href: retryHref, Variant: ButtonPrimary},
			{Label: "Go Home", Href: "/", Variant: ButtonOutline},
			{Label: "Contact Support", Href: "/contact", Variant: ButtonOutline},
		},
	}
}

// MaintenanceDisplay is shown while maintenance mode is enabled.
func MaintenanceDisplay() ErrorDisplay {
	return ErrorDisplay{
		Title:   "Down for Maintenance",
		Message: "We're making some improvements. Please check back shortly.",
	}
}
