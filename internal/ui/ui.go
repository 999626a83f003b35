// Package ui holds the presentational primitives shared by every page:
// button, card and input class builders plus the error display view model.
//
// Nothing here has behaviour beyond choosing class names; templates in the
// web package call these through the template function map.
package ui

import "strings"

// ButtonVariant selects the visual style of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

// Size selects padding and font size for buttons and inputs.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// CardVariant selects the visual style of a card.
type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardOutlined CardVariant = "outlined"
)

// InputVariant selects the border colour of an input.
type InputVariant string

const (
	InputDefault InputVariant = "default"
	InputError   InputVariant = "error"
	InputSuccess InputVariant = "success"
)

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "btn-primary",
	ButtonSecondary: "btn-secondary",
	ButtonOutline:   "btn-outline",
	ButtonGhost:     "btn-ghost",
}

var cardVariants = map[CardVariant]string{
	CardDefault:  "card-default",
	CardElevated: "card-elevated",
	CardOutlined: "card-outlined",
}

var inputVariants = map[InputVariant]string{
	InputDefault: "input-default",
	InputError:   "input-error",
	InputSuccess: "input-success",
}

var sizes = map[Size]string{
	SizeSmall:  "size-sm",
	SizeMedium: "size-md",
	SizeLarge:  "size-lg",
}

// Join concatenates non-empty class names with single spaces.
func Join(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// ButtonClass returns the classes for a button. Unknown values fall back
// to primary/md.
func ButtonClass(variant ButtonVariant, size Size, extra ...string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[ButtonPrimary]
	}
	s, ok := sizes[size]
	if !ok {
		s = sizes[SizeMedium]
	}
	return Join(append([]string{"btn", v, s}, extra...)...)
}

// CardClass returns the classes for a card container.
func CardClass(variant CardVariant, extra ...string) string {
	v, ok := cardVariants[variant]
	if !ok {
		v = cardVariants[CardDefault]
	}
	return Join(append([]string{"card", v}, extra...)...)
}

// InputClass returns the classes for a text input. A non-empty errMsg
// forces the error variant regardless of variant.
func InputClass(variant InputVariant, size Size, errMsg string) string {
	if errMsg != "" {
		variant = InputError
	}
	v, ok := inputVariants[variant]
	if !ok {
		v = inputVariants[InputDefault]
	}
	s, ok := sizes[size]
	if !ok {
		s = sizes[SizeMedium]
	}
	return Join("input", v, s)
}

// TextareaClass is [InputClass] for multi-line inputs, which have a single size.
func TextareaClass(variant InputVariant, errMsg string) string {
	return Join(InputClass(variant, SizeMedium, errMsg), "textarea")
}
