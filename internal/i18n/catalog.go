package i18n

import (
	"fmt"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/contact"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// spanish maps English source strings to their Spanish translation.
var spanish = map[string]string{
	// contact form validation
	contact.MsgNameRequired:    "El nombre es obligatorio",
	contact.MsgEmailRequired:   "El correo electrónico es obligatorio",
	contact.MsgEmailInvalid:    "Introduce un correo electrónico válido",
	contact.MsgSubjectRequired: "El asunto es obligatorio",
	contact.MsgMessageRequired: "El mensaje es obligatorio",
	contact.MsgMessageTooShort: "El mensaje debe tener al menos 10 caracteres",
	contact.MsgPhoneInvalid:    "Introduce un número de teléfono válido",

	// error categories
	apperr.UserMessage(apperr.CategoryNetwork):        "No podemos conectar con nuestros servidores. Revisa tu conexión e inténtalo de nuevo.",
	apperr.UserMessage(apperr.CategoryAuthentication): "Inicia sesión para acceder a esta función.",
	apperr.UserMessage(apperr.CategoryAuthorization):  "No tienes permiso para realizar esta acción.",
	apperr.UserMessage(apperr.CategoryNotFound):       "No se encontró el recurso solicitado.",
	apperr.UserMessage(apperr.CategoryValidation):     "Revisa los datos e inténtalo de nuevo.",
	apperr.UserMessage(apperr.CategoryServer):         "Se produjo un error del servidor. Inténtalo más tarde.",
	apperr.UserMessage(apperr.CategoryUnknown):        "Se produjo un error inesperado. Inténtalo de nuevo.",

	// chrome and error displays
	"Home":                  "Inicio",
	"About":                 "Nosotros",
	"Contact":               "Contacto",
	"Try Again":             "Reintentar",
	"Go Home":               "Ir al inicio",
	"Contact Support":       "Contactar con soporte",
	"Log In":                "Iniciar sesión",
	"Something went wrong!": "¡Algo salió mal!",
	"Page Not Found":        "Página no encontrada",
	"Loading Error":         "Error de carga",
	"Connection Error":      "Error de conexión",
	"Access Denied":         "Acceso denegado",
	"Down for Maintenance":  "En mantenimiento",
	"Error Details:":        "Detalles del error:",
	"Error ID:":             "ID del error:",

	"Toggle navigation menu": "Abrir o cerrar el menú",

	// contact page
	"Contact Us":           "Contáctanos",
	"Send us a Message":    "Envíanos un mensaje",
	"Full Name":            "Nombre completo",
	"Email Address":        "Correo electrónico",
	"Phone Number":         "Teléfono",
	"Subject":              "Asunto",
	"Message":              "Mensaje",
	"Send Message":         "Enviar mensaje",
	"Thank You!":           "¡Gracias!",
	"Send Another Message": "Enviar otro mensaje",

	"Your message has been sent successfully. We'll get back to you within 24 hours.": "Tu mensaje se ha enviado correctamente. Te responderemos en 24 horas.",
}

func init() {
	if err := register(language.Spanish, spanish); err != nil {
		panic(err)
	}
}

func register(tag language.Tag, messages map[string]string) error {
	for key, msg := range messages {
		if err := message.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("register %s message %q: %w", tag, key, err)
		}
	}
	return nil
}

// Translate returns key in the language of p. Keys without a translation
// are returned unchanged.
func Translate(p *message.Printer, key string) string {
	if p == nil {
		return key
	}
	return p.Sprintf(key)
}
