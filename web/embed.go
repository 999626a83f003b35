// Package web provides the embedded templates and static assets of the site.
//
// Templates and CSS are compiled into the binary so the site ships as a
// single executable. The server package parses the templates at startup
// and serves static files under "/static/".
package web

import "embed"

// Assets is an embedded filesystem containing the site templates and styles.
//
// The filesystem structure is:
//
//	templates/
//	  layout.html        - document shell, header and footer
//	  partials.html      - error display panel
//	  home.html          - home page content
//	  about.html         - about page content
//	  contact.html       - contact form and confirmation
//	  error.html         - error boundary and not-found content
//	  global_error.html  - standalone shell used when the layout itself fails
//	static/
//	  site.css
//
//go:embed templates/*.html static/*
var Assets embed.FS
