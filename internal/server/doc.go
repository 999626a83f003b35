// Package server provides the HTTP server for the Rent Any site.
//
// This package is internal and handles all HTTP concerns:
//
//   - Pages: "/", "/about" and "/contact", rendered from the embedded
//     templates inside the shared header and footer
//   - Contact form: POST "/contact" with post/redirect/get, and a JSON
//     variant at "/api/contact" behind the beta features flag
//   - SEO: "/sitemap.xml" and "/robots.txt"
//   - Development only: recent error reports at "/api/errors" and a
//     Server-Sent Events stream of new ones at "/api/errors/stream"
//
// Every page runs inside an error boundary. A failing or panicking page is
// classified, reported and replaced by an error display; if that display
// cannot be rendered either, a minimal global error document is served.
//
// The server supports graceful shutdown via context cancellation, with a
// 5-second timeout for in-flight requests.
package server
