// Package site serves the Rent Any property rental marketing site.
//
// The site has three pages (home, about and contact) rendered inside a
// shared header and footer. The contact form is validated on the server and
// submitted through a pluggable [contact.Submitter]; by default submission
// is simulated with a short delay. Failures anywhere in a page are
// classified with package apperr, reported, and replaced by an error page.
//
// # Quick Start
//
//	s, err := site.New(
//	    site.WithPort(8080),
//	    site.WithSettings(site.Settings{Environment: site.Production}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := s.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Settings
//
// [Settings] carries branding, contact addresses, analytics identifiers
// and feature flags. Empty values fall back to [DefaultSettings]. Package
// config loads them from RENT_ANY_* environment variables.
//
// # Environments
//
// In [Development] error reports are logged in full with a stack trace,
// error pages show technical details, and recent reports are served at
// /api/errors and streamed at /api/errors/stream. In [Production] reports
// are emitted as compact structured log records instead.
//
// # Submissions
//
// Register [WithSubmissionCallback] to observe successful contact form
// submissions. Callbacks run synchronously and must not block.
package site
