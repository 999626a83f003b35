// Command example embeds the Rent Any site as a library and delivers
// contact forms to a local mock CRM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rentany/site"
	"github.com/rentany/site/contact"
)

func main() {
	// start mock CRM (see mock_crm.go)
	go StartMockCRM(":9999")
	time.Sleep(100 * time.Millisecond)

	crm := contact.NewWebhookSubmitter("http://localhost:9999/intake",
		map[string]string{"Authorization": "Bearer demo"},
		2*time.Second,
	)
	defer crm.Close()

	s, err := site.New(
		site.WithPort(3000),
		site.WithSettings(site.Settings{
			AppName:      "Rent Any Demo",
			Environment:  site.Development,
			BetaFeatures: true,
		}),
		site.WithSubmitter(crm),
		site.WithRedirect("/listings", "/", false),
		site.WithSubmissionCallback(func(sub site.Submission) {
			slog.Info("new enquiry", "from", sub.Form.Email, "at", sub.ReceivedAt.Format(time.Kitchen))
		}),
	)
	if err != nil {
		slog.Error("failed to create site", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  Rent Any demo")
	fmt.Println()
	fmt.Println("  Site:          http://localhost:3000")
	fmt.Println("  Contact API:   POST http://localhost:3000/api/contact")
	fmt.Println("  Error stream:  http://localhost:3000/api/errors/stream")
	fmt.Println("  Stored leads:  http://localhost:9999/leads")
	fmt.Println()
	fmt.Println("  About one CRM delivery in five fails on purpose.")
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		slog.Error("site error", "error", err)
		os.Exit(1)
	}
}
