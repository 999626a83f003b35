// Standalone mock CRM for trying the CLI's contact_webhook setting.
//
// Usage:
//
//	go run ./example/cmd/mockcrm
//
// Then in another terminal:
//
//	go run ./cmd/rentany serve -c example/rentany.yaml
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
)

func main() {
	fmt.Println("Mock CRM listening on :9999")
	fmt.Println("Deliveries without the demo token are rejected with 401")
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	var received atomic.Int64

	http.HandleFunc("POST /intake", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer demo" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		n := received.Add(1)
		slog.Info("lead received",
			"n", n,
			"email", payload["email"],
			"subject", payload["subject"],
			"idempotency_key", r.Header.Get("Idempotency-Key"),
		)
		w.WriteHeader(http.StatusAccepted)
	})

	if err := http.ListenAndServe(":9999", nil); err != nil {
		slog.Error("mock crm error", "error", err)
		os.Exit(1)
	}
}
