package main

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// lead is what the mock CRM stores for each delivered contact form.
type lead struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// StartMockCRM runs a fake CRM intake endpoint at /intake.
//
// Roughly one delivery in five is rejected with 503 so the site's error
// page and report stream can be seen. Repeated Idempotency-Keys are
// acknowledged without storing the lead twice. Call this in a goroutine.
func StartMockCRM(addr string) {
	var (
		mu    sync.Mutex
		seen  = make(map[string]struct{})
		leads []lead
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /intake", func(w http.ResponseWriter, r *http.Request) {
		// simulate small latency variance
		time.Sleep(time.Duration(100+rand.Intn(400)) * time.Millisecond)

		if rand.Intn(5) == 0 {
			http.Error(w, "intake temporarily unavailable", http.StatusServiceUnavailable)
			return
		}

		var l lead
		if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}

		key := r.Header.Get("Idempotency-Key")
		mu.Lock()
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			leads = append(leads, l)
			slog.Info("lead received", "email", l.Email, "subject", l.Subject, "total", len(leads))
		}
		mu.Unlock()

		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /leads", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(leads); err != nil {
			slog.Error("failed to write response", "error", err)
		}
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("mock crm error", "error", err)
	}
}
