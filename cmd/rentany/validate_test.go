package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeValidateCmd runs the validate command and returns captured
// stdout and any error.
func executeValidateCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	// flags keep their values between executions of the same command
	rootCmd.SetArgs(append([]string{"validate", "-c", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RENT_ANY_APP_NAME", "Rent Any")
	t.Setenv("RENT_ANY_APP_URL", "https://rent-any.vercel.app")
	t.Setenv("RENT_ANY_CONTACT_EMAIL", "contact@rent-any.com")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rentany.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENT_ANY_ENV", "production")
	t.Setenv("RENT_ANY_STRIPE_SECRET_KEY", "sk_live_secret")

	path := writeConfig(t, `
port: 8080
submit_delay: 500ms
redirects:
  - from: /listings
    to: /
`)

	output, err := executeValidateCmd(t, "-c", path)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Configuration is valid!",
		"Environment:  production",
		"Site:         Rent Any (https://rent-any.vercel.app)",
		"Contact:      mailto:contact@rent-any.com",
		"Port:         8080",
		"Submit delay: 500ms",
		"Redirects:    1",
		"Secrets:      RENT_ANY_STRIPE_SECRET_KEY",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
	if strings.Contains(output, "sk_live_secret") {
		t.Error("secret values must never be printed")
	}
}

func TestRunValidate_NoConfigFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENT_ANY_ENV", "development")

	output, err := executeValidateCmd(t)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}
	if !strings.Contains(output, "Port:         3000") {
		t.Errorf("output should show the default port\nGot: %s", output)
	}
}

func TestRunValidate_MissingKeysInDevelopment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENT_ANY_ENV", "development")
	t.Setenv("RENT_ANY_APP_URL", "")

	output, err := executeValidateCmd(t)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}
	if !strings.Contains(output, "Missing: RENT_ANY_APP_URL") {
		t.Errorf("output should list the missing key\nGot: %s", output)
	}
	if !strings.Contains(output, "Defaults used for 1 required variable(s)") {
		t.Errorf("output should mention defaults\nGot: %s", output)
	}
}

func TestRunValidate_MissingKeysInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENT_ANY_ENV", "production")
	t.Setenv("RENT_ANY_CONTACT_EMAIL", "")

	output, err := executeValidateCmd(t)
	if err == nil {
		t.Fatal("validate command expected error for missing keys, got nil")
	}
	if !strings.Contains(output, "Missing: RENT_ANY_CONTACT_EMAIL") {
		t.Errorf("output should list the missing key\nGot: %s", output)
	}
	if !strings.Contains(err.Error(), "RENT_ANY_CONTACT_EMAIL") {
		t.Errorf("error should mention RENT_ANY_CONTACT_EMAIL: %v", err)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RENT_ANY_ENV", "development")

	path := writeConfig(t, `
port: 8080
redirects:
  - from: listings
    to: /
`)

	_, err := executeValidateCmd(t, "-c", path)
	if err == nil {
		t.Fatal("validate command expected error for invalid config, got nil")
	}
	if !strings.Contains(err.Error(), "from must be an absolute path") {
		t.Errorf("error = %q, want to contain validation message", err.Error())
	}
}

func TestRunValidate_FileNotFound(t *testing.T) {
	setRequiredEnv(t)

	_, err := executeValidateCmd(t, "-c", "/nonexistent/path/rentany.yaml")
	if err == nil {
		t.Fatal("validate command expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want to contain 'failed to read config file'", err.Error())
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(out.String(), "rentany dev") {
		t.Errorf("output = %q, want to contain 'rentany dev'", out.String())
	}
}
