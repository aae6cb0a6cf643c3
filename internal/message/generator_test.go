package message

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Nirvanjha2004/outflo/internal/config"
)

func testInput() ProfileInput {
	return ProfileInput{
		Name:     "Jane Smith",
		JobTitle: "Head of Sales",
		Company:  "Acme Corp",
		Location: "London, UK",
		Summary:  "15 years building outbound teams",
	}
}

func TestMissingFields(t *testing.T) {
	if missing := testInput().MissingFields(); len(missing) != 0 {
		t.Fatalf("expected complete profile, got missing %v", missing)
	}

	partial := ProfileInput{Name: "Jane Smith"}
	missing := partial.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", missing)
	}
	for _, field := range []string{"job_title", "company"} {
		found := false
		for _, m := range missing {
			if m == field {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s in missing fields, got %v", field, missing)
		}
	}

	// Location and summary are optional
	optional := ProfileInput{Name: "Jane", JobTitle: "CTO", Company: "Acme"}
	if missing := optional.MissingFields(); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestGenerateFallsBackWithoutAPIKey(t *testing.T) {
	g := NewGenerator(&config.Config{HuggingFaceModel: "test-model"})

	msg := g.Generate(testInput())
	if msg == "" {
		t.Fatalf("expected a fallback message")
	}
	if !strings.Contains(msg, "Jane Smith") {
		t.Fatalf("expected fallback to mention the profile name, got %q", msg)
	}
}

func TestGenerateUsesInferenceAPI(t *testing.T) {
	generated := "Hi Jane, I noticed your work leading sales at Acme and thought Outflo could help your team book more meetings each week."

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header, got %q", r.Header.Get("Authorization"))
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "` + generated + `"}]`))
	}))
	defer server.Close()

	g := &Generator{
		client: resty.New().SetBaseURL(server.URL).SetTimeout(5 * time.Second),
		apiKey: "test-key",
		model:  "test-model",
	}

	msg := g.Generate(testInput())
	if msg != generated {
		t.Fatalf("expected generated text, got %q", msg)
	}
}

func TestGenerateRejectsShortCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "Hi."}]`))
	}))
	defer server.Close()

	g := &Generator{
		client: resty.New().SetBaseURL(server.URL).SetTimeout(5 * time.Second),
		apiKey: "test-key",
		model:  "test-model",
	}

	// A too-short completion falls through to the canned templates
	msg := g.Generate(testInput())
	if msg == "Hi." {
		t.Fatalf("expected short completion to be rejected")
	}
	if !strings.Contains(msg, "Jane Smith") {
		t.Fatalf("expected fallback to mention the profile name, got %q", msg)
	}
}

func TestGenerateFallsBackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model loading"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := &Generator{
		client: resty.New().SetBaseURL(server.URL).SetTimeout(5 * time.Second),
		apiKey: "test-key",
		model:  "test-model",
	}

	msg := g.Generate(testInput())
	if msg == "" || !strings.Contains(msg, "Jane Smith") {
		t.Fatalf("expected fallback on API error, got %q", msg)
	}
}
