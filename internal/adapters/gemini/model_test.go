package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/generator"
)

func newTestModel(t *testing.T, h http.HandlerFunc) *Model {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	m, err := New(context.Background(), "test-key", WithBaseURL(srv.URL), WithModelName("gemini-test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestGenerate_ReturnsCandidateText(t *testing.T) {
	t.Parallel()

	var gotPath, gotBody string
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"overview\":"},{"text":"\"hi\"}"}]}}]}`)
	})

	got, err := m.Generate(context.Background(), "plan a trip to Goa")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"overview":"hi"}` {
		t.Fatalf("text=%q, want joined parts", got)
	}
	if !strings.Contains(gotPath, "gemini-test") {
		t.Fatalf("path=%q, want model name in path", gotPath)
	}
	if !strings.Contains(gotBody, "plan a trip to Goa") {
		t.Fatalf("request body does not carry the prompt: %s", gotBody)
	}
}

func TestGenerate_EmptyResponseIsFatal(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := m.Generate(context.Background(), "x")
	if !generator.IsFatal(err) {
		t.Fatalf("err=%v, want fatal", err)
	}
}

func TestGenerate_BadKeyIsFatal(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := m.Generate(context.Background(), "x")
	if !generator.IsFatal(err) {
		t.Fatalf("err=%v, want fatal", err)
	}
}

func TestGenerate_ServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
	})

	_, err := m.Generate(context.Background(), "x")
	if !generator.IsTransient(err) {
		t.Fatalf("err=%v, want transient", err)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"rate limited", genai.APIError{Code: 429}, "transient"},
		{"server", genai.APIError{Code: 500}, "transient"},
		{"forbidden", genai.APIError{Code: 403}, "fatal"},
		{"transport", errors.New("connection reset"), "transient"},
		{"deadline", context.DeadlineExceeded, "transient"},
	}
	for _, tc := range cases {
		if got := generator.Class(classify(tc.err)); got != tc.want {
			t.Fatalf("%s: class=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNew_RequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := New(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
