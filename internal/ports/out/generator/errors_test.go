package generator

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	cases := map[int]string{
		429: "transient",
		500: "transient",
		503: "transient",
		400: "fatal",
		401: "fatal",
		403: "fatal",
		404: "fatal",
	}
	for status, want := range cases {
		if got := Class(ClassifyStatus(status, base)); got != want {
			t.Fatalf("status %d class=%q, want %q", status, got, want)
		}
	}
}

func TestClass_SeesThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("gemini: %w", NewTransientError(errors.New("reset")))
	if !IsTransient(err) || IsFatal(err) {
		t.Fatalf("wrapped transient not detected")
	}
	if got := Class(errors.New("plain")); got != "unknown" {
		t.Fatalf("class=%q, want unknown", got)
	}
	if got := Class(nil); got != "none" {
		t.Fatalf("class=%q, want none", got)
	}
}
