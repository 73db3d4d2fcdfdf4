package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseGoogleResponse(t *testing.T) {
	body := []byte(`[[["Hola mundo","Hello world",null],["segunda parte","second part",null]],null,"en"]`)
	got, err := parseGoogleResponse(body)
	if err != nil {
		t.Fatalf("parseGoogleResponse: %v", err)
	}
	if got != "Hola mundosegunda parte" {
		t.Errorf("got %q", got)
	}
}

func TestParseGoogleResponse_Malformed(t *testing.T) {
	for _, body := range []string{"", "{}", "[]", `["no chunks"]`} {
		if _, err := parseGoogleResponse([]byte(body)); err == nil {
			t.Errorf("parseGoogleResponse(%q) should fail", body)
		}
	}
}

func TestTranslate_UsesGoogleEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "Hello world" {
			t.Errorf("query text = %q", q)
		}
		if sl := r.URL.Query().Get("sl"); sl != "en" {
			t.Errorf("source lang = %q", sl)
		}
		if tl := r.URL.Query().Get("tl"); tl != "es" {
			t.Errorf("target lang = %q", tl)
		}
		w.Write([]byte(`[[["Hola mundo","Hello world",null]],null,"en"]`))
	}))
	defer srv.Close()

	s := NewService("")
	s.BaseURL = srv.URL

	got, err := s.Translate(context.Background(), "Hello world", "en", "es")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hola mundo" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_EmptyTextSkipsBackends(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewService("")
	s.BaseURL = srv.URL

	got, err := s.Translate(context.Background(), "   ", "en", "es")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "   " {
		t.Errorf("got %q, want input unchanged", got)
	}
	if called {
		t.Error("backend should not be called for blank input")
	}
}

func TestTranslate_AllBackendsFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewService("")
	s.BaseURL = srv.URL

	if _, err := s.Translate(context.Background(), "Hello world", "en", "es"); err == nil {
		t.Error("expected error when every backend fails")
	}
}
