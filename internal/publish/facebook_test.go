package publish

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFacebookPublisher_PostsToPageFeed(t *testing.T) {
	var gotPath, gotMessage, gotToken, gotLink string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotPath = r.URL.Path
		gotMessage = r.Form.Get("message")
		gotToken = r.Form.Get("access_token")
		gotLink = r.Form.Get("link")
		w.Write([]byte(`{"id":"123_456"}`))
	}))
	defer srv.Close()

	pub := NewFacebook("page42", "secret-token")
	pub.BaseURL = srv.URL

	res, err := pub.Publish(context.Background(), "post body", "https://example.com/article")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if res.RemoteID != "123_456" {
		t.Errorf("RemoteID = %q", res.RemoteID)
	}
	if gotPath != "/page42/feed" {
		t.Errorf("path = %q", gotPath)
	}
	if gotMessage != "post body" || gotToken != "secret-token" {
		t.Errorf("form message=%q token=%q", gotMessage, gotToken)
	}
	if gotLink != "https://example.com/article" {
		t.Errorf("form link = %q", gotLink)
	}
}

func TestFacebookPublisher_OmitsEmptyLink(t *testing.T) {
	var hasLink bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		_, hasLink = r.Form["link"]
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	pub := NewFacebook("page42", "tok")
	pub.BaseURL = srv.URL

	if _, err := pub.Publish(context.Background(), "filler post", ""); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if hasLink {
		t.Error("empty link should not be sent")
	}
}

func TestFacebookPublisher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	}))
	defer srv.Close()

	pub := NewFacebook("page42", "bad")
	pub.BaseURL = srv.URL

	if _, err := pub.Publish(context.Background(), "body", ""); err == nil {
		t.Error("expected error for non-200 response")
	}
}
