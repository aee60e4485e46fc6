package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPostSendsContentTypeAndSuppressesExpect(t *testing.T) {
	var gotContentType, gotExpect string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotExpect = r.Header.Get("Expect")
		gotBody = make([]byte, r.ContentLength)
		r.Body.Read(gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL)
	resp, err := tr.Post(context.Background(), "/eventListener/v7", []byte(`{"event":1}`))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotExpect != "" {
		t.Fatalf("Expect header = %q, want suppressed", gotExpect)
	}
	if string(resp) != `{"ok":true}` {
		t.Fatalf("response body = %q", resp)
	}
}

func TestPostUsesBasicAuthWhenConfigured(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, WithCredentials(Credentials{Username: "vnf", Password: "secret"}))
	if _, err := tr.Post(context.Background(), "/", nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if !gotOK || gotUser != "vnf" || gotPass != "secret" {
		t.Fatalf("basic auth = (%q,%q,%v), want (vnf,secret,true)", gotUser, gotPass, gotOK)
	}
}

func TestPostRetriesOn5xxThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, WithRetryPolicy(5, time.Millisecond, 10*time.Millisecond))
	if _, err := tr.Post(context.Background(), "/", []byte(`{}`)); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3 (2 failures + 1 success)", calls.Load())
	}
}

func TestPostDoesNotRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, WithRetryPolicy(5, time.Millisecond, 10*time.Millisecond))
	_, err := tr.Post(context.Background(), "/", []byte(`{}`))
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 (no retry on permanent failure)", calls.Load())
	}
}

func TestPostExhaustsRetriesAndFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, WithRetryPolicy(2, time.Millisecond, 5*time.Millisecond))
	_, err := tr.Post(context.Background(), "/", []byte(`{}`))
	if err == nil {
		t.Fatal("expected an error once retries are exhausted")
	}
}
