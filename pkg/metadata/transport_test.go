package metadata

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHttpClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected method %v, got %v", http.MethodGet, r.Method)
		}
		if got := r.Header.Get(tokenHeader); got != "test-token" {
			t.Errorf("expected %v header %v, got %v", tokenHeader, "test-token", got)
		}
		w.Write([]byte("i-1234567890abcdef0"))
	}))
	defer server.Close()

	body, err := newHttpClient().Get(server.URL, map[string]string{tokenHeader: "test-token"})
	if err != nil {
		t.Fatalf("Get failed: expected no error, got %v", err)
	}

	if string(body) != "i-1234567890abcdef0" {
		t.Fatalf("Get failed: expected body %v, got %v", "i-1234567890abcdef0", string(body))
	}
}

func TestHttpClientPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected method %v, got %v", http.MethodPut, r.Method)
		}
		if got := r.Header.Get(tokenTTLHeader); got != tokenTTLSeconds {
			t.Errorf("expected %v header %v, got %v", tokenTTLHeader, tokenTTLSeconds, got)
		}
		if r.ContentLength != 0 {
			t.Errorf("expected empty request body, got %d bytes", r.ContentLength)
		}
		w.Write([]byte("test-token"))
	}))
	defer server.Close()

	body, err := newHttpClient().Put(server.URL, map[string]string{tokenTTLHeader: tokenTTLSeconds})
	if err != nil {
		t.Fatalf("Put failed: expected no error, got %v", err)
	}

	if string(body) != "test-token" {
		t.Fatalf("Put failed: expected body %v, got %v", "test-token", string(body))
	}
}

func TestHttpClientNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newHttpClient().Get(server.URL, nil)
	if err == nil {
		t.Fatal("Get failed: expected error on non-200 status")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Get failed: expected HTTPError, got %v", err)
	}
}

func TestHttpClientConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newHttpClient().Get(server.URL, nil)
	if err == nil {
		t.Fatal("Get failed: expected error when the endpoint is unreachable")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Get failed: expected HTTPError, got %v", err)
	}
}
