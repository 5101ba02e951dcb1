package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/chartops/projmap/pkg/errors"
)

func TestClientGetAppliesAuthAndHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Tableau-Auth")
		gotAccept = r.Header.Get("Accept")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer srv.Close()

	client := New(&HeaderAuth{Header: "X-Tableau-Auth"})
	resp, err := client.Get(context.Background(), srv.URL, "tok-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var result map[string]string
	if err := DecodeResponse(resp, "test", &result); err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}

	if gotAuth != "tok-1" {
		t.Errorf("Expected auth token 'tok-1', got '%s'", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Expected Accept header 'application/json', got '%s'", gotAccept)
	}
	if result["ok"] != "true" {
		t.Errorf("Unexpected body: %v", result)
	}
}

func TestClientPostEncodesJSON(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	client := New(&SessionAuth{})
	resp, err := client.Post(context.Background(), srv.URL, "sess", map[string]string{"method": "getProjects"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	_ = resp.Body.Close()

	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", gotContentType)
	}
	if gotBody["method"] != "getProjects" {
		t.Errorf("Expected method 'getProjects', got %v", gotBody["method"])
	}
}

func TestDecodeResponseNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := New(&NoAuth{})
	resp, err := client.Get(context.Background(), srv.URL, "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var target map[string]any
	err = DecodeResponse(resp, "getProjects", &target)
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}

	var apiErr *pkgerrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", apiErr.StatusCode)
	}
	if !errors.Is(err, pkgerrors.ErrServerUnavailable) {
		t.Error("502 should match ErrServerUnavailable")
	}
}
