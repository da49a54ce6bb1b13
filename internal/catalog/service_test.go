package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestService points a Service at a local httptest server
func newTestService(t *testing.T, server *httptest.Server) *Service {
	t.Helper()

	endpoint, err := buildEndpoint(server.URL)
	if err != nil {
		t.Fatalf("buildEndpoint returned error: %v", err)
	}

	return &Service{
		endpoint:  endpoint,
		http:      server.Client(),
		userAgent: defaultUserAgent,
	}
}

func TestNewService(t *testing.T) {
	service, err := NewService()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if service.endpoint.Host != "sysbird.jp" {
		t.Errorf("Expected endpoint host 'sysbird.jp', got '%s'", service.endpoint.Host)
	}

	query := service.endpoint.Query()
	if query.Get("apikey") != APIKey {
		t.Errorf("Expected apikey '%s', got '%s'", APIKey, query.Get("apikey"))
	}
	if query.Get("format") != ResponseFormat {
		t.Errorf("Expected format '%s', got '%s'", ResponseFormat, query.Get("format"))
	}
	if query.Get("order") != ResultOrder {
		t.Errorf("Expected order '%s', got '%s'", ResultOrder, query.Get("order"))
	}
	if query.Get("max") != "100" {
		t.Errorf("Expected max '100', got '%s'", query.Get("max"))
	}
}

func TestBuildEndpoint_RejectsRelativeURL(t *testing.T) {
	if _, err := buildEndpoint("not a url"); err == nil {
		t.Error("Expected error for relative endpoint, got nil")
	}
}

func TestFetchItems_FiltersIncompleteRecords(t *testing.T) {
	var gotQuery string
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"item":[
			{"name":"Chocolate Bar","url":"https://example.com/1","image":"https://example.com/1.jpg"},
			{"name":"No Image","url":"https://example.com/2"},
			{"name":"Mint Gum","url":"https://example.com/3","image":"https://example.com/3.jpg"},
			{"url":"https://example.com/4","image":"https://example.com/4.jpg"},
			{"name":"CHOCO Mint","url":"https://example.com/5","image":"https://example.com/5.jpg"}
		]}`))
	}))
	defer server.Close()

	service := newTestService(t, server)

	items, err := service.FetchItems(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 displayable items, got %d", len(items))
	}

	// Response order must be preserved
	expectedNames := []string{"Chocolate Bar", "Mint Gum", "CHOCO Mint"}
	for i, name := range expectedNames {
		if items[i].Name != name {
			t.Errorf("Expected item %d to be '%s', got '%s'", i, name, items[i].Name)
		}
	}

	if gotUserAgent != defaultUserAgent {
		t.Errorf("Expected user agent '%s', got '%s'", defaultUserAgent, gotUserAgent)
	}
	if gotQuery == "" {
		t.Error("Expected fixed query parameters to be sent")
	}
}

func TestFetchItems_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"item":[]}`))
	}))
	defer server.Close()

	service := newTestService(t, server)

	items, err := service.FetchItems(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(items))
	}
}

func TestFetchItems_DecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	service := newTestService(t, server)

	_, err := service.FetchItems(context.Background())
	if err == nil {
		t.Fatal("Expected decode error, got nil")
	}
	if kind := KindOf(err); kind != FailureDecode {
		t.Errorf("Expected failure kind %s, got %s", FailureDecode, kind)
	}
}

func TestFetchItems_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	service := newTestService(t, server)
	server.Close() // connection refused from here on

	_, err := service.FetchItems(context.Background())
	if err == nil {
		t.Fatal("Expected network error, got nil")
	}
	if kind := KindOf(err); kind != FailureNetwork {
		t.Errorf("Expected failure kind %s, got %s", FailureNetwork, kind)
	}
}

func TestFetchItems_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := newTestService(t, server)

	_, err := service.FetchItems(context.Background())
	if err == nil {
		t.Fatal("Expected status error, got nil")
	}
	if kind := KindOf(err); kind != FailureUnexpected {
		t.Errorf("Expected failure kind %s, got %s", FailureUnexpected, kind)
	}
}
