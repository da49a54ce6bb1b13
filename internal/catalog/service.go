package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sweetbird/sweet-catalog/internal/model"
)

// Fixed request parameters for the public catalog API. The request is not
// user-configurable; the guest key is the API's documented anonymous access.
const (
	EndpointURL    = "https://sysbird.jp/toriko/api/"
	APIKey         = "guest"
	ResponseFormat = "json"
	ResultOrder    = "r" // randomized order
	MaxResults     = 100
)

const (
	requestTimeout   = 15 * time.Second
	defaultUserAgent = "sweet-catalog/0.1"
)

// Service fetches the confectionery catalog over HTTP
type Service struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// NewService creates a new catalog client against the fixed public endpoint
func NewService() (*Service, error) {
	endpoint, err := buildEndpoint(EndpointURL)
	if err != nil {
		// The endpoint is a compile-time literal, so this is a build defect
		return nil, &FetchError{Kind: FailureConfig, Err: err}
	}

	return &Service{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// buildEndpoint parses the base URL and attaches the fixed query parameters
func buildEndpoint(base string) (*url.URL, error) {
	endpoint, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute URL", base)
	}

	values := url.Values{}
	values.Set("apikey", APIKey)
	values.Set("format", ResponseFormat)
	values.Set("order", ResultOrder)
	values.Set("max", strconv.Itoa(MaxResults))
	endpoint.RawQuery = values.Encode()

	return endpoint, nil
}

// FetchItems issues the catalog request and returns the displayable records
// in response order. Incomplete records (missing name, url, or image) are
// dropped here so the rest of the app never sees them.
func (s *Service) FetchItems(ctx context.Context) ([]model.CatalogItem, error) {
	if s == nil {
		return nil, &FetchError{Kind: FailureUnexpected, Err: fmt.Errorf("service is nil")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint.String(), nil)
	if err != nil {
		return nil, &FetchError{Kind: FailureUnexpected, Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FailureNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{Kind: FailureUnexpected, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var feed model.CatalogFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, &FetchError{Kind: FailureDecode, Err: err}
	}

	items := make([]model.CatalogItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Displayable() {
			items = append(items, item)
		}
	}

	if dropped := len(feed.Items) - len(items); dropped > 0 {
		log.Printf("Dropped %d incomplete catalog records out of %d", dropped, len(feed.Items))
	}

	return items, nil
}
