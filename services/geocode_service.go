package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// GeocodeResult is the address a coordinate resolves to. Every field is
// optional; providers that know nothing return the zero value.
type GeocodeResult struct {
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	District  string `json:"district,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Formatted string `json:"formatted,omitempty"`
}

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GeocodeService resolves coordinates against a primary provider and falls
// back to a secondary one. Both failing degrades to an empty result: map
// lookups are best-effort and never surface as user-facing errors.
type GeocodeService struct {
	httpClient  HTTPClient
	primaryURL  string
	fallbackURL string
	userAgent   string
}

type GeocodeConfig struct {
	PrimaryURL  string
	FallbackURL string
	UserAgent   string
}

func NewGeocodeService(httpClient HTTPClient, cfg GeocodeConfig) *GeocodeService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	primary := cfg.PrimaryURL
	if primary == "" {
		primary = "https://nominatim.openstreetmap.org/reverse"
	}
	fallback := cfg.FallbackURL
	if fallback == "" {
		fallback = "https://api.bigdatacloud.net/data/reverse-geocode-client"
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "house-haven-market/1.0"
	}
	return &GeocodeService{
		httpClient:  httpClient,
		primaryURL:  primary,
		fallbackURL: fallback,
		userAgent:   userAgent,
	}
}

// ReverseGeocode resolves (lat, lng) to address fields. It tries the
// primary provider first, then the fallback; if both fail it returns an
// empty result and a nil error.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, lat, lng float64) GeocodeResult {
	result, err := s.reversePrimary(ctx, lat, lng)
	if err == nil {
		return result
	}
	log.Printf("⚠️  primary geocoder failed: %v, trying fallback", err)

	result, err = s.reverseFallback(ctx, lat, lng)
	if err == nil {
		return result
	}
	log.Printf("⚠️  fallback geocoder failed: %v", err)
	return GeocodeResult{}
}

func (s *GeocodeService) reversePrimary(ctx context.Context, lat, lng float64) (GeocodeResult, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lng))
	params.Set("format", "jsonv2")

	body, err := s.get(ctx, fmt.Sprintf("%s?%s", s.primaryURL, params.Encode()))
	if err != nil {
		return GeocodeResult{}, err
	}

	var resp struct {
		DisplayName string `json:"display_name"`
		Address     struct {
			Road     string `json:"road"`
			Suburb   string `json:"suburb"`
			City     string `json:"city"`
			Town     string `json:"town"`
			State    string `json:"state"`
			Postcode string `json:"postcode"`
		} `json:"address"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return GeocodeResult{}, fmt.Errorf("decode response: %w", err)
	}

	city := resp.Address.City
	if city == "" {
		city = resp.Address.Town
	}
	return GeocodeResult{
		Street:    resp.Address.Road,
		District:  resp.Address.Suburb,
		City:      city,
		State:     resp.Address.State,
		Zip:       resp.Address.Postcode,
		Formatted: resp.DisplayName,
	}, nil
}

func (s *GeocodeService) reverseFallback(ctx context.Context, lat, lng float64) (GeocodeResult, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	params.Set("localityLanguage", "en")

	body, err := s.get(ctx, fmt.Sprintf("%s?%s", s.fallbackURL, params.Encode()))
	if err != nil {
		return GeocodeResult{}, err
	}

	var resp struct {
		City                 string `json:"city"`
		Locality             string `json:"locality"`
		PrincipalSubdivision string `json:"principalSubdivision"`
		Postcode             string `json:"postcode"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return GeocodeResult{}, fmt.Errorf("decode response: %w", err)
	}

	return GeocodeResult{
		City:     resp.City,
		District: resp.Locality,
		State:    resp.PrincipalSubdivision,
		Zip:      resp.Postcode,
	}, nil
}

func (s *GeocodeService) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocoder status %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
