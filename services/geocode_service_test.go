package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

// fakeHTTPClient routes requests by URL substring to canned responses.
type fakeHTTPClient struct {
	responses map[string]response
}

type response struct {
	status int
	body   string
	err    error
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	for substr, r := range f.responses {
		if strings.Contains(req.URL.String(), substr) {
			if r.err != nil {
				return nil, r.err
			}
			return &http.Response{
				StatusCode: r.status,
				Body:       io.NopCloser(bytes.NewBufferString(r.body)),
			}, nil
		}
	}
	return nil, errors.New("no route for " + req.URL.String())
}

func TestReverseGeocodePrimary(t *testing.T) {
	client := &fakeHTTPClient{responses: map[string]response{
		"nominatim": {status: 200, body: `{
			"display_name": "Chavchavadze Avenue, Vake, Tbilissi",
			"address": {
				"road": "Chavchavadze Avenue",
				"suburb": "Vake",
				"city": "Tbilissi",
				"state": "Tbilisi",
				"postcode": "0179"
			}
		}`},
	}}
	svc := NewGeocodeService(client, GeocodeConfig{})

	got := svc.ReverseGeocode(context.Background(), 41.708, 44.76)
	if got.Street != "Chavchavadze Avenue" {
		t.Errorf("street = %q", got.Street)
	}
	if got.City != "Tbilissi" || got.District != "Vake" || got.Zip != "0179" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestReverseGeocodeFallsBack(t *testing.T) {
	client := &fakeHTTPClient{responses: map[string]response{
		"nominatim":    {err: errors.New("connection refused")},
		"bigdatacloud": {status: 200, body: `{"city": "Batumi", "locality": "Old Town", "principalSubdivision": "Adjara"}`},
	}}
	svc := NewGeocodeService(client, GeocodeConfig{})

	got := svc.ReverseGeocode(context.Background(), 41.65, 41.64)
	if got.City != "Batumi" || got.District != "Old Town" {
		t.Errorf("fallback not used: %+v", got)
	}
}

func TestReverseGeocodeBothFailYieldsEmpty(t *testing.T) {
	client := &fakeHTTPClient{responses: map[string]response{
		"nominatim":    {status: 503, body: "unavailable"},
		"bigdatacloud": {err: errors.New("timeout")},
	}}
	svc := NewGeocodeService(client, GeocodeConfig{})

	got := svc.ReverseGeocode(context.Background(), 41.7, 44.8)
	if got != (GeocodeResult{}) {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestReverseGeocodeTownFillsCity(t *testing.T) {
	client := &fakeHTTPClient{responses: map[string]response{
		"nominatim": {status: 200, body: `{"address": {"town": "Telavi"}}`},
	}}
	svc := NewGeocodeService(client, GeocodeConfig{})

	got := svc.ReverseGeocode(context.Background(), 41.9, 45.5)
	if got.City != "Telavi" {
		t.Errorf("city = %q, want the town field", got.City)
	}
}
