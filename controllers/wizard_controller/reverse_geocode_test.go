package wizard_controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/locations"
	"github.com/spacemen100/house-haven-market-sub000/services"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

type cannedHTTPClient struct {
	body string
}

func (f *cannedHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(f.body)),
	}, nil
}

func geocodeTestContext(t *testing.T, token, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/wizard/"+token+"/geocode?"+query, nil)
	c.Params = gin.Params{{Key: "token", Value: token}}
	return c, rec
}

func TestReverseGeocodeSnapshotsOnSession(t *testing.T) {
	Store = wizard.NewStore()
	Geocoder = services.NewGeocodeService(&cannedHTTPClient{
		body: `{"address": {"city": "Tbilissi", "suburb": "Vake", "postcode": "0179"}}`,
	}, services.GeocodeConfig{})

	userID := uuid.Must(uuid.NewV7())
	token := Store.Create(wizard.New(locations.DefaultCatalog()), userID)

	c, rec := geocodeTestContext(t, token, "lat=41.708&lng=44.76")
	c.Set("userID", userID.String())

	ReverseGeocode(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// The raw result must now ride on the session, ready for submission
	var snapshot []byte
	Store.With(token, func(s *wizard.Session) {
		snapshot = s.Wizard.GeocodeSnapshot
	})
	if len(snapshot) == 0 {
		t.Fatal("geocode result was not snapshotted on the session")
	}
	var geo services.GeocodeResult
	if err := json.Unmarshal(snapshot, &geo); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if geo.City != "Tbilissi" || geo.District != "Vake" || geo.Zip != "0179" {
		t.Errorf("snapshot = %+v, want the resolved address", geo)
	}
}

func TestReverseGeocodeRejectsInvalidCoordinates(t *testing.T) {
	Store = wizard.NewStore()
	Geocoder = services.NewGeocodeService(&cannedHTTPClient{body: `{}`}, services.GeocodeConfig{})

	userID := uuid.Must(uuid.NewV7())
	token := Store.Create(wizard.New(locations.DefaultCatalog()), userID)

	c, rec := geocodeTestContext(t, token, "lat=abc&lng=44.76")
	c.Set("userID", userID.String())

	ReverseGeocode(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReverseGeocodeForeignSession(t *testing.T) {
	Store = wizard.NewStore()
	Geocoder = services.NewGeocodeService(&cannedHTTPClient{body: `{}`}, services.GeocodeConfig{})

	owner := uuid.Must(uuid.NewV7())
	token := Store.Create(wizard.New(locations.DefaultCatalog()), owner)

	c, rec := geocodeTestContext(t, token, "lat=41.7&lng=44.8")
	c.Set("userID", uuid.Must(uuid.NewV7()).String())

	ReverseGeocode(c)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
