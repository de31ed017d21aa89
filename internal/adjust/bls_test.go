package adjust

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blsPayload = `{
  "status": "REQUEST_SUCCEEDED",
  "message": [],
  "Results": {
    "series": [
      {
        "seriesID": "CUSR0000SAF11",
        "data": [
          {"year": "2025", "period": "M13", "value": "999.0"},
          {"year": "2025", "period": "M02", "value": "312.0"},
          {"year": "2025", "period": "M03", "value": "315.12"},
          {"year": "2024", "period": "M03", "value": "300.0"},
          {"year": "2024", "period": "S01", "value": "1.0"}
        ]
      },
      {
        "seriesID": "CUSR0000SEFV",
        "data": [
          {"year": "2025", "period": "M03", "value": "380.0"},
          {"year": "2025", "period": "M02", "value": "400.0"}
        ]
      }
    ]
  }
}`

func newTestBLS(t *testing.T, handler http.HandlerFunc) *BLSSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src := NewBLSSource("secret")
	src.Endpoint = srv.URL
	src.Client = srv.Client()
	src.Now = func() time.Time { return time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC) }
	return src
}

func TestBLSSource_Fetch(t *testing.T) {
	var got blsRequest
	src := newTestBLS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(blsPayload))
	})

	indices, err := src.Fetch(context.Background(), "0")
	require.NoError(t, err)

	assert.Equal(t, []string{SeriesFoodAtHome, SeriesFoodAway}, got.SeriesID)
	assert.Equal(t, "2024", got.StartYear)
	assert.Equal(t, "2025", got.EndYear)
	assert.Equal(t, "secret", got.RegistrationKey)

	g := indices.Groceries
	assert.Equal(t, "315.12", g.BaseValue.String())
	assert.Equal(t, "1", g.MonthlyChange.String())
	assert.Equal(t, "5.04", g.YearOverYearChange.String())
	assert.Equal(t, src.Now(), g.Timestamp)

	r := indices.Restaurant
	assert.Equal(t, "380", r.BaseValue.String())
	assert.Equal(t, "-5", r.MonthlyChange.String())
	assert.True(t, r.YearOverYearChange.IsZero(), "no matching month a year earlier")
}

func TestBLSSource_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http error", http.StatusServiceUnavailable, "maintenance", "BLS returned 503"},
		{"bad json", http.StatusOK, "{", "failed to decode BLS response"},
		{"not succeeded", http.StatusOK, `{"status":"REQUEST_NOT_PROCESSED","message":["daily threshold reached"]}`, "daily threshold reached"},
		{"missing series", http.StatusOK, `{"status":"REQUEST_SUCCEEDED","Results":{"series":[{"seriesID":"CUSR0000SAF11","data":[{"year":"2025","period":"M01","value":"1"}]}]}}`, "missing series"},
		{"empty series", http.StatusOK, `{"status":"REQUEST_SUCCEEDED","Results":{"series":[{"seriesID":"CUSR0000SAF11","data":[]}]}}`, "no monthly observations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestBLS(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := src.Fetch(context.Background(), "0")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBLSSource_RespectsContext(t *testing.T) {
	src := newTestBLS(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(blsPayload))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Fetch(ctx, "0")
	assert.ErrorIs(t, err, context.Canceled)
}
