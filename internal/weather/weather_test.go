package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pmodel "WeatherHubBot/pkg/models"
)

const forecastJSON = `{
  "cod": "200",
  "list": [
    {
      "dt": 1741608000,
      "main": {"temp": 7.5, "feels_like": 5.1, "humidity": 81},
      "weather": [{"id": 500, "main": "Rain", "description": "light rain"}, {"description": "mist"}],
      "wind": {"speed": 4.2, "deg": 200},
      "dt_txt": "2025-03-10 12:00:00"
    },
    {
      "dt": 1741618800,
      "main": {"temp": 6.0, "feels_like": 4.0, "humidity": 85},
      "weather": [],
      "wind": {"speed": 0},
      "dt_txt": "2025-03-10 15:00:00"
    }
  ]
}`

func TestClient_Fetch_BuildsQueryAndDecodes(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":     q.Get("q"),
			"appid": q.Get("appid"),
			"units": q.Get("units"),
			"lang":  q.Get("lang"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	series, err := c.Fetch(context.Background(), "Kyiv", "secret", pmodel.LanguageUkrainian)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := map[string]string{"q": "Kyiv", "appid": "secret", "units": "metric", "lang": "ua"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(series.List) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(series.List))
	}
	first := series.List[0]
	if first.Timestamp != "2025-03-10 12:00:00" {
		t.Errorf("Timestamp = %q", first.Timestamp)
	}
	if first.Main.Temp != 7.5 || first.Main.FeelsLike != 5.1 || first.Main.Humidity != 81 {
		t.Errorf("Main = %+v", first.Main)
	}
	if first.Wind.Speed != 4.2 {
		t.Errorf("Wind.Speed = %v", first.Wind.Speed)
	}
	if first.Description() != "light rain" {
		t.Errorf("Description() = %q, want first entry only", first.Description())
	}
	if series.List[1].Description() != "" {
		t.Errorf("Description() without entries = %q, want empty", series.List[1].Description())
	}
}

func TestClient_Fetch_EscapesCity(t *testing.T) {
	var gotCity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCity = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"list": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	if _, err := c.Fetch(context.Background(), "Frankfurt am Main&x=1", "k", pmodel.LanguageGerman); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotCity != "Frankfurt am Main&x=1" {
		t.Errorf("city = %q", gotCity)
	}
}

func TestClient_Fetch_FailuresCollapseToErrFetchFailed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"list": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.Client(), srv.URL).Fetch(context.Background(), "Kyiv", "k", pmodel.LanguageEnglish)
			if !errors.Is(err, ErrFetchFailed) {
				t.Errorf("err = %v, want ErrFetchFailed", err)
			}
		})
	}
}

func TestClient_Fetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(nil, url).Fetch(context.Background(), "Kyiv", "k", pmodel.LanguageEnglish)
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}
}
