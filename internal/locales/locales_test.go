package locales

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	pmodel "WeatherHubBot/pkg/models"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestCatalogs_SameKeysAndPlaceholders(t *testing.T) {
	base := catalogs[pmodel.DefaultLanguage]

	for _, lang := range pmodel.Languages {
		cat, ok := catalogs[lang]
		if !ok {
			t.Fatalf("no catalog for %s", lang)
		}
		if len(cat) != len(base) {
			t.Errorf("%s: %d keys, want %d", lang, len(cat), len(base))
		}
		for key, text := range base {
			other, ok := cat[key]
			if !ok {
				t.Errorf("%s: missing key %q", lang, key)
				continue
			}
			_, want := toPositional(text)
			_, got := toPositional(other)
			sort.Strings(want)
			sort.Strings(got)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s/%s placeholders = %v, want %v", lang, key, got, want)
			}
		}
	}
}

func TestToPositional(t *testing.T) {
	text, names := toPositional("{temp}{temp_unit} / {feels_like}{temp_unit}")
	if text != "{0}{1} / {2}{3}" {
		t.Errorf("text = %q", text)
	}
	want := []string{"temp", "temp_unit", "feels_like", "temp_unit"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestGetText_Interpolates(t *testing.T) {
	r := newTestResolver(t)

	got := r.GetText(pmodel.LanguageEnglish, KeyHubMessage, Args{"city": "Lviv"})
	if !strings.Contains(got, "<b>Lviv</b>") {
		t.Errorf("hub-message = %q", got)
	}
}

func TestGetText_RepeatedPlaceholder(t *testing.T) {
	r := newTestResolver(t)

	got := r.GetText(pmodel.LanguageEnglish, KeyWeather, Args{
		"city":        "Kyiv",
		"day":         "today",
		"emoji":       "☀️",
		"description": "Clear sky",
		"temp":        "21",
		"feels_like":  "19",
		"temp_unit":   "°C",
		"humidity":    "40",
		"wind_speed":  "12 km/h",
	})

	for _, part := range []string{"☀️ Weather in <b>Kyiv</b> for today", "Clear sky", "<b>21°C</b>", "feels like 19°C", "40%", "12 km/h"} {
		if !strings.Contains(got, part) {
			t.Errorf("weather text %q does not contain %q", got, part)
		}
	}
}

func TestGetText_MissingArgsAreEmpty(t *testing.T) {
	r := newTestResolver(t)

	got := r.GetText(pmodel.LanguageEnglish, KeyHubMessage, nil)
	if !strings.Contains(got, "<b></b>") {
		t.Errorf("hub-message = %q", got)
	}
}

func TestGetText_PerLanguage(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		lang pmodel.Language
		want string
	}{
		{pmodel.LanguageUkrainian, "сьогодні"},
		{pmodel.LanguageEnglish, "today"},
		{pmodel.LanguageGerman, "heute"},
	}
	for _, tt := range tests {
		if got := r.GetText(tt.lang, KeyDayToday, nil); got != tt.want {
			t.Errorf("GetText(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestGetText_UnknownLanguageFallsBackToDefault(t *testing.T) {
	r := newTestResolver(t)

	got := r.GetText(pmodel.Language("fr"), KeyDayTomorrow, nil)
	if got != "завтра" {
		t.Errorf("GetText(fr) = %q, want default language text", got)
	}
}

func TestGetText_UnknownKeyReturnsKey(t *testing.T) {
	r := newTestResolver(t)

	if got := r.GetText(pmodel.LanguageGerman, "no-such-key", nil); got != "no-such-key" {
		t.Errorf("GetText = %q, want key", got)
	}
}

func TestNewResolver_MissingCatalog(t *testing.T) {
	_, err := newResolver(map[pmodel.Language]map[string]string{
		pmodel.LanguageUkrainian: catalogUk,
	})
	if err == nil {
		t.Fatal("expected error for missing catalogs")
	}
}

func TestKeys_Sorted(t *testing.T) {
	r := newTestResolver(t)

	keys := r.Keys(pmodel.LanguageEnglish)
	if len(keys) != len(catalogEn) {
		t.Fatalf("len(Keys) = %d, want %d", len(keys), len(catalogEn))
	}
	if !sort.StringsAreSorted(keys) {
		t.Error("keys are not sorted")
	}
}
