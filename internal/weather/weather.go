package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	pmodel "WeatherHubBot/pkg/models"
)

// ErrFetchFailed: единственная ошибка шлюза: сеть, статус и разбор JSON не различаются
var ErrFetchFailed = errors.New("forecast fetch failed")

// Series: ответ OpenWeatherMap /forecast (шаг 3 часа, 5 дней)
type Series struct {
	List []Sample `json:"list"`
}

// Sample: одна точка прогноза
type Sample struct {
	Timestamp string      `json:"dt_txt"` // YYYY-MM-DD HH:MM:SS, UTC
	Main      Main        `json:"main"`
	Weather   []Condition `json:"weather"`
	Wind      Wind        `json:"wind"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type Condition struct {
	Description string `json:"description"`
}

type Wind struct {
	Speed float64 `json:"speed"` // м/с при units=metric
}

// Description возвращает первое описание погоды или пустую строку
func (s Sample) Description() string {
	if len(s.Weather) == 0 {
		return ""
	}
	return s.Weather[0].Description
}

// Client ходит в API прогноза; повторов и кэша нет
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// Fetch получает прогноз для города на языке пользователя
func (c *Client) Fetch(ctx context.Context, city, apiKey string, lang pmodel.Language) (*Series, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)
	values.Set("units", "metric")
	values.Set("lang", lang.APICode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: make request: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: received status code %d: %s", ErrFetchFailed, resp.StatusCode, string(body))
	}

	var series Series
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, fmt.Errorf("%w: decode JSON: %v", ErrFetchFailed, err)
	}

	return &series, nil
}
