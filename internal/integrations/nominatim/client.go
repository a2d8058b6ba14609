package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Config параметры клиента
type Config struct {
	URL           string
	UserAgent     string
	CountryCodes  string
	Limit         int
	RatePerSecond float64 // публичный сервер разрешает не больше 1 запроса в секунду
	Timeout       time.Duration
}

// Client клиент поиска адресов OpenStreetMap Nominatim
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента Nominatim
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		log:     log,
	}
}

// Search ищет адреса по строке запроса.
// Ожидает очереди ограничителя частоты, пока не истечет ctx.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
	}

	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("countrycodes", c.cfg.CountryCodes)
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(c.cfg.Limit))
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	// политика использования Nominatim требует идентифицирующий User-Agent
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var items []searchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	places := make([]Place, 0, len(items))
	for _, item := range items {
		lat, errLat := strconv.ParseFloat(item.Lat, 64)
		lon, errLon := strconv.ParseFloat(item.Lon, 64)
		if errLat != nil || errLon != nil {
			c.log.Warn("Nominatim: skipping place_id=%d with invalid coordinates lat=%q lon=%q", item.PlaceID, item.Lat, item.Lon)
			continue
		}
		places = append(places, Place{
			ID:    strconv.FormatInt(item.PlaceID, 10),
			Label: item.DisplayName,
			Lat:   lat,
			Lon:   lon,
		})
	}

	return places, nil
}
