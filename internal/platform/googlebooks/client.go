package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booktracker/internal/entity"

	"golang.org/x/time/rate"
)

// ErrUnavailable covers every upstream failure mode: transport errors,
// timeouts, non-2xx responses and undecodable bodies. Callers only need to
// know the provider could not serve the query.
var ErrUnavailable = errors.New("google books unavailable")

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(apiKey string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: "https://www.googleapis.com/books/v1/volumes",
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// volumesResponse matches the volumes search payload, reduced to the fields
// the normalizer reads.
type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	PublishedDate       string               `json:"publishedDate"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// Search runs one volumes query and returns the normalized results. A payload
// without an item list yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var res volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	return normalize(res), nil
}
