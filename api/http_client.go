// api/http_client.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient. The timeout is a
// hard cap per request; callers can impose a tighter bound through the
// request context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get makes a GET request to the API and decodes the JSON response.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, query url.Values, response interface{}) error {
	body, err := c.GetRaw(ctx, endpoint, query)
	if err != nil {
		return err
	}

	if response != nil {
		return json.Unmarshal(body, response)
	}

	return nil
}

// GetRaw makes a GET request and returns the undecoded response body.
// Schedule payloads are not valid UTF-8, so they cannot go through the
// JSON decoder directly.
func (c *HTTPClient) GetRaw(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	requestURL := c.BaseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.New("unexpected status code: " + res.Status)
	}

	return resBody, nil
}
