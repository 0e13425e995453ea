// Package catalog provides the HTTP client for the external product
// catalog. It is the single integration boundary: every translation of
// "the product does not exist" happens here.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrProductNotFound covers every outcome that is not a success
	// response with all required fields present: non-2xx status,
	// malformed body, missing id/title/image/price.
	ErrProductNotFound = errors.New("product not found in external catalog")

	// ErrUpstream is returned by the bulk listing when the catalog is
	// unreachable or errors.
	ErrUpstream = errors.New("external catalog unavailable")
)

// Client talks to the external product catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a catalog client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// productPayload mirrors the upstream body with pointer fields so a
// missing required field is distinguishable from a zero value.
type productPayload struct {
	ID     *int64   `json:"id"`
	Title  *string  `json:"title"`
	Image  *string  `json:"image"`
	Price  *float64 `json:"price"`
	Rating *Rating  `json:"rating"`
}

// FetchProduct performs one GET against the catalog and reports the
// normalized product view, or ErrProductNotFound for any outcome short
// of a success status with id, title, image and price all present.
func (c *Client) FetchProduct(ctx context.Context, productID int64) (*Product, error) {
	if productID <= 0 {
		return nil, ErrProductNotFound
	}

	reqURL := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrProductNotFound
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, ErrProductNotFound
	}
	if payload.ID == nil || payload.Title == nil || payload.Image == nil || payload.Price == nil {
		return nil, ErrProductNotFound
	}

	return &Product{
		ID:     *payload.ID,
		Title:  *payload.Title,
		Image:  *payload.Image,
		Price:  *payload.Price,
		Rating: payload.Rating,
	}, nil
}

// FetchAll returns the raw upstream body of the product listing. The
// caller forwards it verbatim, so no decoding beyond reading the body.
func (c *Client) FetchAll(ctx context.Context) ([]byte, error) {
	reqURL := c.baseURL + "/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return body, nil
}
