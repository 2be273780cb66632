// Package source reads the advocate list from the /api/advocates endpoint.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"advocates/internal/domain"
)

const listPath = "/api/advocates"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// List performs a single GET. It does not retry.
func (c *Client) List(ctx context.Context) ([]domain.Advocate, error) {
	endpoint := strings.TrimRight(c.BaseURL, "/") + listPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("list advocates: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out domain.ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode advocates: %w", err)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("decode advocates: missing data field")
	}
	return out.Data, nil
}
