// Package viacep resolves Brazilian postal codes through the public ViaCEP
// HTTP API.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pratofit/internal/core/ports"
)

// DefaultBaseURL is the public ViaCEP endpoint.
const DefaultBaseURL = "https://viacep.com.br"

// Client implements ports.AddressLookup against the ViaCEP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a ViaCEP client. baseURL has no trailing slash; pass
// DefaultBaseURL outside of tests.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// lookupResponse mirrors the ViaCEP payload. The API reports an unknown
// code with an "erro" field whose type has changed between boolean and
// string over the years, so it is kept raw and checked for truthiness.
type lookupResponse struct {
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Erro       json.RawMessage `json:"erro"`
}

// Lookup queries ViaCEP for a normalized 8-digit postal code.
// An unknown code is not an error: it comes back with Found=false.
func (c *Client) Lookup(ctx context.Context, postalCode string) (ports.AddressLookupResult, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.AddressLookupResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.AddressLookupResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.AddressLookupResult{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.AddressLookupResult{}, err
	}

	if isErrorFlagSet(payload.Erro) {
		return ports.AddressLookupResult{Found: false}, nil
	}

	return ports.AddressLookupResult{
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		Found:        true,
	}, nil
}

func isErrorFlagSet(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "false", `"false"`, "null":
		return false
	default:
		return true
	}
}
