package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
)

// Client talks to the vendor's REST API. Transport defaults are left
// to net/http; no retry is attempted here.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient builds a client for the given environment ("production"
// selects the live endpoint, anything else the sandbox).
func NewClient(accessToken, env string) *Client {
	base := sandboxBaseURL
	if env == "production" {
		base = productionBaseURL
	}
	return &Client{
		accessToken: accessToken,
		baseURL:     base,
		httpClient:  &http.Client{},
	}
}

// ListCatalog fetches every ITEM, IMAGE and CATEGORY object, following
// pagination cursors until the batch is complete.
func (c *Client) ListCatalog(ctx context.Context) ([]CatalogObject, error) {
	var objects []CatalogObject
	cursor := ""

	for {
		endpoint := c.baseURL + "/v2/catalog/list?types=ITEM,IMAGE,CATEGORY"
		if cursor != "" {
			endpoint += "&cursor=" + url.QueryEscape(cursor)
		}

		var page listCatalogResponse
		if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}
		if len(page.Errors) > 0 {
			return nil, fmt.Errorf("catalog list error: %s (%s)", page.Errors[0].Detail, page.Errors[0].Code)
		}

		objects = append(objects, page.Objects...)
		if page.Cursor == "" {
			return objects, nil
		}
		cursor = page.Cursor
	}
}

// CreatePaymentLink submits a checkout and returns the hosted payment
// link. The request's idempotency key lets the provider de-duplicate
// resubmissions.
func (c *Client) CreatePaymentLink(ctx context.Context, req CreatePaymentLinkRequest) (*PaymentLink, error) {
	var out createPaymentLinkResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/v2/online-checkout/payment-links", req, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("payment link error: %s (%s)", out.Errors[0].Detail, out.Errors[0].Code)
	}
	if out.PaymentLink == nil || out.PaymentLink.URL == "" {
		return nil, fmt.Errorf("provider returned no payment URL")
	}
	return out.PaymentLink, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach vendor API: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("vendor API error (%d): %s", resp.StatusCode, string(raw))
	}

	// Money amounts must survive as arbitrary precision values.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse vendor response: %v", err)
	}
	return nil
}
