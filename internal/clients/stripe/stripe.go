package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/pkg/config"
	"github.com/clientnudge/invoicing/pkg/transport"
)

const (
	baseURL             = "https://api.stripe.com/v1"
	defaultRetryWaitMax = time.Second * 5
)

var oneHundred = decimal.New(100, 0)

// Client is a thin wrapper over the Stripe Checkout REST API.
type Client struct {
	client *http.Client
	apiKey string
}

func New(cfg config.Stripe) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = 15 * time.Second
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		client: retryClient.StandardClient(),
		apiKey: cfg.APIKey,
	}
}

type checkoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, inv entity.Invoice, successURL, cancelURL string) (entity.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(inv.Currency))
	form.Set("line_items[0][price_data][product_data][name]", "Invoice "+inv.Number)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(inv.TotalAmount.Mul(oneHundred).IntPart(), 10))
	form.Set("metadata[invoice_id]", inv.ID.String())

	var session checkoutSession

	err := c.do(ctx, http.MethodPost, "/checkout/sessions", form, &session)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return entity.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
		Amount:    inv.TotalAmount,
		Currency:  inv.Currency,
	}, nil
}

func (c *Client) SessionPaid(ctx context.Context, sessionID string) (bool, error) {
	var session checkoutSession

	err := c.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(sessionID), nil, &session)
	if err != nil {
		return false, err
	}

	return session.PaymentStatus == "paid", nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stripe returned %d: %s", resp.StatusCode, respBody)
	}

	err = json.Unmarshal(respBody, out)
	if err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
