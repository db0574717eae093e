package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/pkg/config"
	"github.com/clientnudge/invoicing/pkg/transport"
)

const (
	baseURL             = "https://api.razorpay.com/v1"
	defaultRetryWaitMax = time.Second * 5
)

var oneHundred = decimal.New(100, 0)

// Client is a thin wrapper over the Razorpay Orders API. Amounts on the wire
// are in the smallest currency unit.
type Client struct {
	client        *http.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func New(cfg config.Razorpay) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = 15 * time.Second
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		client:        retryClient.StandardClient(),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (c *Client) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string, notes map[string]string) (entity.CheckoutSession, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   amount.Mul(oneHundred).IntPart(),
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.CheckoutSession{}, fmt.Errorf("razorpay returned %d: %s", resp.StatusCode, respBody)
	}

	var order orderResponse

	err = json.Unmarshal(respBody, &order)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return entity.CheckoutSession{
		SessionID: order.ID,
		Amount:    amount,
		Currency:  currency,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay hands to the
// payer's browser after a successful payment.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	return verifyHMAC([]byte(orderID+"|"+paymentID), signature, c.keySecret)
}

// VerifyWebhook checks the signature header of a webhook delivery against
// the raw request body.
func (c *Client) VerifyWebhook(payload []byte, signature string) error {
	return verifyHMAC(payload, signature, c.webhookSecret)
}

func verifyHMAC(payload []byte, signature, secret string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return entity.ErrInvalidSignature
	}

	return nil
}
