package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/clientnudge/invoicing/pkg/config"
	"github.com/clientnudge/invoicing/pkg/transport"
)

const (
	baseURL             = "https://api.resend.com"
	defaultRetryWaitMax = time.Second * 5
)

// Client delivers email through the Resend HTTP API.
type Client struct {
	client   *http.Client
	apiKey   string
	from     string
	fromName string
}

func New(cfg config.Mailer) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = 15 * time.Second
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		client:   retryClient.StandardClient(),
		apiKey:   cfg.ResendAPIKey,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	body, err := json.Marshal(sendRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.from),
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("resend returned %d: %s", resp.StatusCode, respBody)
	}

	var sr sendResponse

	err = json.Unmarshal(respBody, &sr)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return sr.ID, nil
}
