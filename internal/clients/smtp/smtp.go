package smtp

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/clientnudge/invoicing/pkg/config"
)

// Client delivers email over SMTP. Used instead of the Resend driver for
// self-hosted deployments.
type Client struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPLogin, cfg.SMTPPassword)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		dialer:   dialer,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
	}
}

// Send delivers one HTML email. SMTP has no provider message id, so the
// returned id is always empty.
func (c *Client) Send(_ context.Context, to, subject, htmlBody string) (string, error) {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.from, c.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	return "", nil
}
