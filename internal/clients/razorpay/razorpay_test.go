package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clientnudge/invoicing/internal/entity"
	"github.com/clientnudge/invoicing/pkg/config"
)

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_VerifySignature(t *testing.T) {
	t.Parallel()

	c := New(config.Razorpay{KeySecret: "test-secret", WebhookSecret: "hook-secret"})

	valid := sign("order_1|pay_1", "test-secret")
	require.NoError(t, c.VerifySignature("order_1", "pay_1", valid))

	err := c.VerifySignature("order_1", "pay_1", sign("order_1|pay_1", "wrong-secret"))
	require.ErrorIs(t, err, entity.ErrInvalidSignature)

	err = c.VerifySignature("order_2", "pay_1", valid)
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}

func TestClient_VerifyWebhook(t *testing.T) {
	t.Parallel()

	c := New(config.Razorpay{WebhookSecret: "hook-secret"})

	payload := []byte(`{"event":"payment.captured"}`)
	require.NoError(t, c.VerifyWebhook(payload, sign(string(payload), "hook-secret")))

	err := c.VerifyWebhook(payload, "deadbeef")
	require.ErrorIs(t, err, entity.ErrInvalidSignature)
}
