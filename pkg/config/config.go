package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Auth     Auth
	Kafka    Kafka
	Mailer   Mailer
	LLM      LLM
	Stripe   Stripe
	Razorpay Razorpay
	Sweep    Sweep
}

type HTTP struct {
	Port        int    `env:"HTTP_PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type Kafka struct {
	Brokers          []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	InvoicePaidTopic string   `env:"KAFKA_INVOICE_PAID_TOPIC" envDefault:"invoice-paid"`
}

type Mailer struct {
	// Driver selects the delivery channel: "resend" (HTTP API) or "smtp".
	Driver       string `env:"MAILER_DRIVER" envDefault:"resend"`
	ResendAPIKey string `env:"RESEND_API_KEY" envDefault:""`
	SMTPHost     string `env:"MAILER_SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"MAILER_SMTP_PORT" envDefault:"587"`
	SMTPLogin    string `env:"MAILER_SMTP_LOGIN" envDefault:""`
	SMTPPassword string `env:"MAILER_SMTP_PASSWORD" envDefault:""`
	FromAddress  string `env:"SENDER_EMAIL" envDefault:"noreply@clientnudge.ai"`
	FromName     string `env:"SENDER_NAME" envDefault:"ClientNudge"`
}

type LLM struct {
	APIKey  string `env:"OPENAI_API_KEY" envDefault:""`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:""`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type Stripe struct {
	APIKey string `env:"STRIPE_API_KEY" envDefault:""`
}

type Razorpay struct {
	KeyID         string `env:"RAZORPAY_KEY_ID" envDefault:""`
	KeySecret     string `env:"RAZORPAY_KEY_SECRET" envDefault:""`
	WebhookSecret string `env:"RAZORPAY_WEBHOOK_SECRET" envDefault:""`
}

type Sweep struct {
	ReminderInterval     time.Duration `env:"REMINDER_SWEEP_INTERVAL" envDefault:"24h"`
	SubscriptionInterval time.Duration `env:"SUBSCRIPTION_SWEEP_INTERVAL" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
