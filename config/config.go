// Package config loads the merchant settings a payment window integration
// needs: gateway id, shared secret and the endpoint to post to.
package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/onpay/paymentwindow"
	"github.com/onpay/paymentwindow/secret"
)

type Config struct {
	GatewayID string       `yaml:"gateway_id" env:"ONPAY_GATEWAY_ID" env-required:"true" env-description:"payment window gateway id"`
	Secret    secret.Value `yaml:"secret" env:"ONPAY_SECRET" env-required:"true" env-description:"shared HMAC secret"`
	ActionURL string       `yaml:"action_url" env:"ONPAY_ACTION_URL" env-default:"https://onpay.io/window/v3/" env-description:"payment window endpoint"`
	TestMode  bool         `yaml:"test_mode" env:"ONPAY_TEST_MODE" env-default:"false" env-description:"mark requests as test payments"`
	// CaseSensitiveVerification disables lower-casing on the return trip.
	CaseSensitiveVerification bool   `yaml:"case_sensitive_verification" env:"ONPAY_CASE_SENSITIVE_VERIFICATION" env-default:"false"`
	Listen                    string `yaml:"listen" env:"LISTEN_ADDR" env-default:":8080"`
}

// Load reads the YAML file at path, with environment variables taking
// precedence. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if u, err := url.Parse(cfg.ActionURL); err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("config: action_url %q is not an absolute URL", cfg.ActionURL)
	}
	return cfg, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

// NewBuilder returns a builder seeded with the gateway id and test mode.
func (c *Config) NewBuilder() *paymentwindow.Builder {
	return paymentwindow.NewBuilder().
		GatewayID(c.GatewayID).
		TestMode(c.TestMode)
}

func (c *Config) options() []paymentwindow.Option {
	var opts []paymentwindow.Option
	if c.ActionURL != "" {
		opts = append(opts, paymentwindow.WithActionURL(c.ActionURL))
	}
	if c.CaseSensitiveVerification {
		opts = append(opts, paymentwindow.WithCaseSensitiveVerification())
	}
	return opts
}

// Signer returns a signer keyed with the configured secret.
func (c *Config) Signer() *paymentwindow.Signer {
	return paymentwindow.NewSigner(c.Secret, c.options()...)
}

// Verifier returns a verifier keyed with the configured secret.
func (c *Config) Verifier() *paymentwindow.Verifier {
	return paymentwindow.NewVerifier(c.Secret, c.options()...)
}
