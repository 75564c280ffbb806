package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sender delivers one templated email through the transactional provider.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// EmailJSConfig carries the provider credentials. Every field except BaseURL
// is required; validation happens at construction, never mid-send.
type EmailJSConfig struct {
	BaseURL    string
	ServiceID  string
	PublicKey  string
	PrivateKey string
}

// ConfigError reports a missing provider credential at startup.
type ConfigError struct {
	Field string
}

func (e ConfigError) Error() string {
	return "emailjs configuration missing required field: " + e.Field
}

// Ensure EmailJSClient implements Sender
var _ Sender = (*EmailJSClient)(nil)

// EmailJSClient sends templated emails through the EmailJS REST API.
// EmailJS has no Go SDK; this is a plain HTTP client against
// /api/v1.0/email/send.
type EmailJSClient struct {
	cfg  EmailJSConfig
	http *http.Client
}

func NewEmailJSClient(cfg EmailJSConfig) (*EmailJSClient, error) {
	switch {
	case cfg.ServiceID == "":
		return nil, ConfigError{Field: "service id"}
	case cfg.PublicKey == "":
		return nil, ConfigError{Field: "public key"}
	case cfg.PrivateKey == "":
		return nil, ConfigError{Field: "private key"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.emailjs.com"
	}
	return &EmailJSClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}, nil
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailJSClient) Send(ctx context.Context, templateID string, params map[string]string) error {
	if templateID == "" {
		return ConfigError{Field: "template id"}
	}
	payload := emailJSRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	}
	buf, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/v1.0/email/send", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs send failed: %s: %s", resp.Status, string(body))
	}
	return nil
}
