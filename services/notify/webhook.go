package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"galaxydental/models"
)

// Notifier sends the appointment payload to the clinic management
// system. Delivery is best-effort: implementations never return an
// error and never block the caller's flow on failure.
type Notifier interface {
	Notify(ctx context.Context, payload models.AppointmentPayload)
}

// WebhookNotifier posts the payload as JSON to a configured endpoint.
// Any failure (unset URL, network error, non-2xx status) is logged as a
// diagnostic and otherwise ignored.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewWebhookNotifier(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, payload models.AppointmentPayload) {
	if n.URL == "" {
		n.Logger.Debug("webhook sync skipped: no endpoint configured")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		n.Logger.Warn("webhook sync skipped: could not encode payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		n.Logger.Warn("webhook sync skipped: could not build request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		n.Logger.Warn("webhook sync skipped: endpoint unreachable", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.Logger.Warn("webhook sync rejected by endpoint", zap.Int("status", resp.StatusCode))
		return
	}
	n.Logger.Info("webhook sync delivered", zap.String("endpoint", n.URL))
}
