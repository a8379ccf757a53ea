package notify

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"kelurahan-booking/internal/pkg/config"
	"kelurahan-booking/internal/pkg/errs"
)

// GatewayStatus mirrors the lifecycle of the upstream WhatsApp session.
type GatewayStatus string

const (
	StatusDisconnected GatewayStatus = "DISCONNECTED"
	StatusConnecting   GatewayStatus = "CONNECTING"
	StatusReady        GatewayStatus = "READY"
)

var ErrGatewayUnavailable = errs.New("whatsapp gateway unavailable")

// WhatsAppGateway sends messages through an HTTP gateway (fonnte-style
// API: POST /send with a token header and target/message form fields).
type WhatsAppGateway struct {
	baseURL     string
	token       string
	countryCode string
	client      *http.Client
	status      atomic.Value // GatewayStatus
}

func NewWhatsAppGateway(cfg config.WhatsAppConfig) *WhatsAppGateway {
	g := &WhatsAppGateway{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.Token,
		countryCode: cfg.CountryCode,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
	// A configured gateway stays CONNECTING until the first delivery
	// confirms the token; without a token it is DISCONNECTED for good.
	if cfg.Token == "" {
		g.status.Store(StatusDisconnected)
	} else {
		g.status.Store(StatusConnecting)
	}
	return g
}

func (g *WhatsAppGateway) Status() GatewayStatus {
	return g.status.Load().(GatewayStatus)
}

// Send delivers a message to a phone number in local or international
// format. A gateway without a token drops the message silently.
func (g *WhatsAppGateway) Send(ctx context.Context, phone, message string) error {
	if g.Status() == StatusDisconnected {
		return errs.Mark(errs.New("gateway not configured"), ErrGatewayUnavailable)
	}

	target := NormalizePhone(phone, g.countryCode)
	if target == "" {
		return errs.New("empty target phone number")
	}

	form := url.Values{}
	form.Set("target", target)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/send", strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", g.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "gateway request failed"), ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	g.status.Store(StatusReady)
	return nil
}
