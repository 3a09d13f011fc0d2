package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// maxErrorBody сколько байт ответа шлюза попадает в текст ошибки
const maxErrorBody = 512

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры клиента шлюза
type Config struct {
	APIURL      string
	APIKey      string
	CountryCode string
	Timeout     time.Duration
	RatePerSec  float64
	Burst       int
}

// Client клиент HTTP шлюза WhatsApp
// Шлюз принимает GET {api_url}?phone=...&text=...&apikey=...
type Client struct {
	apiURL      string
	apiKey      string
	countryCode string
	httpClient  *http.Client
	limiter     *rate.Limiter
	log         Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		apiURL:      cfg.APIURL,
		apiKey:      cfg.APIKey,
		countryCode: cfg.CountryCode,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		log:     log,
	}
}

// Send отправляет текстовое сообщение на номер phone
// Ожидает свободного места в лимите запросов, пока не отменен ctx
func (c *Client) Send(ctx context.Context, phone, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	formatted, err := FormatPhone(phone, c.countryCode)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrGatewayFailed, err)
	}

	endpoint, err := c.buildURL(formatted, text)
	if err != nil {
		return fmt.Errorf("%w: failed to build url: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("WhatsApp: request to gateway failed phone=%s: %v", mask(formatted), err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrGatewayFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("WhatsApp: gateway returned status=%d phone=%s", resp.StatusCode, mask(formatted))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrGatewayFailed, resp.StatusCode, string(body))
	}

	// Тело успешного ответа не используется, дочитываем для переиспользования соединения
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Info("WhatsApp: message sent phone=%s", mask(formatted))
	return nil
}

func (c *Client) buildURL(phone, text string) (string, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("phone", phone)
	q.Set("text", text)
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NoopSender используется, когда шлюз не настроен: сообщение только пишется в лог
type NoopSender struct {
	log Logger
}

// NewNoopSender создает отправителя-заглушку
func NewNoopSender(log Logger) *NoopSender {
	return &NoopSender{log: log}
}

// Send пишет сообщение в лог и ничего не отправляет
func (s *NoopSender) Send(_ context.Context, phone, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	s.log.Info("WhatsApp: gateway not configured, skipping message to %s (%d chars)", mask(phone), len(text))
	return nil
}

// mask скрывает середину номера в логах
func mask(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
