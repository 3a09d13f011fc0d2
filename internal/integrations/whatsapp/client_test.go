package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

func newTestClient(url string) *Client {
	return NewClient(Config{
		APIURL:      url,
		APIKey:      "secret",
		CountryCode: "55",
		Timeout:     2 * time.Second,
		RatePerSec:  100,
		Burst:       10,
	}, logger.Nop())
}

func TestClient_Send(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte("Message queued"))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL+"/whatsapp.php").Send(context.Background(), "(11) 98765-4321", "Olá João! Às 10:00")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/whatsapp.php", got.URL.Path)
	assert.Equal(t, "5511987654321", got.URL.Query().Get("phone"))
	assert.Equal(t, "Olá João! Às 10:00", got.URL.Query().Get("text"))
	assert.Equal(t, "secret", got.URL.Query().Get("apikey"))
}

func TestClient_SendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "APIKey is invalid", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Send(context.Background(), "11987654321", "hello")

	assert.ErrorIs(t, err, ErrGatewayFailed)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestClient(url).Send(context.Background(), "11987654321", "hello")
	assert.ErrorIs(t, err, ErrGatewayFailed)
}

func TestClient_SendValidation(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")

	assert.ErrorIs(t, c.Send(context.Background(), "no digits", "hello"), ErrInvalidPhone)
	assert.ErrorIs(t, c.Send(context.Background(), "11987654321", "   "), ErrEmptyMessage)
}

func TestClient_SendCancelledWhileRateLimited(t *testing.T) {
	c := NewClient(Config{APIURL: "http://127.0.0.1:1", CountryCode: "55", Timeout: time.Second, RatePerSec: 0.001, Burst: 1}, logger.Nop())
	c.limiter.Allow() // исчерпываем burst

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Send(ctx, "11987654321", "hello")
	assert.ErrorIs(t, err, ErrGatewayFailed)
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "(11) 98765-4321", want: "5511987654321"},
		{raw: "+55 11 98765-4321", want: "5511987654321"},
		{raw: "5511987654321", want: "5511987654321"},
	}
	for _, tt := range tests {
		got, err := FormatPhone(tt.raw, "55")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := FormatPhone("---", "55")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestNoopSender(t *testing.T) {
	s := NewNoopSender(logger.Nop())
	assert.NoError(t, s.Send(context.Background(), "11987654321", "hi"))
	assert.ErrorIs(t, s.Send(context.Background(), "11987654321", ""), ErrEmptyMessage)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*********4321", mask("5511987654321"))
	assert.Equal(t, "****", mask("123"))
}
