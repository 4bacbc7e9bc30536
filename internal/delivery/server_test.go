package delivery

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestConfig(writeTimeout, runTimeout time.Duration) *config.Config {
	cfg := &config.Config{Dispatch: &config.DispatchConfig{RunTimeout: runTimeout}}
	cfg.HTTP.Timeouts.WriteTimeout = writeTimeout

	return cfg
}

func TestWriteTimeout(t *testing.T) {
	tests := []struct {
		name         string
		writeTimeout time.Duration
		runTimeout   time.Duration
		want         time.Duration
	}{
		{
			name:         "raised to cover a run",
			writeTimeout: 30 * time.Second,
			runTimeout:   2 * time.Minute,
			want:         2*time.Minute + runResponseMargin,
		},
		{
			name:         "longer write timeout kept",
			writeTimeout: 5 * time.Minute,
			runTimeout:   2 * time.Minute,
			want:         5 * time.Minute,
		},
		{
			name:         "unbounded stays unbounded",
			writeTimeout: 0,
			runTimeout:   2 * time.Minute,
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WriteTimeout(newTestConfig(tt.writeTimeout, tt.runTimeout)))
		})
	}
}

func TestNewEcho(t *testing.T) {
	cfg := newTestConfig(30*time.Second, time.Minute)
	e := NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, time.Minute+runResponseMargin, e.Server.WriteTimeout)

	e.GET("/request-id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/panic", func(_ echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/request-id", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Body.String())
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
