package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleetalert/config"
	deliverycontext "fleetalert/internal/delivery/context"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	mockUsecase "fleetalert/internal/mocks/usecase"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, env string) (*PushHandler, *mockUsecase.MockRunnerUsecase) {
	runnerUC := mockUsecase.NewMockRunnerUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RunnerUC: runnerUC,
	}), runnerUC
}

func pushRequest(t *testing.T, payload string, attributes map[string]string) *http.Request {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(payload))
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, runnerUC := newTestPushHandler(t, constants.EnvDevelop)
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	runnerUC.EXPECT().Run(mock.Anything, ref).
		Run(func(ctx context.Context, _ time.Time) {
			assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "alertctl:ops", deliverycontext.GetTriggeredBy(ctx))
		}).
		Return(&entity.RunReport{ReferenceDate: ref, Sent: 3, AlertsCount: 2}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := pushRequest(t, `{"reference_date":"2024-06-01","requested_by":"alertctl:ops"}`, map[string]string{"request_id": "req-123"})

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RunFailures(t *testing.T) {
	tests := []struct {
		name       string
		runErr     error
		wantStatus int
	}{
		{
			name:       "vehicle fetch failure is retried",
			runErr:     domainerrors.ErrVehicleFetchFailed.Wrap(errors.New("timeout")),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "subscription fetch failure is retried",
			runErr:     domainerrors.ErrSubscriptionFetchFailed.Wrap(errors.New("timeout")),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing credentials is acknowledged",
			runErr:     domainerrors.ErrPushCredentialsMissing,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, runnerUC := newTestPushHandler(t, constants.EnvDevelop)
			runnerUC.EXPECT().Run(mock.Anything, time.Time{}).Return(nil, tt.runErr)

			e := echo.New()
			rec := httptest.NewRecorder()

			require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, `{}`, nil), rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_BadMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop)
	e := echo.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, `not json`, nil), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An unparsable date never reaches the runner and is not redelivered
	rec = httptest.NewRecorder()
	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, `{"reference_date":"June 1st"}`, nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesTokenInProduction(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(_ *http.Request) error {
		return errors.New("missing authorization header")
	}

	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, `{}`, nil), rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
