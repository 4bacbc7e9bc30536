package notification

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWebPushConfig(t *testing.T) *config.Config {
	t.Helper()

	privateKey, publicKey, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	return &config.Config{
		Push: &config.PushConfig{Transport: constants.PushTransportWebPush, TTL: 60, Urgency: "high"},
		WebPush: &config.WebPushConfig{
			VAPIDPublicKey:  publicKey,
			VAPIDPrivateKey: privateKey,
			Subscriber:      "mailto:ops@example.com",
		},
	}
}

func newBrowserSubscription(t *testing.T, endpoint string) *entity.PushSubscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)

	return &entity.PushSubscription{
		ID:       uuid.New(),
		OwnerID:  entity.SystemOwnerID,
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(secret),
	}
}

var testMessage = &entity.PushMessage{Title: "Fleet compliance alert", Body: "2 vehicle documents need attention", Tag: "fleet-compliance"}

func TestNewWebPushSender_MissingKeys(t *testing.T) {
	cfg := &config.Config{Push: &config.PushConfig{}, WebPush: &config.WebPushConfig{VAPIDPublicKey: "pub"}}

	sender, err := NewWebPushSender(cfg, nil, discardLogger())

	assert.Nil(t, sender)
	assert.True(t, errors.Is(err, domainerrors.ErrPushCredentialsMissing))
}

func TestWebPushSender_Send(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantErr       bool
		wantPermanent bool
		wantStatus    int
	}{
		{name: "accepted", status: http.StatusCreated},
		{name: "gone is permanent", status: http.StatusGone, wantErr: true, wantPermanent: true, wantStatus: http.StatusGone},
		{name: "not found is permanent", status: http.StatusNotFound, wantErr: true, wantPermanent: true, wantStatus: http.StatusNotFound},
		{name: "rate limited is transient", status: http.StatusTooManyRequests, wantErr: true, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeaders http.Header
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeaders = r.Header.Clone()
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("push service says " + http.StatusText(tt.status)))
			}))
			defer server.Close()

			sender, err := NewWebPushSender(newWebPushConfig(t), server.Client(), discardLogger())
			require.NoError(t, err)
			assert.Equal(t, constants.PushTransportWebPush, sender.Transport())

			err = sender.Send(context.Background(), newBrowserSubscription(t, server.URL), testMessage)

			require.NotNil(t, gotHeaders)
			assert.Equal(t, "aes128gcm", gotHeaders.Get("Content-Encoding"))
			assert.Contains(t, gotHeaders.Get("Authorization"), "vapid")

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			var deliveryErr *service.DeliveryError
			ok := errors.As(err, &deliveryErr)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, deliveryErr.StatusCode)
			assert.Contains(t, deliveryErr.Detail, "push service says")
			assert.Equal(t, tt.wantPermanent, service.IsPermanentDeliveryError(err))
		})
	}
}

func TestWebPushSender_SendWithoutKeys(t *testing.T) {
	sender, err := NewWebPushSender(newWebPushConfig(t), nil, discardLogger())
	require.NoError(t, err)

	err = sender.Send(context.Background(), &entity.PushSubscription{Endpoint: "https://push.example.com/x"}, testMessage)

	var deliveryErr *service.DeliveryError
	ok := errors.As(err, &deliveryErr)
	require.True(t, ok)
	assert.False(t, deliveryErr.Permanent())
}

func TestParseUrgency(t *testing.T) {
	assert.EqualValues(t, "low", parseUrgency("LOW"))
	assert.EqualValues(t, "very-low", parseUrgency("very-low"))
	assert.EqualValues(t, "normal", parseUrgency(" normal "))
	assert.EqualValues(t, "high", parseUrgency(""))
}

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/fleet/messages/1", nil
}

func TestFirebaseSender_Send(t *testing.T) {
	client := &fakeMessagingClient{}
	sender := newFirebaseSender(client, 0, discardLogger())

	sub := &entity.PushSubscription{ID: uuid.New(), Endpoint: "fcm-registration-token"}
	msg := &entity.PushMessage{Title: "t", Body: "b", Tag: "fleet-compliance", Data: map[string]string{"alerts_count": "1"}}

	require.NoError(t, sender.Send(context.Background(), sub, msg))
	require.Len(t, client.sent, 1)
	assert.Equal(t, "fcm-registration-token", client.sent[0].Token)
	assert.Equal(t, "b", client.sent[0].Notification.Body)
	assert.Equal(t, "1", client.sent[0].Data["alerts_count"])
	assert.Equal(t, "fleet-compliance", client.sent[0].Android.Notification.Tag)
	assert.Equal(t, constants.PushTransportFCM, sender.Transport())
}

func TestFirebaseSender_SendUnknownFailureIsTransient(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("connection reset")}
	sender := newFirebaseSender(client, 0, discardLogger())

	err := sender.Send(context.Background(), &entity.PushSubscription{Endpoint: "token"}, testMessage)

	var deliveryErr *service.DeliveryError
	ok := errors.As(err, &deliveryErr)
	require.True(t, ok)
	assert.Equal(t, 0, deliveryErr.StatusCode)
	assert.False(t, service.IsPermanentDeliveryError(err))
}

func TestNewPushSender_WithoutCredentialsReturnsNil(t *testing.T) {
	cfg := &config.Config{
		Push:     &config.PushConfig{Transport: constants.PushTransportFCM},
		Firebase: &config.FirebaseConfig{},
	}

	sender, err := NewPushSender(Params{Config: cfg, Logger: discardLogger()})

	assert.NoError(t, err)
	assert.Nil(t, sender)
}
