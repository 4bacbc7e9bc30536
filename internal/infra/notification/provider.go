package notification

import (
	"context"
	"log/slog"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	domainerrors "fleetalert/internal/domain/errors"
	"fleetalert/internal/domain/lifecycle"
	"fleetalert/internal/domain/service"
	"fleetalert/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the push sender
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates the push sender selected by push.transport.
// When the transport has no credentials it returns a nil sender: the process still serves the dashboard,
// and every dispatch run fails with ErrPushCredentialsMissing.
func NewPushSender(params Params) (service.PushSender, error) {
	var (
		sender service.PushSender
		err    error
	)

	switch params.Config.Push.Transport {
	case constants.PushTransportFCM:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		sender, err = NewFirebaseSender(ctx, params.Config, params.Logger)
	case constants.PushTransportWebPush, "":
		sender, err = NewWebPushSender(params.Config, nil, params.Logger)
	default:
		return nil, errors.Errorf("unknown push transport: %s", params.Config.Push.Transport)
	}

	if errors.Is(err, domainerrors.ErrPushCredentialsMissing) {
		params.Logger.Warn("Push transport is not configured, dispatch runs will fail",
			slog.String("transport", params.Config.Push.Transport),
			slog.Any("error", err),
		)

		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Push transport configured", slog.String("transport", sender.Transport()))

	return sender, nil
}
