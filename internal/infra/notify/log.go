// Package notify delivers pickup notices. The engine only needs the port;
// this slog-backed implementation is what the composition root wires in when
// no real channel (mail, push) sits behind the engine.
package notify

import (
	"context"
	"log/slog"

	"circulation-engine/internal/usecase/commands"
)

type logNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) commands.PickupNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) PickupAvailable(_ context.Context, notice commands.PickupNotice) error {
	n.logger.Info("pickup available",
		slog.String("reservation_id", notice.ReservationID.String()),
		slog.String("item_id", notice.ItemID.String()),
		slog.String("member_id", notice.MemberID.String()),
		slog.Time("expires_on", notice.ExpiresOn),
	)
	return nil
}
