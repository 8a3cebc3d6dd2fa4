package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// adminOnly lets the command through only for the configured admin. Anyone
// else gets a refusal and the command never reaches the ledger.
func (h *Handlers) adminOnly(action string, next CommandFunc) CommandFunc {
	return func(ctx context.Context, ev Event) error {
		if ev.SenderID != h.Cfg.Telegram.AdminID {
			h.Log.Warn("unauthorized admin command",
				zap.Int64("sender_id", ev.SenderID),
				zap.String("command", ev.Command),
			)
			return h.reply(ctx, ev, fmt.Sprintf(msgNotAuthorized, action))
		}
		return next(ctx, ev)
	}
}
