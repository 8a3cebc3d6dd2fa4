package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"imagestorebot/internal/config"
	"imagestorebot/internal/service"
)

// Event is one inbound update from the messaging gateway: either a photo
// (PhotoFileRef set) or a command with its raw argument text.
type Event struct {
	ChatID       int64
	SenderID     int64
	Command      string
	Args         string
	PhotoFileRef string
}

// Sender delivers outbound messages through the messaging gateway.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, fileReference string) error
}

type CommandFunc func(ctx context.Context, ev Event) error

type Handlers struct {
	PhotoService  service.PhotoService
	ReviewService service.ReviewService
	StatsService  service.StatsService
	Sender        Sender
	Cfg           *config.Config
	Validate      *validator.Validate
	Log           *zap.Logger

	commands map[string]CommandFunc
}

func NewHandlers(service *service.Service, sender Sender, cfg *config.Config, log *zap.Logger) *Handlers {
	h := &Handlers{
		PhotoService:  service.Photo,
		ReviewService: service.Review,
		StatsService:  service.Stats,
		Sender:        sender,
		Cfg:           cfg,
		Validate:      validator.New(),
		Log:           log,
	}

	h.commands = map[string]CommandFunc{
		"start":   h.Start,
		"help":    h.Help,
		"tag":     h.TagPhoto,
		"get":     h.GetPhoto,
		"review":  h.adminOnly("review", h.ReviewPhotos),
		"approve": h.adminOnly("approve", h.ApprovePhoto),
		"reject":  h.adminOnly("reject", h.RejectPhoto),
	}

	return h
}

// Handle processes one event to completion. Storage and delivery failures
// are logged and answered with a generic failure reply; nothing is retried.
func (h *Handlers) Handle(ctx context.Context, ev Event) {
	var handler CommandFunc

	switch {
	case ev.PhotoFileRef != "":
		handler = h.UploadPhoto
	case ev.Command != "":
		handler = h.commands[ev.Command]
	}

	if handler == nil {
		h.Log.Debug("ignoring update",
			zap.Int64("sender_id", ev.SenderID),
			zap.String("command", ev.Command),
		)
		return
	}

	if err := handler(ctx, ev); err != nil {
		h.Log.Error("update failed",
			zap.Int64("sender_id", ev.SenderID),
			zap.String("command", ev.Command),
			zap.Error(err),
		)
		h.replyFailure(ctx, ev)
	}
}
