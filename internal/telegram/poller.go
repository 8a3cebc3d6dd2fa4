package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	handlers "imagestorebot/internal/handler"
)

type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type EventHandler interface {
	Handle(ctx context.Context, ev handlers.Event)
}

// Poller long-polls updates and hands each to the router. With one worker
// updates are handled strictly one after another.
type Poller struct {
	source  updateSource
	handler EventHandler
	timeout int
	workers int
	log     *zap.Logger
}

func NewPoller(source updateSource, handler EventHandler, timeoutSeconds, workers int, log *zap.Logger) *Poller {
	if workers < 1 {
		workers = 1
	}
	return &Poller{
		source:  source,
		handler: handler,
		timeout: timeoutSeconds,
		workers: workers,
		log:     log,
	}
}

// Run blocks until ctx is cancelled or the update channel closes, then
// waits for in-flight updates to finish.
func (p *Poller) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.timeout
	updates := p.source.GetUpdatesChan(u)

	var g errgroup.Group
	g.SetLimit(p.workers)

	// in-flight updates finish even after shutdown starts
	handleCtx := context.WithoutCancel(ctx)

	p.log.Info("polling for updates", zap.Int("workers", p.workers))

	for {
		select {
		case <-ctx.Done():
			p.source.StopReceivingUpdates()
			return g.Wait()
		case update, ok := <-updates:
			if !ok {
				return g.Wait()
			}

			ev, ok := ToEvent(update)
			if !ok {
				continue
			}

			g.Go(func() error {
				p.handle(handleCtx, update.UpdateID, ev)
				return nil
			})
		}
	}
}

func (p *Poller) handle(ctx context.Context, updateID int, ev handlers.Event) {
	defer func() {
		if err := recover(); err != nil {
			p.log.Error("panic while handling update",
				zap.Int("update_id", updateID),
				zap.Any("error", err),
			)
		}
	}()

	p.handler.Handle(ctx, ev)
}
