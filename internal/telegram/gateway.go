// Package telegram adapts the Telegram Bot API to the bot's command router.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"imagestorebot/internal/config"
	handlers "imagestorebot/internal/handler"
)

// botAPI is the part of *tgbotapi.BotAPI the gateway uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Gateway sends replies and reads files through the Bot API.
type Gateway struct {
	bot    botAPI
	client *http.Client
}

// Connect authenticates with the Bot API and routes its logging through log.
func Connect(cfg *config.Config, log *zap.Logger) (*tgbotapi.BotAPI, error) {
	if err := tgbotapi.SetLogger(zap.NewStdLog(log.Named("telegram"))); err != nil {
		return nil, fmt.Errorf("error setting telegram logger: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("error connecting to telegram: %w", err)
	}
	bot.Debug = cfg.Telegram.Debug

	log.Info("authorized on telegram", zap.String("bot", bot.Self.UserName))
	return bot, nil
}

func NewGateway(bot botAPI) *Gateway {
	return &Gateway{bot: bot, client: http.DefaultClient}
}

func (g *Gateway) SendText(_ context.Context, chatID int64, text string) error {
	if _, err := g.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("error sending message to %d: %w", chatID, err)
	}
	return nil
}

func (g *Gateway) SendPhoto(_ context.Context, chatID int64, fileReference string) error {
	if _, err := g.bot.Send(tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileReference))); err != nil {
		return fmt.Errorf("error sending photo to %d: %w", chatID, err)
	}
	return nil
}

// OpenFile downloads a stored file. The size is -1 when the server does not report it.
func (g *Gateway) OpenFile(ctx context.Context, fileReference string) (io.ReadCloser, int64, error) {
	url, err := g.bot.GetFileDirectURL(fileReference)
	if err != nil {
		return nil, 0, fmt.Errorf("error resolving file %s: %w", fileReference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error building file request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error downloading file %s: %w", fileReference, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("error downloading file %s: status %d", fileReference, resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}

// ToEvent converts an update into a router event. Updates without a
// message, sender or chat are dropped.
func ToEvent(update tgbotapi.Update) (handlers.Event, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return handlers.Event{}, false
	}

	ev := handlers.Event{
		ChatID:   msg.Chat.ID,
		SenderID: msg.From.ID,
	}

	// sizes are ascending, the last one is the largest
	if len(msg.Photo) > 0 {
		ev.PhotoFileRef = msg.Photo[len(msg.Photo)-1].FileID
		return ev, true
	}

	if msg.IsCommand() {
		ev.Command = msg.Command()
		ev.Args = msg.CommandArguments()
	}

	return ev, true
}
