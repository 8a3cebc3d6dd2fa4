package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "imagestorebot/internal/handler"
)

type fakeBot struct {
	sent    []tgbotapi.Chattable
	sendErr error
	fileURL string
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, b.sendErr
}

func (b *fakeBot) GetFileDirectURL(fileID string) (string, error) {
	if b.fileURL == "" {
		return "", errors.New("Bad Request: invalid file_id")
	}
	return b.fileURL + "/" + fileID, nil
}

func commandMessage(text string, command string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 42},
		Chat: &tgbotapi.Chat{ID: 4200},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command)},
		},
	}
}

func TestToEvent(t *testing.T) {
	tests := []struct {
		name   string
		update tgbotapi.Update
		want   handlers.Event
		ok     bool
	}{
		{
			name:   "Command with arguments",
			update: tgbotapi.Update{Message: commandMessage("/tag my sunset", "/tag")},
			want:   handlers.Event{ChatID: 4200, SenderID: 42, Command: "tag", Args: "my sunset"},
			ok:     true,
		},
		{
			name:   "Command addressed to the bot",
			update: tgbotapi.Update{Message: commandMessage("/get@ImageStoreBot sunset", "/get@ImageStoreBot")},
			want:   handlers.Event{ChatID: 4200, SenderID: 42, Command: "get", Args: "sunset"},
			ok:     true,
		},
		{
			name: "Photo uses the largest size",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				From: &tgbotapi.User{ID: 42},
				Chat: &tgbotapi.Chat{ID: 4200},
				Photo: []tgbotapi.PhotoSize{
					{FileID: "small", Width: 90},
					{FileID: "large", Width: 1280},
				},
			}},
			want: handlers.Event{ChatID: 4200, SenderID: 42, PhotoFileRef: "large"},
			ok:   true,
		},
		{
			name: "Plain text",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Text: "hello",
				From: &tgbotapi.User{ID: 42},
				Chat: &tgbotapi.Chat{ID: 4200},
			}},
			want: handlers.Event{ChatID: 4200, SenderID: 42},
			ok:   true,
		},
		{
			name:   "No message",
			update: tgbotapi.Update{UpdateID: 1},
		},
		{
			name:   "Channel post without sender",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ToEvent(tt.update)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestGateway_Send(t *testing.T) {
	bot := &fakeBot{}
	gw := NewGateway(bot)
	ctx := context.Background()

	require.NoError(t, gw.SendText(ctx, 1, "hello"))
	require.NoError(t, gw.SendPhoto(ctx, 1, "abc"))
	require.Len(t, bot.sent, 2)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(1), msg.ChatID)
	assert.Equal(t, "hello", msg.Text)

	photo, ok := bot.sent[1].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, tgbotapi.FileID("abc"), photo.File)

	bot.sendErr = errors.New("Forbidden: bot was blocked by the user")
	err := gw.SendText(ctx, 1, "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error sending message to 1")
}

func TestGateway_OpenFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	gw := NewGateway(&fakeBot{fileURL: server.URL})
	ctx := context.Background()

	body, size, err := gw.OpenFile(ctx, "abc")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, int64(len("jpeg-bytes")), size)

	_, _, err = gw.OpenFile(ctx, "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	_, _, err = NewGateway(&fakeBot{}).OpenFile(ctx, "abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error resolving file abc")
}
