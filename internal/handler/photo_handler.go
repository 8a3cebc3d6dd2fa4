package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"imagestorebot/internal/repository"
)

// joinedArgs collapses whitespace runs so "/tag  my   cat" tags "my cat".
func joinedArgs(ev Event) string {
	return strings.Join(strings.Fields(ev.Args), " ")
}

func firstArg(ev Event) string {
	fields := strings.Fields(ev.Args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (h *Handlers) Start(ctx context.Context, ev Event) error {
	return h.reply(ctx, ev, msgStart)
}

func (h *Handlers) Help(ctx context.Context, ev Event) error {
	return h.reply(ctx, ev, msgHelp)
}

func (h *Handlers) UploadPhoto(ctx context.Context, ev Event) error {
	if _, err := h.PhotoService.Submit(ctx, ev.SenderID, ev.PhotoFileRef); err != nil {
		return err
	}

	return h.reply(ctx, ev, msgUploaded)
}

// TagPhoto confirms even when the sender had no untagged photo.
func (h *Handlers) TagPhoto(ctx context.Context, ev Event) error {
	tag := joinedArgs(ev)
	if err := h.Validate.Var(tag, "required"); err != nil {
		return h.reply(ctx, ev, msgTagUsage)
	}

	if err := h.PhotoService.Tag(ctx, ev.SenderID, tag); err != nil {
		return err
	}

	return h.reply(ctx, ev, fmt.Sprintf(msgTagged, tag))
}

func (h *Handlers) GetPhoto(ctx context.Context, ev Event) error {
	tag := joinedArgs(ev)
	if err := h.Validate.Var(tag, "required"); err != nil {
		return h.reply(ctx, ev, msgGetUsage)
	}

	photo, err := h.PhotoService.Get(ctx, ev.SenderID, tag)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return h.reply(ctx, ev, msgNotFound)
		}
		return err
	}

	return h.Sender.SendPhoto(ctx, ev.ChatID, photo.FileReference)
}
