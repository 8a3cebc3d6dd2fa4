package handlers

import (
	"context"
	"fmt"
)

// ReviewPhotos sends every pending photo to the admin's chat, each followed
// by the commands that decide it.
func (h *Handlers) ReviewPhotos(ctx context.Context, ev Event) error {
	photos, err := h.ReviewService.Pending(ctx)
	if err != nil {
		return err
	}

	if len(photos) == 0 {
		return h.reply(ctx, ev, msgNothingToView)
	}

	adminChat := h.Cfg.Telegram.AdminID
	for _, photo := range photos {
		if err := h.Sender.SendText(ctx, adminChat, fmt.Sprintf(msgReviewInfo, photo.OwnerID, photo.TagText())); err != nil {
			return err
		}
		if err := h.Sender.SendPhoto(ctx, adminChat, photo.FileReference); err != nil {
			return err
		}
		prompt := fmt.Sprintf(msgReviewPrompt, photo.FileReference, photo.FileReference)
		if err := h.Sender.SendText(ctx, adminChat, prompt); err != nil {
			return err
		}
	}

	return nil
}

// ApprovePhoto confirms whether or not the reference matched a photo.
func (h *Handlers) ApprovePhoto(ctx context.Context, ev Event) error {
	fileReference := firstArg(ev)
	if err := h.Validate.Var(fileReference, "required"); err != nil {
		return h.reply(ctx, ev, msgApproveUsage)
	}

	if err := h.ReviewService.Approve(ctx, fileReference); err != nil {
		return err
	}

	return h.reply(ctx, ev, fmt.Sprintf(msgApproved, fileReference))
}

// RejectPhoto deletes the photo for good and confirms whether or not it existed.
func (h *Handlers) RejectPhoto(ctx context.Context, ev Event) error {
	fileReference := firstArg(ev)
	if err := h.Validate.Var(fileReference, "required"); err != nil {
		return h.reply(ctx, ev, msgRejectUsage)
	}

	if err := h.ReviewService.Reject(ctx, fileReference); err != nil {
		return err
	}

	return h.reply(ctx, ev, fmt.Sprintf(msgRejected, fileReference))
}
