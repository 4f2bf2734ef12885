package messenger

import "context"

// SendOptions carries the optional Send API classification fields. The zero
// value means a plain RESPONSE message.
type SendOptions struct {
	MessagingType MessagingType
	// Tag is required when MessagingType is MESSAGE_TAG.
	Tag string
	// IsReusable asks the platform to return an attachment id that can be
	// re-sent later without uploading the media again.
	IsReusable bool
}

func (o SendOptions) normalize() SendOptions {
	if o.MessagingType == "" {
		o.MessagingType = MessagingTypeResponse
	}
	return o
}

// SendText delivers a plain text message (max 320 characters).
func (c *Client) SendText(ctx context.Context, recipientID, text string) (*DeliveryResult, error) {
	return c.SendTextWithOptions(ctx, recipientID, text, SendOptions{})
}

func (c *Client) SendTextWithOptions(
	ctx context.Context,
	recipientID, text string,
	opts SendOptions,
) (*DeliveryResult, error) {
	opts = opts.normalize()

	return c.send(ctx, messagesPath, &textMessageRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: opts.MessagingType,
		Tag:           opts.Tag,
		Message:       textMessage{Text: text},
	})
}

// SendTextList delivers the texts one by one in order, stopping at the
// first failure. The results of the deliveries made so far are returned
// alongside the error.
func (c *Client) SendTextList(ctx context.Context, recipientID string, texts []string) ([]*DeliveryResult, error) {
	results := make([]*DeliveryResult, 0, len(texts))

	for _, text := range texts {
		result, err := c.SendText(ctx, recipientID, text)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// SendAttachment delivers a hosted media file by URL.
func (c *Client) SendAttachment(
	ctx context.Context,
	recipientID string,
	kind AttachmentKind,
	url string,
) (*DeliveryResult, error) {
	return c.SendAttachmentWithOptions(ctx, recipientID, kind, url, SendOptions{})
}

func (c *Client) SendAttachmentWithOptions(
	ctx context.Context,
	recipientID string,
	kind AttachmentKind,
	url string,
	opts SendOptions,
) (*DeliveryResult, error) {
	opts = opts.normalize()

	return c.send(ctx, messagesPath, &attachmentMessageRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: opts.MessagingType,
		Tag:           opts.Tag,
		Message: attachmentMessage{
			Attachment: attachment{
				Type: kind,
				Payload: attachmentPayload{
					URL:        url,
					IsReusable: opts.IsReusable,
				},
			},
		},
	})
}

func (c *Client) SendAudio(ctx context.Context, recipientID, url string) (*DeliveryResult, error) {
	return c.SendAttachment(ctx, recipientID, AttachmentAudio, url)
}

func (c *Client) SendFile(ctx context.Context, recipientID, url string) (*DeliveryResult, error) {
	return c.SendAttachment(ctx, recipientID, AttachmentFile, url)
}

func (c *Client) SendImage(ctx context.Context, recipientID, url string) (*DeliveryResult, error) {
	return c.SendAttachment(ctx, recipientID, AttachmentImage, url)
}

func (c *Client) SendVideo(ctx context.Context, recipientID, url string) (*DeliveryResult, error) {
	return c.SendAttachment(ctx, recipientID, AttachmentVideo, url)
}

// SendReusableAttachment delivers media previously uploaded or sent with
// IsReusable, referenced by its attachment id.
func (c *Client) SendReusableAttachment(
	ctx context.Context,
	recipientID string,
	kind AttachmentKind,
	attachmentID string,
) (*DeliveryResult, error) {
	return c.send(ctx, messagesPath, &attachmentMessageRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: MessagingTypeResponse,
		Message: attachmentMessage{
			Attachment: attachment{
				Type: kind,
				Payload: attachmentPayload{
					AttachmentID: attachmentID,
				},
			},
		},
	})
}

// UploadAttachment registers a hosted media file with the platform without
// delivering it. The returned AttachmentID can be re-sent any number of
// times via SendReusableAttachment.
func (c *Client) UploadAttachment(ctx context.Context, kind AttachmentKind, url string) (*DeliveryResult, error) {
	return c.send(ctx, attachmentUploadPath, &attachmentUploadRequest{
		Message: attachmentMessage{
			Attachment: attachment{
				Type: kind,
				Payload: attachmentPayload{
					URL:        url,
					IsReusable: true,
				},
			},
		},
	})
}

// SendQuickReplies delivers a text message with a quick-replies menu
// (1 to 11 entries).
func (c *Client) SendQuickReplies(
	ctx context.Context,
	recipientID, text string,
	replies []QuickReply,
) (*DeliveryResult, error) {
	return c.send(ctx, messagesPath, &quickReplyMessageRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: MessagingTypeResponse,
		Message: quickReplyMessage{
			Text:         text,
			QuickReplies: replies,
		},
	})
}

// SendImageWithQuickReplies delivers an image attachment together with a
// quick-replies menu (1 to 11 entries).
func (c *Client) SendImageWithQuickReplies(
	ctx context.Context,
	recipientID, imageURL string,
	replies []QuickReply,
) (*DeliveryResult, error) {
	return c.send(ctx, messagesPath, &attachmentQuickReplyMessageRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: MessagingTypeResponse,
		Message: attachmentQuickReplyMessage{
			Attachment: attachment{
				Type: AttachmentImage,
				Payload: attachmentPayload{
					URL: imageURL,
				},
			},
			QuickReplies: replies,
		},
	})
}

// SendSenderAction shows or hides the typing indicator, or marks the last
// message as seen.
func (c *Client) SendSenderAction(
	ctx context.Context,
	recipientID string,
	action SenderAction,
) (*DeliveryResult, error) {
	return c.send(ctx, messagesPath, &senderActionRequest{
		Recipient:    Recipient{ID: recipientID},
		SenderAction: action,
	})
}
