package messenger

// Recipient names the page-scoped user a message is addressed to.
type Recipient struct {
	ID string `json:"id" validate:"required"`
}

// MessagingType classifies an outbound message for the platform.
// MESSAGE_TAG additionally requires a tag on the send options.
type MessagingType string

const (
	MessagingTypeResponse   MessagingType = "RESPONSE"
	MessagingTypeUpdate     MessagingType = "UPDATE"
	MessagingTypeMessageTag MessagingType = "MESSAGE_TAG"
)

// AttachmentKind is the media type of an attachment message.
type AttachmentKind string

const (
	AttachmentAudio AttachmentKind = "audio"
	AttachmentFile  AttachmentKind = "file"
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
)

// SenderAction controls the typing indicator and read receipt on the
// recipient's chat view. typing_on turns itself off after about 20 seconds.
type SenderAction string

const (
	SenderActionTypingOn  SenderAction = "typing_on"
	SenderActionTypingOff SenderAction = "typing_off"
	SenderActionMarkSeen  SenderAction = "mark_seen"
)

// QuickReply is one entry of a quick-replies menu (max 11 per message).
// Title and payload are required for the text content type; the other
// content types ask the platform to offer the user's own data.
type QuickReply struct {
	ContentType string `json:"content_type" validate:"required,oneof=text location user_phone_number user_email"`
	Title       string `json:"title,omitempty" validate:"required_if=ContentType text,omitempty,max=20"`
	Payload     string `json:"payload,omitempty" validate:"required_if=ContentType text"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// Greeting is one localized greeting text shown before the conversation
// starts. The platform requires an entry with locale "default".
type Greeting struct {
	Locale string `json:"locale" validate:"required"`
	Text   string `json:"text" validate:"required,max=160"`
}

// DefaultLocale is the locale key the platform falls back to.
const DefaultLocale = "default"

// MenuAction is a single persistent-menu entry. web_url items need a URL,
// postback items a payload, nested items their own sub-entries.
type MenuAction struct {
	Type          string       `json:"type" validate:"required,oneof=web_url postback nested"`
	Title         string       `json:"title" validate:"required,max=30"`
	URL           string       `json:"url,omitempty" validate:"required_if=Type web_url,omitempty,url"`
	Payload       string       `json:"payload,omitempty" validate:"required_if=Type postback"`
	CallToActions []MenuAction `json:"call_to_actions,omitempty" validate:"omitempty,dive"`
}

// PersistentMenu is the menu shown for one locale. The platform caps the
// top level at three entries.
type PersistentMenu struct {
	Locale                string       `json:"locale" validate:"required"`
	ComposerInputDisabled bool         `json:"composer_input_disabled"`
	CallToActions         []MenuAction `json:"call_to_actions" validate:"required,min=1,max=3,dive"`
}

// DeliveryResult is the decoded Send API answer. Raw always carries the
// response body untouched, whatever the platform returned.
type DeliveryResult struct {
	RecipientID  string `json:"recipient_id"`
	MessageID    string `json:"message_id"`
	AttachmentID string `json:"attachment_id"`
	Raw          []byte `json:"-"`
}

// UserProfile is the Graph user-profile answer. Fields beyond the four the
// platform grants by default are only filled when requested as extras and
// permitted for the app.
type UserProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	ProfilePic string  `json:"profile_pic"`
	Locale     string  `json:"locale,omitempty"`
	Timezone   float64 `json:"timezone,omitempty"`
	Gender     string  `json:"gender,omitempty"`
	Raw        []byte  `json:"-"`
}

//
// Wire payloads. One struct per content variant; the validate tags are the
// single place structural limits live.
//

type textMessage struct {
	Text string `json:"text" validate:"required,max=320"`
}

type textMessageRequest struct {
	Recipient     Recipient     `json:"recipient"`
	MessagingType MessagingType `json:"messaging_type" validate:"required,oneof=RESPONSE UPDATE MESSAGE_TAG"`
	Tag           string        `json:"tag,omitempty" validate:"required_if=MessagingType MESSAGE_TAG"`
	Message       textMessage   `json:"message"`
}

type attachmentPayload struct {
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
	IsReusable   bool   `json:"is_reusable,omitempty"`
	AttachmentID string `json:"attachment_id,omitempty"`
}

type attachment struct {
	Type    AttachmentKind    `json:"type" validate:"required,oneof=audio file image video"`
	Payload attachmentPayload `json:"payload"`
}

type attachmentMessage struct {
	Attachment attachment `json:"attachment"`
}

type attachmentMessageRequest struct {
	Recipient     Recipient         `json:"recipient"`
	MessagingType MessagingType     `json:"messaging_type" validate:"required,oneof=RESPONSE UPDATE MESSAGE_TAG"`
	Tag           string            `json:"tag,omitempty" validate:"required_if=MessagingType MESSAGE_TAG"`
	Message       attachmentMessage `json:"message"`
}

// attachmentUploadRequest has no recipient: it only registers the media
// with the platform and yields a reusable attachment id.
type attachmentUploadRequest struct {
	Message attachmentMessage `json:"message"`
}

type quickReplyMessage struct {
	Text         string       `json:"text" validate:"required,max=320"`
	QuickReplies []QuickReply `json:"quick_replies" validate:"required,min=1,max=11,dive"`
}

type quickReplyMessageRequest struct {
	Recipient     Recipient         `json:"recipient"`
	MessagingType MessagingType     `json:"messaging_type" validate:"required,oneof=RESPONSE UPDATE MESSAGE_TAG"`
	Tag           string            `json:"tag,omitempty" validate:"required_if=MessagingType MESSAGE_TAG"`
	Message       quickReplyMessage `json:"message"`
}

type attachmentQuickReplyMessage struct {
	Attachment   attachment   `json:"attachment"`
	QuickReplies []QuickReply `json:"quick_replies" validate:"required,min=1,max=11,dive"`
}

type attachmentQuickReplyMessageRequest struct {
	Recipient     Recipient                   `json:"recipient"`
	MessagingType MessagingType               `json:"messaging_type" validate:"required,oneof=RESPONSE UPDATE MESSAGE_TAG"`
	Tag           string                      `json:"tag,omitempty" validate:"required_if=MessagingType MESSAGE_TAG"`
	Message       attachmentQuickReplyMessage `json:"message"`
}

type senderActionRequest struct {
	Recipient    Recipient    `json:"recipient"`
	SenderAction SenderAction `json:"sender_action" validate:"required,oneof=typing_on typing_off mark_seen"`
}

type greetingRequest struct {
	Greeting []Greeting `json:"greeting" validate:"required,min=1,dive"`
}

type getStartedButton struct {
	Payload string `json:"payload" validate:"required"`
}

type getStartedRequest struct {
	GetStarted getStartedButton `json:"get_started"`
}

type persistentMenuRequest struct {
	PersistentMenu []PersistentMenu `json:"persistent_menu" validate:"required,min=1,dive"`
}

type domainWhitelistRequest struct {
	WhitelistedDomains []string `json:"whitelisted_domains" validate:"required,min=1,max=10,dive,url"`
}

type profileFieldsRequest struct {
	Fields []string `json:"fields"`
}

type accountLinkingRequest struct {
	AccountLinkingURL string `json:"account_linking_url" validate:"required,url"`
}

type userProfileQuery struct {
	ID string `json:"id" validate:"required"`
}
