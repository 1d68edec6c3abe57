package bot

// TextMessage is an inbound free-text message or command from a user.
type TextMessage struct {
	// UserID identifies the sender.
	UserID int64
	// ChatID identifies the conversation the message arrived in.
	ChatID int64
	// Text is the raw message text.
	Text string
	// FirstName is the sender's display name, used in greetings.
	FirstName string
}

// SelectionEvent is an inbound option selection reported by the gateway.
type SelectionEvent struct {
	// UserID identifies the selecting user.
	UserID int64
	// ChatID identifies the conversation the selection happened in.
	ChatID int64
	// Token is the selection token carried in the callback payload.
	Token string
	// StatusRef points at the options message, so status updates can replace it.
	StatusRef MessageRef
}

// MessageRef identifies a message previously sent to a chat.
type MessageRef struct {
	// ChatID identifies the conversation.
	ChatID int64
	// MessageID is the gateway-assigned message identifier.
	MessageID int
}

// Option is one selectable candidate in a rendered option set.
type Option struct {
	// Label is the user-visible text, e.g., "2. Song Title (3:45)".
	Label string
	// Token is the opaque selection token bound to the candidate.
	Token string
}

// AudioPayload is a downloaded track ready for delivery.
type AudioPayload struct {
	// Title is the track title, used as the audio caption title.
	Title string
	// Caption is the text shown under the audio message.
	Caption string
	// Filename is the sanitized file name the payload is delivered under.
	Filename string
	// MimeType is the base MIME type of the payload.
	MimeType string
	// Data is the raw audio payload.
	Data []byte
}
