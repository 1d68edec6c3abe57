package bot

//go:generate $MOCKGEN -source=gateway.go -destination=mocks/gateway_mock.go

import "context"

// Gateway delivers messages to end users and is implemented by the transport layer.
// All operations are fallible; the service treats gateway failures as delivery
// errors to log, never as reasons to crash an interaction.
type Gateway interface {
	// SendText sends a plain text message to the chat.
	SendText(ctx context.Context, chatID int64, text string) error
	// SendMarkdown sends a Markdown-formatted message to the chat.
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	// SendOptions sends a prompt with an ordered set of selectable options
	// and returns a reference to the sent message for later status edits.
	SendOptions(ctx context.Context, chatID int64, prompt string, options []Option) (MessageRef, error)
	// SendAudio delivers an audio payload to the chat.
	SendAudio(ctx context.Context, chatID int64, payload *AudioPayload) error
	// EditStatus replaces the text of a previously sent message.
	EditStatus(ctx context.Context, ref MessageRef, text string) error
}
