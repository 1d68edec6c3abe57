package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/zerocreations/tunegrab/internal/service/bot"
	"github.com/zerocreations/tunegrab/internal/utils"
)

// GatewayImpl implements bot.Gateway on top of the Telegram Bot API.
type GatewayImpl struct {
	// api is the underlying Telegram Bot API client.
	api *tgbotapi.BotAPI
}

// NewGateway creates a gateway backed by the given Telegram client.
func NewGateway(api *tgbotapi.BotAPI) *GatewayImpl {
	return &GatewayImpl{api: api}
}

// SendText sends a plain text message to the chat.
func (g *GatewayImpl) SendText(ctx context.Context, chatID int64, text string) error {
	return g.send(ctx, tgbotapi.NewMessage(chatID, text))
}

// SendMarkdown sends a Markdown-formatted message to the chat.
func (g *GatewayImpl) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeMarkdown

	return g.send(ctx, message)
}

// SendOptions sends a prompt with one inline keyboard button per option.
// Each button carries the option's selection token as callback data.
func (g *GatewayImpl) SendOptions(
	ctx context.Context,
	chatID int64,
	prompt string,
	options []bot.Option,
) (bot.MessageRef, error) {
	rows := utils.Map(options, func(option bot.Option) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Label, option.Token))
	})

	message := tgbotapi.NewMessage(chatID, prompt)
	message.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	if err := ctx.Err(); err != nil {
		return bot.MessageRef{}, err
	}

	sent, err := g.api.Send(message)
	if err != nil {
		return bot.MessageRef{}, fmt.Errorf("failed to send options: %w", err)
	}

	return bot.MessageRef{ChatID: chatID, MessageID: sent.MessageID}, nil
}

// SendAudio delivers an audio payload to the chat as a file upload.
func (g *GatewayImpl) SendAudio(ctx context.Context, chatID int64, payload *bot.AudioPayload) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{
		Name:  payload.Filename,
		Bytes: payload.Data,
	})
	audio.Title = payload.Title
	audio.Caption = payload.Caption

	return g.send(ctx, audio)
}

// EditStatus replaces the text of a previously sent message.
func (g *GatewayImpl) EditStatus(ctx context.Context, ref bot.MessageRef, text string) error {
	return g.send(ctx, tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text))
}

// send pushes a prepared request through the API client.
// The client has no context plumbing, so cancellation is checked up front.
func (g *GatewayImpl) send(ctx context.Context, chattable tgbotapi.Chattable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := g.api.Send(chattable); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
