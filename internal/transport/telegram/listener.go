package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/zerocreations/tunegrab/internal/logger"
	"github.com/zerocreations/tunegrab/internal/service/bot"
)

const (
	startCommand = "start"
	helpCommand  = "help"

	// selectionTokenPrefix is the marker on callback payloads minted by the
	// pipeline; everything else in callback data is ignored.
	selectionTokenPrefix = "dl:"

	updatesTimeoutSeconds = 30
)

// Listener pulls updates from Telegram via long polling and dispatches them
// to the pipeline service. Each update is handled on its own goroutine so a
// slow interaction never blocks the poll loop.
type Listener struct {
	// api is the underlying Telegram Bot API client.
	api *tgbotapi.BotAPI
	// service handles the translated pipeline events.
	service bot.Service
}

// NewListener creates an update listener for the given client and service.
func NewListener(api *tgbotapi.BotAPI, service bot.Service) *Listener {
	return &Listener{
		api:     api,
		service: service,
	}
}

// Run polls for updates until the context is canceled, then waits for
// in-flight downloads to drain.
func (l *Listener) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updatesTimeoutSeconds

	updates := l.api.GetUpdatesChan(updateConfig)

	logger.Infof(ctx, "Listening for updates as @%s", l.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			l.api.StopReceivingUpdates()
			l.service.Close()

			return
		case update, ok := <-updates:
			if !ok {
				l.service.Close()
				return
			}

			go l.dispatch(ctx, update)
		}
	}
}

// dispatch classifies one update and routes it to the matching handler.
func (l *Listener) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered while handling update %d: %v", update.UpdateID, r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		l.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		l.handleMessage(ctx, update.Message)
	}
}

// handleMessage routes commands and free-text queries.
func (l *Listener) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	event := bot.TextMessage{
		UserID:    message.From.ID,
		ChatID:    message.Chat.ID,
		Text:      message.Text,
		FirstName: message.From.FirstName,
	}

	if message.IsCommand() {
		switch message.Command() {
		case startCommand:
			l.service.HandleStart(ctx, event)
		case helpCommand:
			l.service.HandleHelp(ctx, event)
		default:
			l.service.HandleHelp(ctx, event)
		}

		return
	}

	if strings.TrimSpace(message.Text) == "" {
		return
	}

	l.service.HandleQuery(ctx, event)
}

// handleCallback routes option selections.
func (l *Listener) handleCallback(ctx context.Context, callbackQuery *tgbotapi.CallbackQuery) {
	// Acknowledge immediately so the client stops the button spinner,
	// even when the token turns out to be stale.
	if _, err := l.api.Request(tgbotapi.NewCallback(callbackQuery.ID, "")); err != nil {
		logger.Warnf(ctx, "Failed to answer callback query %s: %v", callbackQuery.ID, err)
	}

	if !strings.HasPrefix(callbackQuery.Data, selectionTokenPrefix) {
		logger.Warnf(ctx, "Ignoring callback with unexpected payload from user %d", callbackQuery.From.ID)
		return
	}

	if callbackQuery.Message == nil {
		return
	}

	l.service.HandleSelection(ctx, bot.SelectionEvent{
		UserID: callbackQuery.From.ID,
		ChatID: callbackQuery.Message.Chat.ID,
		Token:  callbackQuery.Data,
		StatusRef: bot.MessageRef{
			ChatID:    callbackQuery.Message.Chat.ID,
			MessageID: callbackQuery.Message.MessageID,
		},
	})
}
