// Package telegram connects the bot pipeline to the Telegram Bot API.
// It translates inbound updates into pipeline events and implements the
// outbound gateway the pipeline delivers through.
package telegram
