// Package youtube provides the media provider client used by the bot.
// It searches for tracks through the YouTube Data API and fetches audio
// streams for delivery, caching video metadata to reduce duplicate API calls.
package youtube
