// Package app provides the main application logic for running the music bot.
// It initializes the necessary components, such as the media provider client,
// selection registry, tag processor, and Telegram transport, and runs the
// update loop until shutdown.
package app
