// Package bot provides the core search-select-download pipeline of the music bot.
// It turns free-text queries into bounded candidate lists, tracks per-user
// selection state across the asynchronous callback boundary, and offloads slow
// audio fetches to a bounded worker pool so the update loop stays responsive.
package bot
