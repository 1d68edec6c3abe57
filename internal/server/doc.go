// Package server exposes the operational HTTP endpoints of the bot,
// currently a health probe for container orchestration.
package server
