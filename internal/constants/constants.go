package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644
)

// Audio format constants.
const (
	// ExtensionMP3 is the file extension for MP3 audio.
	ExtensionMP3 = ".mp3"
	// ExtensionM4A is the file extension for M4A (MPEG-4 audio).
	ExtensionM4A = ".m4a"

	// AudioMPEGMimeType is the MIME type for MP3 audio.
	AudioMPEGMimeType = "audio/mpeg"
	// AudioMP4MimeType is the MIME type for MPEG-4 audio.
	AudioMP4MimeType = "audio/mp4"
)

// Telegram protocol limits.
const (
	// MaxCallbackDataBytes is Telegram's ceiling on callback payload size.
	// Selection tokens must never exceed it, which is why canonical video IDs
	// are indirected through the selection registry instead of embedded.
	MaxCallbackDataBytes = 64
)
