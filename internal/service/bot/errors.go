package bot

import "errors"

// Common errors for the service layer.
var (
	// ErrNoCandidates indicates that an option set was requested for zero candidates.
	// Callers must short-circuit the empty-search case before rendering.
	ErrNoCandidates = errors.New("cannot render options for zero candidates")
	// ErrStaleSelection indicates that a selection token was expired, already consumed, or superseded.
	ErrStaleSelection = errors.New("selection is no longer available")
	// ErrTooManyDownloads indicates that the user hit the per-user in-flight fetch cap.
	ErrTooManyDownloads = errors.New("too many downloads in progress")
	// ErrAudioTooLarge indicates that the fetched payload exceeds the delivery size limit.
	ErrAudioTooLarge = errors.New("audio payload exceeds size limit")
)
