package youtube

import "errors"

// Static error definitions for better error handling.
var (
	// ErrEmptyQuery indicates that the search query is empty.
	ErrEmptyQuery = errors.New("search query cannot be empty")
	// ErrNoAudioStreams indicates that the video has no downloadable audio streams.
	ErrNoAudioStreams = errors.New("no audio streams available")
	// ErrEmptyStream indicates that the provider returned an empty audio stream.
	ErrEmptyStream = errors.New("audio stream is empty")
)
