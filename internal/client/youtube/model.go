package youtube

// Candidate is a single search result that can be fetched by its video ID.
type Candidate struct {
	// ID is the canonical video identifier used for fetching.
	ID string
	// Title is the human-readable track title.
	Title string
	// DurationSeconds is the track length in seconds.
	DurationSeconds int64
}

// FetchResult holds a downloaded audio payload ready for delivery.
type FetchResult struct {
	// Title is the track title reported by the provider.
	Title string
	// MimeType is the base MIME type of the payload (e.g., "audio/mp4").
	MimeType string
	// Data is the raw audio payload.
	Data []byte
}
