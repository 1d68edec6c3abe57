package youtube

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	ytstream "github.com/kkdai/youtube/v2"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/logger"
	http_transport "github.com/zerocreations/tunegrab/internal/transport/http"
	"github.com/zerocreations/tunegrab/internal/utils"
)

// Client defines the interface for interacting with the media provider.
type Client interface {
	// Search returns up to maxResults candidate tracks for the query, in provider relevance order.
	Search(ctx context.Context, query string, maxResults int64) ([]*Candidate, error)
	// Fetch downloads the audio payload for the given video ID.
	Fetch(ctx context.Context, videoID string) (*FetchResult, error)
}

// ClientImpl implements the Client interface on top of the YouTube Data API
// (search) and direct audio stream extraction (fetch).
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// searchService is the YouTube Data API service used for searching.
	searchService *youtubeapi.Service
	// streamClient resolves and downloads audio-only streams.
	streamClient *ytstream.Client
	// durationsCache caches video durations to avoid a second API round trip per video.
	durationsCache *lru.Cache[string, int64]
}

const (
	// musicVideoCategoryID is YouTube's category identifier for music content.
	musicVideoCategoryID = "10"
	// searchResultKind is the resource kind of a video search hit.
	searchResultKind = "youtube#video"
	// durationsCacheSize defines the maximum number of cached video durations.
	durationsCacheSize = 10000
)

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the Data API service and the stream download client
// with the provided configuration.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	searchService, err := youtubeapi.NewService(ctx, option.WithAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	// Initialize the HTTP client with custom transport and timeout.
	// Stream downloads go through it, so request/response logging and
	// User-Agent injection apply to them as well.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: cfg.ParsedRequestTimeout,
	}

	streamClient := &ytstream.Client{
		HTTPClient: httpClient,
	}

	durationsCache, err := lru.New[string, int64](durationsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create durations cache: %w", err)
	}

	return &ClientImpl{
		cfg:            cfg,
		searchService:  searchService,
		streamClient:   streamClient,
		durationsCache: durationsCache,
	}, nil
}

// Search returns up to maxResults candidate tracks for the query, in provider relevance order.
func (c *ClientImpl) Search(ctx context.Context, query string, maxResults int64) ([]*Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	searchCall := c.searchService.Search.List([]string{"id", "snippet"}).
		Context(ctx).
		Q(query).
		Type("video").
		VideoCategoryId(musicVideoCategoryID).
		MaxResults(maxResults)

	searchResponse, err := searchCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	candidates := make([]*Candidate, 0, len(searchResponse.Items))

	for _, item := range searchResponse.Items {
		if item.Id == nil || item.Id.Kind != searchResultKind || item.Snippet == nil {
			continue
		}

		candidates = append(candidates, &Candidate{
			ID:    item.Id.VideoId,
			Title: item.Snippet.Title,
		})
	}

	if err = c.fillDurations(ctx, candidates); err != nil {
		// Durations are cosmetic in option labels, so a failed lookup
		// degrades the labels instead of failing the whole search.
		logger.Warnf(ctx, "Failed to fetch video durations: %v", err)
	}

	return candidates, nil
}

// fillDurations populates DurationSeconds on the candidates,
// fetching uncached ones with a single Data API call.
func (c *ClientImpl) fillDurations(ctx context.Context, candidates []*Candidate) error {
	uncachedIDs := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if cached, ok := c.durationsCache.Get(candidate.ID); ok {
			candidate.DurationSeconds = cached
			logger.Debugf(ctx, "Duration cache hit for video ID: %s", candidate.ID)
		} else {
			uncachedIDs = append(uncachedIDs, candidate.ID)
		}
	}

	// If all durations were cached, return immediately.
	if len(uncachedIDs) == 0 {
		return nil
	}

	logger.Debugf(ctx, "Fetching %d uncached video durations from API", len(uncachedIDs))

	videosCall := c.searchService.Videos.List([]string{"contentDetails"}).
		Context(ctx).
		Id(uncachedIDs...)

	videosResponse, err := videosCall.Do()
	if err != nil {
		return fmt.Errorf("failed to fetch video details: %w", err)
	}

	durationsByID := make(map[string]int64, len(videosResponse.Items))

	for _, item := range videosResponse.Items {
		if item.ContentDetails == nil {
			continue
		}

		duration, parseErr := ParseISO8601Duration(item.ContentDetails.Duration)
		if parseErr != nil {
			logger.Warnf(ctx, "Failed to parse duration '%s' for video ID '%s': %v",
				item.ContentDetails.Duration, item.Id, parseErr)

			continue
		}

		durationsByID[item.Id] = duration
		c.durationsCache.Add(item.Id, duration)
	}

	for _, candidate := range candidates {
		if duration, ok := durationsByID[candidate.ID]; ok {
			candidate.DurationSeconds = duration
		}
	}

	return nil
}

// Fetch downloads the audio payload for the given video ID.
// This call resolves stream metadata and downloads the full payload,
// so it may take tens of seconds for long tracks.
func (c *ClientImpl) Fetch(ctx context.Context, videoID string) (*FetchResult, error) {
	video, err := c.streamClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve video '%s': %w", videoID, err)
	}

	format, err := bestAudioFormat(video.Formats)
	if err != nil {
		return nil, fmt.Errorf("video '%s': %w", videoID, err)
	}

	stream, _, err := c.streamClient.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio stream for video '%s': %w", videoID, err)
	}

	defer stream.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to download audio stream for video '%s': %w", videoID, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("video '%s': %w", videoID, ErrEmptyStream)
	}

	return &FetchResult{
		Title:    video.Title,
		MimeType: baseMimeType(format.MimeType),
		Data:     data,
	}, nil
}

// bestAudioFormat picks the audio-only format with the highest bitrate.
func bestAudioFormat(formats ytstream.FormatList) (*ytstream.Format, error) {
	var best *ytstream.Format

	for i := range formats {
		format := &formats[i]

		// Audio-only formats carry an audio quality and no video resolution.
		if format.AudioChannels == 0 || !strings.HasPrefix(format.MimeType, "audio/") {
			continue
		}

		if best == nil || format.Bitrate > best.Bitrate {
			best = format
		}
	}

	if best == nil {
		return nil, ErrNoAudioStreams
	}

	return best, nil
}

// baseMimeType strips codec parameters from a MIME type,
// e.g., `audio/mp4; codecs="mp4a.40.2"` -> "audio/mp4".
func baseMimeType(mimeType string) string {
	parsed, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		// Fall back to the raw prefix before any parameters.
		if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
			return strings.TrimSpace(mimeType[:idx])
		}

		return mimeType
	}

	return parsed
}
