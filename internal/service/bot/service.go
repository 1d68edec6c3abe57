package bot

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/zerocreations/tunegrab/internal/client/youtube"
	"github.com/zerocreations/tunegrab/internal/config"
	"github.com/zerocreations/tunegrab/internal/constants"
	"github.com/zerocreations/tunegrab/internal/logger"
	"github.com/zerocreations/tunegrab/internal/utils"
)

// Service handles one user interaction step per call. Implementations must be
// safe for concurrent use: the transport layer dispatches every inbound event
// on its own goroutine.
type Service interface {
	// HandleStart greets the user with the welcome message.
	HandleStart(ctx context.Context, msg TextMessage)
	// HandleHelp sends usage instructions.
	HandleHelp(ctx context.Context, msg TextMessage)
	// HandleQuery searches for the query text and renders candidate options.
	HandleQuery(ctx context.Context, msg TextMessage)
	// HandleSelection resolves a selection token and downloads the chosen track.
	// The download itself runs on a bounded worker pool; the call returns as
	// soon as the work is queued.
	HandleSelection(ctx context.Context, evt SelectionEvent)
	// Close waits for in-flight downloads to finish.
	Close()
}

// ServiceImpl implements the search-select-download pipeline.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// providerClient is the media provider used for searching and fetching.
	providerClient youtube.Client
	// gateway delivers messages back to users.
	gateway Gateway
	// registry tracks outstanding selection tokens.
	registry SelectionRegistry
	// tagProcessor writes metadata tags onto fetched audio.
	tagProcessor TagProcessor
	// downloadSlots is a semaphore bounding concurrent fetches across all users.
	downloadSlots chan struct{}
	// downloadsWaitGroup tracks in-flight download workers for Close.
	downloadsWaitGroup sync.WaitGroup
	// userDownloads counts in-flight fetches per user.
	userDownloads map[int64]int64
	// userDownloadsMutex protects concurrent access to userDownloads.
	userDownloadsMutex *sync.Mutex
}

// NewService creates a pipeline service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	providerClient youtube.Client,
	gateway Gateway,
	registry SelectionRegistry,
	tagProcessor TagProcessor,
) *ServiceImpl {
	return &ServiceImpl{
		cfg:                cfg,
		providerClient:     providerClient,
		gateway:            gateway,
		registry:           registry,
		tagProcessor:       tagProcessor,
		downloadSlots:      make(chan struct{}, cfg.MaxConcurrentDownloads),
		userDownloads:      make(map[int64]int64),
		userDownloadsMutex: new(sync.Mutex),
	}
}

// HandleStart greets the user with the welcome message.
func (s *ServiceImpl) HandleStart(ctx context.Context, msg TextMessage) {
	if msg.FirstName != "" {
		s.sendText(ctx, msg.ChatID, fmt.Sprintf(greetingFormat, msg.FirstName))
	}

	if err := s.gateway.SendMarkdown(ctx, msg.ChatID, welcomeMessage); err != nil {
		logger.Errorf(ctx, "Failed to send welcome message to chat %d: %v", msg.ChatID, err)
	}
}

// HandleHelp sends usage instructions.
func (s *ServiceImpl) HandleHelp(ctx context.Context, msg TextMessage) {
	s.sendText(ctx, msg.ChatID, helpMessage)
}

// HandleQuery searches for the query text and renders candidate options.
func (s *ServiceImpl) HandleQuery(ctx context.Context, msg TextMessage) {
	s.sendText(ctx, msg.ChatID, fmt.Sprintf(searchingStatusFormat, msg.Text))

	candidates, err := s.providerClient.Search(ctx, msg.Text, s.cfg.MaxSearchResults)
	if err != nil {
		// Provider failures stop at this boundary: the user gets a retry
		// notice and the event loop keeps serving everyone else.
		logger.Errorf(ctx, "Search failed for user %d: %v", msg.UserID, err)
		s.sendText(ctx, msg.ChatID, searchFailedMessage)

		return
	}

	if len(candidates) == 0 {
		logger.Infof(ctx, "No results for query '%s' from user %d", msg.Text, msg.UserID)
		s.sendText(ctx, msg.ChatID, noResultsMessage)

		return
	}

	options, err := s.renderOptions(msg.UserID, candidates)
	if err != nil {
		logger.Errorf(ctx, "Failed to render options for user %d: %v", msg.UserID, err)
		s.sendText(ctx, msg.ChatID, searchFailedMessage)

		return
	}

	if _, err = s.gateway.SendOptions(ctx, msg.ChatID, selectSongPrompt, options); err != nil {
		logger.Errorf(ctx, "Failed to send options to chat %d: %v", msg.ChatID, err)

		// The user never saw these options, so their tokens are dead weight.
		s.registry.DropUser(msg.UserID)
		s.sendText(ctx, msg.ChatID, searchFailedMessage)
	}
}

// HandleSelection resolves a selection token and downloads the chosen track.
func (s *ServiceImpl) HandleSelection(ctx context.Context, evt SelectionEvent) {
	if !s.acquireUserSlot(evt.UserID) {
		logger.Infof(ctx, "Selection rejected for user %d: %v", evt.UserID, ErrTooManyDownloads)
		s.sendText(ctx, evt.ChatID, tooManyDownloadsMessage)

		return
	}

	videoID, ok := s.registry.Take(evt.Token)
	if !ok {
		s.releaseUserSlot(evt.UserID)
		logger.Infof(ctx, "Selection rejected for user %d: %v", evt.UserID, ErrStaleSelection)
		s.editStatus(ctx, evt.StatusRef, staleSelectionMessage)

		return
	}

	s.editStatus(ctx, evt.StatusRef, downloadingStatus)

	s.downloadsWaitGroup.Add(1)

	go func() {
		defer s.downloadsWaitGroup.Done()
		defer s.releaseUserSlot(evt.UserID)

		// A panic in one download must never take down the update loop
		// or leak a worker slot.
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf(ctx, "Panic recovered in download worker: %v", r)
			}
		}()

		// Acquire a worker slot (blocks if all workers are busy).
		s.downloadSlots <- struct{}{}

		defer func() {
			<-s.downloadSlots
		}()

		s.downloadAndDeliver(ctx, evt, videoID)
	}()
}

// Close waits for in-flight downloads to finish.
func (s *ServiceImpl) Close() {
	s.downloadsWaitGroup.Wait()
}

// downloadAndDeliver fetches the audio payload and delivers it to the user.
// It runs on a worker goroutine, off the interactive path.
func (s *ServiceImpl) downloadAndDeliver(ctx context.Context, evt SelectionEvent, videoID string) {
	fetchResult, err := s.providerClient.Fetch(ctx, videoID)
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch video '%s' for user %d: %v", videoID, evt.UserID, err)
		s.editStatus(ctx, evt.StatusRef, downloadFailedMessage)

		return
	}

	payloadSize := int64(len(fetchResult.Data))
	if payloadSize > s.cfg.ParsedMaxAudioSize {
		logger.Warnf(ctx, "Video '%s': %v (%s over the %s delivery limit)",
			videoID,
			ErrAudioTooLarge,
			humanize.Bytes(uint64(payloadSize)),
			humanize.Bytes(uint64(s.cfg.ParsedMaxAudioSize)))
		s.editStatus(ctx, evt.StatusRef, audioTooLargeMessage)

		return
	}

	payload := &AudioPayload{
		Title:    fetchResult.Title,
		Caption:  fmt.Sprintf(audioCaptionFormat, fetchResult.Title),
		Filename: audioFilename(fetchResult.Title, fetchResult.MimeType),
		MimeType: fetchResult.MimeType,
		Data:     fetchResult.Data,
	}

	if err = s.tagProcessor.Apply(ctx, payload); err != nil {
		// Tags are nice to have; an untagged track still gets delivered.
		logger.Warnf(ctx, "Failed to tag '%s': %v", payload.Title, err)
	}

	if err = s.gateway.SendAudio(ctx, evt.ChatID, payload); err != nil {
		logger.Errorf(ctx, "Failed to deliver '%s' to chat %d: %v", payload.Title, evt.ChatID, err)
		s.editStatus(ctx, evt.StatusRef, downloadFailedMessage)

		return
	}

	logger.Infof(ctx, "Delivered '%s' (%s) to user %d",
		payload.Title, humanize.Bytes(uint64(payloadSize)), evt.UserID)
	s.editStatus(ctx, evt.StatusRef, fmt.Sprintf(downloadCompleteFormat, payload.Title))
}

// acquireUserSlot reserves an in-flight download slot for the user.
// It reports false when the per-user cap is already reached.
func (s *ServiceImpl) acquireUserSlot(userID int64) bool {
	s.userDownloadsMutex.Lock()
	defer s.userDownloadsMutex.Unlock()

	if s.userDownloads[userID] >= s.cfg.MaxDownloadsPerUser {
		return false
	}

	s.userDownloads[userID]++

	return true
}

// releaseUserSlot returns a previously reserved per-user slot.
func (s *ServiceImpl) releaseUserSlot(userID int64) {
	s.userDownloadsMutex.Lock()
	defer s.userDownloadsMutex.Unlock()

	s.userDownloads[userID]--
	if s.userDownloads[userID] <= 0 {
		delete(s.userDownloads, userID)
	}
}

// sendText sends a plain text message, logging delivery failures.
func (s *ServiceImpl) sendText(ctx context.Context, chatID int64, text string) {
	if err := s.gateway.SendText(ctx, chatID, text); err != nil {
		logger.Errorf(ctx, "Failed to send message to chat %d: %v", chatID, err)
	}
}

// editStatus updates a status message, falling back to a fresh message
// when the edit is rejected (e.g., the original was deleted).
func (s *ServiceImpl) editStatus(ctx context.Context, ref MessageRef, text string) {
	if ref.MessageID == 0 {
		s.sendText(ctx, ref.ChatID, text)
		return
	}

	if err := s.gateway.EditStatus(ctx, ref, text); err != nil {
		logger.Warnf(ctx, "Failed to edit status message %d in chat %d: %v", ref.MessageID, ref.ChatID, err)
		s.sendText(ctx, ref.ChatID, text)
	}
}

// audioFilename derives a safe delivery filename from the track title and MIME type.
func audioFilename(title, mimeType string) string {
	var extension string

	switch mimeType {
	case constants.AudioMPEGMimeType:
		extension = constants.ExtensionMP3
	case constants.AudioMP4MimeType:
		extension = constants.ExtensionM4A
	default:
		// Exotic containers (e.g., webm/opus) ship under the MPEG-4
		// extension as well; clients pick the player from the MIME type.
		extension = constants.ExtensionM4A
	}

	stem := utils.SanitizeFilename(title)
	if stem == "" {
		stem = "track"
	}

	return stem + extension
}
