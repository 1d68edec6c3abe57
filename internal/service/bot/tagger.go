package bot

//go:generate $MOCKGEN -source=tagger.go -destination=mocks/tagger_mock.go

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oshokin/id3v2/v2"

	"github.com/zerocreations/tunegrab/internal/constants"
	"github.com/zerocreations/tunegrab/internal/logger"
)

// TagProcessor writes metadata tags onto audio payloads before delivery.
type TagProcessor interface {
	// Apply writes the payload's title into its metadata tags in place.
	// Payloads in formats without tag support pass through untouched.
	Apply(ctx context.Context, payload *AudioPayload) error
}

// TagProcessorImpl implements TagProcessor for MP3 payloads using ID3v2 frames.
type TagProcessorImpl struct{}

// id3v2Magic is the ID3v2 header magic at the start of a tagged MP3 stream.
var id3v2Magic = []byte("ID3") //nolint:gochecknoglobals // Immutable file-format constant.

// NewTagProcessor creates a tag processor instance.
func NewTagProcessor() TagProcessor {
	return &TagProcessorImpl{}
}

// Apply writes the payload's title into its metadata tags in place.
func (tp *TagProcessorImpl) Apply(ctx context.Context, payload *AudioPayload) error {
	if payload.MimeType != constants.AudioMPEGMimeType {
		logger.Debugf(ctx, "Skipping tags for unsupported MIME type: %s", payload.MimeType)
		return nil
	}

	var (
		tag        *id3v2.Tag
		audioStart int64
	)

	if bytes.HasPrefix(payload.Data, id3v2Magic) {
		reader := bytes.NewReader(payload.Data)

		parsed, err := id3v2.ParseReader(reader, id3v2.Options{Parse: true})
		if err != nil {
			return fmt.Errorf("failed to parse existing tags: %w", err)
		}

		tag = parsed
		// The reader is positioned right after the original tag,
		// so everything from here on is audio frames.
		audioStart = reader.Size() - int64(reader.Len())
	} else {
		tag = id3v2.NewEmptyTag()
	}

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(payload.Title)

	var buffer bytes.Buffer
	if _, err := tag.WriteTo(&buffer); err != nil {
		return fmt.Errorf("failed to write tags: %w", err)
	}

	buffer.Write(payload.Data[audioStart:])
	payload.Data = buffer.Bytes()

	return nil
}
