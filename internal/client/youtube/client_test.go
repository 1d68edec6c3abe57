package youtube

import (
	"testing"

	ytstream "github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseISO8601Duration tests the ParseISO8601Duration function.
func TestParseISO8601Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{
			name:     "minutes and seconds",
			input:    "PT2M5S",
			expected: 125,
		},
		{
			name:     "seconds only",
			input:    "PT59S",
			expected: 59,
		},
		{
			name:     "minutes only",
			input:    "PT4M",
			expected: 240,
		},
		{
			name:     "hours minutes seconds",
			input:    "PT1H2M3S",
			expected: 3723,
		},
		{
			name:     "zero duration",
			input:    "PT",
			expected: 0,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "missing prefix",
			input:   "2M5S",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a duration",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseISO8601Duration(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestBestAudioFormat tests the bestAudioFormat function.
func TestBestAudioFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		formats       ytstream.FormatList
		expectedItag  int
		expectedError error
	}{
		{
			name:          "no formats",
			formats:       ytstream.FormatList{},
			expectedError: ErrNoAudioStreams,
		},
		{
			name: "video only formats are skipped",
			formats: ytstream.FormatList{
				{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Bitrate: 4000000},
			},
			expectedError: ErrNoAudioStreams,
		},
		{
			name: "highest bitrate audio wins",
			formats: ytstream.FormatList{
				{ItagNo: 139, MimeType: `audio/mp4; codecs="mp4a.40.5"`, Bitrate: 48000, AudioChannels: 2},
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Bitrate: 128000, AudioChannels: 2},
				{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Bitrate: 4000000},
			},
			expectedItag: 140,
		},
		{
			name: "formats without audio channels are skipped",
			formats: ytstream.FormatList{
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Bitrate: 128000, AudioChannels: 2},
				{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, Bitrate: 160000, AudioChannels: 0},
			},
			expectedItag: 140,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format, err := bestAudioFormat(tt.formats)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedItag, format.ItagNo)
		})
	}
}

// TestBaseMimeType tests the baseMimeType function.
func TestBaseMimeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mime with codecs",
			input:    `audio/mp4; codecs="mp4a.40.2"`,
			expected: "audio/mp4",
		},
		{
			name:     "plain mime",
			input:    "audio/mpeg",
			expected: "audio/mpeg",
		},
		{
			name:     "webm opus",
			input:    `audio/webm; codecs="opus"`,
			expected: "audio/webm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, baseMimeType(tt.input))
		})
	}
}
