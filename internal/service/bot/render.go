package bot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zerocreations/tunegrab/internal/client/youtube"
	"github.com/zerocreations/tunegrab/internal/utils"
)

// tokenPrefix marks selection tokens in gateway callback payloads.
// A prefixed UUID is 39 bytes, well under Telegram's 64-byte callback ceiling,
// which is why video IDs are never embedded in callback data directly.
const tokenPrefix = "dl:"

// NewSelectionToken mints a fresh, collision-resistant selection token.
func NewSelectionToken() string {
	return tokenPrefix + uuid.New().String()
}

// renderOptions turns candidates into an ordered option set, minting one fresh
// token per candidate and registering it under the requesting user. Any option
// set the user still had on screen is superseded and its tokens dropped.
func (s *ServiceImpl) renderOptions(userID int64, candidates []*youtube.Candidate) ([]Option, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	s.registry.DropUser(userID)

	options := make([]Option, 0, len(candidates))

	for i, candidate := range candidates {
		token := NewSelectionToken()
		s.registry.Insert(userID, token, candidate.ID)

		options = append(options, Option{
			Label: formatOptionLabel(i+1, candidate),
			Token: token,
		})
	}

	return options, nil
}

// formatOptionLabel renders a candidate as "{rank}. {title} ({m}:{ss})".
func formatOptionLabel(rank int, candidate *youtube.Candidate) string {
	return fmt.Sprintf("%d. %s (%s)",
		rank, candidate.Title, utils.FormatTrackDuration(candidate.DurationSeconds))
}
