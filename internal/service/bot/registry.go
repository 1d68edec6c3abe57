package bot

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SelectionRegistry maps selection tokens to canonical video IDs for the
// lifetime of one outstanding interaction. It is the only shared mutable
// state in the pipeline and is safe for concurrent use.
type SelectionRegistry interface {
	// Insert registers a token for the given user and video ID.
	Insert(userID int64, token, videoID string)
	// Take resolves and consumes a token. The second call for the same
	// token reports a miss, regardless of timing.
	Take(token string) (videoID string, ok bool)
	// DropUser discards all live tokens of the given user.
	// Called when a new search supersedes an unconsumed option set.
	DropUser(userID int64)
	// Len returns the number of live tokens.
	Len() int
}

// selectionEntry is the registry value bound to one token.
type selectionEntry struct {
	// userID identifies the owner of the token.
	userID int64
	// videoID is the canonical media identifier the token stands in for.
	videoID string
}

// SelectionRegistryImpl implements SelectionRegistry on an expiring LRU,
// so abandoned option sets are reclaimed after the idle window and the
// registry stays bounded across many users over a long-running process.
type SelectionRegistryImpl struct {
	// opMutex serializes compound operations so lookup-and-consume is atomic.
	opMutex sync.Mutex
	// entries maps tokens to selection entries with TTL-based eviction.
	entries *expirable.LRU[string, selectionEntry]
	// indexMutex protects tokensByUser; it is also taken by the eviction
	// callback, which may fire from the LRU's expiry goroutine.
	indexMutex sync.Mutex
	// tokensByUser indexes live tokens per user for supersede cleanup.
	tokensByUser map[int64]map[string]struct{}
}

// NewSelectionRegistry creates a selection registry bounded by maxEntries
// entries, each expiring ttl after insertion.
func NewSelectionRegistry(maxEntries int, ttl time.Duration) *SelectionRegistryImpl {
	registry := &SelectionRegistryImpl{
		tokensByUser: make(map[int64]map[string]struct{}),
	}

	registry.entries = expirable.NewLRU[string, selectionEntry](maxEntries, registry.onEvict, ttl)

	return registry
}

// Insert registers a token for the given user and video ID.
func (r *SelectionRegistryImpl) Insert(userID int64, token, videoID string) {
	r.opMutex.Lock()
	defer r.opMutex.Unlock()

	r.entries.Add(token, selectionEntry{userID: userID, videoID: videoID})
	r.addToIndex(userID, token)
}

// Take resolves and consumes a token.
func (r *SelectionRegistryImpl) Take(token string) (string, bool) {
	r.opMutex.Lock()
	defer r.opMutex.Unlock()

	entry, ok := r.entries.Get(token)
	if !ok {
		return "", false
	}

	// Remove triggers onEvict, which cleans the per-user index.
	r.entries.Remove(token)

	return entry.videoID, true
}

// DropUser discards all live tokens of the given user.
func (r *SelectionRegistryImpl) DropUser(userID int64) {
	r.opMutex.Lock()
	defer r.opMutex.Unlock()

	for _, token := range r.userTokens(userID) {
		r.entries.Remove(token)
	}
}

// Len returns the number of live tokens.
func (r *SelectionRegistryImpl) Len() int {
	return r.entries.Len()
}

// onEvict keeps the per-user index consistent with the LRU.
// It runs on explicit removal, capacity eviction, and TTL expiry.
func (r *SelectionRegistryImpl) onEvict(token string, entry selectionEntry) {
	r.indexMutex.Lock()
	defer r.indexMutex.Unlock()

	tokens, ok := r.tokensByUser[entry.userID]
	if !ok {
		return
	}

	delete(tokens, token)

	if len(tokens) == 0 {
		delete(r.tokensByUser, entry.userID)
	}
}

// addToIndex records a live token for the user.
func (r *SelectionRegistryImpl) addToIndex(userID int64, token string) {
	r.indexMutex.Lock()
	defer r.indexMutex.Unlock()

	tokens, ok := r.tokensByUser[userID]
	if !ok {
		tokens = make(map[string]struct{})
		r.tokensByUser[userID] = tokens
	}

	tokens[token] = struct{}{}
}

// userTokens returns a snapshot of the user's live tokens.
func (r *SelectionRegistryImpl) userTokens(userID int64) []string {
	r.indexMutex.Lock()
	defer r.indexMutex.Unlock()

	tokens := make([]string, 0, len(r.tokensByUser[userID]))
	for token := range r.tokensByUser[userID] {
		tokens = append(tokens, token)
	}

	return tokens
}
