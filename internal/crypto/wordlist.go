package crypto

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyWordList  = fmt.Errorf("%w: word list is empty", ErrPolicy)
	ErrDuplicateWord  = fmt.Errorf("%w: word list contains duplicates", ErrPolicy)
	ErrInvalidWord    = fmt.Errorf("%w: words must be lowercase without spaces", ErrPolicy)
	ErrInvalidListKey = fmt.Errorf("%w: word list id is empty", ErrPolicy)
)

// WordLists is a registry of named, immutable word lists.
// Selection is uniform with replacement, so every list is checked for duplicates on insert.
type WordLists struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewWordLists returns a registry holding the built-in lists.
func NewWordLists() *WordLists {
	wl := &WordLists{lists: make(map[string][]string)}
	for id, words := range builtinWordLists {
		if err := wl.Add(id, words); err != nil {
			panic(fmt.Sprintf("built-in word list %q: %v", id, err))
		}
	}
	return wl
}

// Add registers a list under id, replacing any previous list with that id.
func (wl *WordLists) Add(id string, words []string) error {
	if id == "" {
		return ErrInvalidListKey
	}
	if len(words) == 0 {
		return ErrEmptyWordList
	}

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" || w != strings.ToLower(w) || strings.ContainsAny(w, " \t\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		seen[w] = struct{}{}
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()
	wl.lists[id] = slices.Clone(words)
	return nil
}

// Get returns the list registered under id. The slice must not be modified.
func (wl *WordLists) Get(id string) ([]string, bool) {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	words, ok := wl.lists[id]
	return words, ok
}

// Size returns the number of words in list id, or 0 if it is unknown.
func (wl *WordLists) Size(id string) int {
	words, _ := wl.Get(id)
	return len(words)
}

// IDs returns the registered list ids in sorted order.
func (wl *WordLists) IDs() []string {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	ids := make([]string, 0, len(wl.lists))
	for id := range wl.lists {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// LoadYAML reads a mapping of list id to words and registers every list.
// Either all lists are accepted or none are.
//
//	colors:
//	  - red
//	  - green
func (wl *WordLists) LoadYAML(r io.Reader) error {
	var doc map[string][]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decoding word lists: %w", err)
	}

	staged := &WordLists{lists: make(map[string][]string, len(doc))}
	for id, words := range doc {
		if err := staged.Add(id, words); err != nil {
			return fmt.Errorf("word list %q: %w", id, err)
		}
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()
	for id, words := range staged.lists {
		wl.lists[id] = words
	}
	return nil
}
