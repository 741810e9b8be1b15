package pipeline

import (
	"path/filepath"

	"github.com/backmassage/mkv2mp4/internal/naming"
)

// Reasons recorded on an Orphan.
const (
	ReasonNoVideo     = "no matching video"
	ReasonHasSubtitle = "video already has a subtitle"
)

// Orphan is a subtitle whose key matched no usable video.
type Orphan struct {
	Path   string
	Key    string
	Reason string
}

// Duplicate is a video left out because an earlier video had the same key.
type Duplicate struct {
	Path string
	Key  string
	Kept string // Video path that owns the key.
}

// Catalog is the ordered set of media items keyed by identity key, plus the
// subtitles and videos that could not be associated.
type Catalog struct {
	items []*MediaItem
	index map[string]*MediaItem

	Unmatched  []string // Subtitles with no season/episode code.
	Orphaned   []Orphan
	Duplicates []Duplicate
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]*MediaItem)}
}

// Add inserts item under its key. An existing key is never replaced; Add
// returns false in that case.
func (c *Catalog) Add(item *MediaItem) bool {
	key := item.Key()
	if _, ok := c.index[key]; ok {
		return false
	}
	c.index[key] = item
	c.items = append(c.items, item)
	return true
}

// Lookup returns the item stored under key.
func (c *Catalog) Lookup(key string) (*MediaItem, bool) {
	item, ok := c.index[key]
	return item, ok
}

// Items returns the items in insertion order.
func (c *Catalog) Items() []*MediaItem { return c.items }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Associate builds a catalog from video paths, then attaches each subtitle
// whose key matches a video. Keys are computed from base names.
func Associate(videos, subtitles []string) *Catalog {
	c := NewCatalog()

	for _, v := range videos {
		item, err := NewMediaItem(v, naming.Parse(filepath.Base(v)))
		if err != nil {
			continue
		}
		if !c.Add(item) {
			kept, _ := c.Lookup(item.Key())
			c.Duplicates = append(c.Duplicates, Duplicate{Path: v, Key: item.Key(), Kept: kept.VideoPath})
		}
	}

	for _, s := range subtitles {
		name := filepath.Base(s)
		id := naming.Parse(name)
		if !id.Matched() {
			c.Unmatched = append(c.Unmatched, s)
			continue
		}
		key := naming.KeyForMatch(name, id)
		item, ok := c.Lookup(key)
		if !ok {
			c.Orphaned = append(c.Orphaned, Orphan{Path: s, Key: key, Reason: ReasonNoVideo})
			continue
		}
		if !item.AttachSubtitle(s) {
			c.Orphaned = append(c.Orphaned, Orphan{Path: s, Key: key, Reason: ReasonHasSubtitle})
		}
	}
	return c
}
