package format

import "github.com/google/uuid"

// Item is one message-to-publish. It owns exactly one Format and carries
// optional sequencing identifiers: ID names this message and PrevID names
// the message it follows, letting the proxy detect gaps in a channel.
type Item struct {
	format Format
	id     string
	prevID string
}

// ItemOption configures an Item at construction.
type ItemOption func(*Item)

// WithID sets the item's message identifier, exported as "id".
func WithID(id string) ItemOption {
	return func(it *Item) {
		it.id = id
	}
}

// WithPrevID sets the identifier of the preceding message, exported as
// "prev-id".
func WithPrevID(prevID string) ItemOption {
	return func(it *Item) {
		it.prevID = prevID
	}
}

// WithAutoID assigns a random UUID as the item's message identifier.
func WithAutoID() ItemOption {
	return func(it *Item) {
		it.id = uuid.NewString()
	}
}

// NewItem creates an Item wrapping the given format.
func NewItem(f Format, opts ...ItemOption) Item {
	it := Item{format: f}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// ID returns the item's message identifier, empty when unset.
func (it Item) ID() string {
	return it.id
}

// PrevID returns the preceding message identifier, empty when unset.
func (it Item) PrevID() string {
	return it.prevID
}

// Export returns the wire representation of the item: the format's export
// keyed by the format name, plus "id" and "prev-id" when set. Each call
// returns a fresh mapping and never mutates the item.
func (it Item) Export() map[string]any {
	out := map[string]any{
		it.format.Name(): it.format.Export(),
	}
	if it.id != "" {
		out["id"] = it.id
	}
	if it.prevID != "" {
		out["prev-id"] = it.prevID
	}
	return out
}
