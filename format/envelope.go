package format

import (
	"encoding/json"

	"github.com/xsellco/grip/errors"
)

// Envelope serializes one-or-more items for the given channel into the
// JSON body the publish endpoint expects:
//
//	{"items": [ <item export + "channel": <name>>, ... ]}
//
// Items appear in input order. The channel key is added to a copy of each
// export, so caller-held items are never mutated. Content-Length must be
// computed from the returned bytes.
func Envelope(channel string, items []Item) ([]byte, error) {
	exported := make([]map[string]any, 0, len(items))
	for _, it := range items {
		entry := it.Export()
		entry["channel"] = channel
		exported = append(exported, entry)
	}

	body, err := json.Marshal(map[string]any{"items": exported})
	if err != nil {
		return nil, errors.Wrap(err, "Envelope", "Marshal", "serialize items")
	}
	return body, nil
}
