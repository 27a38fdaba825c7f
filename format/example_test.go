package format_test

import (
	"fmt"

	"github.com/xsellco/grip/format"
)

func ExampleNewItem() {
	item := format.NewItem(
		format.HTTPStream{Content: "score update\n"},
		format.WithID("2"),
		format.WithPrevID("1"),
	)
	export := item.Export()
	fmt.Println(export["id"], export["prev-id"])
	// Output: 2 1
}

func ExampleEnvelope() {
	item := format.NewItem(format.NewJSONObject("json-object", map[string]any{"body": "hello"}))
	body, _ := format.Envelope("channel", []format.Item{item})
	fmt.Println(string(body))
	// Output: {"items":[{"channel":"channel","json-object":{"body":"hello"}}]}
}
