// Package grip is a publish client for GRIP-style reverse-proxy/pub-sub
// gateways. It delivers application-level messages to named channels over
// authenticated HTTP and classifies every failure so callers can react
// correctly to network, HTTP, and partial-delivery problems.
//
// # Architecture
//
// The module is organized around one control flow:
//
//	┌─────────────────────────────────────┐
//	│       publisher.Client              │  payload build, headers,
//	│   (Publish / PublishAsync)          │  dispatch, classification
//	└─────────────────────────────────────┘
//	        ↓ shapes data via                ↓ authorizes via
//	┌──────────────────────┐   ┌──────────────────────┐
//	│   format.Item/Format │   │   auth.Credential    │
//	│   format.Envelope    │   │   (Basic, JWT)       │
//	└──────────────────────┘   └──────────────────────┘
//	        ↓ sent through
//	┌─────────────────────────────────────┐
//	│      transport.Doer                 │  injected HTTP collaborator
//	└─────────────────────────────────────┘
//
// Failures surface as *errors.PublishError in exactly one of three kinds:
// transport (no response, status code -1), HTTP (non-2xx status), or
// body-read (2xx but the body stream failed while draining).
//
// # Usage
//
//	client := publisher.New("https://proxy.example.com")
//	client.SetAuthBasic("user", "pass")
//
//	item := format.NewItem(format.HTTPStream{Content: "update\n"})
//	if err := client.Publish(ctx, "events", item); err != nil {
//	    if errors.IsTransportFailure(err) {
//	        // no response was ever obtained
//	    }
//	}
//
// Publishing is side-effect free on the client: a failed call leaves the
// client fully usable for subsequent calls.
package grip
