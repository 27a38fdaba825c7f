package format

// Format is the capability every serializable message variant implements.
// Name identifies the format on the wire and Export produces the
// JSON-compatible mapping for one message.
//
// Export must be callable any number of times and must not mutate the
// receiver; each call returns a mapping the caller may modify freely.
type Format interface {
	// Name returns the wire-level format identifier, used as the key
	// under which the exported mapping appears in an item.
	Name() string

	// Export returns the JSON-compatible representation of the message.
	Export() map[string]any
}

// JSONObject is a generic format carrying an arbitrary JSON object under a
// caller-chosen format name. Useful for prototyping and for proxies that
// accept free-form message bodies.
type JSONObject struct {
	FormatName string
	Data       map[string]any
}

// NewJSONObject creates a JSONObject format with the given name and data.
func NewJSONObject(name string, data map[string]any) JSONObject {
	return JSONObject{FormatName: name, Data: data}
}

// Name returns the caller-chosen format identifier.
func (j JSONObject) Name() string {
	return j.FormatName
}

// Export returns a fresh copy of the object data.
func (j JSONObject) Export() map[string]any {
	out := make(map[string]any, len(j.Data))
	for k, v := range j.Data {
		out[k] = v
	}
	return out
}

// HTTPStream is the standard GRIP format for appending content to an open
// HTTP streaming response.
type HTTPStream struct {
	Content string
}

// Name returns the wire identifier for HTTP stream content.
func (HTTPStream) Name() string {
	return "http-stream"
}

// Export returns the stream content mapping.
func (h HTTPStream) Export() map[string]any {
	return map[string]any{"content": h.Content}
}

// HTTPResponse is the standard GRIP format for delivering a complete HTTP
// response to long-polling subscribers. Zero-valued fields are omitted
// from the export; Code and Reason default on the proxy side.
type HTTPResponse struct {
	Code    int
	Reason  string
	Headers map[string]string
	Body    string
}

// Name returns the wire identifier for HTTP response content.
func (HTTPResponse) Name() string {
	return "http-response"
}

// Export returns the response mapping with empty fields omitted.
func (h HTTPResponse) Export() map[string]any {
	out := map[string]any{"body": h.Body}
	if h.Code != 0 {
		out["code"] = h.Code
	}
	if h.Reason != "" {
		out["reason"] = h.Reason
	}
	if len(h.Headers) > 0 {
		headers := make(map[string]string, len(h.Headers))
		for k, v := range h.Headers {
			headers[k] = v
		}
		out["headers"] = headers
	}
	return out
}
