package uploads

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Event is one inbound invocation as delivered by the hosting platform.
type Event struct {
	Body            string
	IsBase64Encoded bool
	Headers         map[string]string
	RequestID       string
}

// Header returns the first header value whose name matches case-insensitively.
func (e Event) Header(name string) string {
	if v, ok := e.Headers[name]; ok {
		return v
	}
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Response is the handler's result: a status code and a plain-text body.
type Response struct {
	StatusCode int
	Body       string
}

// EventFromHTTP maps a raw HTTP request the way API Gateway does for binary payloads.
func EventFromHTTP(header http.Header, body []byte, requestID string) Event {
	headers := make(map[string]string, len(header))
	for k, v := range header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = v[0]
		}
	}
	ev := Event{Headers: headers, RequestID: requestID}
	if len(body) > 0 {
		ev.Body = base64.StdEncoding.EncodeToString(body)
		ev.IsBase64Encoded = true
	}
	return ev
}
