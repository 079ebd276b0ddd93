package notify

import "encoding/json"

// Message is a notification broadcast to downstream subscribers.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
