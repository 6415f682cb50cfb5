package chat

import (
	"errors"
	"time"
)

// TimestampLayout es el formato de Message.Timestamp.
const TimestampLayout = "Mon, 2 Jan 2006 15:04:05"

type Sender string

const (
	SenderUser   Sender = "user"
	SenderExpert Sender = "expert"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrTooManyImages   = errors.New("too many images")
	ErrBatchIncomplete = errors.New("one or more images failed to process")
)

// Message vive solo en memoria durante la sesión de chat.
type Message struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Sender    Sender   `json:"sender"`
	Timestamp string   `json:"timestamp"`
	ImageKeys []string `json:"image_keys,omitempty"`
}

func formatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
