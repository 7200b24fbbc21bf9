package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/sandevgo/chatlog/internal/core"
)

// ErrDecode marks a stored window that is not a JSON array of messages.
var ErrDecode = errors.New("malformed chat history")

// ParseWindow decodes a stored window. An empty value is an empty window;
// any JSON value other than an array, null included, is malformed.
func ParseWindow(raw string) ([]core.PersistedMessage, error) {
	if raw == "" {
		return nil, nil
	}

	var window []core.PersistedMessage
	if err := json.Unmarshal([]byte(raw), &window); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if window == nil {
		return nil, fmt.Errorf("%w: %s is not an array", ErrDecode, raw)
	}
	return window, nil
}

// FormatWindow encodes a window for storage. Markup is kept unescaped so the
// stored value stays readable.
func FormatWindow(window []core.PersistedMessage) (string, error) {
	if window == nil {
		window = []core.PersistedMessage{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(window); err != nil {
		return "", fmt.Errorf("failed to encode chat history: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// collectBatch walks live from the newest entry down to offset and returns
// the messages found, oldest first. The walk stops at the first system
// entry or once maxEntries messages are collected.
func collectBatch(live []core.Message, offset, maxEntries int) []core.Message {
	var batch []core.Message
	for i := len(live) - 1; i >= offset && i >= 0; i-- {
		if live[i].Sender.IsSystem() || len(batch) == maxEntries {
			break
		}
		batch = append(batch, live[i])
	}
	slices.Reverse(batch)
	return batch
}

// mergeWindow left-pads batch with the newest entries of old so the result
// holds at most maxEntries entries in chronological order.
func mergeWindow(old, batch []core.PersistedMessage, maxEntries int) []core.PersistedMessage {
	window := make([]core.PersistedMessage, 0, min(maxEntries, len(old)+len(batch)))
	if room := maxEntries - len(batch); room > 0 {
		start := max(0, len(old)-room)
		window = append(window, old[start:]...)
	}
	return append(window, batch...)
}
