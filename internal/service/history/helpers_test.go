package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/codec"
	"github.com/sandevgo/chatlog/internal/service/markup"
	"github.com/sandevgo/chatlog/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

const testKey = "rcb-history"

// recordingStore counts writes and can be told to fail them.
type recordingStore struct {
	*memory.Store
	mu       sync.Mutex
	sets     int
	removes  int
	failSet  error
	failRead error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Store: memory.NewStore()}
}

func (s *recordingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failRead != nil {
		return "", false, s.failRead
	}
	return s.Store.Get(ctx, key)
}

func (s *recordingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	if s.failSet != nil {
		return s.failSet
	}
	return s.Store.Set(ctx, key, value)
}

func (s *recordingStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	s.removes++
	s.mu.Unlock()
	return s.Store.Remove(ctx, key)
}

func (s *recordingStore) window(t *testing.T) []core.PersistedMessage {
	t.Helper()
	raw, ok, err := s.Store.Get(context.Background(), testKey)
	require.NoError(t, err)
	require.True(t, ok, "history not stored")
	window, err := ParseWindow(raw)
	require.NoError(t, err)
	return window
}

// manualScheduler holds tasks until run is called.
type manualScheduler struct {
	delays []time.Duration
	tasks  []func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.tasks = append(s.tasks, f)
}

func (s *manualScheduler) run() {
	tasks := s.tasks
	s.tasks = nil
	for _, f := range tasks {
		f()
	}
}

type failingStore struct {
	*memory.Store
}

func (failingStore) Remove(context.Context, string) error { return errors.New("remove failed") }

func testConfig(maxEntries int) *config.HistoryConfig {
	return &config.HistoryConfig{
		StorageKey:  testKey,
		MaxEntries:  maxEntries,
		StorageType: config.StorageSession,
		LoadDelay:   500 * time.Millisecond,
	}
}

func newTestCodec() *codec.Codec {
	return codec.NewCodec(markup.NewRenderer(), markup.NewReconstructor(nil))
}

func newTestSession(t *testing.T, cfg *config.HistoryConfig, store core.Storage) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), cfg, store, newTestCodec())
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, store core.Storage, raw string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), testKey, raw))
}

func user(text string) core.Message {
	return core.Message{ID: "u-" + text, Sender: core.SenderUser, Text: text}
}

func bot(text string) core.Message {
	return core.Message{ID: "b-" + text, Sender: core.SenderBot, Text: text}
}

func system(component string) core.Message {
	return core.Message{ID: "s-" + component, Sender: core.SenderSystem, Component: component}
}

func persisted(sender core.Sender, text string) core.PersistedMessage {
	return core.PersistedMessage{Content: text, Type: core.ContentString, Sender: sender}
}

func conversation(n int) []core.Message {
	msgs := make([]core.Message, 0, n)
	for i := 1; i <= n; i++ {
		if i%2 == 1 {
			msgs = append(msgs, user(fmt.Sprintf("m%d", i)))
		} else {
			msgs = append(msgs, bot(fmt.Sprintf("m%d", i)))
		}
	}
	return msgs
}
