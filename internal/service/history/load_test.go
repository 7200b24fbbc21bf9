package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/codec"
	"github.com/sandevgo/chatlog/internal/service/markup"
	"github.com/sandevgo/chatlog/internal/service/style"
	"github.com/sandevgo/chatlog/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadFixture struct {
	store     *recordingStore
	session   *Session
	conv      *chat.Conversation
	widgets   *chat.Widgets
	scheduler *manualScheduler
	loader    *Loader
}

func newLoadFixture(t *testing.T, cfg *config.HistoryConfig, stored *string, inputDisabled bool) *loadFixture {
	t.Helper()
	store := newRecordingStore()
	if stored != nil {
		seed(t, store, *stored)
	}

	f := &loadFixture{
		store:     store,
		session:   newTestSession(t, cfg, store),
		widgets:   chat.NewWidgets(),
		scheduler: &manualScheduler{},
	}
	f.conv = chat.NewConversation(f.widgets.Placeholder(), user("welcome"))
	f.loader = NewLoader(f.session, f.conv, f.conv, f.widgets, f.scheduler, inputDisabled)
	return f
}

func ptr(s string) *string { return &s }

func components(msgs []core.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		if m.Component != "" {
			out[i] = m.Component
		} else {
			out[i] = string(m.Sender) + ":" + m.Text
		}
	}
	return out
}

func TestLoad_NoHistoryStaysIdle(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), nil, false)
	before := f.conv.Messages()

	require.NoError(t, f.loader.Load(context.Background()))

	assert.Equal(t, Idle, f.loader.State())
	assert.True(t, f.session.Loaded())
	assert.Equal(t, before, f.conv.Messages())
	assert.Empty(t, f.scheduler.tasks)
}

func TestLoad_EmptyStoredValueStaysIdle(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), ptr(""), false)
	before := f.conv.Messages()

	require.NoError(t, f.loader.Load(context.Background()))

	assert.Equal(t, Idle, f.loader.State())
	assert.Equal(t, before, f.conv.Messages())
	assert.Empty(t, f.scheduler.tasks)
	assert.Zero(t, f.store.removes)
}

func TestLoad_ConcurrentCallsLoadOnce(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), ptr(`[{"content":"hi","type":"string","sender":"user"}]`), false)
	sched := &lockedScheduler{}
	f.loader = NewLoader(f.session, f.conv, f.conv, f.widgets, sched, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.loader.Load(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sched.count())
	assert.Equal(t, PlaceholderShown, f.loader.State())
}

func TestLoad_EndToEnd(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), ptr(`[{"content":"hi","type":"string","sender":"user"}]`), false)

	require.NoError(t, f.loader.Load(context.Background()))

	// placeholder replaced by the loading indicator
	assert.Equal(t, PlaceholderShown, f.loader.State())
	assert.Equal(t, []string{chat.ComponentLoading, "user:welcome"}, components(f.conv.Messages()))
	assert.True(t, f.conv.TextAreaDisabled())
	require.Len(t, f.scheduler.tasks, 1)
	assert.Equal(t, 500*time.Millisecond, f.scheduler.delays[0])

	f.scheduler.run()

	assert.Equal(t, Reconciled, f.loader.State())
	msgs := f.conv.Messages()
	assert.Equal(t, []string{"user:hi", chat.ComponentSeparator, "user:welcome"}, components(msgs))
	assert.Equal(t, core.SenderUser, msgs[0].Sender)
	assert.Equal(t, "hi", msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)
	assert.False(t, f.conv.TextAreaDisabled())
}

func TestLoad_RespectsConfiguredInputState(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), ptr(`[]`), true)

	require.NoError(t, f.loader.Load(context.Background()))
	f.scheduler.run()

	assert.Equal(t, Reconciled, f.loader.State())
	assert.True(t, f.conv.TextAreaDisabled())
	assert.Equal(t, []string{chat.ComponentSeparator, "user:welcome"}, components(f.conv.Messages()))
}

func TestLoad_CorruptHistoryIsDiscarded(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"not json", "<<garbage"},
		{"wrong shape", `{"content":"hi"}`},
		{"null", "null"},
		{"bare string", `"hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLoadFixture(t, testConfig(30), ptr(tt.stored), false)

			require.NoError(t, f.loader.Load(context.Background()))

			assert.Equal(t, Failed, f.loader.State())
			_, ok, _ := f.store.Get(context.Background(), testKey)
			assert.False(t, ok, "corrupt entry must be removed")
			assert.Equal(t, 1, f.store.removes)

			// loading indicator gone, input restored, nothing scheduled
			assert.Equal(t, []string{"user:welcome"}, components(f.conv.Messages()))
			assert.False(t, f.conv.TextAreaDisabled())
			assert.Empty(t, f.scheduler.tasks)
		})
	}
}

func TestLoad_DiscardFailureIsReported(t *testing.T) {
	store := failingStore{Store: memory.NewStore()}
	seed(t, store, "garbage")
	session := newTestSession(t, testConfig(30), store)
	conv := chat.NewConversation(chat.NewWidgets().Placeholder())

	err := NewLoader(session, conv, conv, chat.NewWidgets(), &manualScheduler{}, false).Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_SecondCallIsNoop(t *testing.T) {
	f := newLoadFixture(t, testConfig(30), ptr(`[{"content":"hi","type":"string","sender":"user"}]`), false)
	ctx := context.Background()

	require.NoError(t, f.loader.Load(ctx))
	f.scheduler.run()
	require.NoError(t, f.loader.Load(ctx))
	f.scheduler.run()

	assert.Equal(t, []string{"user:hi", chat.ComponentSeparator, "user:welcome"}, components(f.conv.Messages()))
}

func TestLoad_RichContentRestyled(t *testing.T) {
	store := newRecordingStore()
	seed(t, store, `[{"content":"<div class=\"rcb-options\">Yes</div>","type":"object","sender":"bot"}]`)

	engine := style.NewEngine(&config.StyleConfig{PrimaryColor: "#42b0c5", ActionDisabledIcon: "off.png"})
	c := codec.NewCodec(markup.NewRenderer(), markup.NewReconstructor(engine))
	session, err := NewSession(context.Background(), testConfig(30), store, c)
	require.NoError(t, err)

	conv := chat.NewConversation(chat.NewWidgets().Placeholder())
	sched := &manualScheduler{}
	require.NoError(t, NewLoader(session, conv, conv, chat.NewWidgets(), sched, false).Load(context.Background()))
	sched.run()

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	require.True(t, msgs[0].IsRich())
	require.Len(t, msgs[0].Rich, 1)
	option := msgs[0].Rich[0]
	assert.Equal(t, "div", option.Tag)
	assert.Equal(t, "#42b0c5", option.Style["color"])
	assert.Equal(t, "url(off.png), auto", option.Style["cursor"])
}

func TestLoad_ThenSaveDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newLoadFixture(t, testConfig(5), ptr(`[{"content":"h1","type":"string","sender":"user"},{"content":"h2","type":"string","sender":"bot"}]`), false)

	require.NoError(t, f.loader.Load(ctx))
	f.scheduler.run()

	f.conv.Append(user("n1"))
	require.NoError(t, f.session.Save(ctx, f.conv.Messages()))
	f.conv.Append(bot("n2"))
	require.NoError(t, f.session.Save(ctx, f.conv.Messages()))

	assert.Equal(t, []core.PersistedMessage{
		persisted(core.SenderUser, "h1"),
		persisted(core.SenderBot, "h2"),
		persisted(core.SenderUser, "welcome"),
		persisted(core.SenderUser, "n1"),
		persisted(core.SenderBot, "n2"),
	}, f.store.window(t))
}

func TestTimerScheduler(t *testing.T) {
	s := NewTimerScheduler()
	done := make(chan struct{})
	start := time.Now()

	s.AfterFunc(10*time.Millisecond, func() { close(done) })
	s.Wait()

	select {
	case <-done:
	default:
		t.Fatal("task did not run before Wait returned")
	}
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "placeholder_shown", PlaceholderShown.String())
	assert.Equal(t, "reconciled", Reconciled.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "state(9)", State(9).String())
}

type lockedScheduler struct {
	mu    sync.Mutex
	tasks []func()
}

func (s *lockedScheduler) AfterFunc(_ time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, f)
}

func (s *lockedScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
