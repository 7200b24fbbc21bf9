package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/pkg/log"
)

type State int

const (
	Idle State = iota
	PlaceholderShown
	Reconciled
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PlaceholderShown:
		return "placeholder_shown"
	case Reconciled:
		return "reconciled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Widgets hands out the opaque system entries the host displays while
// history is restored.
type Widgets interface {
	LoadingMessage() core.Message
	SeparatorMessage() core.Message
}

// Loader restores the session baseline into the live conversation in two
// phases: a loading indicator first, then the decoded history after the
// configured delay.
type Loader struct {
	session   *Session
	list      core.MessageList
	input     core.InputControl
	widgets   Widgets
	scheduler Scheduler

	// text area state once history is in place
	inputDisabled bool

	mu    sync.Mutex
	state State
}

func NewLoader(
	session *Session,
	list core.MessageList,
	input core.InputControl,
	widgets Widgets,
	scheduler Scheduler,
	inputDisabled bool,
) *Loader {
	return &Loader{
		session:       session,
		list:          list,
		input:         input,
		widgets:       widgets,
		scheduler:     scheduler,
		inputDisabled: inputDisabled,
	}
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// begin moves an Idle loader to PlaceholderShown. It reports the state it
// found and whether this call made the move.
func (l *Loader) begin() (State, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Idle {
		return l.state, false
	}
	l.state = PlaceholderShown
	return Idle, true
}

func (l *Loader) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// Load restores stored history. It returns nil for corrupt history, which
// is discarded; only a failure to discard it is reported. Once a load has
// left Idle, further calls do nothing.
func (l *Loader) Load(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	key := l.session.cfg.StorageKey

	l.session.markLoaded()
	raw, ok := l.session.snapshot()
	if !ok || raw == "" {
		logger.Debug().Str("key", key).Msg("no chat history to load")
		return nil
	}
	if state, started := l.begin(); !started {
		logger.Debug().Stringer("state", state).Msg("chat history already loaded")
		return nil
	}

	loading := l.widgets.LoadingMessage()
	l.list.Update(func(old []core.Message) []core.Message {
		if len(old) > 0 {
			old = old[1:]
		}
		next := make([]core.Message, 0, len(old)+1)
		next = append(next, loading)
		return append(next, old...)
	})
	l.input.SetTextAreaDisabled(true)

	restored, err := l.decode(raw)
	if err != nil {
		return l.fail(ctx, loading, err)
	}

	separator := l.widgets.SeparatorMessage()
	l.scheduler.AfterFunc(l.session.cfg.LoadDelay, func() {
		l.list.Update(func(old []core.Message) []core.Message {
			old = without(old, loading.ID)
			next := make([]core.Message, 0, len(restored)+1+len(old))
			next = append(next, restored...)
			next = append(next, separator)
			return append(next, old...)
		})
		l.input.SetTextAreaDisabled(l.inputDisabled)
		l.setState(Reconciled)
		logger.Debug().Int("count", len(restored)).Msg("chat history restored")
	})
	return nil
}

func (l *Loader) decode(raw string) ([]core.Message, error) {
	window, err := ParseWindow(raw)
	if err != nil {
		return nil, err
	}

	msgs, err := l.session.codec.DecodeAll(window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return msgs, nil
}

// fail discards unreadable history and puts the host back the way it was
// before the loading indicator appeared, minus the leading placeholder.
func (l *Loader) fail(ctx context.Context, loading core.Message, cause error) error {
	logger := log.FromCtx(ctx)
	logger.Warn().Err(cause).Str("key", l.session.cfg.StorageKey).Msg("discarding unreadable chat history")
	l.setState(Failed)

	l.list.Update(func(old []core.Message) []core.Message {
		return without(old, loading.ID)
	})
	l.input.SetTextAreaDisabled(l.inputDisabled)

	if err := l.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to discard chat history: %w", err)
	}
	return nil
}

// without returns msgs minus the first entry with the given ID.
func without(msgs []core.Message, id string) []core.Message {
	for i, m := range msgs {
		if m.ID == id {
			out := make([]core.Message, 0, len(msgs)-1)
			out = append(out, msgs[:i]...)
			return append(out, msgs[i+1:]...)
		}
	}
	return msgs
}
