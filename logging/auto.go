package logging

import (
	"sync"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
)

// AutoLogger writes through whichever binding is currently selected.
// Switching the binding affects every subsequent call on the same
// AutoLogger, from any goroutine.
type AutoLogger struct {
	mu       sync.RWMutex
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure AutoLogger satisfies the Client interface at compile time.
var _ Client = (*AutoLogger)(nil)

var (
	automatic     *AutoLogger
	automaticOnce sync.Once
)

// Automatic returns the process-wide AutoLogger. It is created on first use
// against the waPC host call, the default codec, and actor.DefaultBinding.
func Automatic() *AutoLogger {
	automaticOnce.Do(func() {
		automatic = NewAutoLogger(Config{})
	})
	return automatic
}

// NewAutoLogger creates an AutoLogger independent of the process-wide one.
// The initial binding is taken from cfg.SDKConfig.
func NewAutoLogger(cfg Config) *AutoLogger {
	c := cfg.resolve()
	return &AutoLogger{
		binding:  cfg.SDKConfig.BindingOrDefault(),
		codec:    c.Codec,
		hostCall: c.HostCall,
	}
}

// UseBinding selects the binding used by subsequent log calls. An empty
// name selects actor.DefaultBinding.
func (l *AutoLogger) UseBinding(name string) {
	if name == "" {
		name = actor.DefaultBinding
	}
	l.mu.Lock()
	l.binding = name
	l.mu.Unlock()
}

// ResetBinding selects actor.DefaultBinding.
func (l *AutoLogger) ResetBinding() {
	l.UseBinding(actor.DefaultBinding)
}

// Binding returns the currently selected binding.
func (l *AutoLogger) Binding() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.binding
}

// Log writes body at level using the current binding.
func (l *AutoLogger) Log(level Level, body string) error {
	return write(l.hostCall, l.codec, l.Binding(), level, body)
}

func (l *AutoLogger) Error(body string) error { return l.Log(LevelError, body) }
func (l *AutoLogger) Warn(body string) error  { return l.Log(LevelWarn, body) }
func (l *AutoLogger) Info(body string) error  { return l.Log(LevelInfo, body) }
func (l *AutoLogger) Debug(body string) error { return l.Log(LevelDebug, body) }
func (l *AutoLogger) Trace(body string) error { return l.Log(LevelTrace, body) }
