package actor

import (
	"errors"
	"fmt"
	"sort"

	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultBinding is used when no explicit binding is provided.
const DefaultBinding = "default"

// OpHealthRequest is the inbound operation the host uses to probe actor health.
const OpHealthRequest = "HealthRequest"

var (
	// ErrHandlerNil is returned when a registered operation handler is nil.
	ErrHandlerNil = errors.New("operation handler cannot be nil")

	// ErrNoHandlers is returned when no operation handlers are provided.
	ErrNoHandlers = errors.New("at least one operation handler is required")
)

// Handler processes an inbound operation payload delivered by the host.
type Handler func(payload []byte) ([]byte, error)

// Config provides configuration options for actor initialization.
type Config struct {
	// Binding controls the binding name capability clients use for host calls.
	// If empty, DefaultBinding is used.
	Binding string

	// Handlers maps inbound operation names to their handlers.
	Handlers map[string]Handler

	// HealthCheck answers HealthRequest when no handler is registered for it.
	// A nil HealthCheck always reports healthy.
	HealthCheck func() error
}

// RuntimeConfig carries configuration that is used during creation of capability clients.
type RuntimeConfig struct {
	// Binding is the named capability instance addressed by host calls.
	Binding string
}

// BindingOrDefault returns the configured binding, falling back to DefaultBinding.
func (r RuntimeConfig) BindingOrDefault() string {
	if r.Binding == "" {
		return DefaultBinding
	}
	return r.Binding
}

// Actor represents the initialized runtime with its waPC handlers registered.
type Actor struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig

	// operations lists the registered inbound operation names.
	operations []string
}

// New validates the handlers and registers them with waPC.
func New(config Config) (*Actor, error) {
	if len(config.Handlers) == 0 {
		return nil, ErrNoHandlers
	}

	fns := make(wapc.Functions, len(config.Handlers)+1)
	for op, h := range config.Handlers {
		if h == nil {
			return nil, fmt.Errorf("%w: %s", ErrHandlerNil, op)
		}
		fns[op] = wapc.Function(h)
	}

	// Answer health probes unless the actor handles them itself
	if _, ok := fns[OpHealthRequest]; !ok {
		fns[OpHealthRequest] = healthHandler(config.HealthCheck)
	}

	a := &Actor{
		runtime:    RuntimeConfig{Binding: config.Binding},
		operations: make([]string, 0, len(fns)),
	}
	a.runtime.Binding = a.runtime.BindingOrDefault()

	for op := range fns {
		a.operations = append(a.operations, op)
	}
	sort.Strings(a.operations)

	wapc.RegisterFunctions(fns)

	return a, nil
}

// Config returns the current runtime configuration snapshot.
func (a *Actor) Config() RuntimeConfig { return a.runtime }

// Operations returns the sorted inbound operation names registered with the host.
func (a *Actor) Operations() []string {
	return append([]string(nil), a.operations...)
}

func healthHandler(check func() error) wapc.Function {
	return func([]byte) ([]byte, error) {
		if check == nil {
			return []byte{}, nil
		}
		if err := check(); err != nil {
			return nil, err
		}
		return []byte{}, nil
	}
}

// Println writes an unstructured line to the host console, outside any
// logging capability binding.
func Println(msg string) {
	wapc.ConsoleLog(msg)
}
