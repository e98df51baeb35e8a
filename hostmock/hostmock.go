package hostmock

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnexpectedBinding is returned when the binding is not as expected.
	ErrUnexpectedBinding = errors.New("unexpected binding")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedOperation is returned when the operation is not as expected.
	ErrUnexpectedOperation = errors.New("unexpected operation")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")

	// ErrNoRoute is returned by Host when no handler matches a call.
	ErrNoRoute = errors.New("no handler registered for route")
)

// Mock simulates a host call interface with validation and configurable responses.
type Mock struct {
	// ExpectedBinding defines the binding expected in the host call.
	ExpectedBinding string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedOperation defines the operation name expected in the host call.
	ExpectedOperation string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool

	mu    sync.Mutex
	calls int
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedBinding defines the binding expected in the host call.
	ExpectedBinding string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedOperation defines the operation name expected in the host call.
	ExpectedOperation string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		ExpectedBinding:    config.ExpectedBinding,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedOperation:  config.ExpectedOperation,
		Error:              config.Error,
		Fail:               config.Fail,
		PayloadValidator:   config.PayloadValidator,
		Response:           config.Response,
	}, nil
}

// HostCall simulates a host call, validating inputs and returning a response or error.
func (m *Mock) HostCall(binding, capability, operation string, payload []byte) ([]byte, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	// Return user-defined error if Fail is set
	if m.Fail && m.Error != nil {
		return nil, m.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.Fail {
		return nil, ErrOperationFailed
	}

	// Validate binding
	if m.ExpectedBinding != "" && m.ExpectedBinding != binding {
		return nil, fmt.Errorf("%w: expected binding %s, got %s", ErrUnexpectedBinding, m.ExpectedBinding, binding)
	}

	// Validate capability
	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.ExpectedCapability,
			capability,
		)
	}

	// Validate operation
	if m.ExpectedOperation != "" && m.ExpectedOperation != operation {
		return nil, fmt.Errorf(
			"%w: expected operation %s, got %s",
			ErrUnexpectedOperation,
			m.ExpectedOperation,
			operation,
		)
	}

	// Validate payload using user-defined validator, if provided
	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	// Return user-defined response if provided
	if m.Response != nil {
		return m.Response(), nil
	}

	// Default to no response
	return nil, nil
}

// HandlerFunc answers one routed host call.
type HandlerFunc func(binding string, payload []byte) ([]byte, error)

// Call records a host call observed by Host.
type Call struct {
	Binding    string
	Capability string
	Operation  string
	Payload    []byte
}

// Calls returns the number of host calls that reached the mock. It is safe to
// call while other goroutines are using HostCall.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Host is a pretend host that routes calls by capability and operation,
// which makes stateful fakes (a map backed key-value store, say) easy to
// assemble. It is safe for concurrent use.
type Host struct {
	mu     sync.Mutex
	routes map[string]HandlerFunc
	calls  []Call

	// FailWith, when set, is returned for every call before routing.
	FailWith error
}

// NewHost returns an empty Host.
func NewHost() *Host {
	return &Host{routes: make(map[string]HandlerFunc)}
}

// Handle registers fn for capability and operation, replacing any previous handler.
func (h *Host) Handle(capability, operation string, fn HandlerFunc) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes[route(capability, operation)] = fn
	return h
}

// HostCall records the call and dispatches it to the matching handler.
func (h *Host) HostCall(binding, capability, operation string, payload []byte) ([]byte, error) {
	h.mu.Lock()
	h.calls = append(h.calls, Call{
		Binding:    binding,
		Capability: capability,
		Operation:  operation,
		Payload:    append([]byte(nil), payload...),
	})
	fn, ok := h.routes[route(capability, operation)]
	fail := h.FailWith
	h.mu.Unlock()

	if fail != nil {
		return nil, fail
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRoute, capability, operation)
	}
	return fn(binding, payload)
}

// Calls returns a copy of the recorded call history.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// LastCall returns the most recent call, if any.
func (h *Host) LastCall() (Call, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.calls) == 0 {
		return Call{}, false
	}
	return h.calls[len(h.calls)-1], true
}

// Routes returns the registered routes in sorted order.
func (h *Host) Routes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.routes))
	for r := range h.routes {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func route(capability, operation string) string {
	return capability + "!" + operation
}
