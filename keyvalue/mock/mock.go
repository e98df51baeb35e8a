package mock

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/wascc/actor-sdk-go/keyvalue"
)

// Operation names used for per-call configuration and call records.
const (
	OpGet          = keyvalue.OpGet
	OpSet          = keyvalue.OpSet
	OpAdd          = keyvalue.OpAdd
	OpDel          = keyvalue.OpDel
	OpExists       = keyvalue.OpKeyExists
	OpListAdd      = keyvalue.OpPush
	OpListDelItem  = keyvalue.OpListDel
	OpListRange    = keyvalue.OpRange
	OpListClear    = keyvalue.OpClear
	OpSetAdd       = keyvalue.OpSetAdd
	OpSetRemove    = keyvalue.OpSetRemove
	OpSetUnion     = keyvalue.OpSetUnion
	OpSetIntersect = keyvalue.OpSetIntersect
	OpSetMembers   = keyvalue.OpSetQuery
)

// Config configures the mock client.
type Config struct {
	// Seed pre-populates plain string values.
	Seed map[string]string

	// Now supplies the clock used for expiry. Nil uses time.Now.
	Now func() time.Time
}

// Call records an operation performed against the mock.
type Call struct {
	Op    string
	Key   string
	Value string
}

// ResponseBuilder allows fluent configuration of per-key outcomes.
type ResponseBuilder struct {
	m   *Client
	key string
}

// ReturnError makes the configured operation fail with err.
func (b *ResponseBuilder) ReturnError(err error) *Client {
	b.m.mu.Lock()
	defer b.m.mu.Unlock()
	b.m.failures[b.key] = err
	return b.m
}

// Client implements keyvalue.Client in memory. Lists and sets follow the
// semantics of common hosted stores: ListRange accepts negative indices
// counted from the end, and set results are sorted.
type Client struct {
	mu       sync.Mutex
	now      func() time.Time
	values   map[string]string
	expiry   map[string]time.Time
	lists    map[string][]string
	sets     map[string]map[string]struct{}
	failures map[string]error
	calls    []Call
}

// Ensure Client satisfies keyvalue.Client at compile time.
var _ keyvalue.Client = (*Client)(nil)

// New creates a new mock key-value client.
func New(cfg Config) *Client {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	values := make(map[string]string, len(cfg.Seed))
	for k, v := range cfg.Seed {
		values[k] = v
	}

	return &Client{
		now:      now,
		values:   values,
		expiry:   make(map[string]time.Time),
		lists:    make(map[string][]string),
		sets:     make(map[string]map[string]struct{}),
		failures: make(map[string]error),
	}
}

// On configures the outcome of op for key. Use an empty key for SetUnion
// and SetIntersect.
func (m *Client) On(op, key string) *ResponseBuilder {
	return &ResponseBuilder{m: m, key: op + " " + key}
}

// Calls returns a copy of the recorded operations.
func (m *Client) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// record appends a call and returns any configured failure. Callers hold mu.
func (m *Client) record(op, key, value string) error {
	m.calls = append(m.calls, Call{Op: op, Key: key, Value: value})
	return m.failures[op+" "+key]
}

// expire drops key when its expiry has passed. Callers hold mu.
func (m *Client) expire(key string) {
	if at, ok := m.expiry[key]; ok && !m.now().Before(at) {
		delete(m.values, key)
		delete(m.expiry, key)
	}
}

// Get implements keyvalue.Client.
func (m *Client) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpGet, key, ""); err != nil {
		return "", false, err
	}
	m.expire(key)
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements keyvalue.Client.
func (m *Client) Set(key, value string, expires time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSet, key, value); err != nil {
		return err
	}
	m.values[key] = value
	delete(m.expiry, key)
	if expires > 0 {
		m.expiry[key] = m.now().Add(expires)
	}
	return nil
}

// AtomicAdd implements keyvalue.Client. Missing or non-numeric values start at zero.
func (m *Client) AtomicAdd(key string, delta int32) (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpAdd, key, ""); err != nil {
		return 0, err
	}
	m.expire(key)
	n := parseInt32(m.values[key]) + delta
	m.values[key] = formatInt32(n)
	return n, nil
}

// Del implements keyvalue.Client.
func (m *Client) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpDel, key, ""); err != nil {
		return err
	}
	delete(m.values, key)
	delete(m.expiry, key)
	delete(m.lists, key)
	delete(m.sets, key)
	return nil
}

// Exists implements keyvalue.Client.
func (m *Client) Exists(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpExists, key, ""); err != nil {
		return false, err
	}
	m.expire(key)
	_, v := m.values[key]
	_, l := m.lists[key]
	_, s := m.sets[key]
	return v || l || s, nil
}

// ListAdd implements keyvalue.Client.
func (m *Client) ListAdd(key, item string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpListAdd, key, item); err != nil {
		return 0, err
	}
	m.lists[key] = append(m.lists[key], item)
	return len(m.lists[key]), nil
}

// ListDelItem implements keyvalue.Client. Every occurrence of item is removed.
func (m *Client) ListDelItem(key, item string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpListDelItem, key, item); err != nil {
		return 0, err
	}
	kept := m.lists[key][:0]
	for _, v := range m.lists[key] {
		if v != item {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(m.lists, key)
		return 0, nil
	}
	m.lists[key] = kept
	return len(kept), nil
}

// ListRange implements keyvalue.Client.
func (m *Client) ListRange(key string, start, stopInclusive int32) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpListRange, key, ""); err != nil {
		return nil, err
	}
	list := m.lists[key]
	n := int32(len(list))
	if start < 0 {
		start += n
	}
	if stopInclusive < 0 {
		stopInclusive += n
	}
	if start < 0 {
		start = 0
	}
	if stopInclusive >= n {
		stopInclusive = n - 1
	}
	if start > stopInclusive {
		return []string{}, nil
	}
	return append([]string(nil), list[start:stopInclusive+1]...), nil
}

// ListClear implements keyvalue.Client.
func (m *Client) ListClear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpListClear, key, ""); err != nil {
		return err
	}
	delete(m.lists, key)
	return nil
}

// SetAdd implements keyvalue.Client.
func (m *Client) SetAdd(key, member string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSetAdd, key, member); err != nil {
		return 0, err
	}
	s, ok := m.sets[key]
	if !ok {
		s = make(map[string]struct{})
		m.sets[key] = s
	}
	s[member] = struct{}{}
	return len(s), nil
}

// SetRemove implements keyvalue.Client.
func (m *Client) SetRemove(key, member string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSetRemove, key, member); err != nil {
		return 0, err
	}
	s := m.sets[key]
	delete(s, member)
	if len(s) == 0 {
		delete(m.sets, key)
	}
	return len(s), nil
}

// SetUnion implements keyvalue.Client.
func (m *Client) SetUnion(keys ...string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSetUnion, "", ""); err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for _, k := range keys {
		for v := range m.sets[k] {
			out[v] = struct{}{}
		}
	}
	return sortedMembers(out), nil
}

// SetIntersect implements keyvalue.Client.
func (m *Client) SetIntersect(keys ...string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSetIntersect, "", ""); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []string{}, nil
	}
	out := make(map[string]struct{})
	for v := range m.sets[keys[0]] {
		out[v] = struct{}{}
	}
	for _, k := range keys[1:] {
		for v := range out {
			if _, ok := m.sets[k][v]; !ok {
				delete(out, v)
			}
		}
	}
	return sortedMembers(out), nil
}

// SetMembers implements keyvalue.Client.
func (m *Client) SetMembers(key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(OpSetMembers, key, ""); err != nil {
		return nil, err
	}
	return sortedMembers(m.sets[key]), nil
}

func sortedMembers(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func parseInt32(s string) int32 {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

func formatInt32(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}
