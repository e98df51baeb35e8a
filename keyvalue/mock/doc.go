/*
Package mock provides an in-memory implementation of the keyvalue.Client
interface.

It can be pre-seeded with values, configured to fail per operation and key,
and it records calls for assertions in tests:

	m := mock.New(mock.Config{Seed: map[string]string{"a": "1"}})
	m.On(mock.OpGet, "missing").ReturnError(errBoom)

	v, ok, err := m.Get("a") // "1", true, nil
*/
package mock
