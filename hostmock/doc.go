/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed primarily for SDK development and advanced tests where you want
to validate exactly what a capability client is sending to the waSCC host
without needing a real host running.

Two doubles are offered:

  - Mock checks a single expected route (binding, capability, operation),
    optionally validates the payload, and returns scripted bytes or a failure.
  - Host routes calls by capability and operation to handler functions and
    records every call, which is handy for stateful fakes.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedBinding:    "default",
	  ExpectedCapability: "wascc:keyvalue",
	  ExpectedOperation:  "Get",
	  PayloadValidator: func(p []byte) error {
	    // Decode and assert fields here
	    return nil
	  },
	  Response: func() []byte { return encodedGetResponse },
	})

	client, _ := keyvalue.New(keyvalue.Config{HostCall: m.HostCall})

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces the expectations that are set and runs
    PayloadValidator when provided. Response (when set) provides the return
    bytes; otherwise it returns nil.
  - Leave an expectation blank when you want a wildcard.
*/
package hostmock
