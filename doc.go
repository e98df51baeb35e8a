/*
Package actor provides the core entry point and runtime configuration for
building waSCC actor modules in Go.

New registers inbound operation handlers with waPC, and RuntimeConfig is
shared by capability clients (keyvalue, messaging, objectstore, and friends)
to pick the binding they address. DefaultBinding is used when a binding is
not explicitly provided.

Every capability client funnels through a single HostCall. Legacy adapts the
older three argument host call, which only reaches the default binding.
*/
package actor
