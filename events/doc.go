// Package events provides a client for the waSCC event stream capability
// (wascc:eventstreams). Events are flat string maps appended to named
// streams; ordering, retention, and id assignment belong to the provider.
package events
