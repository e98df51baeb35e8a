/*
Package extras provides a client for the waSCC extras capability
(wascc:extras), a provider built into the host that hands out random
numbers, GUIDs, and sequence numbers.

Actors have no entropy source or clock of their own, so anything that needs
uniqueness should ask the host:

	x, _ := extras.New(extras.Config{})
	id, err := x.GUID()
*/
package extras
