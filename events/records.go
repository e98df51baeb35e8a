package events

import proto "github.com/wascc/actor-sdk-go/proto/events"

// Event is one entry on a stream. EventID is assigned by the provider.
type Event struct {
	EventID string
	Stream  string
	Values  map[string]string
}

// TimeRange bounds a stream query. The unit of MinTime and MaxTime is
// defined by the provider.
type TimeRange struct {
	MinTime uint64
	MaxTime uint64
}

func eventsFromProto(list []*proto.Event) []Event {
	if len(list) == 0 {
		return nil
	}
	events := make([]Event, 0, len(list))
	for _, e := range list {
		events = append(events, Event{EventID: e.GetEventId(), Stream: e.GetStream(), Values: e.GetValues()})
	}
	return events
}
