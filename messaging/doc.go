/*
Package messaging provides a client for the waSCC message broker capability
(wascc:messaging).

Publish is fire and forget. Request blocks in the host until the broker
returns one reply or its timeout expires; the reply bytes come back exactly
as the host produced them.

Actors subscribed to a subject receive DeliverMessage calls. Register a
handler for OpDeliverMessage with actor.New and decode the payload with
DecodeBrokerMessage:

	actor.New(actor.Config{Handlers: map[string]actor.Handler{
		messaging.OpDeliverMessage: func(p []byte) ([]byte, error) {
			msg, err := messaging.DecodeBrokerMessage(nil, p)
			if err != nil {
				return nil, err
			}
			// handle msg.Subject, msg.Body
			return nil, nil
		},
	}})
*/
package messaging
