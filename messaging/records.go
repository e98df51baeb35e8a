package messaging

import proto "github.com/wascc/actor-sdk-go/proto/messaging"

// BrokerMessage is a message delivered to the actor by the broker.
type BrokerMessage struct {
	Subject string
	ReplyTo string
	Body    []byte
}

func brokerMessageFromProto(m *proto.BrokerMessage) BrokerMessage {
	return BrokerMessage{Subject: m.GetSubject(), ReplyTo: m.GetReplyTo(), Body: m.GetBody()}
}
