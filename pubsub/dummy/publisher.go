package dummy

import "github.com/barnybug/rfxcmd/pubsub"

// Publisher records emitted events for testing.
type Publisher struct {
	Events []*pubsub.Event
}

func (pub *Publisher) ID() string {
	return "dummy"
}

func (pub *Publisher) Emit(ev *pubsub.Event) {
	pub.Events = append(pub.Events, ev)
}

// Topics of the emitted events, in order.
func (pub *Publisher) Topics() []string {
	var topics []string
	for _, ev := range pub.Events {
		topics = append(topics, ev.Topic)
	}
	return topics
}
