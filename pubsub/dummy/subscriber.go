package dummy

import "github.com/barnybug/rfxcmd/pubsub"

// Subscriber replays Events to each subscription for testing.
type Subscriber struct {
	Events []*pubsub.Event
}

func (sub *Subscriber) ID() string {
	return "dummy"
}

func (sub *Subscriber) Subscribe(topics ...pubsub.Topic) <-chan *pubsub.Event {
	ch := make(chan *pubsub.Event)
	go func() {
		for _, ev := range sub.Events {
			if pubsub.Matches(topics, ev.Topic) {
				ch <- ev
			}
		}
		close(ch)
	}()
	return ch
}

// Close the channel
func (sub *Subscriber) Close(<-chan *pubsub.Event) {
}
