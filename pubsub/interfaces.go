package pubsub

// Topic matches event topics.
type Topic interface {
	Match(topic string) bool
}

type Publisher interface {
	ID() string
	Emit(ev *Event)
}

type Subscriber interface {
	ID() string
	Subscribe(topics ...Topic) <-chan *Event
	Close(<-chan *Event)
}
