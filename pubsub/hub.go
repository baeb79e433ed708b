package pubsub

import (
	"log"
	"sync"
)

type eventChannel struct {
	C      chan *Event
	topics []Topic
}

// Hub fans events out to in-process subscribers. It is both the Publisher
// and the Subscriber services are handed.
type Hub struct {
	id           string
	channels     []eventChannel
	channelsLock sync.Mutex
}

func NewHub(id string) *Hub {
	return &Hub{id: id}
}

func (h *Hub) ID() string {
	return h.id
}

// Emit delivers ev to every matching subscription. A subscriber whose buffer
// is full misses the event.
func (h *Hub) Emit(ev *Event) {
	h.channelsLock.Lock()
	defer h.channelsLock.Unlock()
	for _, ch := range h.channels {
		if !Matches(ch.topics, ev.Topic) {
			continue
		}
		select {
		case ch.C <- ev:
		default:
			log.Printf("Subscriber of %v is full, dropping %s", ch.topics, ev.Topic)
		}
	}
}

func (h *Hub) Subscribe(topics ...Topic) <-chan *Event {
	ch := eventChannel{
		C:      make(chan *Event, 64),
		topics: topics,
	}
	h.channelsLock.Lock()
	h.channels = append(h.channels, ch)
	h.channelsLock.Unlock()
	return ch.C
}

func (h *Hub) Close(channel <-chan *Event) {
	h.channelsLock.Lock()
	defer h.channelsLock.Unlock()
	var channels []eventChannel
	for _, ch := range h.channels {
		if channel == (<-chan *Event)(ch.C) {
			close(ch.C)
		} else {
			channels = append(channels, ch)
		}
	}
	h.channels = channels
}
