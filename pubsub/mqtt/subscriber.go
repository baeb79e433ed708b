package mqtt

import (
	"log"
	"strings"
	"sync"

	"github.com/barnybug/rfxcmd/pubsub"
	MQTT "github.com/eclipse/paho.mqtt.golang"
)

type eventChannel struct {
	C      chan *pubsub.Event
	topics []pubsub.Topic
}

// Subscriber receives events published under the rfxcmd/ prefix.
type Subscriber struct {
	broker         *Broker
	channels       []eventChannel
	channelsLock   sync.Mutex
	topicCount     map[string]int
	topicCountLock sync.RWMutex
}

func NewSubscriber(broker *Broker) *Subscriber {
	return &Subscriber{broker: broker, topicCount: map[string]int{}}
}

func (sub *Subscriber) ID() string {
	return sub.broker.ID()
}

func (sub *Subscriber) publishHandler(client MQTT.Client, msg MQTT.Message) {
	topic := strings.TrimPrefix(msg.Topic(), Prefix)
	event := pubsub.Parse(string(msg.Payload()), topic)
	if event == nil {
		return
	}
	sub.channelsLock.Lock()
	for _, ch := range sub.channels {
		if pubsub.Matches(ch.topics, topic) {
			ch.C <- event
		}
	}
	sub.channelsLock.Unlock()
}

// (re)subscribe when (re)connected
func (sub *Subscriber) connectHandler(client MQTT.Client) {
	subs := map[string]byte{}
	sub.topicCountLock.RLock()
	for topic := range sub.topicCount {
		subs[topic] = 1
	}
	sub.topicCountLock.RUnlock()

	if len(subs) > 0 {
		log.Println("Connected, subscribing:", subs)
		// nil = all messages go to the default handler
		if token := client.SubscribeMultiple(subs, nil); token.Wait() && token.Error() != nil {
			log.Println("Error subscribing:", token.Error())
		}
	}
}

func topicToMqtt(topic pubsub.Topic) string {
	switch topic := topic.(type) {
	case *pubsub.AllTopic:
		return Prefix + "#"
	case *pubsub.ExactTopic:
		return Prefix + topic.Exact
	case *pubsub.PrefixTopic:
		return Prefix + topic.Prefix + "/#"
	default:
		log.Panicln("Topic type unsupported")
	}
	return ""
}

func (sub *Subscriber) Subscribe(topics ...pubsub.Topic) <-chan *pubsub.Event {
	subs := map[string]byte{}
	sub.topicCountLock.Lock()
	for _, topic := range topics {
		t := topicToMqtt(topic)
		if sub.topicCount[t] == 0 {
			subs[t] = 1
		}
		sub.topicCount[t]++
	}
	sub.topicCountLock.Unlock()

	ch := eventChannel{
		C:      make(chan *pubsub.Event, 16),
		topics: topics,
	}
	sub.channelsLock.Lock()
	sub.channels = append(sub.channels, ch)
	sub.channelsLock.Unlock()

	if len(subs) > 0 {
		if token := sub.broker.client.SubscribeMultiple(subs, nil); token.Wait() && token.Error() != nil {
			log.Println("Error subscribing:", token.Error())
		}
	}
	return ch.C
}

func (sub *Subscriber) Close(channel <-chan *pubsub.Event) {
	sub.channelsLock.Lock()
	defer sub.channelsLock.Unlock()
	var channels []eventChannel
	for _, ch := range sub.channels {
		if channel != (<-chan *pubsub.Event)(ch.C) {
			channels = append(channels, ch)
			continue
		}
		for _, topic := range ch.topics {
			t := topicToMqtt(topic)
			sub.topicCountLock.Lock()
			sub.topicCount[t]--
			current := sub.topicCount[t]
			if current == 0 {
				delete(sub.topicCount, t)
			}
			sub.topicCountLock.Unlock()
			if current == 0 {
				if token := sub.broker.client.Unsubscribe(t); token.Wait() && token.Error() != nil {
					log.Println("Error unsubscribing:", token.Error())
				}
			}
		}
		close(ch.C)
	}
	sub.channels = channels
}
