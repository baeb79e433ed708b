package mqtt

import (
	"fmt"
	"math/rand"
	"os"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// Prefix of every topic published to the broker.
const Prefix = "rfxcmd/"

type Broker struct {
	broker string
	client MQTT.Client
	sub    *Subscriber
}

func clientID() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("rfxcmd/%s-%d-%d", hostname, os.Getpid(), rand.Int())
}

// NewBroker connects to the broker at url, eg. tcp://localhost:1883.
func NewBroker(url string) (*Broker, error) {
	b := &Broker{broker: url}
	b.sub = NewSubscriber(b)

	opts := MQTT.NewClientOptions()
	opts.AddBroker(url)
	opts.SetClientID(clientID())
	opts.SetCleanSession(true)
	opts.SetDefaultPublishHandler(b.sub.publishHandler)
	opts.SetOnConnectHandler(b.sub.connectHandler)

	b.client = MQTT.NewClient(opts)
	if token := b.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.Wrapf(token.Error(), "connecting to %s", url)
	}
	return b, nil
}

func (b *Broker) ID() string {
	return "mqtt: " + b.broker
}

func (b *Broker) Publisher() *Publisher {
	return &Publisher{broker: b.broker, client: b.client}
}

func (b *Broker) Subscriber() *Subscriber {
	return b.sub
}

func (b *Broker) Disconnect() {
	b.client.Disconnect(250)
}
