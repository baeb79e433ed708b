package mqtt

import (
	"log"

	"github.com/barnybug/rfxcmd/pubsub"
	MQTT "github.com/eclipse/paho.mqtt.golang"
)

// Publisher for mqtt
type Publisher struct {
	broker string
	client MQTT.Client
}

// ID of Publisher
func (pub *Publisher) ID() string {
	return "mqtt: " + pub.broker
}

// Emit an event, under the rfxcmd/ prefix.
func (pub *Publisher) Emit(ev *pubsub.Event) {
	token := pub.client.Publish(Prefix+ev.Topic, 1, false, ev.Bytes())
	if token.Wait() && token.Error() != nil {
		log.Println("Error publishing:", token.Error())
	}
}
