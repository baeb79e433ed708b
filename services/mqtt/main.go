// Service to bridge events to an MQTT broker.
//
// Decoded frames and heartbeats are republished under rfxcmd/, and command
// events published to rfxcmd/command on the broker are passed to the
// transceiver.
package mqtt

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/pubsub/mqtt"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

// Service mqtt
type Service struct {
	Processed uint64
}

func (self *Service) ID() string {
	return "mqtt"
}

// relay copies events from ch onto pub until ch is closed.
func (self *Service) relay(ch <-chan *pubsub.Event, pub pubsub.Publisher) {
	for ev := range ch {
		pub.Emit(ev)
		atomic.AddUint64(&self.Processed, 1)
	}
}

// Route outbound events to the broker and inbound commands to the hub. Only
// commands come back in, so the broker never sees its own events relayed.
func (self *Service) route(local pubsub.Subscriber, remote pubsub.Subscriber, out pubsub.Publisher) {
	log.Printf("Relaying %s -> %s\n", local.ID(), out.ID())
	log.Printf("Relaying %s -> %s\n", remote.ID(), services.Publisher.ID())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		self.relay(local.Subscribe(pubsub.Reports(), pubsub.Exact("heartbeat")), out)
		wg.Done()
	}()
	go func() {
		self.relay(remote.Subscribe(pubsub.Exact(pubsub.CommandTopic)), services.Publisher)
		wg.Done()
	}()
	wg.Wait()
}

func (self *Service) Run() error {
	url := services.Config.Mqtt.Broker
	if url == "" {
		return errors.New("mqtt broker not configured")
	}
	broker, err := mqtt.NewBroker(url)
	if err != nil {
		return err
	}
	defer broker.Disconnect()

	self.route(services.Subscriber, broker.Subscriber(), broker.Publisher())
	return nil
}
