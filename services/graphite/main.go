// Service to write sensor readings to graphite.
package graphite

import (
	"fmt"
	"log"

	"github.com/barnybug/rfxcmd/lib/graphite"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
)

var (
	gr graphite.IGraphite
)

// header values, not readings
var ignoredExtras = map[rfx.Extra]bool{
	rfx.ExtraPacketType: true,
	rfx.ExtraSubtype:    true,
	rfx.ExtraSeqnbr:     true,
	rfx.ExtraID:         true,
	rfx.ExtraUnitCode:   true,
}

func metricPath(prefix string, r *rfx.Report, e rfx.Extra) string {
	id := r.ID()
	if id == "" {
		id = "0"
	}
	return fmt.Sprintf("%s.%02X.%s.%s", prefix, r.Header.PacketType,
		graphite.Sanitize(id), e)
}

func sendToGraphite(ev *pubsub.Event) {
	r := ev.Report
	if r == nil {
		return
	}

	timestamp := ev.Timestamp.Unix()
	added := 0
	for _, e := range r.Extras.Keys() {
		if ignoredExtras[e] {
			continue
		}
		value, ok := r.Extras.Float(e)
		if !ok {
			// ignore non-numeric values
			continue
		}
		gr.Add(metricPath(services.Config.Graphite.Prefix, r, e), timestamp, value)
		added++
	}
	if added == 0 {
		return
	}

	if err := gr.Flush(); err != nil {
		log.Println("Flush failed:", err)
	}
}

// Service graphite
type Service struct{}

// ID of the service
func (self *Service) ID() string {
	return "graphite"
}

// Run the service
func (self *Service) Run() error {
	gr = graphite.New(services.Config.Graphite.Tcp)
	ch := services.Subscriber.Subscribe(pubsub.Reports())
	for ev := range ch {
		sendToGraphite(ev)
	}
	return nil
}
