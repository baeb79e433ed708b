// Service to broadcast sensor readings as xPL sensor.basic messages.
//
// Each numeric reading of a decoded frame is sent as an xpl-trig message, and
// an hbeat.app heartbeat is sent periodically so xPL hubs know the source.
package xpl

import (
	"fmt"
	"io"
	"log"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

var re_parts = regexp.MustCompile(`(?s)([A-Za-z.-]+)\n{\n(.+?)\n}\n`)

func PairKeyValues(s string) map[string]string {
	ret := make(map[string]string)
	for _, pair := range strings.Split(s, "\n") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			ret[kv[0]] = kv[1]
		}
	}
	return ret
}

// Parse an XPL message.
func Parse(body string) map[string]map[string]string {
	parts := make(map[string]map[string]string)
	for _, m := range re_parts.FindAllStringSubmatch(body, -1) {
		parts[m[1]] = PairKeyValues(m[2])
	}
	return parts
}

// Source of an XPL message, from whichever header block it carries.
func Source(body string) string {
	res := Parse(body)
	for _, header := range []string{"xpl-trig", "xpl-stat", "xpl-cmnd"} {
		if h, ok := res[header]; ok {
			return h["source"]
		}
	}
	return ""
}

func message(header, source, schema string, body [][2]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n{\nhop=1\nsource=%s\ntarget=*\n}\n%s\n{\n", header, source, schema)
	for _, kv := range body {
		fmt.Fprintf(&sb, "%s=%s\n", kv[0], kv[1])
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Heartbeat message announcing source every interval.
func Heartbeat(source string, interval time.Duration, port string) string {
	minutes := int(interval.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return message("xpl-stat", source, "hbeat.app", [][2]string{
		{"interval", fmt.Sprint(minutes)},
		{"port", port},
	})
}

// header values, not readings
var ignoredExtras = map[rfx.Extra]bool{
	rfx.ExtraPacketType: true,
	rfx.ExtraSubtype:    true,
	rfx.ExtraSeqnbr:     true,
	rfx.ExtraID:         true,
	rfx.ExtraUnitCode:   true,
}

// SensorMessages builds one sensor.basic message per numeric reading.
func SensorMessages(source string, r *rfx.Report) []string {
	var msgs []string
	for _, e := range r.Extras.Keys() {
		if ignoredExtras[e] {
			continue
		}
		if _, ok := r.Extras.Float(e); !ok {
			continue
		}
		msgs = append(msgs, message("xpl-trig", source, "sensor.basic", [][2]string{
			{"device", r.Source()},
			{"type", e.String()},
			{"current", r.Extras[e].String()},
		}))
	}
	return msgs
}

var dial = func(addr string) (io.WriteCloser, error) {
	return net.Dial("udp", addr)
}

// Service xpl
type Service struct {
	conn io.WriteCloser
}

func (self *Service) ID() string {
	return "xpl"
}

func (self *Service) send(msg string) {
	if _, err := io.WriteString(self.conn, msg); err != nil {
		log.Println("xpl send failed:", err)
	}
}

// Log messages from other xPL sources; our own broadcasts come back too.
func (self *Service) listen(port string) {
	addr, err := net.ResolveUDPAddr("udp", ":"+port)
	if err != nil {
		log.Println("xpl listen:", err)
		return
	}
	sock, err := net.ListenUDP("udp", addr)
	if err != nil {
		log.Println("xpl listen:", err)
		return
	}
	defer sock.Close()
	var buf [1500]byte
	for {
		n, _, err := sock.ReadFromUDP(buf[:])
		if err != nil {
			log.Println("xpl read:", err)
			return
		}
		data := string(buf[:n])
		if src := Source(data); src != "" && src != services.Config.Xpl.Source {
			log.Printf("xpl received from %s\n", src)
		}
	}
}

func (self *Service) Init() error {
	conn, err := dial(services.Config.Xpl.Addr)
	if err != nil {
		return errors.Wrap(err, "xpl")
	}
	self.conn = conn
	return nil
}

func (self *Service) Run() error {
	conf := services.Config.Xpl
	_, port, err := net.SplitHostPort(conf.Addr)
	if err != nil {
		return errors.Wrap(err, "xpl address")
	}
	go self.listen(port)

	heartbeat := time.NewTicker(conf.Heartbeat.Duration)
	defer heartbeat.Stop()
	self.send(Heartbeat(conf.Source, conf.Heartbeat.Duration, port))

	ch := services.Subscriber.Subscribe(pubsub.Reports())
	for {
		select {
		case <-heartbeat.C:
			self.send(Heartbeat(conf.Source, conf.Heartbeat.Duration, port))
		case ev, ok := <-ch:
			if !ok {
				return self.conn.Close()
			}
			if ev.Report == nil {
				continue
			}
			for _, msg := range SensorMessages(conf.Source, ev.Report) {
				self.send(msg)
			}
		}
	}
}
