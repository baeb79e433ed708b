// Service to share the transceiver over TCP.
//
// Every connected client receives each decoded frame as a line:
//
//	<raw hex> <source> name=value ...
//
// and may send hex frames, one per line, to be transmitted.
package listener

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net"
	"strings"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/services"
	"github.com/barnybug/rfxcmd/util"
	"github.com/pkg/errors"
)

// already carried by the source
var skipped = map[string]bool{
	"packettype": true,
	"subtype":    true,
	"seqnbr":     true,
	"id":         true,
}

// FormatLine renders a decoded frame event for clients.
func FormatLine(ev *pubsub.Event) string {
	r := ev.Report
	if r == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.Raw + " " + r.Source())
	extras := r.Extras.Map()
	for _, k := range util.SortedKeys(extras) {
		if !skipped[k] {
			fmt.Fprintf(&sb, " %s=%v", k, extras[k])
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func readCommands(conn io.Reader) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := hex.DecodeString(line); err != nil {
			log.Printf("Ignored: '%s'\n", line)
			continue
		}
		services.SendCommand(strings.ToUpper(line))
	}
}

func handleConn(conn io.ReadWriteCloser) {
	ch := services.Subscriber.Subscribe(pubsub.Reports())
	done := make(chan struct{})
	go func() {
		readCommands(conn)
		services.Subscriber.Close(ch)
		close(done)
	}()

	failed := false
	for ev := range ch {
		if failed {
			continue
		}
		if _, err := io.WriteString(conn, FormatLine(ev)); err != nil {
			failed = true
			conn.Close()
		}
	}
	<-done
	conn.Close()
}

// Service listener
type Service struct {
	ln net.Listener
}

func (self *Service) ID() string {
	return "listener"
}

func (self *Service) Init() error {
	addr := services.Config.Listener.Addr
	if addr == "" {
		addr = ":55000"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "listener")
	}
	self.ln = ln
	return nil
}

func (self *Service) Run() error {
	log.Println("Listening on", self.ln.Addr())
	for {
		conn, err := self.ln.Accept()
		if err != nil {
			return err
		}
		log.Println("Client connected:", conn.RemoteAddr())
		go func() {
			handleConn(conn)
			log.Println("Client disconnected:", conn.RemoteAddr())
		}()
	}
}
