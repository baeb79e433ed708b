// Service to communicate with an rfxcom USB transceiver. This can both receive
// and transmit frames.
package rfxtrx

import (
	"encoding/hex"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

// Transceiver is the connection to the device.
type Transceiver interface {
	Read() ([]byte, error)
	Send(frame []byte) error
	Close() error
}

var openDevice = func(path string, baud int, debug bool) (Transceiver, error) {
	dev, err := rfx.Open(path, baud, debug)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Service rfxtrx
type Service struct {
	decoder  *rfx.Decoder
	inflight chan string
}

// Read frames from the rfxtrx until the connection fails.
func (self *Service) readEvents(dev Transceiver) error {
	for {
		frame, err := dev.Read()
		if err == rfx.ErrNoData {
			continue
		}
		if err != nil {
			return err
		}
		if ev := self.handleFrame(frame); ev != nil {
			services.Publisher.Emit(ev)
		}
	}
}

func (self *Service) handleFrame(frame []byte) *pubsub.Event {
	report, err := self.decoder.Decode(frame)
	if err != nil {
		log.Printf("Invalid frame %X: %s\n", frame, err)
		return nil
	}
	if !report.Supported() {
		log.Printf("Unsupported packet type %02X: %s\n", report.Header.PacketType, report.Raw)
		return nil
	}

	switch report.Family {
	case rfx.FamilyInterface:
		typ, _ := report.Field("Transceiver type")
		fw, _ := report.Field("Firmware version")
		protocols := strings.Join(rfx.EnabledProtocols(report), ", ")
		log.Printf("Status: type: %s firmware: %s protocols: %s\n", typ.Value, fw.Value, protocols)
	case rfx.FamilyReceiver:
		var pending string
		select {
		case pending = <-self.inflight:
		default:
		}
		if !rfx.Acknowledged(report) {
			msg, _ := report.Field("Message")
			log.Printf("Transmit failed: %s for %s\n", msg.Value, pending)
		}
	}
	return pubsub.NewReportEvent(report)
}

// Send the configured protocols, then ask for the device status.
func (self *Service) configure(dev Transceiver) {
	protocols, err := services.Config.ProtocolList()
	if err != nil {
		log.Println("Error reading protocols:", err)
	} else if protocols != nil {
		frame, err := rfx.SetModeFrame(protocols)
		if err != nil {
			log.Println("Error in protocols:", err)
		} else {
			log.Println("Setting mode")
			if err := dev.Send(frame); err != nil {
				log.Println("Error sending frame:", err)
			}
		}
	}

	log.Println("Getting status")
	if err := dev.Send(rfx.StatusFrame()); err != nil {
		log.Println("Error sending frame:", err)
	}
}

func (self *Service) transmit(dev Transceiver, ev *pubsub.Event) error {
	frame, err := hex.DecodeString(strings.TrimSpace(ev.Frame()))
	if err != nil || len(frame) == 0 {
		log.Printf("Ignoring invalid command frame %q\n", ev.Frame())
		return nil
	}
	if err := dev.Send(frame); err != nil {
		return err
	}
	select {
	case self.inflight <- ev.Frame():
	default:
	}
	return nil
}

func (self *Service) transmitCommands(dev Transceiver, commands <-chan *pubsub.Event) {
	for ev := range commands {
		if err := self.transmit(dev, ev); err != nil {
			log.Println("Error sending:", err)
			return
		}
	}
}

func defaultDevName() string {
	matches, _ := filepath.Glob("/dev/serial/by-id/usb-RFXCOM_RFXtrx433_*-if00-port0")
	if len(matches) > 0 {
		return matches[0]
	}
	return ""
}

func (self *Service) ID() string {
	return "rfxtrx"
}

func (self *Service) Init() error {
	self.decoder = rfx.NewDecoder(rfx.DefaultRegistry, services.Config.DecoderConfig())
	self.inflight = make(chan string, 10)
	return nil
}

func (self *Service) Run() error {
	devname := services.Config.Serial.Device
	if devname == "" {
		devname = defaultDevName()
	}
	if devname == "" {
		return errors.New("rfxtrx device not found")
	}

	for {
		dev, err := openDevice(devname, services.Config.Serial.Baud, services.Config.Serial.Debug)
		if err != nil {
			return err
		}
		log.Println("Connected")

		// configure 300ms after reset
		time.AfterFunc(300*time.Millisecond, func() { self.configure(dev) })

		commands := services.Subscriber.Subscribe(pubsub.Exact(pubsub.CommandTopic))
		go self.transmitCommands(dev, commands)
		err = self.readEvents(dev)

		log.Println("Disconnected:", err)
		services.Subscriber.Close(commands)
		dev.Close()
		time.Sleep(5 * time.Second)
	}
}
