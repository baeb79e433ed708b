// Service for logging decoded frames to log files on disk.
//
// They are logged to a file named 'data.log' under a directory named by the
// packet type.
package datalogger

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

func ensureDirectory(p string) error {
	if err := os.MkdirAll(p, 0755); err != nil {
		return errors.Wrap(err, "creating log directory")
	}
	return nil
}

func writeToLogFile(logDir string, ev *pubsub.Event) error {
	p := path.Join(logDir, fmt.Sprint(ev.Fields["packettype"]))
	if err := ensureDirectory(p); err != nil {
		return err
	}
	p = path.Join(p, "data.log")
	// reopen the log file each time, so that log rotation can happen in the
	// background.
	fio, err := os.OpenFile(p, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0660)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	defer fio.Close()

	_, err = fio.Write(append(ev.Bytes(), '\n'))
	return err
}

// Service datalogger
type Service struct{}

// ID of the service
func (self *Service) ID() string {
	return "datalogger"
}

func (self *Service) Init() error {
	if services.Config.Datalogger.Path == "" {
		return errors.New("datalogger path not configured")
	}
	return ensureDirectory(services.Config.Datalogger.Path)
}

func (self *Service) Run() error {
	ch := services.Subscriber.Subscribe(pubsub.Reports())
	for ev := range ch {
		if err := writeToLogFile(services.Config.Datalogger.Path, ev); err != nil {
			log.Println("Couldn't write file:", err)
		}
	}
	return nil
}
