package services

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/util"
	"github.com/pkg/errors"
)

// Service interface
type Service interface {
	ID() string
	Run() error
}

// ServiceInit interface
type ServiceInit interface {
	Service
	Init() error
}

type Flags interface {
	Flags()
}

var serviceMap map[string]Service = map[string]Service{}
var enabled []Service
var Config *config.Config

var Publisher pubsub.Publisher
var Subscriber pubsub.Subscriber

func SetupLogging() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(os.Stdout)
}

// Setup the in-process event hub shared by all services.
func Setup(conf *config.Config) {
	Config = conf
	hub := pubsub.NewHub("rfxcmd")
	Publisher = hub
	Subscriber = hub
}

func SetupFlags() {
	for _, service := range enabled {
		// any service specific flags
		if f, ok := service.(Flags); ok {
			f.Flags()
		}
	}
	flag.Parse()
}

func Register(service Service) {
	if _, exists := serviceMap[service.ID()]; exists {
		log.Fatalf("Duplicate service registered: %s", service.ID())
	}
	serviceMap[service.ID()] = service
}

// Names of the registered services, sorted.
func Names() []string {
	var names []string
	for name := range serviceMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Launch initializes the named services then runs them concurrently. It
// returns when the first service stops.
func Launch(ss []string) error {
	enabled = []Service{}
	for _, name := range ss {
		service, ok := serviceMap[name]
		if !ok {
			return fmt.Errorf("service %s does not exist", name)
		}
		enabled = append(enabled, service)
	}
	if len(enabled) == 0 {
		return errors.New("no services to run")
	}

	SetupFlags()

	for _, service := range enabled {
		log.Printf("Starting %s\n", service.ID())
		if service, ok := service.(ServiceInit); ok {
			if err := service.Init(); err != nil {
				return errors.Wrapf(err, "init service %s", service.ID())
			}
			log.Printf("Initialized %s\n", service.ID())
		}
	}

	go Heartbeat(time.Minute)

	done := make(chan error, len(enabled))
	for _, service := range enabled {
		go func(service Service) {
			err := service.Run()
			if err != nil {
				err = errors.Wrapf(err, "running service %s", service.ID())
			} else {
				log.Printf("Service %s stopped\n", service.ID())
			}
			done <- err
		}(service)
	}
	return <-done
}

// Heartbeat emits a heartbeat event every interval.
func Heartbeat(interval time.Duration) {
	started := time.Now()
	fields := pubsub.Fields{
		"pid":     os.Getpid(),
		"started": started.Format(time.RFC3339),
	}
	for {
		time.Sleep(interval)
		uptime := time.Since(started)
		fields["uptime"] = int(uptime.Seconds())
		fields["uptime_text"] = util.FriendlyDuration(uptime)
		ev := pubsub.NewEvent("heartbeat", copyFields(fields))
		Publisher.Emit(ev)
	}
}

func copyFields(fields pubsub.Fields) pubsub.Fields {
	ret := pubsub.Fields{}
	for k, v := range fields {
		ret[k] = v
	}
	return ret
}
