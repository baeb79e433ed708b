// Service to run shell commands when matching frames are received.
//
// Each trigger has a regular expression matched against the raw frame hex
// and an action run with sh -c. In the action $raw$, $source$ and
// $<name>$ for any decoded value are replaced with values from the frame.
package trigger

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/lib/runner"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

var shell = runner.Shell

type trigger struct {
	re      *regexp.Regexp
	action  string
	timeout time.Duration
}

func compile(confs []config.TriggerConf) ([]trigger, error) {
	var triggers []trigger
	for i, conf := range confs {
		re, err := regexp.Compile(conf.Match)
		if err != nil {
			return nil, errors.Wrapf(err, "trigger %d", i)
		}
		if conf.Action == "" {
			return nil, fmt.Errorf("trigger %d: no action", i)
		}
		triggers = append(triggers, trigger{re, conf.Action, conf.Timeout.Duration})
	}
	return triggers, nil
}

// Expand the $name$ placeholders in action.
func Expand(action string, r *rfx.Report) string {
	pairs := []string{"$raw$", r.Raw, "$source$", r.Source()}
	for name, v := range r.Extras.Map() {
		pairs = append(pairs, "$"+name+"$", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(action)
}

// Service trigger
type Service struct {
	triggers []trigger
}

func (self *Service) ID() string {
	return "trigger"
}

func (self *Service) Init() error {
	triggers, err := compile(services.Config.Triggers)
	if err != nil {
		return err
	}
	self.triggers = triggers
	return nil
}

func (self *Service) fire(r *rfx.Report) {
	for _, t := range self.triggers {
		if !t.re.MatchString(r.Raw) {
			continue
		}
		cmd := Expand(t.action, r)
		log.Println("Trigger:", cmd)
		out, err := shell(context.Background(), t.timeout, cmd)
		if errors.Cause(err) == runner.ErrTimeout {
			log.Printf("Trigger timed out after %s: %s\n", t.timeout, cmd)
		} else if err != nil {
			log.Printf("Trigger failed: %s: %s\n", err, strings.TrimSpace(string(out)))
		}
	}
}

func (self *Service) Run() error {
	for ev := range services.Subscriber.Subscribe(pubsub.Reports()) {
		if ev.Report != nil {
			self.fire(ev.Report)
		}
	}
	return nil
}
