// Service to record sensor readings in round robin databases.
//
// One database per sensor is created with rrdtool on first sight, named
// <path>/<packet type>_<id>.rrd, with a data source per numeric reading.
// RFXSensor subtypes report different readings under one id, so their
// databases are named <packet type>_<id>_<subtype>.rrd.
package rrd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/barnybug/rfxcmd/lib/runner"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

var run = runner.Run

// header values, not readings
var ignoredExtras = map[rfx.Extra]bool{
	rfx.ExtraPacketType: true,
	rfx.ExtraSubtype:    true,
	rfx.ExtraSeqnbr:     true,
	rfx.ExtraID:         true,
	rfx.ExtraUnitCode:   true,
}

// link quality, recorded only alongside a reading
var statusExtras = map[string]bool{
	rfx.ExtraBattery.String():     true,
	rfx.ExtraSignalLevel.String(): true,
}

// Sample is one update of a sensor's database.
type Sample struct {
	Names  []string
	Values []string
}

// SampleOf returns the numeric readings of a report in a stable order.
func SampleOf(r *rfx.Report) Sample {
	var s Sample
	for _, e := range r.Extras.Keys() {
		if ignoredExtras[e] {
			continue
		}
		if _, ok := r.Extras.Float(e); !ok {
			continue
		}
		s.Names = append(s.Names, e.String())
		s.Values = append(s.Values, r.Extras[e].String())
	}
	return s
}

// HasReading is true if s holds more than battery and signal level.
func (s Sample) HasReading() bool {
	for _, name := range s.Names {
		if !statusExtras[name] {
			return true
		}
	}
	return false
}

// Filename of the database for a report.
func Filename(dir string, r *rfx.Report) string {
	id := r.ID()
	if id == "" {
		id = "0"
	}
	name := fmt.Sprintf("%02X_%s", r.Header.PacketType, id)
	if r.Family == rfx.FamilyRFXSensor {
		name += fmt.Sprintf("_%02X", r.Header.Subtype)
	}
	return path.Join(dir, name+".rrd")
}

// CreateArgs are the rrdtool arguments creating a database for s.
func CreateArgs(file string, step int, s Sample) []string {
	args := []string{"create", file, "--step", fmt.Sprint(step)}
	for _, name := range s.Names {
		args = append(args, fmt.Sprintf("DS:%s:GAUGE:%d:U:U", name, step*2))
	}
	// 1 week of samples, then a year of hourly and daily averages
	args = append(args,
		fmt.Sprintf("RRA:AVERAGE:0.5:1:%d", 7*86400/step),
		fmt.Sprintf("RRA:AVERAGE:0.5:%d:%d", 3600/step, 24*366),
		fmt.Sprintf("RRA:MIN:0.5:%d:%d", 86400/step, 366),
		fmt.Sprintf("RRA:MAX:0.5:%d:%d", 86400/step, 366),
	)
	return args
}

// UpdateArgs are the rrdtool arguments recording s now.
func UpdateArgs(file string, s Sample) []string {
	return []string{"update", file,
		"--template", strings.Join(s.Names, ":"),
		"N:" + strings.Join(s.Values, ":")}
}

// Service rrd
type Service struct {
	known map[string]bool
}

func (self *Service) ID() string {
	return "rrd"
}

func (self *Service) Init() error {
	conf := services.Config.Rrd
	if conf.Path == "" {
		return errors.New("rrd path not configured")
	}
	if conf.Step <= 0 || 3600%conf.Step != 0 {
		return fmt.Errorf("rrd step %d must divide an hour", conf.Step)
	}
	self.known = map[string]bool{}
	return os.MkdirAll(conf.Path, 0755)
}

func (self *Service) rrdtool(args []string) error {
	conf := services.Config
	out, err := run(context.Background(), conf.Runner.Timeout.Duration, conf.Rrd.Rrdtool, args...)
	if err != nil {
		return errors.Wrapf(err, "rrdtool %s: %s", args[0], strings.TrimSpace(string(out)))
	}
	return nil
}

func (self *Service) record(r *rfx.Report) error {
	// thermostats and sensors; switches and remotes carry no readings
	if r.Family < rfx.FamilyThermostat1 {
		return nil
	}
	s := SampleOf(r)
	if !s.HasReading() {
		return nil
	}
	conf := services.Config.Rrd
	file := Filename(conf.Path, r)
	if !self.known[file] {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			log.Println("Creating", file)
			if err := self.rrdtool(CreateArgs(file, conf.Step, s)); err != nil {
				return err
			}
		}
		self.known[file] = true
	}
	return self.rrdtool(UpdateArgs(file, s))
}

func (self *Service) Run() error {
	for ev := range services.Subscriber.Subscribe(pubsub.Reports()) {
		if ev.Report == nil {
			continue
		}
		if err := self.record(ev.Report); err != nil {
			log.Println("rrd:", err)
		}
	}
	return nil
}
