package config

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/util"
	"github.com/pkg/errors"

	"gopkg.in/yaml.v2"
)

type Duration struct {
	Duration time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	val, err := util.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = val
	return nil
}

type SerialConf struct {
	Device string
	Baud   int
	Debug  bool
}

type DecoderConf struct {
	Barometric_Offset int
}

type ListenerConf struct {
	Addr string
}

type XplConf struct {
	// Broadcast address, host:port
	Addr      string
	Source    string
	Heartbeat Duration
}

type WeewxConf struct {
	Addr string
}

type RrdConf struct {
	Path    string
	Step    int
	Rrdtool string
}

type GraphiteConf struct {
	Tcp    string
	Prefix string
}

type MqttConf struct {
	Broker string
}

type ApiConf struct {
	Addr string
}

type DataloggerConf struct {
	Path string
}

type TriggerConf struct {
	Match   string
	Action  string
	Timeout Duration
}

type RunnerConf struct {
	Timeout Duration
}

// Configuration structure
type Config struct {
	// yaml fields
	Serial     SerialConf
	Decoder    DecoderConf
	Protocols  string
	Listener   ListenerConf
	Xpl        XplConf
	Weewx      WeewxConf
	Rrd        RrdConf
	Graphite   GraphiteConf
	Mqtt       MqttConf
	Api        ApiConf
	Datalogger DataloggerConf
	Triggers   []TriggerConf
	Runner     RunnerConf
	Services   []string
}

// Open configuration from disk.
func Open() (*Config, error) {
	p := ConfigPath("rfxcmd.yml")
	file, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(data, c)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	if c.Serial.Baud == 0 {
		c.Serial.Baud = 38400
	}
	if c.Xpl.Addr == "" {
		c.Xpl.Addr = "255.255.255.255:3865"
	}
	if c.Xpl.Source == "" {
		c.Xpl.Source = "rfxcom-lan.rfxcmd"
	}
	if c.Xpl.Heartbeat.Duration == 0 {
		c.Xpl.Heartbeat.Duration = 5 * time.Minute
	}
	if c.Rrd.Step == 0 {
		c.Rrd.Step = 300
	}
	if c.Rrd.Rrdtool == "" {
		c.Rrd.Rrdtool = "rrdtool"
	}
	if c.Graphite.Prefix == "" {
		c.Graphite.Prefix = "rfx"
	}
	if c.Runner.Timeout.Duration == 0 {
		c.Runner.Timeout.Duration = 10 * time.Second
	}
	for i := range c.Triggers {
		if c.Triggers[i].Timeout.Duration == 0 {
			c.Triggers[i].Timeout = c.Runner.Timeout
		}
	}
	c.Protocols = util.ExpandUser(c.Protocols)
	c.Rrd.Path = util.ExpandUser(c.Rrd.Path)
	c.Datalogger.Path = util.ExpandUser(c.Datalogger.Path)

	return c, nil
}

// DecoderConfig is the calibration passed to the frame decoder.
func (c *Config) DecoderConfig() rfx.Config {
	return rfx.Config{BarometricOffset: c.Decoder.Barometric_Offset}
}

// ProtocolList reads the protocol file, if one is configured.
func (c *Config) ProtocolList() ([]rfx.Protocol, error) {
	if c.Protocols == "" {
		return nil, nil
	}
	file, err := os.Open(c.Protocols)
	if err != nil {
		return nil, errors.Wrap(err, "opening protocols")
	}
	defer file.Close()
	return rfx.ParseProtocols(file)
}

// helpers

// Resolve a configuration file under .config/rfxcmd
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "rfxcmd", p)
}

func Must(c *Config, err error) *Config {
	if err != nil {
		panic(err)
	}
	return c
}
