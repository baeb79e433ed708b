package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yml = `
serial:
  device: /dev/ttyUSB0
decoder:
  barometric_offset: -2
`

func ExampleOpenRaw() {
	config, _ := OpenRaw([]byte(yml))
	fmt.Println(config.Serial.Device, config.Serial.Baud)
	fmt.Println(config.DecoderConfig().BarometricOffset)
	// Output:
	// /dev/ttyUSB0 38400
	// -2
}

func TestDefaults(t *testing.T) {
	config, err := OpenRaw([]byte(yml))
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.255:3865", config.Xpl.Addr)
	assert.Equal(t, 5*time.Minute, config.Xpl.Heartbeat.Duration)
	assert.Equal(t, 300, config.Rrd.Step)
	assert.Equal(t, "rrdtool", config.Rrd.Rrdtool)
	assert.Equal(t, 10*time.Second, config.Runner.Timeout.Duration)
	assert.Empty(t, config.Services)
}

func TestExampleConfig(t *testing.T) {
	config := ExampleConfig
	assert.Equal(t, []string{"rfxtrx", "listener", "graphite", "datalogger"}, config.Services)
	assert.Equal(t, 3, config.Decoder.Barometric_Offset)
	assert.Equal(t, os.ExpandEnv("$HOME/.config/rfxcmd/protocols.xml"), config.Protocols)
	require.Len(t, config.Triggers, 2)
	assert.Equal(t, 10*time.Second, config.Triggers[0].Timeout.Duration)
	assert.Equal(t, time.Minute, config.Triggers[1].Timeout.Duration)
	assert.Equal(t, "tcp://127.0.0.1:1883", config.Mqtt.Broker)
}

func TestBadDuration(t *testing.T) {
	_, err := OpenReader(strings.NewReader("runner:\n  timeout: soon\n"))
	assert.Error(t, err)
}

func TestProtocolList(t *testing.T) {
	dir, err := ioutil.TempDir("", "rfxcmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	config, err := OpenRaw([]byte(""))
	require.NoError(t, err)
	ps, err := config.ProtocolList()
	assert.NoError(t, err)
	assert.Nil(t, ps)

	p := path.Join(dir, "protocols.xml")
	xml := "<protocols><protocol><id>0</id><name>Undecoded</name><state>1</state></protocol></protocols>"
	require.NoError(t, ioutil.WriteFile(p, []byte(xml), 0644))
	config.Protocols = p
	ps, err = config.ProtocolList()
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, 1, ps[0].State)

	config.Protocols = path.Join(dir, "missing.xml")
	_, err = config.ProtocolList()
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	defer os.Unsetenv("XDG_CONFIG_HOME")
	assert.Equal(t, "/etc/xdg/rfxcmd/rfxcmd.yml", ConfigPath("rfxcmd.yml"))
}
