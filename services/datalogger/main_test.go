package datalogger

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/pubsub/dummy"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesPerPacketType(t *testing.T) {
	dir, err := ioutil.TempDir("", "datalogger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	services.Config = config.Must(config.OpenRaw([]byte("datalogger:\n  path: " + dir + "\n")))
	var events []*pubsub.Event
	for _, frame := range []string{"0850022A960300A179", "0850022B960300A279", "0710002A45050170"} {
		r, err := rfx.DecodeHex(frame, rfx.Config{})
		require.NoError(t, err)
		ev := pubsub.NewReportEvent(r)
		ev.Timestamp = time.Date(2014, 1, 2, 3, 4, 5, 0, time.UTC)
		events = append(events, ev)
	}
	services.Subscriber = &dummy.Subscriber{Events: events}

	service := &Service{}
	require.NoError(t, service.Init())
	require.NoError(t, service.Run())

	data, err := ioutil.ReadFile(path.Join(dir, "50", "data.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"raw":"0850022A960300A179"`)
	assert.Contains(t, lines[1], `"temperature":16.2`)

	data, err = ioutil.ReadFile(path.Join(dir, "10", "data.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"topic":"rfx/10"`)
}

func TestInitRequiresPath(t *testing.T) {
	services.Config = config.Must(config.OpenRaw([]byte("")))
	service := &Service{}
	assert.EqualError(t, service.Init(), "datalogger path not configured")
}
