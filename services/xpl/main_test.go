package xpl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
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

const message1 = "xpl-stat\n{\nhop=1\nsource=slimdev-slimserv.FrontroomTouch\ntarget=*\n}\naudio.basic\n{\nstatus=stopped\nARTIST= \nALBUM= \nTRACK= \nPOWER=1\n}\n"

const otherMessage = "xpl-stat\n{\nhop=1\nsource=slimdev-slimserv.FrontroomTouch\ntarget=*\n}\n}\n"

func ExampleParse() {
	result := Parse(message1)
	b, _ := json.Marshal(result)
	os.Stdout.Write(b)
	// Output:
	// {"audio.basic":{"ALBUM":" ","ARTIST":" ","POWER":"1","TRACK":" ","status":"stopped"},"xpl-stat":{"hop":"1","source":"slimdev-slimserv.FrontroomTouch","target":"*"}}
}

func ExampleSource() {
	fmt.Println(Source(otherMessage))
	fmt.Printf("%q\n", Source("garbage"))
	// Output:
	// slimdev-slimserv.FrontroomTouch
	// ""
}

func ExampleHeartbeat() {
	fmt.Print(Heartbeat("rfxcom-lan.rfxcmd", 5*time.Minute, "3865"))
	// Output:
	// xpl-stat
	// {
	// hop=1
	// source=rfxcom-lan.rfxcmd
	// target=*
	// }
	// hbeat.app
	// {
	// interval=5
	// port=3865
	// }
}

func ExampleSensorMessages() {
	r, _ := rfx.DecodeHex("0850022A960300A179", rfx.Config{})
	msgs := SensorMessages("rfxcom-lan.rfxcmd", r)
	fmt.Println(len(msgs))
	fmt.Print(msgs[0])
	// Output:
	// 3
	// xpl-trig
	// {
	// hop=1
	// source=rfxcom-lan.rfxcmd
	// target=*
	// }
	// sensor.basic
	// {
	// device=50.9603
	// type=temperature
	// current=16.1
	// }
}

type writeRecorder struct {
	msgs []string
}

func (w *writeRecorder) Write(b []byte) (int, error) {
	w.msgs = append(w.msgs, string(b))
	return len(b), nil
}

func (w *writeRecorder) Close() error {
	return nil
}

func TestRun(t *testing.T) {
	services.Config = config.Must(config.OpenRaw([]byte("xpl:\n  addr: 127.0.0.1:0\n")))
	rec := &writeRecorder{}
	dial = func(addr string) (io.WriteCloser, error) {
		return rec, nil
	}
	r, err := rfx.DecodeHex("0850022A960300A179", rfx.Config{})
	require.NoError(t, err)
	services.Subscriber = &dummy.Subscriber{Events: []*pubsub.Event{
		pubsub.NewReportEvent(r),
		pubsub.NewEvent("heartbeat", nil),
	}}

	service := &Service{}
	require.NoError(t, service.Init())
	require.NoError(t, service.Run())
	require.Len(t, rec.msgs, 4)
	assert.True(t, strings.Contains(rec.msgs[0], "hbeat.app"))
	assert.Contains(t, rec.msgs[2], "type=battery\ncurrent=9\n")
	assert.Contains(t, rec.msgs[3], "type=signal_level\ncurrent=7\n")
}
