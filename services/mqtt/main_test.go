package mqtt

import (
	"testing"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/pubsub/dummy"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	r, err := rfx.DecodeHex("0850022A960300A179", rfx.Config{})
	require.NoError(t, err)
	local := &dummy.Subscriber{Events: []*pubsub.Event{
		pubsub.NewReportEvent(r),
		pubsub.NewEvent("heartbeat", nil),
		pubsub.NewCommand("0B110000012345670502087F"),
	}}
	remote := &dummy.Subscriber{Events: []*pubsub.Event{
		pubsub.NewCommand("0B1100000123456705010070"),
		pubsub.NewEvent("rfx/50", nil),
	}}
	out := &dummy.Publisher{}
	hub := &dummy.Publisher{}
	services.Publisher = hub

	service := &Service{}
	service.route(local, remote, out)

	assert.Equal(t, []string{"rfx/50", "heartbeat"}, out.Topics())
	require.Equal(t, []string{"command"}, hub.Topics())
	assert.Equal(t, "0B1100000123456705010070", hub.Events[0].Frame())
	assert.Equal(t, uint64(3), service.Processed)
}

func TestRunRequiresBroker(t *testing.T) {
	services.Config = config.Must(config.OpenRaw([]byte("")))
	service := &Service{}
	assert.EqualError(t, service.Run(), "mqtt broker not configured")
}
