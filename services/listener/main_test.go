package listener

import (
	"bufio"
	"fmt"
	"net"
	"testing"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/pubsub/dummy"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportEvent(frame string) *pubsub.Event {
	r, _ := rfx.DecodeHex(frame, rfx.Config{})
	return pubsub.NewReportEvent(r)
}

func ExampleFormatLine() {
	fmt.Print(FormatLine(reportEvent("0850022A960300A179")))
	fmt.Print(FormatLine(reportEvent("0A52012A96038141600379")))
	// Output:
	// 0850022A960300A179 50.9603 battery=9 signal_level=7 temperature=16.1
	// 0A52012A96038141600379 52.9603 battery=9 humidity=96 humidity_status=Wet signal_level=7 temperature=-32.1
}

func TestHandleConn(t *testing.T) {
	server, client := net.Pipe()
	services.Subscriber = &dummy.Subscriber{Events: []*pubsub.Event{
		reportEvent("0850022A960300A179"),
	}}
	pub := &dummy.Publisher{}
	services.Publisher = pub

	done := make(chan struct{})
	go func() {
		handleConn(server)
		close(done)
	}()

	line, err := bufio.NewReader(client).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "0850022A960300A179 50.9603 battery=9 signal_level=7 temperature=16.1\n", line)

	_, err = client.Write([]byte("0b110000012345670502087f\nnot hex\n\n"))
	require.NoError(t, err)
	client.Close()
	<-done

	require.Len(t, pub.Events, 1)
	assert.Equal(t, "0B110000012345670502087F", pub.Events[0].Frame())
}
