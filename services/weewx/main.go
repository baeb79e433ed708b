// Service to push weather sensor readings to a weewx driver.
//
// Readings are sent over TCP as one line per frame:
//
//	<packet type>;<id>;<value>;<value>;...
//
// with the values in a fixed order per sensor family. Missing values are
// sent empty.
package weewx

import (
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/barnybug/rfxcmd/pubsub"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/barnybug/rfxcmd/services"
	"github.com/pkg/errors"
)

// rainDelta marks the position of the rain since the last reading.
const rainDelta rfx.Extra = -1

var layouts = map[rfx.Family][]rfx.Extra{
	rfx.FamilyTempRain: {rfx.ExtraTemperature, rfx.ExtraRainTotal, rainDelta,
		rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyTemp: {rfx.ExtraTemperature, rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyHumidity: {rfx.ExtraHumidity, rfx.ExtraHumidityStatus,
		rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyTempHum: {rfx.ExtraTemperature, rfx.ExtraHumidity, rfx.ExtraHumidityStatus,
		rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyBaro: {rfx.ExtraBarometric, rfx.ExtraForecast,
		rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyTempHumBaro: {rfx.ExtraTemperature, rfx.ExtraHumidity, rfx.ExtraHumidityStatus,
		rfx.ExtraBarometric, rfx.ExtraForecast, rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyRain: {rfx.ExtraRainRate, rfx.ExtraRainTotal, rainDelta,
		rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyWind: {rfx.ExtraWindDirection, rfx.ExtraWindAverageSpeed, rfx.ExtraWindGust,
		rfx.ExtraTemperature, rfx.ExtraWindChill, rfx.ExtraBattery, rfx.ExtraSignalLevel},
	rfx.FamilyUV: {rfx.ExtraUV, rfx.ExtraTemperature, rfx.ExtraBattery, rfx.ExtraSignalLevel},
}

// Formatter builds weewx lines, remembering rain totals per sensor.
type Formatter struct {
	rain map[string]float64
	lock sync.Mutex
}

func NewFormatter() *Formatter {
	return &Formatter{rain: map[string]float64{}}
}

// delta of the rain total since the last reading from the sensor. Empty on
// first sight and when the counter has gone backwards.
func (f *Formatter) delta(source string, total float64) string {
	f.lock.Lock()
	defer f.lock.Unlock()
	prev, seen := f.rain[source]
	f.rain[source] = total
	if !seen {
		return ""
	}
	d := math.Round((total-prev)*1000) / 1000
	if d < 0 {
		return ""
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Line for a decoded frame, or "" for families weewx does not take.
func (f *Formatter) Line(r *rfx.Report) string {
	layout, ok := layouts[r.Family]
	if !ok {
		return ""
	}
	values := []string{fmt.Sprintf("%02X", r.Header.PacketType), r.ID()}
	for _, e := range layout {
		if e == rainDelta {
			total, ok := r.Extras.Float(rfx.ExtraRainTotal)
			if !ok {
				values = append(values, "")
				continue
			}
			values = append(values, f.delta(r.Source(), total))
			continue
		}
		if v, ok := r.Extras[e]; ok {
			values = append(values, v.String())
		} else {
			values = append(values, "")
		}
	}
	return strings.Join(values, ";") + "\n"
}

var dial = func(addr string) (io.WriteCloser, error) {
	return net.DialTimeout("tcp", addr, 5*time.Second)
}

func send(addr, line string) error {
	conn, err := dial(addr)
	if err != nil {
		return errors.Wrapf(err, "connecting to %s", addr)
	}
	defer conn.Close()
	_, err = io.WriteString(conn, line)
	return err
}

// Service weewx
type Service struct {
	formatter *Formatter
}

func (self *Service) ID() string {
	return "weewx"
}

func (self *Service) Init() error {
	if services.Config.Weewx.Addr == "" {
		return errors.New("weewx addr not configured")
	}
	self.formatter = NewFormatter()
	return nil
}

func (self *Service) Run() error {
	for ev := range services.Subscriber.Subscribe(pubsub.Reports()) {
		if ev.Report == nil {
			continue
		}
		line := self.formatter.Line(ev.Report)
		if line == "" {
			continue
		}
		if err := send(services.Config.Weewx.Addr, line); err != nil {
			log.Println("weewx send failed:", err)
		}
	}
	return nil
}
