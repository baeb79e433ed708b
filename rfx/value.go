package rfx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a decoded value. The set of implementations is closed: Int, Float,
// String, Bool and List.
type Value interface {
	String() string
	value()
}

type Int int64

type Float float64

type String string

type Bool bool

// List is a nested group of fields, used for bitmask expansions.
type List []Field

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v String) String() string { return string(v) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

func (v List) String() string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = fmt.Sprintf("%s=%s", f.Key, f.Value)
	}
	return "[" + strings.Join(s, " ") + "]"
}

func (Int) value() {}
func (Float) value() {}
func (String) value() {}
func (Bool) value() {}
func (List) value() {}

// Field is one human readable line of a decoded frame.
type Field struct {
	Key   string
	Value Value
	Unit  string
}

func (f Field) String() string {
	if f.Unit == "" {
		return fmt.Sprintf("%s=%s", f.Key, f.Value)
	}
	return fmt.Sprintf("%s=%s %s", f.Key, f.Value, f.Unit)
}

// Extra names a machine readable value published alongside the fields.
type Extra int

const (
	ExtraPacketType Extra = iota
	ExtraSubtype
	ExtraSeqnbr
	ExtraID
	ExtraHouseCode
	ExtraUnitCode
	ExtraGroupCode
	ExtraCommand
	ExtraDimLevel
	ExtraStatus
	ExtraMode
	ExtraSound
	ExtraTemperature
	ExtraSetPoint
	ExtraHumidity
	ExtraHumidityStatus
	ExtraBarometric
	ExtraForecast
	ExtraRainRate
	ExtraRainTotal
	ExtraWindDirection
	ExtraWindAverageSpeed
	ExtraWindGust
	ExtraWindChill
	ExtraUV
	ExtraCount
	ExtraCurrent1
	ExtraCurrent2
	ExtraCurrent3
	ExtraInstantPower
	ExtraTotalUsage
	ExtraVoltage
	ExtraCurrent
	ExtraPower
	ExtraEnergy
	ExtraPowerFactor
	ExtraFrequency
	ExtraWeight
	ExtraSensor1
	ExtraSensor2
	ExtraCounter
	ExtraMessage
	ExtraDate
	ExtraTime
	ExtraBattery
	ExtraSignalLevel
	extraCount
)

var extraNames = [extraCount]string{
	"packettype",
	"subtype",
	"seqnbr",
	"id",
	"housecode",
	"unitcode",
	"groupcode",
	"command",
	"dimlevel",
	"status",
	"mode",
	"sound",
	"temperature",
	"setpoint",
	"humidity",
	"humidity_status",
	"barometric",
	"forecast",
	"rainrate",
	"raintotal",
	"wind_direction",
	"wind_avspeed",
	"wind_gust",
	"wind_chill",
	"uv",
	"count",
	"current1",
	"current2",
	"current3",
	"instant",
	"total",
	"voltage",
	"current",
	"power",
	"energy",
	"powerfactor",
	"frequency",
	"weight",
	"sensor1",
	"sensor2",
	"counter",
	"message",
	"date",
	"time",
	"battery",
	"signal_level",
}

func (e Extra) String() string {
	if e < 0 || e >= extraCount {
		return fmt.Sprintf("extra(%d)", int(e))
	}
	return extraNames[e]
}

// ParseExtra returns the Extra with the given name.
func ParseExtra(name string) (Extra, bool) {
	for i, n := range extraNames {
		if n == name {
			return Extra(i), true
		}
	}
	return 0, false
}

// Extras is the sparse side channel of decoded values keyed by Extra.
type Extras map[Extra]Value

// Keys returns the keys present in enumeration order.
func (x Extras) Keys() []Extra {
	keys := make([]Extra, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Float returns a numeric extra as a float64.
func (x Extras) Float(e Extra) (float64, bool) {
	switch v := x[e].(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	}
	return 0, false
}

// Map returns the extras keyed by name, with Go native values.
func (x Extras) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(x))
	for k, v := range x {
		m[k.String()] = Native(v)
	}
	return m
}

// Native converts a Value to the equivalent plain Go value.
func Native(v Value) interface{} {
	switch v := v.(type) {
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case Bool:
		return bool(v)
	case List:
		m := make(map[string]interface{}, len(v))
		for _, f := range v {
			m[f.Key] = Native(f.Value)
		}
		return m
	}
	return nil
}
