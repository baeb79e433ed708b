package pubsub

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/barnybug/rfxcmd/rfx"
)

type Fields map[string]interface{}

type Event struct {
	Topic     string
	Timestamp time.Time
	Fields    Fields
	// Decoded report the event was built from, nil for events from elsewhere.
	Report *rfx.Report
}

const TimeFormat = "2006-01-02 15:04:05.000000"

// Topics
const (
	ReportPrefix = "rfx"
	CommandTopic = "command"
)

func NewEvent(topic string, fields Fields) *Event {
	if fields == nil {
		fields = Fields{}
	}
	timestamp := time.Now().UTC()
	if ts, ok := fields["timestamp"].(string); ok {
		delete(fields, "timestamp")
		timestamp, _ = time.Parse(TimeFormat, ts)
	}
	return &Event{Topic: topic, Timestamp: timestamp, Fields: fields}
}

// NewReportEvent builds the event for a decoded frame. The topic is
// rfx/<packet type>; fields carry the source, raw frame and every extra.
func NewReportEvent(r *rfx.Report) *Event {
	fields := Fields{}
	for k, v := range r.Extras.Map() {
		fields[k] = v
	}
	typ := fmt.Sprintf("%02X", r.Header.PacketType)
	fields["packettype"] = typ
	fields["source"] = r.Source()
	fields["raw"] = r.Raw
	if id := r.ID(); id != "" {
		fields["id"] = id
	}
	ev := NewEvent(ReportPrefix+"/"+typ, fields)
	ev.Report = r
	return ev
}

// NewCommand builds an event asking the transceiver to send a hex frame.
func NewCommand(frame string) *Event {
	return NewEvent(CommandTopic, Fields{"frame": frame})
}

func (event *Event) Map() map[string]interface{} {
	data := make(map[string]interface{})
	data["topic"] = event.Topic
	data["timestamp"] = event.Timestamp.Format(TimeFormat)
	for k, v := range event.Fields {
		data[k] = v
	}
	return data
}

func (event *Event) Bytes() []byte {
	v, _ := json.Marshal(event.Map())
	return v
}

func (event *Event) String() string {
	return string(event.Bytes())
}

func (event *Event) StringField(name string) string {
	ret, _ := event.Fields[name].(string)
	return ret
}

// FloatField returns a numeric field, whether set in process or parsed from
// JSON.
func (event *Event) FloatField(name string) (float64, bool) {
	switch v := event.Fields[name].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (event *Event) Source() string {
	return event.StringField("source")
}

func (event *Event) Frame() string {
	return event.StringField("frame")
}

// Parse an event from its JSON encoding. topic is used when the message has
// no topic field.
func Parse(msg string, topic string) *Event {
	var fields Fields
	err := json.Unmarshal([]byte(msg), &fields)
	if err != nil {
		return nil
	}
	if t, ok := fields["topic"].(string); ok {
		topic = t
		delete(fields, "topic")
	}
	if topic == "" {
		return nil
	}
	return NewEvent(topic, fields)
}
