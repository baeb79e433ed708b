package rfx

import (
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ProtocolCount is the number of receiver protocols a set mode command covers.
const ProtocolCount = 24

// Protocol is one receiver protocol switch.
type Protocol struct {
	ID    int
	Name  string
	State int
}

// ConfigError reports a protocol list that cannot be encoded.
type ConfigError struct {
	Index  int
	ID     string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return "protocol config: " + e.Reason
	}
	return fmt.Sprintf("protocol config: entry %d (id %s): %s", e.Index, e.ID, e.Reason)
}

type protocolsDoc struct {
	XMLName   xml.Name `xml:"protocols"`
	Protocols []struct {
		ID    string `xml:"id"`
		Name  string `xml:"name"`
		State string `xml:"state"`
	} `xml:"protocol"`
}

// ParseProtocols reads a protocol list document:
//
//	<protocols>
//	  <protocol><id>0</id><name>Undecoded</name><state>0</state></protocol>
//	  ...
//	</protocols>
//
// Ids and states must be integers; range and order are checked by
// EncodeProtocols.
func ParseProtocols(r io.Reader) ([]Protocol, error) {
	var doc protocolsDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parsing protocol config")
	}
	ps := make([]Protocol, len(doc.Protocols))
	for i, p := range doc.Protocols {
		id := strings.TrimSpace(p.ID)
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, &ConfigError{Index: i, ID: id, Reason: "id is not an integer"}
		}
		state, err := strconv.Atoi(strings.TrimSpace(p.State))
		if err != nil {
			return nil, &ConfigError{Index: i, ID: id, Reason: fmt.Sprintf("state %q is not 0 or 1", p.State)}
		}
		ps[i] = Protocol{ID: n, Name: strings.TrimSpace(p.Name), State: state}
	}
	return ps, nil
}

func packProtocols(ps []Protocol) ([3]byte, error) {
	var packed [3]byte
	if len(ps) != ProtocolCount {
		return packed, &ConfigError{Index: -1, Reason: fmt.Sprintf("expected %d protocols, got %d", ProtocolCount, len(ps))}
	}
	for i, p := range ps {
		if p.ID != i {
			return packed, &ConfigError{Index: i, ID: strconv.Itoa(p.ID), Reason: fmt.Sprintf("expected id %d", i)}
		}
		switch p.State {
		case 0:
		case 1:
			packed[i/8] |= 0x80 >> uint(i%8)
		default:
			return packed, &ConfigError{Index: i, ID: strconv.Itoa(p.ID), Reason: fmt.Sprintf("state %d is not 0 or 1", p.State)}
		}
	}
	return packed, nil
}

// EncodeProtocols packs the protocol states into the hex set mode command.
// Protocol 0 is bit 7 of the first mode byte, protocol 23 bit 0 of the third.
func EncodeProtocols(ps []Protocol) (string, error) {
	packed, err := packProtocols(ps)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0D000000035300%02X%02X%02X00000000", packed[0], packed[1], packed[2]), nil
}

// SetModeFrame returns the set mode command as bytes.
func SetModeFrame(ps []Protocol) ([]byte, error) {
	s, err := EncodeProtocols(ps)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(s)
}

// ResetFrame clears the receiver state; it is sent on connect.
func ResetFrame() []byte {
	return []byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
}

// StatusFrame asks the receiver for an interface message.
func StatusFrame() []byte {
	return []byte{0x0D, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
}

// DefaultProtocols returns every protocol with the given state.
func DefaultProtocols(state int) []Protocol {
	ps := make([]Protocol, ProtocolCount)
	for i := range ps {
		ps[i] = Protocol{ID: i, Name: ProtocolNames[i], State: state}
	}
	return ps
}
