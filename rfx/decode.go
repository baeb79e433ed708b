/*
Package rfx decodes frames received from an RFXcom RFXtrx transceiver into
readable fields, and builds the command frames sent back to it.

Each frame is length prefixed: the first byte counts the bytes following it.
Bytes 1, 2 and 3 are the packet type, subtype and sequence number, and the
packet type selects the layout of the remaining bytes.

Example usage:

	report, err := rfx.Decode(frame, rfx.Config{})
	if err != nil {
	    log.Println("Invalid frame:", err)
	    return
	}
	for _, f := range report.Fields {
	    fmt.Println(f)
	}
*/
package rfx

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const headerLength = 4

// Header holds the fields common to all frames.
type Header struct {
	PacketLength   byte
	PacketType     byte
	Subtype        byte
	SequenceNumber byte
}

// ParseHeader reads the header from the start of a frame.
func ParseHeader(frame []byte) (Header, error) {
	if len(frame) < headerLength {
		return Header{}, &TruncatedError{Type: 0, Offset: len(frame), Need: headerLength}
	}
	return Header{
		PacketLength:   frame[0],
		PacketType:     frame[1],
		Subtype:        frame[2],
		SequenceNumber: frame[3],
	}, nil
}

// TruncatedError is returned when a frame is shorter than its layout needs.
type TruncatedError struct {
	Type   byte
	Offset int
	Need   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("frame truncated at offset %d: packet type 0x%02X needs %d bytes", e.Offset, e.Type, e.Need)
}

// Config carries calibration applied while decoding.
type Config struct {
	// Added to barometric pressure readings, in hPa.
	BarometricOffset int
}

// Report is the result of decoding one frame.
type Report struct {
	Header Header
	Family Family
	Raw    string
	Fields []Field
	Extras Extras
}

// Supported is false for frames of a packet type without a decoder.
func (r *Report) Supported() bool {
	return r.Family != FamilyUnsupported
}

// Field returns the first field with the given key.
func (r *Report) Field(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ID of the sensor or device, empty when the family has none.
func (r *Report) ID() string {
	if v, ok := r.Extras[ExtraID]; ok {
		return v.String()
	}
	return ""
}

// Source identifies the physical sensor: packet type and id, eg. "52.9603".
func (r *Report) Source() string {
	id := r.ID()
	if id == "" {
		return fmt.Sprintf("%02X", r.Header.PacketType)
	}
	return fmt.Sprintf("%02X.%s", r.Header.PacketType, id)
}

// Decoder decodes frames against a registry.
type Decoder struct {
	reg  *Registry
	conf Config
}

func NewDecoder(reg *Registry, conf Config) *Decoder {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &Decoder{reg: reg, conf: conf}
}

// Decode a frame using DefaultRegistry.
func Decode(frame []byte, conf Config) (*Report, error) {
	return NewDecoder(DefaultRegistry, conf).Decode(frame)
}

// DecodeHex decodes a frame given as a hex string.
func DecodeHex(s string, conf Config) (*Report, error) {
	frame, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return Decode(frame, conf)
}

// Decode a single frame. The only error returned is *TruncatedError.
func (d *Decoder) Decode(frame []byte) (*Report, error) {
	h, err := ParseHeader(frame)
	if err != nil {
		return nil, err
	}
	if int(h.PacketLength)+1 > len(frame) {
		return nil, &TruncatedError{Type: h.PacketType, Offset: len(frame), Need: int(h.PacketLength) + 1}
	}
	family := FamilyOf(h.PacketType)
	need := family.MinLength()
	if len(frame) < need {
		return nil, &TruncatedError{Type: h.PacketType, Offset: len(frame), Need: need}
	}
	// bytes past the declared length belong to the next frame
	if declared := int(h.PacketLength) + 1; declared < need {
		return nil, &TruncatedError{Type: h.PacketType, Offset: declared, Need: need}
	}

	b := &builder{
		reg:    d.reg,
		data:   frame,
		report: &Report{Header: h, Family: family, Raw: fmt.Sprintf("%X", frame), Extras: Extras{}},
	}
	switch family {
	case FamilyInterface:
		b.header(TableInterfaceSubtype)
		b.interfaceMessage()
	case FamilyReceiver:
		b.header(TableReceiverSubtype)
		b.receiverMessage()
	case FamilyUndecoded:
		b.header(TableUndecodedSubtype)
		b.undecoded()
	case FamilyLighting1:
		b.header(TableLighting1Subtype)
		b.lighting1()
	case FamilyLighting2:
		b.header(TableLighting2Subtype)
		b.lighting2()
	case FamilyLighting3:
		b.header(TableLighting3Subtype)
		b.lighting3()
	case FamilyLighting4:
		b.header(TableLighting4Subtype)
		b.lighting4()
	case FamilyLighting5:
		b.header(TableLighting5Subtype)
		b.lighting5()
	case FamilyLighting6:
		b.header(TableLighting6Subtype)
		b.lighting6()
	case FamilyChime:
		b.header(TableChimeSubtype)
		b.chime()
	case FamilySecurity1:
		b.header(TableSecuritySubtype)
		b.security1()
	case FamilyCamera1:
		b.header(TableCameraSubtype)
		b.camera1()
	case FamilyRemote:
		b.header(TableRemoteSubtype)
		b.remote()
	case FamilyThermostat1:
		b.header(TableThermostat1Subtype)
		b.thermostat1()
	case FamilyThermostat3:
		b.header(TableThermostat3Subtype)
		b.thermostat3()
	case FamilyBBQ:
		b.header(TableBBQSubtype)
		b.bbq()
	case FamilyTempRain:
		b.header(TableTempRainSubtype)
		b.tempRain()
	case FamilyTemp:
		b.header(TableTempSubtype)
		b.temp()
	case FamilyHumidity:
		b.header(TableHumiditySubtype)
		b.humidity()
	case FamilyTempHum:
		b.header(TableTempHumSubtype)
		b.tempHum()
	case FamilyBaro:
		b.header(TableBaroSubtype)
		b.baro(d.conf.BarometricOffset)
	case FamilyTempHumBaro:
		b.header(TableTempHumBaroSubtype)
		b.tempHumBaro(d.conf.BarometricOffset)
	case FamilyRain:
		b.header(TableRainSubtype)
		b.rain()
	case FamilyWind:
		b.header(TableWindSubtype)
		b.wind()
	case FamilyUV:
		b.header(TableUVSubtype)
		b.uv()
	case FamilyDateTime:
		b.header(TableDateTimeSubtype)
		b.dateTime()
	case FamilyCurrent:
		b.header(TableCurrentSubtype)
		b.current()
	case FamilyEnergy:
		b.header(TableEnergySubtype)
		b.energy()
	case FamilyCurrentEnergy:
		b.header(TableCurrentEnergySubtype)
		b.currentEnergy()
	case FamilyPower:
		b.header(TablePowerSubtype)
		b.power()
	case FamilyWeight:
		b.header(TableWeightSubtype)
		b.weight()
	case FamilyRFXSensor:
		b.header(TableRFXSensorSubtype)
		b.rfxSensor()
	case FamilyRFXMeter:
		b.header(TableRFXMeterSubtype)
		b.rfxMeter()
	case FamilyUnsupported:
		b.unsupported()
	}
	return b.report, nil
}

// builder accumulates the fields and extras of one report.
type builder struct {
	reg    *Registry
	data   []byte
	report *Report
}

func (b *builder) add(key string, v Value, unit string) {
	b.report.Fields = append(b.report.Fields, Field{Key: key, Value: v, Unit: unit})
}

func (b *builder) extra(e Extra, v Value) {
	b.report.Extras[e] = v
}

func (b *builder) subtype() byte {
	return b.data[2]
}

func (b *builder) header(subtypes TableID) {
	typ := b.reg.Lookup(TablePacketType, b.data[1])
	sub := b.reg.Lookup(subtypes, b.data[2])
	b.add("Packettype", String(typ), "")
	b.add("Subtype", String(sub), "")
	b.add("Seqnbr", String(fmt.Sprintf("%02X", b.data[3])), "")
	b.extra(ExtraPacketType, String(fmt.Sprintf("%02X", b.data[1])))
	b.extra(ExtraSubtype, String(sub))
	b.extra(ExtraSeqnbr, Int(b.data[3]))
}

func (b *builder) unsupported() {
	b.add("Packettype", String(b.reg.Lookup(TablePacketType, b.data[1])), "")
	b.add("Subtype", String(unknownLabel(b.data[2])), "")
	b.add("Seqnbr", String(fmt.Sprintf("%02X", b.data[3])), "")
	b.add("Message", String(fmt.Sprintf("%X", b.data[headerLength:])), "")
	b.extra(ExtraPacketType, String(fmt.Sprintf("%02X", b.data[1])))
}

// id adds the Id field built from the given byte offsets, in that order.
func (b *builder) id(offsets ...int) {
	id := hexID(b.data, offsets...)
	b.add("Id", String(id), "")
	b.extra(ExtraID, String(id))
}

func (b *builder) lookup(key string, id TableID, offset int, e Extra) {
	s := b.reg.Lookup(id, b.data[offset])
	b.add(key, String(s), "")
	b.extra(e, String(s))
}

func (b *builder) temperature(key string, offset int, e Extra) {
	t := temperature(b.data[offset], b.data[offset+1])
	b.add(key, String(t), "C")
	f, _ := strconv.ParseFloat(t, 64)
	b.extra(e, Float(f))
}

func (b *builder) signal(offset int) {
	signal, _ := signalBattery(b.data[offset])
	b.add("Signal level", Int(signal), "")
	b.extra(ExtraSignalLevel, Int(signal))
}

func (b *builder) batterySignal(offset int) {
	signal, battery := signalBattery(b.data[offset])
	b.add("Battery", Int(battery), "")
	b.add("Signal level", Int(signal), "")
	b.extra(ExtraBattery, Int(battery))
	b.extra(ExtraSignalLevel, Int(signal))
}

func (b *builder) notUsed(key string) {
	b.add(key, String(NotUsed), "")
}

// NotUsed is displayed for fields a subtype does not carry.
const NotUsed = "Not used"

// temperature decodes the two byte temperature encoding: bit 7 of hi is the
// sign, the remaining 15 bits are the magnitude in tenths of a degree.
func temperature(hi, lo byte) string {
	magnitude := int(hi&0x7F)<<8 + int(lo)
	s := strconv.FormatFloat(float64(magnitude)*0.1, 'f', 1, 64)
	if hi&0x80 != 0 {
		return "-" + s
	}
	return s
}

// signalBattery splits the packed byte: signal in the high nibble, battery in
// the low nibble.
func signalBattery(v byte) (signal, battery int) {
	return int(v >> 4), int(v & 0x0F)
}

func uint16At(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}

func uint32At(data []byte, offset int) uint32 {
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 | uint32(data[offset+2])<<8 | uint32(data[offset+3])
}

// uint48At reads the six byte big endian accumulator used by energy meters.
func uint48At(data []byte, offset int) uint64 {
	var v uint64
	for i := 0; i < 6; i++ {
		v = v<<8 | uint64(data[offset+i])
	}
	return v
}

func hexID(data []byte, offsets ...int) string {
	var sb strings.Builder
	for _, o := range offsets {
		fmt.Fprintf(&sb, "%02X", data[o])
	}
	return sb.String()
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
