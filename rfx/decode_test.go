package rfx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printReport(r *Report, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range r.Fields {
		fmt.Println(f)
	}
}

func ExampleDecode() {
	printReport(Decode([]byte{0x0A, 0x52, 0x01, 0x2A, 0x96, 0x03, 0x81, 0x41, 0x60, 0x03, 0x79}, Config{}))
	// Output:
	// Packettype=Temperature and humidity sensors
	// Subtype=THGN122/123, THGN132, THGR122/228/238/268
	// Seqnbr=2A
	// Id=9603
	// Temperature=-32.1 C
	// Humidity=96 %
	// Humidity Status=Wet
	// Battery=9
	// Signal level=7
}

func ExampleDecodeHex() {
	printReport(DecodeHex("0850022A960300A179", Config{}))
	printReport(DecodeHex("0850022A96 0300A179", Config{}))
	// Output:
	// Packettype=Temperature sensors
	// Subtype=THC238/268, THN132, THWR288, THRN122, THN122, AW129/131
	// Seqnbr=2A
	// Id=9603
	// Temperature=16.1 C
	// Battery=9
	// Signal level=7
	// encoding/hex: invalid byte: U+0020 ' '
}

func ExampleDecode_lighting1() {
	printReport(Decode([]byte{0x07, 0x10, 0x00, 0x2a, 0x45, 0x05, 0x01, 0x70}, Config{}))
	// Output:
	// Packettype=Lighting1
	// Subtype=X10 lighting
	// Seqnbr=2A
	// Housecode=E
	// Unitcode=5
	// Command=On
	// Signal level=7
}

func ExampleDecode_wind() {
	printReport(DecodeHex("105601032F0000F7002000240160000059", Config{}))
	// Output:
	// Packettype=Wind sensors
	// Subtype=WTGR800
	// Seqnbr=03
	// Id=2F00
	// Wind direction=247 degrees
	// Wind avg speed=3.2 m/s
	// Wind gust=3.6 m/s
	// Temperature=Not used
	// Windchill=Not used
	// Battery=9
	// Signal level=5
}

func ExampleDecode_energy() {
	printReport(DecodeHex("115A02028782000000010100000000849069", Config{}))
	// Output:
	// Packettype=Energy usage sensors
	// Subtype=ELEC3 - OWL CM180
	// Seqnbr=02
	// Id=8782
	// Count=0
	// Instant usage=257 W
	// Total usage=151.73 Wh
	// Battery=9
	// Signal level=6
}

func ExampleEnabledProtocols() {
	r, err := DecodeHex("0D01000102533E000C2F01010000", Config{})
	fmt.Println(err)
	f, _ := r.Field("Firmware version")
	fmt.Println(f)
	f, _ = r.Field("Transceiver type")
	fmt.Println(f)
	fmt.Println(EnabledProtocols(r))
	// Output:
	// <nil>
	// Firmware version=62
	// Transceiver type=433.92MHz transceiver
	// [La Crosse Hideki/UPM Oregon Scientific HomeEasy EU AC ARC X10]
}

func ExampleDecode_unsupported() {
	r, err := DecodeHex("06FF0107AABBCC", Config{})
	fmt.Println(err, r.Supported(), r.Family)
	printReport(r, err)
	// Output:
	// <nil> false unsupported
	// Packettype=0xFF
	// Subtype=0x01
	// Seqnbr=07
	// Message=AABBCC
}

func ExampleTruncatedError() {
	printReport(DecodeHex("0A52012A96038141", Config{}))
	printReport(DecodeHex("09520142960381416003", Config{}))
	printReport(DecodeHex("0A52", Config{}))
	// Output:
	// frame truncated at offset 8: packet type 0x52 needs 11 bytes
	// frame truncated at offset 10: packet type 0x52 needs 11 bytes
	// frame truncated at offset 2: packet type 0x00 needs 4 bytes
}

func TestTemperature(t *testing.T) {
	assert.Equal(t, "-1.0", temperature(0x80, 0x0A))
	assert.Equal(t, "30.0", temperature(0x01, 0x2C))
	assert.Equal(t, "0.0", temperature(0x00, 0x00))
	assert.Equal(t, "-0.0", temperature(0x80, 0x00))
	assert.Equal(t, "3276.7", temperature(0x7F, 0xFF))
}

func TestSignalBattery(t *testing.T) {
	signal, battery := signalBattery(0x3A)
	assert.Equal(t, 3, signal)
	assert.Equal(t, 10, battery)
}

func TestDecodeEveryTypeAtMinLength(t *testing.T) {
	for typ := 0; typ < 256; typ++ {
		need := FamilyOf(byte(typ)).MinLength()

		frame := make([]byte, need)
		frame[0] = byte(need - 1)
		frame[1] = byte(typ)
		r, err := Decode(frame, Config{})
		require.NoError(t, err, "type %02X", typ)
		assert.NotEmpty(t, r.Fields, "type %02X", typ)

		short := make([]byte, need-1)
		copy(short, frame)
		short[0] = byte(need - 2)
		_, err = Decode(short, Config{})
		te, ok := err.(*TruncatedError)
		require.True(t, ok, "type %02X: %v", typ, err)
		assert.Equal(t, need-1, te.Offset)
		assert.Equal(t, need, te.Need)
	}
}

func TestDecodeDeclaredLengthLongerThanFrame(t *testing.T) {
	_, err := DecodeHex("0F52012A960381416003", Config{})
	te, ok := err.(*TruncatedError)
	require.True(t, ok)
	assert.Equal(t, byte(0x52), te.Type)
	assert.Equal(t, 10, te.Offset)
	assert.Equal(t, 16, te.Need)
}

func TestDecodeIsIdempotent(t *testing.T) {
	frame := []byte{0x0A, 0x52, 0x01, 0x2A, 0x96, 0x03, 0x81, 0x41, 0x60, 0x03, 0x79}
	a, err := Decode(frame, Config{})
	require.NoError(t, err)
	b, err := Decode(frame, Config{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeExtras(t *testing.T) {
	r, err := DecodeHex("0A52014296038141600379", Config{})
	require.NoError(t, err)
	assert.Equal(t, "9603", r.ID())
	assert.Equal(t, "52.9603", r.Source())
	assert.Equal(t, String("52"), r.Extras[ExtraPacketType])
	assert.Equal(t, Int(0x42), r.Extras[ExtraSeqnbr])
	assert.Equal(t, Float(-32.1), r.Extras[ExtraTemperature])
	assert.Equal(t, Int(96), r.Extras[ExtraHumidity])
	assert.Equal(t, String("Wet"), r.Extras[ExtraHumidityStatus])
	assert.Equal(t, Int(9), r.Extras[ExtraBattery])
	assert.Equal(t, Int(7), r.Extras[ExtraSignalLevel])
	assert.Equal(t, -32.1, r.Extras.Map()["temperature"])
}

func TestDecodeBarometricOffset(t *testing.T) {
	frame := []byte{0x09, 0x53, 0x01, 0x05, 0x12, 0x34, 0x03, 0xF5, 0x01, 0x79}

	r, err := Decode(frame, Config{})
	require.NoError(t, err)
	f, _ := r.Field("Barometric pressure")
	assert.Equal(t, Int(1013), f.Value)
	f, _ = r.Field("Forecast")
	assert.Equal(t, String("Sunny"), f.Value)

	r, err = Decode(frame, Config{BarometricOffset: 5})
	require.NoError(t, err)
	assert.Equal(t, Int(1018), r.Extras[ExtraBarometric])
}

// The pressure field carries the computed pressure, with the humidity status
// kept as its own field.
func TestDecodeTempHumBaroKeepsPressure(t *testing.T) {
	r, err := DecodeHex("0D540111700200A1310103F20169", Config{})
	require.NoError(t, err)
	f, _ := r.Field("Barometric pressure")
	assert.Equal(t, Int(1010), f.Value)
	f, _ = r.Field("Humidity Status")
	assert.Equal(t, String("Comfort"), f.Value)
	f, _ = r.Field("Temperature")
	assert.Equal(t, String("16.1"), f.Value)
	f, _ = r.Field("Signal level")
	assert.Equal(t, Int(6), f.Value)
}

func TestDecodeRain(t *testing.T) {
	r, err := DecodeHex("0B5502031234025001234557", Config{})
	require.NoError(t, err)
	assert.Equal(t, Float(5.92), r.Extras[ExtraRainRate])
	assert.Equal(t, Float(7456.5), r.Extras[ExtraRainTotal])

	r, err = DecodeHex("0B5506031234000000000A57", Config{})
	require.NoError(t, err)
	f, _ := r.Field("Rain rate")
	assert.Equal(t, String(NotUsed), f.Value)
	assert.Equal(t, Float(2.66), r.Extras[ExtraRainTotal])
}

func TestDecodeReceiverAck(t *testing.T) {
	r, err := DecodeHex("0402010000", Config{})
	require.NoError(t, err)
	assert.True(t, Acknowledged(r))
	f, _ := r.Field("Message")
	assert.Equal(t, String("ACK, transmit OK"), f.Value)

	r, err = DecodeHex("0402010003", Config{})
	require.NoError(t, err)
	assert.False(t, Acknowledged(r))
}

func TestDecodeLighting5UnknownSubtype(t *testing.T) {
	r, err := DecodeHex("0A14FE01F394AF01FE0080", Config{})
	require.NoError(t, err)
	f, _ := r.Field("Subtype")
	assert.Equal(t, String("0xFE"), f.Value)
	f, _ = r.Field("Command")
	assert.Equal(t, String("0xFE"), f.Value)
	f, _ = r.Field("Unitcode")
	assert.Equal(t, String(NotUsed), f.Value)
}

func TestDecodeRFXSensor(t *testing.T) {
	r, err := DecodeHex("077000000109C470", Config{})
	require.NoError(t, err)
	assert.Equal(t, Float(25), r.Extras[ExtraTemperature])

	r, err = DecodeHex("077000000181F470", Config{})
	require.NoError(t, err)
	f, _ := r.Field("Temperature")
	assert.Equal(t, String("-5.00"), f.Value)

	r, err = DecodeHex("0770030001008170", Config{})
	require.NoError(t, err)
	f, _ = r.Field("Message")
	assert.Equal(t, String("No 1-wire device connected"), f.Value)
}

func TestDecodeRFXMeter(t *testing.T) {
	r, err := DecodeHex("0A71000112340000303970", Config{})
	require.NoError(t, err)
	assert.Equal(t, Int(12345), r.Extras[ExtraCounter])
	assert.Equal(t, "71.1234", r.Source())
}
