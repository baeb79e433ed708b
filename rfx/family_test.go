package rfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDecode_lighting2() {
	printReport(DecodeHex("0B11002A0123456705020870", Config{}))
	// Output:
	// Packettype=Lighting2
	// Subtype=AC
	// Seqnbr=2A
	// Id=01234567
	// Unitcode=5
	// Command=Set level
	// Dim level=8
	// Signal level=7
}

func ExampleDecode_lighting3() {
	printReport(DecodeHex("081200010205021070", Config{}))
	// Output:
	// Packettype=Lighting3
	// Subtype=Ikea Koppla
	// Seqnbr=01
	// System=3
	// Channel=1,3,10
	// Command=On
	// Signal level=7
}

func ExampleDecode_lighting4() {
	printReport(DecodeHex("09130001455455015E60", Config{}))
	// Output:
	// Packettype=Lighting4
	// Subtype=PT2262
	// Seqnbr=01
	// Id=455455
	// Pulse=350 usec
	// Signal level=6
}

func ExampleDecode_lighting6() {
	printReport(DecodeHex("0B1500011234410100020060", Config{}))
	// Output:
	// Packettype=Lighting6
	// Subtype=Blyss
	// Seqnbr=01
	// Id=1234
	// Groupcode=A
	// Unitcode=1
	// Command=On
	// Command seqnbr=2
	// Signal level=6
}

func ExampleDecode_thermostat1() {
	printReport(DecodeHex("094000016B1814150270", Config{}))
	// Output:
	// Packettype=Thermostat1
	// Subtype=Digimax, TLX7506
	// Seqnbr=01
	// Id=6B18
	// Temperature=20 C
	// Set point=21 C
	// Status=No demand
	// Mode=Heating
	// Signal level=7
}

func ExampleDecode_power() {
	printReport(DecodeHex("0F5C01001234EB001C056E012C5F3270", Config{}))
	// Output:
	// Packettype=Power sensors
	// Subtype=ELEC5 - Revolt
	// Seqnbr=00
	// Id=1234
	// Voltage=235 V
	// Current=0.28 A
	// Instant power=139 W
	// Total usage=3 kWh
	// Power factor=0.95
	// Frequency=50 Hz
	// Signal level=7
}

func ExampleDecode_dateTime() {
	printReport(DecodeHex("0D58010012340E0A1206152D0079", Config{}))
	// Output:
	// Packettype=Date/time sensors
	// Subtype=RTGR328N
	// Seqnbr=00
	// Id=1234
	// Date (yy-mm-dd)=14-10-18
	// Day of week=Friday
	// Time=21:45:00
	// Battery=9
	// Signal level=7
}

func ExampleDecode_current() {
	printReport(DecodeHex("0D59010C890007001A0000012C79", Config{}))
	// Output:
	// Packettype=Current sensors
	// Subtype=ELEC1 - OWL CM113, Electrisave, cent-a-meter
	// Seqnbr=0C
	// Id=8900
	// Count=7
	// Current Ch. 1=2.6 A
	// Current Ch. 2=0 A
	// Current Ch. 3=30 A
	// Battery=9
	// Signal level=7
}

func field(t *testing.T, r *Report, key string) string {
	f, ok := r.Field(key)
	require.True(t, ok, "missing field %s", key)
	return f.Value.String()
}

func TestDecodeLighting3Channels(t *testing.T) {
	r, err := DecodeHex("081200010205021070", Config{})
	require.NoError(t, err)
	assert.Equal(t, String("02"), r.Extras[ExtraID])
	assert.Equal(t, String("1,3,10"), r.Extras[ExtraUnitCode])

	r, err = DecodeHex("081200010200001A70", Config{})
	require.NoError(t, err)
	assert.Equal(t, "None", field(t, r, "Channel"))
	assert.Equal(t, "Off", field(t, r, "Command"))
}

func TestDecodeLighting5Subtypes(t *testing.T) {
	tests := []struct {
		frame    string
		unitcode string
		command  string
		level    string
		signal   string
	}{
		{"0A140001F394AF01101F80", "1", "Set level", "31", "8"},
		{"0A140101F394AF02020050", "2", "Learn", NotUsed, "5"},
		{"0A140501F394AF03010060", NotUsed, "On/Off gang1", NotUsed, "6"},
		{"0A140F01F394AF04040A70", "4", "Set level", "10", "7"},
	}
	for _, test := range tests {
		r, err := DecodeHex(test.frame, Config{})
		require.NoError(t, err, test.frame)
		assert.Equal(t, "F394AF", field(t, r, "Id"), test.frame)
		assert.Equal(t, test.unitcode, field(t, r, "Unitcode"), test.frame)
		assert.Equal(t, test.command, field(t, r, "Command"), test.frame)
		assert.Equal(t, test.level, field(t, r, "Level"), test.frame)
		assert.Equal(t, test.signal, field(t, r, "Signal level"), test.frame)
		_, hasUnit := r.Extras[ExtraUnitCode]
		assert.Equal(t, test.unitcode != NotUsed, hasUnit, test.frame)
		_, hasLevel := r.Extras[ExtraDimLevel]
		assert.Equal(t, test.level != NotUsed, hasLevel, test.frame)
	}
}

func TestDecodeChime(t *testing.T) {
	r, err := DecodeHex("07160006007A0170", Config{})
	require.NoError(t, err)
	assert.Equal(t, "Byron SX", field(t, r, "Subtype"))
	assert.Equal(t, "007A", field(t, r, "Id"))
	assert.Equal(t, "Tubular 3 notes", field(t, r, "Sound"))
	assert.Equal(t, Int(7), r.Extras[ExtraSignalLevel])
	assert.Equal(t, Int(0), r.Extras[ExtraBattery])
}

func TestDecodeSecurity1(t *testing.T) {
	r, err := DecodeHex("08200000E2A19F0479", Config{})
	require.NoError(t, err)
	assert.Equal(t, "E2A19F", field(t, r, "Id"))
	assert.Equal(t, String("Motion"), r.Extras[ExtraStatus])
	assert.Equal(t, Int(9), r.Extras[ExtraBattery])

	r, err = DecodeHex("08200500E2A19F8479", Config{})
	require.NoError(t, err)
	assert.Equal(t, "Visonic PowerCode motion sensor (with alive packets)", field(t, r, "Subtype"))
	assert.Equal(t, "Motion + tamper", field(t, r, "Status"))
}

func TestDecodeCamera1(t *testing.T) {
	r, err := DecodeHex("06280001420C70", Config{})
	require.NoError(t, err)
	assert.Equal(t, "B", field(t, r, "Housecode"))
	assert.Equal(t, "Center", field(t, r, "Command"))
	assert.Equal(t, "28.42", r.Source())
}

func TestDecodeRemote(t *testing.T) {
	tests := []struct {
		frame   string
		subtype string
		command string
	}{
		{"063000010F0D70", "ATI Remote Wonder", "1"},
		{"063001010F2B70", "ATI Remote Wonder Plus", "Clock"},
		{"063002010F0870", "Medion Remote", "VOL-"},
		{"063003010FB070", "X10 PC Remote", "PLAY"},
		{"063009010F0D70", "0x09", "0x0D"},
	}
	for _, test := range tests {
		r, err := DecodeHex(test.frame, Config{})
		require.NoError(t, err, test.frame)
		assert.Equal(t, test.subtype, field(t, r, "Subtype"), test.frame)
		assert.Equal(t, test.command, field(t, r, "Command"), test.frame)
		assert.Equal(t, "0F", r.ID(), test.frame)
	}
}

func TestDecodeThermostat1StatusAndMode(t *testing.T) {
	tests := []struct {
		frame    string
		temp     string
		setpoint string
		status   string
		mode     string
	}{
		{"094000016B1814150270", "20", "21", "No demand", "Heating"},
		{"094000036B1814158170", "20", "21", "Demand", "Cooling"},
		{"094001026B1813008370", "19", NotUsed, "Initializing", "Cooling"},
	}
	for _, test := range tests {
		r, err := DecodeHex(test.frame, Config{})
		require.NoError(t, err, test.frame)
		assert.Equal(t, test.temp, field(t, r, "Temperature"), test.frame)
		assert.Equal(t, test.setpoint, field(t, r, "Set point"), test.frame)
		assert.Equal(t, test.status, field(t, r, "Status"), test.frame)
		assert.Equal(t, test.mode, field(t, r, "Mode"), test.frame)
		_, hasSetpoint := r.Extras[ExtraSetPoint]
		assert.Equal(t, test.setpoint != NotUsed, hasSetpoint, test.frame)
	}
}

func TestDecodeThermostat3(t *testing.T) {
	r, err := DecodeHex("084201010102030470", Config{})
	require.NoError(t, err)
	assert.Equal(t, "010203", field(t, r, "Id"))
	assert.Equal(t, "Run Up / 2nd Off", field(t, r, "Command"))
	assert.Equal(t, "7", field(t, r, "Signal level"))
}

func TestDecodeBBQ(t *testing.T) {
	r, err := DecodeHex("0A4E010012340019005A79", Config{})
	require.NoError(t, err)
	assert.Equal(t, Int(25), r.Extras[ExtraSensor1])
	assert.Equal(t, Int(90), r.Extras[ExtraSensor2])
	assert.Equal(t, "90", field(t, r, "Sensor 2"))
	assert.Equal(t, Int(9), r.Extras[ExtraBattery])
}

func TestDecodeTempRain(t *testing.T) {
	r, err := DecodeHex("0A4F01001234806E01F579", Config{})
	require.NoError(t, err)
	assert.Equal(t, Float(-11), r.Extras[ExtraTemperature])
	assert.Equal(t, "-11.0", field(t, r, "Temperature"))
	assert.Equal(t, Float(50.1), r.Extras[ExtraRainTotal])
}

func TestDecodeHumidity(t *testing.T) {
	r, err := DecodeHex("0851010012342D0279", Config{})
	require.NoError(t, err)
	assert.Equal(t, "LaCrosse TX3", field(t, r, "Subtype"))
	assert.Equal(t, Int(45), r.Extras[ExtraHumidity])
	assert.Equal(t, String("Normal"), r.Extras[ExtraHumidityStatus])
}

func TestDecodeUV(t *testing.T) {
	r, err := DecodeHex("0957010112340B000079", Config{})
	require.NoError(t, err)
	assert.Equal(t, Float(1.1), r.Extras[ExtraUV])
	assert.Equal(t, NotUsed, field(t, r, "Temperature"))
	_, ok := r.Extras[ExtraTemperature]
	assert.False(t, ok)

	r, err = DecodeHex("0957030112340B80E179", Config{})
	require.NoError(t, err)
	assert.Equal(t, "-22.5", field(t, r, "Temperature"))
	assert.Equal(t, Float(-22.5), r.Extras[ExtraTemperature])
}

func TestDecodeWeight(t *testing.T) {
	r, err := DecodeHex("085D0100123402F579", Config{})
	require.NoError(t, err)
	assert.Equal(t, "BWR101/102", field(t, r, "Subtype"))
	assert.Equal(t, Float(75.7), r.Extras[ExtraWeight])
}

func TestDecodeEnergyTotalAbove32Bits(t *testing.T) {
	r, err := DecodeHex("115A01018782000000010101020304050669", Config{})
	require.NoError(t, err)
	assert.Equal(t, Int(257), r.Extras[ExtraInstantPower])
	assert.Equal(t, Float(4954495352.2), r.Extras[ExtraTotalUsage])
}

func TestDecodeCurrentEnergy(t *testing.T) {
	r, err := DecodeHex("135B0100123403000A0014001E00010000000079", Config{})
	require.NoError(t, err)
	assert.Equal(t, "ELEC4 - OWL CM180i", field(t, r, "Subtype"))
	assert.Equal(t, Int(3), r.Extras[ExtraCount])
	assert.Equal(t, Float(1), r.Extras[ExtraCurrent1])
	assert.Equal(t, Float(2), r.Extras[ExtraCurrent2])
	assert.Equal(t, Float(3), r.Extras[ExtraCurrent3])
	assert.Equal(t, Float(19202593.58), r.Extras[ExtraTotalUsage])
	assert.Equal(t, Int(7), r.Extras[ExtraSignalLevel])
}

func TestDecodeRFXSensorVoltage(t *testing.T) {
	r, err := DecodeHex("077002000101F470", Config{})
	require.NoError(t, err)
	assert.Equal(t, "500", field(t, r, "Voltage"))
	assert.Equal(t, Int(500), r.Extras[ExtraVoltage])

	r, err = DecodeHex("077001000101F470", Config{})
	require.NoError(t, err)
	assert.Equal(t, "500", field(t, r, "A/D"))
}

func TestDecodeDeclaredLengthShorterThanLayout(t *testing.T) {
	_, err := DecodeHex("0652012A96038141600302", Config{})
	te, ok := err.(*TruncatedError)
	require.True(t, ok, "%v", err)
	assert.Equal(t, byte(0x52), te.Type)
	assert.Equal(t, 7, te.Offset)
	assert.Equal(t, 11, te.Need)
}
