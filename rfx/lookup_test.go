package rfx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleRegistry_Lookup() {
	fmt.Println(DefaultRegistry.Lookup(TableHumidityStatus, 0x03))
	fmt.Println(DefaultRegistry.Lookup(TableHumidityStatus, 0xFE))
	fmt.Println(DefaultRegistry.Lookup(TableForecast, 0x0A))
	// Output:
	// Wet
	// 0xFE
	// 0x0A
}

func ExampleRegistry_Flags() {
	for _, f := range DefaultRegistry.Flags(TableProtocolsMsg3, 0x80) {
		fmt.Println(f)
	}
	// Output:
	// Undecoded=true
	// RFU6=false
	// Byron SX=false
	// RSL=false
	// Lighting4=false
	// FineOffset/Viking=false
	// Rubicson=false
	// AE Blyss=false
}

func TestLabel(t *testing.T) {
	s, ok := DefaultRegistry.Label(TablePacketType, 0x52)
	assert.True(t, ok)
	assert.Equal(t, "Temperature and humidity sensors", s)

	_, ok = DefaultRegistry.Label(TablePacketType, 0xEE)
	assert.False(t, ok)

	_, ok = DefaultRegistry.Label(TableID(-1), 0x00)
	assert.False(t, ok)
	_, ok = DefaultRegistry.Label(tableCount, 0x00)
	assert.False(t, ok)
}

func TestRegistriesAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.tables[TableForecast][0x01] = "Bright"
	assert.Equal(t, "Bright", r.Lookup(TableForecast, 0x01))
	assert.Equal(t, "Sunny", DefaultRegistry.Lookup(TableForecast, 0x01))
}

func TestFlagsFallbackName(t *testing.T) {
	r := NewRegistry()
	delete(r.tables[TableProtocolsMsg5], 0)
	flags := r.Flags(TableProtocolsMsg5, 0x01)
	assert.Len(t, flags, 8)
	assert.Equal(t, Field{Key: "bit0", Value: Bool(true)}, flags[7])
}

func TestProtocolNamesMatchFlagTables(t *testing.T) {
	for i, name := range ProtocolNames {
		id := TableProtocolsMsg3 + TableID(i/8)
		s, ok := DefaultRegistry.Label(id, byte(7-i%8))
		assert.True(t, ok, name)
		assert.Equal(t, name, s)
	}
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyTempHum, FamilyOf(0x52))
	assert.Equal(t, FamilyRFXMeter, FamilyOf(0x71))
	assert.Equal(t, FamilyUnsupported, FamilyOf(0x72))
	assert.Equal(t, FamilyUnsupported, FamilyOf(0x41))
	assert.Equal(t, "52", FamilyTempHum.String())
}

func TestExtraNames(t *testing.T) {
	e, ok := ParseExtra("signal_level")
	assert.True(t, ok)
	assert.Equal(t, ExtraSignalLevel, e)
	_, ok = ParseExtra("nope")
	assert.False(t, ok)
	for e := Extra(0); e < extraCount; e++ {
		assert.NotEmpty(t, e.String())
	}
}
