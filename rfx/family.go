package rfx

import "fmt"

// Family is a message family, selected by the packet type byte.
type Family byte

const (
	FamilyUnsupported   Family = 0x00
	FamilyInterface     Family = 0x01
	FamilyReceiver      Family = 0x02
	FamilyUndecoded     Family = 0x03
	FamilyLighting1     Family = 0x10
	FamilyLighting2     Family = 0x11
	FamilyLighting3     Family = 0x12
	FamilyLighting4     Family = 0x13
	FamilyLighting5     Family = 0x14
	FamilyLighting6     Family = 0x15
	FamilyChime         Family = 0x16
	FamilySecurity1     Family = 0x20
	FamilyCamera1       Family = 0x28
	FamilyRemote        Family = 0x30
	FamilyThermostat1   Family = 0x40
	FamilyThermostat3   Family = 0x42
	FamilyBBQ           Family = 0x4E
	FamilyTempRain      Family = 0x4F
	FamilyTemp          Family = 0x50
	FamilyHumidity      Family = 0x51
	FamilyTempHum       Family = 0x52
	FamilyBaro          Family = 0x53
	FamilyTempHumBaro   Family = 0x54
	FamilyRain          Family = 0x55
	FamilyWind          Family = 0x56
	FamilyUV            Family = 0x57
	FamilyDateTime      Family = 0x58
	FamilyCurrent       Family = 0x59
	FamilyEnergy        Family = 0x5A
	FamilyCurrentEnergy Family = 0x5B
	FamilyPower         Family = 0x5C
	FamilyWeight        Family = 0x5D
	FamilyRFXSensor     Family = 0x70
	FamilyRFXMeter      Family = 0x71
)

// FamilyOf maps a packet type byte to its family. Type bytes without a
// decoder map to FamilyUnsupported.
func FamilyOf(packetType byte) Family {
	switch f := Family(packetType); f {
	case FamilyInterface, FamilyReceiver, FamilyUndecoded,
		FamilyLighting1, FamilyLighting2, FamilyLighting3, FamilyLighting4,
		FamilyLighting5, FamilyLighting6, FamilyChime,
		FamilySecurity1, FamilyCamera1, FamilyRemote,
		FamilyThermostat1, FamilyThermostat3,
		FamilyBBQ, FamilyTempRain, FamilyTemp, FamilyHumidity, FamilyTempHum,
		FamilyBaro, FamilyTempHumBaro, FamilyRain, FamilyWind, FamilyUV,
		FamilyDateTime, FamilyCurrent, FamilyEnergy, FamilyCurrentEnergy,
		FamilyPower, FamilyWeight, FamilyRFXSensor, FamilyRFXMeter:
		return f
	}
	return FamilyUnsupported
}

// MinLength is the number of bytes, length byte included, needed to decode a
// frame of the family.
func (f Family) MinLength() int {
	switch f {
	case FamilyInterface:
		return 10
	case FamilyReceiver, FamilyUndecoded:
		return 5
	case FamilyLighting1, FamilyChime, FamilyRFXSensor:
		return 8
	case FamilyLighting2, FamilyLighting6, FamilyRain:
		return 12
	case FamilyLighting3, FamilySecurity1, FamilyThermostat3,
		FamilyTemp, FamilyHumidity, FamilyWeight:
		return 9
	case FamilyLighting4, FamilyThermostat1, FamilyBaro, FamilyUV:
		return 10
	case FamilyLighting5, FamilyBBQ, FamilyTempRain, FamilyTempHum, FamilyRFXMeter:
		return 11
	case FamilyCamera1, FamilyRemote:
		return 7
	case FamilyTempHumBaro, FamilyDateTime, FamilyCurrent:
		return 14
	case FamilyWind:
		return 17
	case FamilyEnergy:
		return 18
	case FamilyCurrentEnergy:
		return 20
	case FamilyPower:
		return 16
	}
	return headerLength
}

func (f Family) String() string {
	if f == FamilyUnsupported {
		return "unsupported"
	}
	return fmt.Sprintf("%02x", byte(f))
}
