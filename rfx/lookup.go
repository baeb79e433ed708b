package rfx

import "fmt"

// TableID identifies one symbolic table of the registry.
type TableID int

const (
	TablePacketType TableID = iota

	TableInterfaceSubtype
	TableInterfaceCommand
	TableTransceiverType
	TableProtocolsMsg3
	TableProtocolsMsg4
	TableProtocolsMsg5

	TableReceiverSubtype
	TableReceiverMessage

	TableUndecodedSubtype

	TableHouseCode

	TableLighting1Subtype
	TableLighting1Command
	TableLighting2Subtype
	TableLighting2Command
	TableLighting3Subtype
	TableLighting3Command
	TableLighting4Subtype
	TableLighting5Subtype
	TableLighting5LightwaveRF
	TableLighting5EMW100
	TableLighting5BBSB
	TableLighting5MDRemote
	TableLighting5RSL
	TableLighting5Livolo
	TableLighting5TRC02
	TableLighting5Aoke
	TableLighting5Eurodomest
	TableLighting5LivoloAppliance
	TableLighting5RGB432W
	TableLighting5Legrand
	TableLighting5Avantek
	TableLighting5IT
	TableLighting5Kangtai
	TableLighting5Unknown
	TableLighting6Subtype
	TableLighting6Command

	TableChimeSubtype
	TableChimeSound

	TableSecuritySubtype
	TableSecurityStatus

	TableCameraSubtype
	TableCameraCommand

	TableRemoteSubtype
	TableRemoteATI
	TableRemoteATIPlus
	TableRemoteMedion
	TableRemotePC

	TableThermostat1Subtype
	TableThermostat1Status
	TableThermostat1Mode
	TableThermostat3Subtype
	TableThermostat3Command

	TableBBQSubtype
	TableTempRainSubtype
	TableTempSubtype
	TableHumiditySubtype
	TableHumidityStatus
	TableTempHumSubtype
	TableBaroSubtype
	TableForecast
	TableTempHumBaroSubtype
	TableRainSubtype
	TableWindSubtype
	TableUVSubtype
	TableDateTimeSubtype
	TableDayOfWeek

	TableCurrentSubtype
	TableEnergySubtype
	TableCurrentEnergySubtype
	TablePowerSubtype
	TableWeightSubtype

	TableRFXSensorSubtype
	TableRFXSensorMessage
	TableRFXMeterSubtype

	tableCount
)

// Registry holds every symbolic table. It is read only once built, so a
// single Registry may be shared by any number of decoders.
type Registry struct {
	tables [tableCount]map[byte]string
}

// DefaultRegistry is built at process start and used by Decode.
var DefaultRegistry = NewRegistry()

// NewRegistry builds a registry with the builtin tables.
func NewRegistry() *Registry {
	r := &Registry{}
	for id, t := range builtinTables() {
		m := make(map[byte]string, len(t))
		for k, v := range t {
			m[k] = v
		}
		r.tables[id] = m
	}
	return r
}

// Label returns the label for key, and whether the table defines it.
func (r *Registry) Label(id TableID, key byte) (string, bool) {
	if id < 0 || id >= tableCount {
		return "", false
	}
	s, ok := r.tables[id][key]
	return s, ok
}

// Lookup returns the label for key. Unknown keys render as 0x followed by two
// uppercase hex digits.
func (r *Registry) Lookup(id TableID, key byte) string {
	if s, ok := r.Label(id, key); ok {
		return s
	}
	return unknownLabel(key)
}

// Flags expands the bitmask v against a flag table keyed by bit number,
// from bit 7 down to bit 0.
func (r *Registry) Flags(id TableID, v byte) List {
	flags := make(List, 0, 8)
	for bit := 7; bit >= 0; bit-- {
		name, ok := r.Label(id, byte(bit))
		if !ok {
			name = fmt.Sprintf("bit%d", bit)
		}
		flags = append(flags, Field{Key: name, Value: Bool(v&(1<<uint(bit)) != 0)})
	}
	return flags
}

func unknownLabel(key byte) string {
	return fmt.Sprintf("0x%02X", key)
}
