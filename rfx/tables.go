package rfx

type table = map[byte]string

var houseCodes = table{
	0x41: "A", 0x42: "B", 0x43: "C", 0x44: "D",
	0x45: "E", 0x46: "F", 0x47: "G", 0x48: "H",
	0x49: "I", 0x4A: "J", 0x4B: "K", 0x4C: "L",
	0x4D: "M", 0x4E: "N", 0x4F: "O", 0x50: "P",
}

// Commands shared by most on/off style lighting subtypes.
var onOffGroup = table{
	0x00: "Off",
	0x01: "On",
	0x02: "Group off",
	0x03: "Group on",
}

var mdRemoteCommands = table{
	0x00: "Power",
	0x01: "Light",
	0x02: "Bright",
	0x03: "Dim",
	0x04: "100%",
	0x05: "50%",
	0x06: "25%",
	0x07: "Mode+",
	0x08: "Speed-",
	0x09: "Speed+",
	0x0A: "Mode-",
}

var atiRemoteCommands = table{
	0x00: "A", 0x01: "B", 0x02: "Power", 0x03: "TV", 0x04: "DVD",
	0x05: "?", 0x06: "Guide", 0x07: "Drag", 0x08: "VOL+", 0x09: "VOL-",
	0x0A: "MUTE", 0x0B: "CHAN+", 0x0C: "CHAN-", 0x0D: "1", 0x0E: "2",
	0x0F: "3", 0x10: "4", 0x11: "5", 0x12: "6", 0x13: "7",
	0x14: "8", 0x15: "9", 0x16: "txt", 0x17: "0", 0x18: "Snapshot ESC",
	0x19: "C", 0x1A: "^", 0x1B: "D", 0x1C: "TV/RADIO", 0x1D: "<",
	0x1E: "OK", 0x1F: ">", 0x20: "<-", 0x21: "E", 0x22: "v",
	0x23: "F", 0x24: "Rewind", 0x25: "Play", 0x26: "Fast forward", 0x27: "Record",
	0x28: "Stop", 0x29: "Pause", 0x2C: "TV", 0x2D: "VCR", 0x2E: "RADIO",
	0x2F: "TV Preview", 0x30: "Channel list", 0x31: "Video Desktop", 0x32: "red", 0x33: "green",
	0x34: "yellow", 0x35: "blue", 0x36: "rename TAB", 0x37: "Acquire image", 0x38: "edit image",
	0x39: "Full screen", 0x3A: "DVD Audio", 0x70: "Cursor-left", 0x71: "Cursor-right", 0x72: "Cursor-up",
	0x73: "Cursor-down", 0x74: "Cursor-up-left", 0x75: "Cursor-up-right", 0x76: "Cursor-down-right", 0x77: "Cursor-down-left",
	0x78: "V", 0x79: "V-End", 0x7C: "X", 0x7D: "X-End",
}

var atiPlusRemoteCommands = table{
	0x00: "A", 0x01: "B", 0x02: "Power", 0x03: "TV", 0x04: "DVD",
	0x05: "?", 0x06: "Guide", 0x07: "Drag", 0x08: "VOL+", 0x09: "VOL-",
	0x0A: "MUTE", 0x0B: "CHAN+", 0x0C: "CHAN-", 0x0D: "1", 0x0E: "2",
	0x0F: "3", 0x10: "4", 0x11: "5", 0x12: "6", 0x13: "7",
	0x14: "8", 0x15: "9", 0x16: "txt", 0x17: "0", 0x18: "Open Setup Menu",
	0x19: "C", 0x1A: "^", 0x1B: "D", 0x1C: "FM", 0x1D: "<",
	0x1E: "OK", 0x1F: ">", 0x20: "Max/Restore window", 0x21: "E", 0x22: "v",
	0x23: "F", 0x24: "Rewind", 0x25: "Play", 0x26: "Fast forward", 0x27: "Record",
	0x28: "Stop", 0x29: "Pause", 0x2A: "TV2", 0x2B: "Clock", 0x2C: "i",
	0x2D: "ATI", 0x2E: "RADIO", 0x2F: "TV Preview", 0x30: "Channel list", 0x31: "Video Desktop",
	0x32: "red", 0x33: "green", 0x34: "yellow", 0x35: "blue", 0x36: "rename TAB",
	0x37: "Acquire image", 0x38: "edit image", 0x39: "Full screen", 0x3A: "DVD Audio", 0x70: "Cursor-left",
	0x71: "Cursor-right", 0x72: "Cursor-up", 0x73: "Cursor-down", 0x74: "Cursor-up-left", 0x75: "Cursor-up-right",
	0x76: "Cursor-down-right", 0x77: "Cursor-down-left", 0x78: "Left Mouse Button", 0x79: "V-End", 0x7C: "Right Mouse Button",
	0x7D: "X-End",
}

var medionRemoteCommands = table{
	0x00: "Mute", 0x01: "B", 0x02: "Power", 0x03: "TV", 0x04: "DVD",
	0x05: "Photo", 0x06: "Music", 0x07: "Drag", 0x08: "VOL-", 0x09: "VOL+",
	0x0A: "MUTE", 0x0B: "CHAN+", 0x0C: "CHAN-", 0x0D: "1", 0x0E: "2",
	0x0F: "3", 0x10: "4", 0x11: "5", 0x12: "6", 0x13: "7",
	0x14: "8", 0x15: "9", 0x16: "txt", 0x17: "0", 0x18: "snapshot ESC",
	0x19: "DVD MENU", 0x1A: "^", 0x1B: "Setup", 0x1C: "TV/RADIO", 0x1D: "<",
	0x1E: "OK", 0x1F: ">", 0x20: "<-", 0x21: "E", 0x22: "v",
	0x23: "F", 0x24: "Rewind", 0x25: "Play", 0x26: "Fast forward", 0x27: "Record",
	0x28: "Stop", 0x29: "Pause", 0x2C: "TV", 0x2D: "VCR", 0x2E: "RADIO",
	0x2F: "TV Preview", 0x30: "Channel list", 0x31: "Video Desktop", 0x32: "red", 0x33: "green",
	0x34: "yellow", 0x35: "blue", 0x36: "rename TAB", 0x37: "Acquire image", 0x38: "edit image",
	0x39: "Full screen", 0x3A: "DVD Audio", 0x70: "Cursor-left", 0x71: "Cursor-right", 0x72: "Cursor-up",
	0x73: "Cursor-down", 0x74: "Cursor-up-left", 0x75: "Cursor-up-right", 0x76: "Cursor-down-right", 0x77: "Cursor-down-left",
	0x78: "V", 0x79: "V-End", 0x7C: "X", 0x7D: "X-End",
}

var pcRemoteCommands = table{
	0x02: "0", 0x82: "1", 0xD1: "MP3", 0x42: "2", 0xD2: "DVD",
	0xC2: "3", 0xD3: "CD", 0x22: "4", 0xD4: "PC or SHIFT-4", 0xA2: "5",
	0xD5: "SHIFT-5", 0x62: "6", 0xE2: "7", 0x12: "8", 0x92: "9",
	0xC0: "CH-", 0x40: "CH+", 0xE0: "VOL-", 0x60: "VOL+", 0xA0: "MUTE",
	0x3A: "INFO", 0x38: "REW", 0xB8: "FF", 0xB0: "PLAY", 0x64: "PAUSE",
	0x63: "STOP", 0xB6: "MENU", 0xFF: "REC", 0xC9: "EXIT", 0xD8: "TEXT",
	0xD9: "SHIFT-TEXT", 0xF2: "TELETEXT", 0xD7: "SHIFT-TELETEXT", 0xBA: "A+B", 0x52: "ENT",
	0xD6: "SHIFT-ENT", 0x70: "Cursor-left", 0x71: "Cursor-right", 0x72: "Cursor-up", 0x73: "Cursor-down",
	0x74: "Cursor-up-left", 0x75: "Cursor-up-right", 0x76: "Cursor-down-right", 0x77: "Cursor-down-left", 0x78: "Left mouse",
	0x79: "Left mouse-End", 0x7B: "Drag", 0x7C: "Right mouse", 0x7D: "Right mouse-End",
}

// Names of the 24 receiver protocols, bit 7 of msg3 first.
var ProtocolNames = [24]string{
	"Undecoded", "RFU6", "Byron SX", "RSL", "Lighting4", "FineOffset/Viking", "Rubicson", "AE Blyss",
	"BlindsT1/T2/T3/T4", "BlindsT0", "ProGuard", "FS20", "La Crosse", "Hideki/UPM", "AD LightwaveRF", "Mertik",
	"Visonic", "ATI", "Oregon Scientific", "Meiantech", "HomeEasy EU", "AC", "ARC", "X10",
}

// protocolFlags returns the flag table of message byte n (0 for msg3), keyed
// by bit number.
func protocolFlags(n int) table {
	t := table{}
	for i := 0; i < 8; i++ {
		t[byte(7-i)] = ProtocolNames[n*8+i]
	}
	return t
}

func builtinTables() map[TableID]table {
	return map[TableID]table{
		TablePacketType: {
			0x00: "Interface control",
			0x01: "Interface message",
			0x02: "Receiver/Transmitter message",
			0x03: "Undecoded RF message",
			0x10: "Lighting1",
			0x11: "Lighting2",
			0x12: "Lighting3",
			0x13: "Lighting4",
			0x14: "Lighting5",
			0x15: "Lighting6",
			0x16: "Chime",
			0x17: "Fan",
			0x18: "Curtain1",
			0x19: "Blinds1",
			0x1A: "RFY",
			0x20: "Security1",
			0x28: "Camera1",
			0x30: "Remote control and IR",
			0x40: "Thermostat1",
			0x41: "Thermostat2",
			0x42: "Thermostat3",
			0x4E: "BBQ temperature sensors",
			0x4F: "Temperature and rain sensors",
			0x50: "Temperature sensors",
			0x51: "Humidity sensors",
			0x52: "Temperature and humidity sensors",
			0x53: "Barometric sensors",
			0x54: "Temperature, humidity and barometric sensors",
			0x55: "Rain sensors",
			0x56: "Wind sensors",
			0x57: "UV sensors",
			0x58: "Date/time sensors",
			0x59: "Current sensors",
			0x5A: "Energy usage sensors",
			0x5B: "Current + Energy sensors",
			0x5C: "Power sensors",
			0x5D: "Weighing scale",
			0x70: "RFXSensor",
			0x71: "RFXMeter",
			0x72: "FS20",
		},

		TableInterfaceSubtype: {
			0x00: "Response on a mode command",
			0xFF: "Wrong command received from the application",
		},
		TableInterfaceCommand: {
			0x00: "Reset the receiver/transceiver",
			0x02: "Get status, return firmware versions and configuration of the interface",
			0x03: "Set mode msg1-msg5, return firmware versions and configuration of the interface",
			0x04: "Enable all receiving modes of the receiver/transceiver",
			0x05: "Enable reporting of undecoded packets",
			0x06: "Save receiving modes of the receiver/transceiver in non-volatile memory",
			0x07: "Start receiver",
			0x08: "T1 - for internal use by RFXCOM",
			0x09: "T2 - for internal use by RFXCOM",
		},
		TableTransceiverType: {
			0x50: "310MHz",
			0x51: "315MHz",
			0x52: "433.92MHz receiver only",
			0x53: "433.92MHz transceiver",
			0x55: "868.00MHz",
			0x56: "868.00MHz FSK",
			0x57: "868.30MHz",
			0x58: "868.30MHz FSK",
			0x59: "868.35MHz",
			0x5A: "868.35MHz FSK",
			0x5B: "868.95MHz",
		},
		TableProtocolsMsg3: protocolFlags(0),
		TableProtocolsMsg4: protocolFlags(1),
		TableProtocolsMsg5: protocolFlags(2),

		TableReceiverSubtype: {
			0x00: "Error, receiver did not lock",
			0x01: "Transmitter response",
		},
		TableReceiverMessage: {
			0x00: "ACK, transmit OK",
			0x01: "ACK, but transmit started after 3 seconds delay anyway with RF receive data",
			0x02: "NAK, transmitter did not lock on the requested transmit frequency",
			0x03: "NAK, AC address zero in id1-id4 not allowed",
		},

		TableUndecodedSubtype: {
			0x00: "AC",
			0x01: "ARC",
			0x02: "ATI",
			0x03: "Hideki/UPM",
			0x04: "LaCrosse/Viking",
			0x05: "AD",
			0x06: "Mertik",
			0x07: "Oregon 1",
			0x08: "Oregon 2",
			0x09: "Oregon 3",
			0x0A: "Proguard",
			0x0B: "Visonic",
			0x0C: "NEC",
			0x0D: "FS20",
			0x0E: "Reserved",
			0x0F: "Blinds",
			0x10: "Rubicson",
			0x11: "AE",
			0x12: "Fineoffset",
		},

		TableHouseCode: houseCodes,

		TableLighting1Subtype: {
			0x00: "X10 lighting",
			0x01: "ARC",
			0x02: "ELRO AB400D (Flamingo)",
			0x03: "Waveman",
			0x04: "Chacon EMW200",
			0x05: "IMPULS",
			0x06: "RisingSun",
			0x07: "Philips SBC",
			0x08: "Energenie ENER010",
			0x09: "Energenie 5-gang",
			0x0A: "COCO GDR2-2000R",
		},
		TableLighting1Command: {
			0x00: "Off",
			0x01: "On",
			0x02: "Dim",
			0x03: "Bright",
			0x05: "All/group Off",
			0x06: "All/group On",
			0x07: "Chime",
			0xFF: "Illegal command",
		},
		TableLighting2Subtype: {
			0x00: "AC",
			0x01: "HomeEasy EU",
			0x02: "ANSLUT",
			0x03: "Kambrook RF3672",
		},
		TableLighting2Command: {
			0x00: "Off",
			0x01: "On",
			0x02: "Set level",
			0x03: "Group off",
			0x04: "Group on",
			0x05: "Set group level",
		},
		TableLighting3Subtype: {
			0x00: "Ikea Koppla",
		},
		TableLighting3Command: {
			0x00: "Bright",
			0x08: "Dim",
			0x10: "On",
			0x11: "Level 1",
			0x12: "Level 2",
			0x13: "Level 3",
			0x14: "Level 4",
			0x15: "Level 5",
			0x16: "Level 6",
			0x17: "Level 7",
			0x18: "Level 8",
			0x19: "Level 9",
			0x1A: "Off",
			0x1C: "Program",
		},
		TableLighting4Subtype: {
			0x00: "PT2262",
		},
		TableLighting5Subtype: {
			0x00: "LightwaveRF, Siemens",
			0x01: "EMW100 GAO/Everflourish",
			0x02: "BBSB new types",
			0x03: "MDREMOTE LED dimmer",
			0x04: "Conrad RSL2",
			0x05: "Livolo",
			0x06: "RGB TRC02 (2 batt)",
			0x07: "Aoke Relay",
			0x08: "RGB TRC02_2 (3 batt)",
			0x09: "Eurodomest",
			0x0A: "Livolo Appliance 1-10",
			0x0B: "RGB432W",
			0x0C: "MDREMOTE 107 LED dimmer",
			0x0D: "Legrand CAD",
			0x0E: "Avantek",
			0x0F: "IT (Intertek, FA500, PROmax)",
			0x10: "MDREMOTE 108 LED dimmer",
			0x11: "Kangtai, Cotech",
		},
		TableLighting5LightwaveRF: {
			0x00: "Off",
			0x01: "On",
			0x02: "Group off",
			0x03: "Mood1",
			0x04: "Mood2",
			0x05: "Mood3",
			0x06: "Mood4",
			0x07: "Mood5",
			0x0A: "Unlock",
			0x0B: "Lock",
			0x0C: "All lock",
			0x0D: "Close (inline relay)",
			0x0E: "Stop (inline relay)",
			0x0F: "Open (inline relay)",
			0x10: "Set level",
		},
		TableLighting5EMW100: {
			0x00: "Off",
			0x01: "On",
			0x02: "Learn",
		},
		TableLighting5BBSB:     onOffGroup,
		TableLighting5MDRemote: mdRemoteCommands,
		TableLighting5RSL:      onOffGroup,
		TableLighting5Livolo: {
			0x00: "Group off",
			0x01: "On/Off gang1",
			0x02: "On/Off gang2 / dim+",
			0x03: "On/Off gang3 / dim-",
		},
		TableLighting5TRC02: {
			0x00: "Off",
			0x01: "On",
			0x02: "Bright",
			0x03: "Dim",
			0x04: "Color+",
			0x05: "Color-",
		},
		TableLighting5Aoke: {
			0x00: "Off",
			0x01: "On",
		},
		TableLighting5Eurodomest: onOffGroup,
		TableLighting5LivoloAppliance: {
			0x00: "All off",
			0x01: "Toggle gang1",
			0x02: "Toggle gang2",
			0x03: "Toggle gang3",
			0x04: "Toggle gang4",
			0x05: "Toggle gang5",
			0x06: "Toggle gang6",
			0x07: "Toggle gang7",
			0x08: "Toggle gang8",
			0x09: "Toggle gang9",
			0x0A: "Toggle gang10",
		},
		TableLighting5RGB432W: {
			0x00: "Off",
			0x01: "On",
			0x02: "Bright",
			0x03: "Dim",
			0x04: "Color+",
			0x05: "Color-",
			0x06: "Speed+",
			0x07: "Speed-",
		},
		TableLighting5Legrand: {
			0x00: "Toggle",
		},
		TableLighting5Avantek: onOffGroup,
		TableLighting5IT: {
			0x00: "Off",
			0x01: "On",
			0x02: "Group off",
			0x03: "Group on",
			0x04: "Set level",
		},
		TableLighting5Kangtai: onOffGroup,
		TableLighting5Unknown: {},
		TableLighting6Subtype: {
			0x00: "Blyss",
			0x01: "Cuveo",
		},
		TableLighting6Command: {
			0x00: "On",
			0x01: "Off",
			0x02: "Group on",
			0x03: "Group off",
		},

		TableChimeSubtype: {
			0x00: "Byron SX",
			0x01: "Byron MP001",
			0x02: "SelectPlus",
			0x03: "ByronBY",
			0x04: "Envivo",
			0x05: "Alfawise",
		},
		TableChimeSound: {
			0x01: "Tubular 3 notes",
			0x03: "Big Ben",
			0x05: "Tubular 2 notes",
			0x06: "Solo",
			0x09: "Tubular 2 notes",
			0x0D: "Tubular 3 notes",
			0x0E: "Big Ben",
		},

		TableSecuritySubtype: {
			0x00: "X10 security door/window sensor",
			0x01: "X10 security motion sensor",
			0x02: "X10 security remote (no alive packets)",
			0x03: "KD101 (no alive packets)",
			0x04: "Visonic PowerCode door/window sensor - Primary contact (with alive packets)",
			0x05: "Visonic PowerCode motion sensor (with alive packets)",
			0x06: "Visonic CodeSecure (no alive packets)",
			0x07: "Visonic PowerCode door/window sensor - Auxiliary contact (no alive packets)",
			0x08: "Meiantech",
			0x09: "SA30 (no alive packets)",
			0x0A: "RM174RF (no alive packets)",
		},
		TableSecurityStatus: {
			0x00: "Normal",
			0x01: "Normal delayed",
			0x02: "Alarm",
			0x03: "Alarm delayed",
			0x04: "Motion",
			0x05: "No motion",
			0x06: "Panic",
			0x07: "End panic",
			0x08: "IR",
			0x09: "Arm away",
			0x0A: "Arm away delayed",
			0x0B: "Arm home",
			0x0C: "Arm home delayed",
			0x0D: "Disarm",
			0x10: "Light 1 off",
			0x11: "Light 1 on",
			0x12: "Light 2 off",
			0x13: "Light 2 on",
			0x14: "Dark detected",
			0x15: "Light detected",
			0x16: "Batlow (SD18, CO18)",
			0x17: "Pair (KD101)",
			0x80: "Normal + tamper",
			0x81: "Normal delayed + tamper",
			0x82: "Alarm + tamper",
			0x83: "Alarm delayed + tamper",
			0x84: "Motion + tamper",
			0x85: "No motion + tamper",
		},

		TableCameraSubtype: {
			0x00: "X10 Ninja/Robocam",
		},
		TableCameraCommand: {
			0x00: "Left",
			0x01: "Right",
			0x02: "Up",
			0x03: "Down",
			0x04: "Position 1",
			0x05: "Program position 1",
			0x06: "Position 2",
			0x07: "Program position 2",
			0x08: "Position 3",
			0x09: "Program position 3",
			0x0A: "Position 4",
			0x0B: "Program position 4",
			0x0C: "Center",
			0x0D: "Program center position",
			0x0E: "Sweep",
			0x0F: "Program sweep",
		},

		TableRemoteSubtype: {
			0x00: "ATI Remote Wonder",
			0x01: "ATI Remote Wonder Plus",
			0x02: "Medion Remote",
			0x03: "X10 PC Remote",
			0x04: "ATI Remote Wonder II",
		},
		TableRemoteATI:     atiRemoteCommands,
		TableRemoteATIPlus: atiPlusRemoteCommands,
		TableRemoteMedion:  medionRemoteCommands,
		TableRemotePC:      pcRemoteCommands,

		TableThermostat1Subtype: {
			0x00: "Digimax, TLX7506",
			0x01: "Digimax with short format (no set point)",
		},
		TableThermostat1Status: {
			0x00: "No status available",
			0x01: "Demand",
			0x02: "No demand",
			0x03: "Initializing",
		},
		TableThermostat1Mode: {
			0x00: "Heating",
			0x01: "Cooling",
		},
		TableThermostat3Subtype: {
			0x00: "Mertik G6R-H4T1",
			0x01: "Mertik G6R-H4TB / G6-H4T / G6R-H4T21-Z22",
			0x02: "Mertik G6R-H4TD",
		},
		TableThermostat3Command: {
			0x00: "Off",
			0x01: "On",
			0x02: "Up",
			0x03: "Down",
			0x04: "Run Up / 2nd Off",
			0x05: "Run Down / 2nd On",
			0x06: "Stop",
		},

		TableBBQSubtype: {
			0x01: "Maverick ET-732",
		},
		TableTempRainSubtype: {
			0x01: "WS1200",
		},
		TableTempSubtype: {
			0x01: "THR128/138, THC138",
			0x02: "THC238/268, THN132, THWR288, THRN122, THN122, AW129/131",
			0x03: "THWR800",
			0x04: "RTHN318",
			0x05: "La Crosse TX2, TX3, TX4, TX17",
			0x06: "TS15C",
			0x07: "Viking 02811",
			0x08: "La Crosse WS2300",
			0x09: "RUBiCSON",
			0x0A: "TFA 30.3133",
			0x0B: "WT0122 Pool sensor",
		},
		TableHumiditySubtype: {
			0x01: "LaCrosse TX3",
			0x02: "LaCrosse WS2300",
			0x03: "Inovalley S80 plant humidity sensor",
		},
		TableHumidityStatus: {
			0x00: "Dry",
			0x01: "Comfort",
			0x02: "Normal",
			0x03: "Wet",
		},
		TableTempHumSubtype: {
			0x01: "THGN122/123, THGN132, THGR122/228/238/268",
			0x02: "THGR810, THGN800",
			0x03: "RTGR328",
			0x04: "THGR328",
			0x05: "WTGR800",
			0x06: "THGR918, THGRN228, THGN500",
			0x07: "TFA TS34C, Cresta",
			0x08: "WT260, WT260H, WT440H, WT450, WT450H",
			0x09: "Viking 02035, 02038",
			0x0A: "Rubicson",
			0x0B: "EW109",
			0x0C: "Imagintronix/Opus XT300 soil sensor",
			0x0D: "Alecto WS1700 and compatibles",
			0x0E: "Alecto WS3500, WS4500, Auriol H13726, Hama EWS1500, Meteoscan W155/W160, Ventus WS155",
		},
		TableBaroSubtype: {
			0x01: "BARO1",
		},
		TableForecast: {
			0x00: "No forecast available",
			0x01: "Sunny",
			0x02: "Partly cloudy",
			0x03: "Cloudy",
			0x04: "Rain",
		},
		TableTempHumBaroSubtype: {
			0x01: "BTHR918, BTHGN129",
			0x02: "BTHR918N, BTHR968",
		},
		TableRainSubtype: {
			0x01: "RGR126/682/918/928",
			0x02: "PCR800",
			0x03: "TFA",
			0x04: "UPM RG700",
			0x05: "La Crosse WS2300",
			0x06: "La Crosse TX5",
			0x07: "Alecto WS4500, Auriol H13726, Hama EWS1500, Meteoscan W155/W160, Ventus WS155",
		},
		TableWindSubtype: {
			0x01: "WTGR800",
			0x02: "WGR800",
			0x03: "STR918, WGR918, WGR928",
			0x04: "TFA",
			0x05: "UPM WDS500",
			0x06: "La Crosse WS2300",
			0x07: "Alecto WS4500, Auriol H13726, Hama EWS1500, Meteoscan W155/W160, Ventus WS155",
		},
		TableUVSubtype: {
			0x01: "UVN128, UV138",
			0x02: "UVN800",
			0x03: "TFA",
		},
		TableDateTimeSubtype: {
			0x01: "RTGR328N",
		},
		TableDayOfWeek: {
			0x01: "Sunday",
			0x02: "Monday",
			0x03: "Tuesday",
			0x04: "Wednesday",
			0x05: "Thursday",
			0x06: "Friday",
			0x07: "Saturday",
		},

		TableCurrentSubtype: {
			0x01: "ELEC1 - OWL CM113, Electrisave, cent-a-meter",
		},
		TableEnergySubtype: {
			0x01: "ELEC2 - OWL CM119, CM160",
			0x02: "ELEC3 - OWL CM180",
		},
		TableCurrentEnergySubtype: {
			0x01: "ELEC4 - OWL CM180i",
		},
		TablePowerSubtype: {
			0x01: "ELEC5 - Revolt",
		},
		TableWeightSubtype: {
			0x01: "BWR101/102",
			0x02: "GR101",
		},

		TableRFXSensorSubtype: {
			0x00: "RFXSensor temperature",
			0x01: "RFXSensor A/D",
			0x02: "RFXSensor voltage",
			0x03: "RFXSensor message",
		},
		TableRFXSensorMessage: {
			0x01: "Sensor addresses incremented",
			0x02: "Battery low detected",
			0x81: "No 1-wire device connected",
			0x82: "1-Wire ROM CRC error",
			0x83: "1-Wire device connected is not a DS18B20 or DS2438",
			0x84: "No end of read signal received from 1-Wire device",
			0x85: "1-Wire scratchpad CRC error",
		},
		TableRFXMeterSubtype: {
			0x00: "Normal data packet",
			0x01: "New interval time set",
			0x02: "Calibrate value in <counter> in usec",
			0x03: "New address set",
			0x04: "Counter value reset within 5 seconds",
			0x0B: "Counter value reset executed",
			0x0C: "Set interval mode within 5 seconds",
			0x0D: "Calibration mode within 5 seconds",
			0x0E: "Set address mode within 5 seconds",
			0x0F: "Identification packet",
		},
	}
}
