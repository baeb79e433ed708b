package rfx

// 07 16 00 06 00 7A 01 70
//             ^^^^^ id
//                   ^^ sound
//                      ^^ signal/battery
func (b *builder) chime() {
	b.id(4, 5)
	b.lookup("Sound", TableChimeSound, 6, ExtraSound)
	b.batterySignal(7)
}

// 08 20 00 00 E2 A1 9F 04 79
//             ^^^^^^^^ id
//                      ^^ status
//                         ^^ signal/battery
func (b *builder) security1() {
	b.id(4, 5, 6)
	b.lookup("Status", TableSecurityStatus, 7, ExtraStatus)
	b.batterySignal(8)
}

func (b *builder) camera1() {
	b.lookup("Housecode", TableHouseCode, 4, ExtraHouseCode)
	b.lookup("Command", TableCameraCommand, 5, ExtraCommand)
	b.signal(6)
	b.extra(ExtraID, String(hexID(b.data, 4)))
}

var remoteCommands = map[byte]TableID{
	0x00: TableRemoteATI,
	0x01: TableRemoteATIPlus,
	0x02: TableRemoteMedion,
	0x03: TableRemotePC,
	0x04: TableRemoteATIPlus,
}

// 06 30 00 01 0F 0D 70
//             ^^ id
//                ^^ command
//                   ^^ signal
func (b *builder) remote() {
	commands, ok := remoteCommands[b.subtype()]
	if !ok {
		commands = TableLighting5Unknown
	}
	b.id(4)
	b.lookup("Command", commands, 5, ExtraCommand)
	b.signal(6)
}

// 09 40 00 01 6B 18 14 15 02 70
//             ^^^^^ id
//                   ^^ temperature
//                      ^^ set point
//                         ^^ status (bits 0-1), mode (bit 7)
//                            ^^ signal
func (b *builder) thermostat1() {
	b.id(4, 5)
	b.add("Temperature", Int(b.data[6]), "C")
	b.extra(ExtraTemperature, Float(b.data[6]))
	if b.subtype() == 0x00 {
		b.add("Set point", Int(b.data[7]), "C")
		b.extra(ExtraSetPoint, Int(b.data[7]))
	} else {
		b.notUsed("Set point")
	}
	status := b.reg.Lookup(TableThermostat1Status, b.data[8]&0x03)
	mode := b.reg.Lookup(TableThermostat1Mode, b.data[8]>>7)
	b.add("Status", String(status), "")
	b.add("Mode", String(mode), "")
	b.extra(ExtraStatus, String(status))
	b.extra(ExtraMode, String(mode))
	b.signal(9)
}

func (b *builder) thermostat3() {
	b.id(4, 5, 6)
	b.lookup("Command", TableThermostat3Command, 7, ExtraCommand)
	b.signal(8)
}
