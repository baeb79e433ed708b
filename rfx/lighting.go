package rfx

import (
	"strconv"
	"strings"
)

// 07 10 00 2A 45 05 01 70
//             ^^ housecode
//                ^^ unitcode
//                   ^^ command
//                      ^^ signal
func (b *builder) lighting1() {
	b.lookup("Housecode", TableHouseCode, 4, ExtraHouseCode)
	b.add("Unitcode", Int(b.data[5]), "")
	b.lookup("Command", TableLighting1Command, 6, ExtraCommand)
	b.signal(7)
	b.extra(ExtraID, String(hexID(b.data, 4, 5)))
	b.extra(ExtraUnitCode, Int(b.data[5]))
}

// 0B 11 00 2A 01 23 45 67 05 02 08 70
//             ^^^^^^^^^^^ id
//                         ^^ unitcode
//                            ^^ command
//                               ^^ dim level
//                                  ^^ signal
func (b *builder) lighting2() {
	b.id(4, 5, 6, 7)
	b.add("Unitcode", Int(b.data[8]), "")
	b.lookup("Command", TableLighting2Command, 9, ExtraCommand)
	b.add("Dim level", Int(b.data[10]), "")
	b.signal(11)
	b.extra(ExtraUnitCode, Int(b.data[8]))
	b.extra(ExtraDimLevel, Int(b.data[10]))
}

func (b *builder) lighting3() {
	system := int(b.data[4]&0x0F) + 1
	b.add("System", Int(system), "")
	b.add("Channel", String(koppla(b.data[5], b.data[6])), "")
	b.lookup("Command", TableLighting3Command, 7, ExtraCommand)
	b.signal(8)
	b.extra(ExtraID, String(hexID(b.data, 4)))
	b.extra(ExtraUnitCode, String(koppla(b.data[5], b.data[6])))
}

// koppla lists the channels selected by the channel bytes: bits 0-7 of the
// first are channels 1-8, bits 0-1 of the second channels 9 and 10.
func koppla(ch8to1, ch10to9 byte) string {
	var chs []string
	for i := 0; i < 8; i++ {
		if ch8to1&(1<<uint(i)) != 0 {
			chs = append(chs, strconv.Itoa(i+1))
		}
	}
	for i := 0; i < 2; i++ {
		if ch10to9&(1<<uint(i)) != 0 {
			chs = append(chs, strconv.Itoa(i+9))
		}
	}
	if len(chs) == 0 {
		return "None"
	}
	return strings.Join(chs, ",")
}

// 09 13 00 01 45 54 55 01 5E 60
//             ^^^^^^^^ code
//                      ^^^^^ pulse
//                            ^^ signal
func (b *builder) lighting4() {
	b.id(4, 5, 6)
	b.add("Pulse", Int(uint16At(b.data, 7)), "usec")
	b.signal(9)
}

type lighting5Layout struct {
	commands TableID
	unitCode bool
	level    bool
}

var lighting5Layouts = map[byte]lighting5Layout{
	0x00: {TableLighting5LightwaveRF, true, true},
	0x01: {TableLighting5EMW100, true, false},
	0x02: {TableLighting5BBSB, true, false},
	0x03: {TableLighting5MDRemote, false, false},
	0x04: {TableLighting5RSL, true, false},
	0x05: {TableLighting5Livolo, false, false},
	0x06: {TableLighting5TRC02, false, false},
	0x07: {TableLighting5Aoke, false, false},
	0x08: {TableLighting5TRC02, false, false},
	0x09: {TableLighting5Eurodomest, true, false},
	0x0A: {TableLighting5LivoloAppliance, false, false},
	0x0B: {TableLighting5RGB432W, false, false},
	0x0C: {TableLighting5MDRemote, false, false},
	0x0D: {TableLighting5Legrand, false, false},
	0x0E: {TableLighting5Avantek, true, false},
	0x0F: {TableLighting5IT, true, true},
	0x10: {TableLighting5MDRemote, false, false},
	0x11: {TableLighting5Kangtai, true, false},
}

// 0A 14 00 01 F3 94 AF 01 01 00 80
//             ^^^^^^^^ id
//                      ^^ unitcode
//                         ^^ command
//                            ^^ level
//                               ^^ signal
func (b *builder) lighting5() {
	layout, ok := lighting5Layouts[b.subtype()]
	if !ok {
		layout = lighting5Layout{commands: TableLighting5Unknown}
	}
	b.id(4, 5, 6)
	if layout.unitCode {
		b.add("Unitcode", Int(b.data[7]), "")
		b.extra(ExtraUnitCode, Int(b.data[7]))
	} else {
		b.notUsed("Unitcode")
	}
	b.lookup("Command", layout.commands, 8, ExtraCommand)
	if layout.level {
		b.add("Level", Int(b.data[9]), "")
		b.extra(ExtraDimLevel, Int(b.data[9]))
	} else {
		b.notUsed("Level")
	}
	b.signal(10)
}

// 0B 15 00 01 12 34 41 01 00 02 00 60
//             ^^^^^ id
//                   ^^ groupcode
//                      ^^ unitcode
//                         ^^ command
//                            ^^ command sequence number
//                                  ^^ signal
func (b *builder) lighting6() {
	b.id(4, 5)
	b.lookup("Groupcode", TableHouseCode, 6, ExtraGroupCode)
	b.add("Unitcode", Int(b.data[7]), "")
	b.lookup("Command", TableLighting6Command, 8, ExtraCommand)
	b.add("Command seqnbr", Int(b.data[9]), "")
	b.signal(11)
	b.extra(ExtraUnitCode, Int(b.data[7]))
}
