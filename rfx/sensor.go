package rfx

import "strconv"

// 07 70 00 00 01 09 C4 70
//             ^^ id
//                ^^^^^ value
//                      ^^ signal
func (b *builder) rfxSensor() {
	b.id(4)
	switch b.subtype() {
	case 0x00:
		magnitude := int(b.data[5]&0x7F)<<8 | int(b.data[6])
		t := strconv.FormatFloat(float64(magnitude)*0.01, 'f', 2, 64)
		if b.data[5]&0x80 != 0 {
			t = "-" + t
		}
		b.add("Temperature", String(t), "C")
		f, _ := strconv.ParseFloat(t, 64)
		b.extra(ExtraTemperature, Float(f))
	case 0x01:
		mv := uint16At(b.data, 5)
		b.add("A/D", Int(mv), "mV")
		b.extra(ExtraVoltage, Int(mv))
	case 0x02:
		mv := uint16At(b.data, 5)
		b.add("Voltage", Int(mv), "mV")
		b.extra(ExtraVoltage, Int(mv))
	case 0x03:
		b.lookup("Message", TableRFXSensorMessage, 6, ExtraMessage)
	default:
		b.add("Message", String(hexID(b.data, 5, 6)), "")
	}
	b.signal(7)
}

// 0A 71 00 01 12 34 00 00 30 39 70
//             ^^^^^ id
//                   ^^^^^^^^^^^ counter
//                               ^^ signal
func (b *builder) rfxMeter() {
	b.id(4, 5)
	c := uint32At(b.data, 6)
	b.add("Counter", Int(c), "")
	b.extra(ExtraCounter, Int(c))
	b.signal(10)
}
