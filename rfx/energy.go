package rfx

// Energy meters accumulate in units of 1/223.666 Wh.
const energyDivisor = 223.666

func (b *builder) count() {
	b.add("Count", Int(b.data[6]), "")
	b.extra(ExtraCount, Int(b.data[6]))
}

func (b *builder) currents(offset int) {
	for i, e := range []Extra{ExtraCurrent1, ExtraCurrent2, ExtraCurrent3} {
		a := round(float64(uint16At(b.data, offset+2*i))/10, 1)
		b.add("Current Ch. "+string(rune('1'+i)), Float(a), "A")
		b.extra(e, Float(a))
	}
}

func (b *builder) total(offset int) {
	wh := round(float64(uint48At(b.data, offset))/energyDivisor, 2)
	b.add("Total usage", Float(wh), "Wh")
	b.extra(ExtraTotalUsage, Float(wh))
}

// 0D 59 01 0C 89 00 07 00 00 00 1A 00 00 79
//             ^^^^^ id
//                   ^^ count
//                      ^^^^^ ^^^^^ ^^^^^ current 1-3
//                                        ^^ signal/battery
func (b *builder) current() {
	b.id(4, 5)
	b.count()
	b.currents(7)
	b.batterySignal(13)
}

// 11 5A 02 02 87 82 00 00 00 01 01 00 00 00 00 84 90 69
//             ^^^^^ id
//                   ^^ count
//                      ^^^^^^^^^^^ instant
//                                  ^^^^^^^^^^^^^^^^^ total
//                                                    ^^ signal/battery
func (b *builder) energy() {
	b.id(4, 5)
	b.count()
	w := uint32At(b.data, 7)
	b.add("Instant usage", Int(w), "W")
	b.extra(ExtraInstantPower, Int(w))
	b.total(11)
	b.batterySignal(17)
}

func (b *builder) currentEnergy() {
	b.id(4, 5)
	b.count()
	b.currents(7)
	b.total(13)
	b.batterySignal(19)
}

// 0F 5C 01 00 12 34 EB 00 1C 05 6E 01 2C 5F 32 70
//             ^^^^^ id
//                   ^^ voltage
//                      ^^^^^ current
//                            ^^^^^ instant power
//                                  ^^^^^ total
//                                        ^^ power factor
//                                           ^^ frequency
//                                              ^^ signal
func (b *builder) power() {
	b.id(4, 5)
	b.add("Voltage", Int(b.data[6]), "V")
	b.extra(ExtraVoltage, Int(b.data[6]))

	current := round(float64(uint16At(b.data, 7))/100, 2)
	b.add("Current", Float(current), "A")
	b.extra(ExtraCurrent, Float(current))

	power := round(float64(uint16At(b.data, 9))/10, 1)
	b.add("Instant power", Float(power), "W")
	b.extra(ExtraPower, Float(power))

	energy := round(float64(uint16At(b.data, 11))/100, 2)
	b.add("Total usage", Float(energy), "kWh")
	b.extra(ExtraEnergy, Float(energy))

	pf := round(float64(b.data[13])/100, 2)
	b.add("Power factor", Float(pf), "")
	b.extra(ExtraPowerFactor, Float(pf))

	b.add("Frequency", Int(b.data[14]), "Hz")
	b.extra(ExtraFrequency, Int(b.data[14]))
	b.signal(15)
}
