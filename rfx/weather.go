package rfx

import "fmt"

// Tips of the La Crosse TX5 rain gauge are 0.266mm each.
const tx5TipDepth = 0.266

// 0A 4E 01 00 12 34 00 19 00 5A 79
//             ^^^^^ id
//                   ^^^^^ sensor 1 (food)
//                         ^^^^^ sensor 2 (BBQ)
//                               ^^ signal/battery
func (b *builder) bbq() {
	b.id(4, 5)
	s1 := uint16At(b.data, 6)
	s2 := uint16At(b.data, 8)
	b.add("Sensor 1", Int(s1), "C")
	b.add("Sensor 2", Int(s2), "C")
	b.extra(ExtraSensor1, Int(s1))
	b.extra(ExtraSensor2, Int(s2))
	b.batterySignal(10)
}

func (b *builder) tempRain() {
	b.id(4, 5)
	b.temperature("Temperature", 6, ExtraTemperature)
	total := round(float64(uint16At(b.data, 8))/10, 1)
	b.add("Rain total", Float(total), "mm")
	b.extra(ExtraRainTotal, Float(total))
	b.batterySignal(10)
}

// 08 50 02 2A 96 03 81 41 79
//             ^^^^^ id
//                   ^^^^^ temperature
//                         ^^ signal/battery
func (b *builder) temp() {
	b.id(4, 5)
	b.temperature("Temperature", 6, ExtraTemperature)
	b.batterySignal(8)
}

func (b *builder) humidity() {
	b.id(4, 5)
	b.add("Humidity", Int(b.data[6]), "%")
	b.extra(ExtraHumidity, Int(b.data[6]))
	b.lookup("Humidity Status", TableHumidityStatus, 7, ExtraHumidityStatus)
	b.batterySignal(8)
}

// 0A 52 01 2A 96 03 81 41 60 03 79
//             ^^^^^ id
//                   ^^^^^ temperature
//                         ^^ humidity
//                            ^^ humidity status
//                               ^^ signal/battery
func (b *builder) tempHum() {
	b.id(4, 5)
	b.temperature("Temperature", 6, ExtraTemperature)
	b.add("Humidity", Int(b.data[8]), "%")
	b.extra(ExtraHumidity, Int(b.data[8]))
	b.lookup("Humidity Status", TableHumidityStatus, 9, ExtraHumidityStatus)
	b.batterySignal(10)
}

func (b *builder) pressure(offset, correction int) {
	p := int(uint16At(b.data, offset)) + correction
	b.add("Barometric pressure", Int(p), "hPa")
	b.extra(ExtraBarometric, Int(p))
}

// 09 53 01 05 12 34 03 F5 01 79
//             ^^^^^ id
//                   ^^^^^ pressure
//                         ^^ forecast
//                            ^^ signal/battery
func (b *builder) baro(correction int) {
	b.id(4, 5)
	b.pressure(6, correction)
	b.lookup("Forecast", TableForecast, 8, ExtraForecast)
	b.batterySignal(9)
}

// 0D 54 01 11 70 02 00 A1 31 01 03 F2 01 69
//             ^^^^^ id
//                   ^^^^^ temperature
//                         ^^ humidity
//                            ^^ humidity status
//                               ^^^^^ pressure
//                                     ^^ forecast
//                                        ^^ signal/battery
func (b *builder) tempHumBaro(correction int) {
	b.id(4, 5)
	b.temperature("Temperature", 6, ExtraTemperature)
	b.add("Humidity", Int(b.data[8]), "%")
	b.extra(ExtraHumidity, Int(b.data[8]))
	b.lookup("Humidity Status", TableHumidityStatus, 9, ExtraHumidityStatus)
	b.pressure(10, correction)
	b.lookup("Forecast", TableForecast, 12, ExtraForecast)
	b.batterySignal(13)
}

// 0B 55 02 03 12 34 02 50 01 23 45 57
//             ^^^^^ id
//                   ^^^^^ rain rate
//                         ^^^^^^^^ rain total
//                                  ^^ signal/battery
func (b *builder) rain() {
	b.id(4, 5)
	rate := uint16At(b.data, 6)
	switch b.subtype() {
	case 0x01:
		b.add("Rain rate", Int(rate), "mm/h")
		b.extra(ExtraRainRate, Float(rate))
	case 0x02:
		r := round(float64(rate)/100, 2)
		b.add("Rain rate", Float(r), "mm/h")
		b.extra(ExtraRainRate, Float(r))
	default:
		b.notUsed("Rain rate")
	}
	var total float64
	if b.subtype() == 0x06 {
		total = round(float64(b.data[10])*tx5TipDepth, 3)
	} else {
		raw := uint32(b.data[8])<<16 | uint32(b.data[9])<<8 | uint32(b.data[10])
		total = round(float64(raw)/10, 1)
	}
	b.add("Rain total", Float(total), "mm")
	b.extra(ExtraRainTotal, Float(total))
	b.batterySignal(11)
}

// 10 56 01 03 2F 00 00 F7 00 20 00 24 01 60 00 00 59
//             ^^^^^ id
//                   ^^^^^ direction
//                         ^^^^^ average speed
//                               ^^^^^ gust
//                                     ^^^^^ temperature
//                                           ^^^^^ chill
//                                                 ^^ signal/battery
func (b *builder) wind() {
	b.id(4, 5)
	dir := uint16At(b.data, 6)
	b.add("Wind direction", Int(dir), "degrees")
	b.extra(ExtraWindDirection, Int(dir))
	if b.subtype() != 0x05 {
		avg := round(float64(uint16At(b.data, 8))/10, 1)
		b.add("Wind avg speed", Float(avg), "m/s")
		b.extra(ExtraWindAverageSpeed, Float(avg))
	} else {
		b.notUsed("Wind avg speed")
	}
	gust := round(float64(uint16At(b.data, 10))/10, 1)
	b.add("Wind gust", Float(gust), "m/s")
	b.extra(ExtraWindGust, Float(gust))
	if b.subtype() == 0x04 {
		b.temperature("Temperature", 12, ExtraTemperature)
		b.temperature("Windchill", 14, ExtraWindChill)
	} else {
		b.notUsed("Temperature")
		b.notUsed("Windchill")
	}
	b.batterySignal(16)
}

// 09 57 03 01 12 34 0B 00 E1 79
//             ^^^^^ id
//                   ^^ uv
//                      ^^^^^ temperature
//                            ^^ signal/battery
func (b *builder) uv() {
	b.id(4, 5)
	uv := round(float64(b.data[6])/10, 1)
	b.add("UV", Float(uv), "")
	b.extra(ExtraUV, Float(uv))
	if b.subtype() == 0x03 {
		b.temperature("Temperature", 7, ExtraTemperature)
	} else {
		b.notUsed("Temperature")
	}
	b.batterySignal(9)
}

// 0D 58 01 00 12 34 0E 0A 12 06 15 2D 00 79
//             ^^^^^ id
//                   ^^ ^^ ^^ yy mm dd
//                            ^^ day of week
//                               ^^ ^^ ^^ hh mm ss
//                                        ^^ signal/battery
func (b *builder) dateTime() {
	b.id(4, 5)
	date := fmt.Sprintf("%02d-%02d-%02d", b.data[6], b.data[7], b.data[8])
	clock := fmt.Sprintf("%02d:%02d:%02d", b.data[10], b.data[11], b.data[12])
	b.add("Date (yy-mm-dd)", String(date), "")
	b.add("Day of week", String(b.reg.Lookup(TableDayOfWeek, b.data[9])), "")
	b.add("Time", String(clock), "")
	b.extra(ExtraDate, String(date))
	b.extra(ExtraTime, String(clock))
	b.batterySignal(13)
}

func (b *builder) weight() {
	b.id(4, 5)
	w := round(float64(uint16At(b.data, 6))/10, 1)
	b.add("Weight", Float(w), "kg")
	b.extra(ExtraWeight, Float(w))
	b.batterySignal(8)
}
