package rfx

import "fmt"

// 0D 01 00 01 02 53 3E 00 0C 2F 01 01 00 00
//                ^^ command
//                   ^^ transceiver type
//                      ^^ firmware version
//                         ^^ ^^ ^^ msg3, msg4, msg5 enabled protocols
func (b *builder) interfaceMessage() {
	b.lookup("Command", TableInterfaceCommand, 4, ExtraCommand)
	b.add("Transceiver type", String(b.reg.Lookup(TableTransceiverType, b.data[5])), "")
	b.add("Firmware version", Int(b.data[6]), "")
	b.add("Protocols msg3", b.reg.Flags(TableProtocolsMsg3, b.data[7]), "")
	b.add("Protocols msg4", b.reg.Flags(TableProtocolsMsg4, b.data[8]), "")
	b.add("Protocols msg5", b.reg.Flags(TableProtocolsMsg5, b.data[9]), "")
}

// EnabledProtocols lists the names of the protocols flagged in an interface
// message report, in msg3 bit 7 to msg5 bit 0 order.
func EnabledProtocols(r *Report) []string {
	var names []string
	for _, key := range []string{"Protocols msg3", "Protocols msg4", "Protocols msg5"} {
		f, ok := r.Field(key)
		if !ok {
			continue
		}
		flags, _ := f.Value.(List)
		for _, flag := range flags {
			if on, _ := flag.Value.(Bool); on {
				names = append(names, flag.Key)
			}
		}
	}
	return names
}

func (b *builder) receiverMessage() {
	if b.subtype() == 0x00 {
		b.add("Message", String("Receiver did not lock"), "")
		b.extra(ExtraMessage, String("Receiver did not lock"))
		return
	}
	b.lookup("Message", TableReceiverMessage, 4, ExtraMessage)
	b.extra(ExtraStatus, Int(b.data[4]))
}

// Acknowledged reports whether a receiver/transmitter message is an ACK.
func Acknowledged(r *Report) bool {
	code, ok := r.Extras[ExtraStatus].(Int)
	return r.Family == FamilyReceiver && r.Header.Subtype == 0x01 && ok && code < 0x02
}

func (b *builder) undecoded() {
	msg := fmt.Sprintf("%X", b.data[headerLength:])
	b.add("Message", String(msg), "")
	b.extra(ExtraMessage, String(msg))
}
