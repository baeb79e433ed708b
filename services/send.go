package services

import "github.com/barnybug/rfxcmd/pubsub"

// SendCommand asks the transceiver to transmit a frame given in hex.
func SendCommand(frame string) {
	Publisher.Emit(pubsub.NewCommand(frame))
}
