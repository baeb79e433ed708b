// rfxcmd decodes and forwards frames from RFXCOM RFXtrx433 transceivers
//
// Features
//
// - Decodes every RFXtrx message family: lighting, security, remotes,
// thermostats, weather sensors, energy meters and RFXSensor/RFXMeter
//
// - Text, XML and JSON output for frames on the command line
//
// - Builds the set mode command enabling receiver protocols from an XML list
//
// - Runs as a daemon, forwarding readings to other systems
//
// Services supported
//
// - TCP listener (share the transceiver with other programs)
//
// - REST API with Prometheus metrics
//
// - MQTT
//
// - xPL (sensor.basic broadcasts)
//
// - weewx weather station driver
//
// - RRD (round robin databases via rrdtool)
//
// - Graphite (graphs)
//
// - Data logger (one JSON log per packet type)
//
// - Triggers (shell commands on matching frames)
//
// Devices supported
//
// - rfxcom RFXtrx433 USB device (http://www.rfxcom.com/)
package rfxcmd
