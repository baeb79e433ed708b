package config

import "strings"

var ExampleYaml = `
serial:
  device: /dev/serial/by-id/usb-RFXCOM_RFXtrx433_A1XZI13O-if00-port0
  debug: false
decoder:
  barometric_offset: 3
protocols: ~/.config/rfxcmd/protocols.xml
services: [rfxtrx, listener, graphite, datalogger]
listener:
  addr: 127.0.0.1:50000
xpl:
  addr: 255.255.255.255:3865
  heartbeat: 5m
weewx:
  addr: 127.0.0.1:55000
rrd:
  path: /var/lib/rfxcmd/rrd
  step: 300
graphite:
  tcp: 127.0.0.1:2003
mqtt:
  broker: tcp://127.0.0.1:1883
api:
  addr: :8080
datalogger:
  path: /var/log/rfxcmd
runner:
  timeout: 10s
triggers:
- match: ^0A520
  action: echo $source$ $temperature$ >> /tmp/temps
- match: ^0710002A4505
  action: /usr/local/bin/doorbell $raw$
  timeout: 1m
`

var ExampleConfig = Must(OpenReader(strings.NewReader(ExampleYaml)))
