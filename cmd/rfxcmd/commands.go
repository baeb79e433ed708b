package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/barnybug/rfxcmd/config"
	"github.com/barnybug/rfxcmd/output"
	"github.com/barnybug/rfxcmd/rfx"
	"github.com/pkg/errors"
)

// decode frames given as arguments, or one per line of in.
func decode(frames []string, format string, conf rfx.Config, in io.Reader, w io.Writer) error {
	formatter, ok := output.Lookup(format)
	if !ok {
		return fmt.Errorf("unknown format: %s", format)
	}
	decodeOne := func(s string) error {
		r, err := rfx.DecodeHex(s, conf)
		if err != nil {
			return output.Unsupported(w, s, err)
		}
		return formatter(w, r)
	}

	if len(frames) > 0 {
		for _, s := range frames {
			if err := decodeOne(s); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		if err := decodeOne(s); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func protocols(filename string, w io.Writer) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	ps, err := rfx.ParseProtocols(f)
	if err != nil {
		return err
	}
	s, err := rfx.EncodeProtocols(ps)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}

type transceiver interface {
	Read() ([]byte, error)
	Send(frame []byte) error
	Close() error
}

var openDevice = func(conf *config.Config) (transceiver, error) {
	if conf.Serial.Device == "" {
		return nil, errors.New("serial device not configured")
	}
	dev, err := rfx.Open(conf.Serial.Device, conf.Serial.Baud, conf.Serial.Debug)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Wait after reset before the transceiver accepts commands.
var settle = 300 * time.Millisecond

// exchange sends frame and prints decoded replies until one from the
// wanted family arrives, or the device stops sending.
func exchange(conf *config.Config, frame []byte, want rfx.Family, w io.Writer) error {
	dev, err := openDevice(conf)
	if err != nil {
		return err
	}
	defer dev.Close()
	time.Sleep(settle)

	if err := dev.Send(frame); err != nil {
		return err
	}
	decoder := rfx.NewDecoder(rfx.DefaultRegistry, conf.DecoderConfig())
	for {
		data, err := dev.Read()
		if err == rfx.ErrNoData {
			return errors.New("no reply from transceiver")
		}
		if err != nil {
			return err
		}
		r, err := decoder.Decode(data)
		if err != nil {
			output.Unsupported(w, fmt.Sprintf("%X", data), err)
			continue
		}
		if err := output.Text(w, r); err != nil {
			return err
		}
		if r.Family == want {
			return nil
		}
	}
}

func send(conf *config.Config, s string, w io.Writer) error {
	frame, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if _, err := rfx.Decode(frame, rfx.Config{}); err != nil {
		return errors.Wrap(err, "invalid frame")
	}
	return exchange(conf, frame, rfx.FamilyReceiver, w)
}

func status(conf *config.Config, w io.Writer) error {
	return exchange(conf, rfx.StatusFrame(), rfx.FamilyInterface, w)
}
