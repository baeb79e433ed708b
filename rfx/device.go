package rfx

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// ErrNoData is returned by Read when the port timed out before a frame began.
var ErrNoData = errors.New("no data")

// Read attempts yielding nothing before a partially read frame is abandoned.
const maxStalls = 5

// Device is the serial connection to the transceiver.
type Device struct {
	ser   io.ReadWriteCloser
	debug bool
}

// DefaultBaud is the rate of the RFXtrx433 USB interface.
const DefaultBaud = 38400

var openPort = func(c *serial.Config) (io.ReadWriteCloser, error) {
	return serial.OpenPort(c)
}

// Open the device at the given path and reset it. A baud of 0 uses
// DefaultBaud.
func Open(path string, baud int, debug bool) (*Device, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	c := &serial.Config{Name: path, Baud: baud, ReadTimeout: time.Second}
	ser, err := openPort(c)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	dev := NewDevice(ser, debug)

	log.Println("Sending reset")
	if err := dev.Send(ResetFrame()); err != nil {
		ser.Close()
		return nil, err
	}
	return dev, nil
}

// NewDevice wraps an already open port.
func NewDevice(ser io.ReadWriteCloser, debug bool) *Device {
	if debug {
		ser = LogReadWriteCloser{ser}
	}
	return &Device{ser: ser, debug: debug}
}

// Close the device.
func (d *Device) Close() error {
	return d.ser.Close()
}

// Read one raw frame, length byte included. Returns ErrNoData if no bytes
// arrived before the port read timeout.
func (d *Device) Read() ([]byte, error) {
	head := make([]byte, 1)
	n, err := d.ser.Read(head)
	if n == 0 {
		if err == nil || err == io.EOF {
			return nil, ErrNoData
		}
		return nil, err
	}

	l := int(head[0])
	buf := make([]byte, l+1)
	buf[0] = head[0]
	stalls := 0
	for read := 1; read < len(buf); {
		n, err := d.ser.Read(buf[read:])
		read += n
		if n == 0 {
			if err != nil && err != io.EOF {
				return nil, err
			}
			stalls++
			if stalls >= maxStalls {
				return nil, errors.Wrapf(io.ErrUnexpectedEOF, "frame stalled after %d of %d bytes", read, len(buf))
			}
			continue
		}
		stalls = 0
	}
	if d.debug {
		log.Printf("Read frame %X\n", buf)
	}
	return buf, nil
}

// Send (transmit) a raw frame.
func (d *Device) Send(frame []byte) error {
	_, err := d.ser.Write(frame)
	return errors.Wrap(err, "sending frame")
}

// LogReadWriteCloser logs every call for debugging.
type LogReadWriteCloser struct {
	f io.ReadWriteCloser
}

func (l LogReadWriteCloser) Read(b []byte) (int, error) {
	n, err := l.f.Read(b)
	log.Printf("Read(%X) = (%d, %v)\n", b[:n], n, err)
	return n, err
}

func (l LogReadWriteCloser) Write(b []byte) (int, error) {
	n, err := l.f.Write(b)
	log.Printf("Write(%X) = (%d, %v)\n", b, n, err)
	return n, err
}

func (l LogReadWriteCloser) Close() error {
	err := l.f.Close()
	log.Printf("Close() = %v\n", err)
	return err
}

// MockSerialPort replays chunks of bytes, at most one per Read, and records
// writes.
type MockSerialPort struct {
	replay  [][]byte
	Written [][]byte
}

func NewMockSerialPort(replay [][]byte) *MockSerialPort {
	return &MockSerialPort{replay: replay}
}

func (m *MockSerialPort) Read(b []byte) (int, error) {
	if len(m.replay) == 0 {
		return 0, io.EOF
	}
	n := copy(b, m.replay[0])
	if n < len(m.replay[0]) {
		m.replay[0] = m.replay[0][n:]
	} else {
		m.replay = m.replay[1:]
	}
	return n, nil
}

func (m *MockSerialPort) Write(b []byte) (int, error) {
	m.Written = append(m.Written, append([]byte(nil), b...))
	return len(b), nil
}

func (m *MockSerialPort) Close() error {
	return nil
}
