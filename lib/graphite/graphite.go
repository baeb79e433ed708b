// Package graphite writes metrics in the carbon plaintext protocol.
package graphite

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/pkg/errors"
)

const BatchSize = 4096

type IGraphite interface {
	Add(path string, timestamp int64, value float64) error
	Flush() error
}

type Graphite struct {
	addr   string
	buffer strings.Builder
}

var dailer = func(network, address string) (io.ReadWriteCloser, error) {
	return net.Dial(network, address)
}

// New returns a client for the carbon listener at addr, eg. localhost:2003.
// The port defaults to 2003.
func New(addr string) *Graphite {
	if !strings.Contains(addr, ":") {
		addr += ":2003"
	}
	return &Graphite{addr: addr}
}

// Sanitize replaces the characters carbon treats specially in a path
// component.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '/', '\t':
			return '_'
		}
		return r
	}, s)
}

func (graphite *Graphite) Add(path string, timestamp int64, value float64) error {
	fmt.Fprintf(&graphite.buffer, "%s %v %d\n", path, value, timestamp)
	if graphite.buffer.Len() > BatchSize {
		return graphite.Flush()
	}
	return nil
}

func (graphite *Graphite) Flush() error {
	if graphite.buffer.Len() == 0 {
		return nil
	}
	conn, err := dailer("tcp", graphite.addr)
	if err != nil {
		return errors.Wrapf(err, "connecting to %s", graphite.addr)
	}
	defer conn.Close()
	_, err = io.WriteString(conn, graphite.buffer.String())
	graphite.buffer.Reset()
	return err
}
