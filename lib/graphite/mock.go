package graphite

import "fmt"

// MockGraphite records the lines added for testing.
type MockGraphite struct {
	Lines   []string
	Flushes int
}

func (m *MockGraphite) Add(path string, timestamp int64, value float64) error {
	m.Lines = append(m.Lines, fmt.Sprintf("%s %v %d", path, value, timestamp))
	return nil
}

func (m *MockGraphite) Flush() error {
	m.Flushes++
	return nil
}
