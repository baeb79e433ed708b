package util

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExampleFriendlyDuration() {
	d1, _ := time.ParseDuration("48h")
	d2, _ := time.ParseDuration("26.5h")
	d3, _ := time.ParseDuration("5h59m")
	d4, _ := time.ParseDuration("37m1s")
	d5, _ := time.ParseDuration("1500ms")
	d6, _ := time.ParseDuration("500ms")
	d7, _ := time.ParseDuration("500ns")
	d8, _ := time.ParseDuration("0ms")

	fmt.Println(FriendlyDuration(d1))
	fmt.Println(FriendlyDuration(d2))
	fmt.Println(FriendlyDuration(d3))
	fmt.Println(FriendlyDuration(d4))
	fmt.Println(FriendlyDuration(d5))
	fmt.Println(FriendlyDuration(d6))
	fmt.Println(FriendlyDuration(d7))
	fmt.Println(FriendlyDuration(d8))
	// Output:
	// 2 days
	// 1 day 2 hours
	// 5 hours 59 minutes
	// 37 minutes 1 second
	// 1 second
	// 500 milliseconds
	// 500 nanoseconds
	// 0 seconds
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("90s")
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = ParseDuration(" 2d ")
	assert.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	d, err = ParseDuration("1w")
	assert.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)

	_, err = ParseDuration("soon")
	assert.Error(t, err)
}
