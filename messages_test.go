// tellosdk project messages_test.go

// Copyright (C) 2019  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tellosdk

import (
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSaturates(t *testing.T) {
	assert.Equal(t, 20, clamp(5, 20, 500))
	assert.Equal(t, 500, clamp(600, 20, 500))
	assert.Equal(t, 42, clamp(42, 20, 500))
	assert.Equal(t, 20, clamp(20, 20, 500))
	assert.Equal(t, 500, clamp(500, 20, 500))
	assert.Equal(t, -100, clamp(math.MinInt, -100, 100))
	assert.Equal(t, 100, clamp(math.MaxInt, -100, 100))
}

func TestClampIdempotent(t *testing.T) {
	samples := []int{math.MinInt, -5000, -100, -1, 0, 1, 19, 20, 250, 500, 501, 5000, math.MaxInt}
	for _, v := range samples {
		once := clamp(v, 20, 500)
		assert.Equal(t, once, clamp(once, 20, 500), "clamp not idempotent for %d", v)
	}
}

func TestClampMonotonic(t *testing.T) {
	samples := []int{math.MinInt, -5000, -100, 0, 19, 20, 250, 500, 501, math.MaxInt}
	for i := 1; i < len(samples); i++ {
		lo := clamp(samples[i-1], 20, 500)
		hi := clamp(samples[i], 20, 500)
		assert.LessOrEqual(t, lo, hi)
	}
}

func TestEncodeCommand(t *testing.T) {
	assert.Equal(t, "forward 500", encodeCommand("forward", clamp(600, minDistance, maxDistance)))
	assert.Equal(t, "cw 3600", encodeCommand("cw", clamp(5000, minDegrees, maxDegrees)))
	assert.Equal(t, "rc -100 0 40 100", encodeCommand("rc",
		clamp(-150, minStick, maxStick),
		clamp(0, minStick, maxStick),
		clamp(40, minStick, maxStick),
		clamp(120, minStick, maxStick)))
	// zero-argument commands have no trailing separator
	assert.Equal(t, "battery?", encodeCommand("battery?"))
	assert.Equal(t, "go 20 500 100 60", encodeCommand("go", 20, 500, 100, 60))
}

func TestParseFlightState(t *testing.T) {
	fs, err := parseFlightState("pitch:0;roll:1;yaw:-3;bat:83;\r\n")
	require.NoError(t, err)
	assert.Equal(t, FlightState{"pitch": "0", "roll": "1", "yaw": "-3", "bat": "83"}, fs)

	// terminator is optional
	fs, err = parseFlightState("pitch:0;bat:83")
	require.NoError(t, err)
	assert.Equal(t, FlightState{"pitch": "0", "bat": "83"}, fs)

	// a value may itself contain colons (eg. the mission pad fields)
	fs, err = parseFlightState("time:1:2:3;")
	require.NoError(t, err)
	assert.Equal(t, "1:2:3", fs["time"])
}

func TestParseFlightStateMalformed(t *testing.T) {
	_, err := parseFlightState("pitch:0;garbage;bat:83;\r\n")
	assert.True(t, errors.IsNotValid(err))
}
