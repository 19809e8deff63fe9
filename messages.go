// messages.go

// This file contains the pure encoding/decoding helpers for the Tello SDK
// text protocol: command string building, argument clamping, and parsing of
// the drone's state reports.

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
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Argument ranges accepted by the drone firmware.  Values outside a range are
// clamped, not rejected.
const (
	minDistance = 20 // cm
	maxDistance = 500

	minSpeed = 10 // cm/s
	maxSpeed = 100

	maxCurveSpeed = 60

	minDegrees = 1
	maxDegrees = 3600

	minStick = -100
	maxStick = 100
)

// clamp saturates v at the closed range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// encodeCommand builds the wire form of a command: the verb followed by each
// argument in order, single-space separated, with no terminator.
func encodeCommand(verb string, args ...int) string {
	var sb strings.Builder
	sb.WriteString(verb)
	for _, a := range args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(a))
	}
	return sb.String()
}

// FlightState is the most recent set of state fields reported by the drone,
// keyed by field name, eg. {"pitch": "0", "bat": "83"}.
type FlightState map[string]string

// parseFlightState decodes one state datagram of the form
// "pitch:0;roll:1;yaw:-3;bat:83;\r\n".  A field without a ':' separator makes
// the whole report invalid.
func parseFlightState(report string) (FlightState, error) {
	report = strings.TrimSuffix(report, "\r\n")
	report = strings.TrimSuffix(report, ";")
	fields := strings.Split(report, ";")
	fs := make(FlightState, len(fields))
	for _, f := range fields {
		colon := strings.IndexByte(f, ':')
		if colon < 0 {
			return nil, errors.NotValidf("state field <%s>", f)
		}
		fs[f[:colon]] = f[colon+1:]
	}
	return fs, nil
}
