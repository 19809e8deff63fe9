// telemetry.go

// This file contains the listener for the drone's state report feed and the
// accessors for the latest report.

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
	"log"
	"net"
	"strings"
	"time"

	"github.com/juju/errors"
)

// stateListener runs until the session is closed or the state socket times
// out.  Each valid report replaces the previous one wholesale; readers never
// see a partially updated report.
func (tello *Tello) stateListener() {
	defer tello.alive.Done()
	buff := make([]byte, 4096)
	for tello.alive.IsRunning() {
		// a deadline error surfaces as a read error on the next ReadFromUDP
		_ = tello.stateConn.SetReadDeadline(time.Now().Add(tello.opt.ReceiveTimeout))
		n, _, err := tello.stateConn.ReadFromUDP(buff)
		if err != nil {
			if !tello.alive.IsRunning() {
				return
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				log.Printf("No state report from Tello within %v - state listener stopping\n", tello.opt.ReceiveTimeout)
				return
			}
			log.Printf("State channel read error - %v\n", err)
			continue
		}
		report := strings.TrimSpace(string(buff[:n]))
		if report != "" {
			fs, err := parseFlightState(report)
			if err != nil {
				// keep the previous report rather than crash the listener
				log.Printf("Ignoring malformed state report - %v\n", err)
			} else {
				tello.fsMu.Lock()
				tello.fs = fs
				tello.fsMu.Unlock()
			}
		}
		select {
		case <-tello.alive.StopChan():
			return
		case <-time.After(tello.opt.PollInterval):
		}
	}
}

// GetFlightState returns a copy of the most recent state report from the
// Tello.  Before the first report has arrived it returns ErrNoFlightState.
func (tello *Tello) GetFlightState() (FlightState, error) {
	tello.fsMu.RLock()
	defer tello.fsMu.RUnlock()
	if tello.fs == nil {
		return nil, errors.Trace(ErrNoFlightState)
	}
	fs := make(FlightState, len(tello.fs))
	for k, v := range tello.fs {
		fs[k] = v
	}
	return fs, nil
}

// FlightStateField returns a single field from the most recent state report,
// eg. FlightStateField("bat").
func (tello *Tello) FlightStateField(name string) (string, error) {
	tello.fsMu.RLock()
	defer tello.fsMu.RUnlock()
	if tello.fs == nil {
		return "", errors.Trace(ErrNoFlightState)
	}
	v, ok := tello.fs[name]
	if !ok {
		return "", errors.NotFoundf("state field <%s>", name)
	}
	return v, nil
}
