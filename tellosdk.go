// tellosdk.go

// This file contains the session lifecycle and the synchronous
// command/response channel to the drone.

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
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

const (
	defaultTelloAddr        = "192.168.10.1"
	defaultTelloCommandPort = 8889
	defaultLocalCommandPort = 8889
	defaultLocalStatePort   = 8890
	defaultLocalVideoPort   = 11111

	defaultTimeout      = 15 * time.Second
	defaultPollInterval = 200 * time.Millisecond
)

// Exported error values.  Wrapped errors are matched with errors.Cause, eg.
//   if errors.Cause(err) == tellosdk.ErrNotConnected { ... }
var (
	// ErrNotConnected is returned by every command func once the session has
	// been closed.
	ErrNotConnected = errors.New("not connected to the Tello")

	// ErrNoFlightState is returned by GetFlightState before the first state
	// report has arrived from the drone.
	ErrNoFlightState = errors.New("no state report received from the Tello yet")
)

// Options configures a session.  The zero value of each field selects a
// sensible default.
type Options struct {
	LocalAddr string // local bind address, default all interfaces
	LocalPort int    // local port for the command channel, default 8889
	DroneAddr string // drone network address, default 192.168.10.1
	StatePort int    // local port the drone sends state reports to, default 8890
	VideoPort int    // local port the drone sends video to, default 11111

	Timeout      time.Duration // how long to await a command response, default 15s
	PollInterval time.Duration // pause between state report reads, default 200ms

	// ReceiveTimeout is the read deadline on the state and video sockets.  A
	// listener whose socket stays idle this long logs the condition and
	// stops.  Defaults to Timeout; raise it if StreamOn will not be issued
	// promptly after connecting.
	ReceiveTimeout time.Duration

	// MotionTimeout is reserved for a longer response deadline on motion
	// commands, which can take many seconds to complete.  It is accepted but
	// not yet applied.
	// TODO apply MotionTimeout as the read deadline for motion commands once
	// confirmed against real firmware behaviour.
	MotionTimeout time.Duration
}

// Tello holds the current state of a connection to a Tello drone in SDK mode.
type Tello struct {
	opt   Options
	alive *alive.Alive

	ctrlConn  *net.UDPConn // command channel (bidirectional)
	stateConn *net.UDPConn // state report feed
	videoConn *net.UDPConn // raw video feed
	videoChan chan []byte

	fsMu sync.RWMutex // protects fs
	fs   FlightState  // latest complete state report, nil until the first one
}

// Connect binds the three UDP sockets described by opt and starts the state
// and video listeners.  The returned session must be released with Close.
func Connect(opt Options) (*Tello, error) {
	if opt.LocalPort == 0 {
		opt.LocalPort = defaultLocalCommandPort
	}
	if opt.DroneAddr == "" {
		opt.DroneAddr = defaultTelloAddr
	}
	if opt.StatePort == 0 {
		opt.StatePort = defaultLocalStatePort
	}
	if opt.VideoPort == 0 {
		opt.VideoPort = defaultLocalVideoPort
	}
	if opt.Timeout == 0 {
		opt.Timeout = defaultTimeout
	}
	if opt.PollInterval == 0 {
		opt.PollInterval = defaultPollInterval
	}
	if opt.ReceiveTimeout == 0 {
		opt.ReceiveTimeout = opt.Timeout
	}
	if opt.MotionTimeout == 0 {
		opt.MotionTimeout = opt.Timeout
	}

	// DroneAddr may carry an explicit port; otherwise the protocol's
	// well-known command port is used.
	remote := opt.DroneAddr
	if _, _, err := net.SplitHostPort(remote); err != nil {
		remote = net.JoinHostPort(remote, strconv.Itoa(defaultTelloCommandPort))
	}
	droneAddr, err := net.ResolveUDPAddr("udp", remote)
	if err != nil {
		return nil, errors.Annotate(err, "resolve drone address")
	}
	localAddr, err := net.ResolveUDPAddr("udp", opt.LocalAddr+":"+strconv.Itoa(opt.LocalPort))
	if err != nil {
		return nil, errors.Annotate(err, "resolve local address")
	}
	stateAddr, err := net.ResolveUDPAddr("udp", opt.LocalAddr+":"+strconv.Itoa(opt.StatePort))
	if err != nil {
		return nil, errors.Annotate(err, "resolve state address")
	}
	videoAddr, err := net.ResolveUDPAddr("udp", opt.LocalAddr+":"+strconv.Itoa(opt.VideoPort))
	if err != nil {
		return nil, errors.Annotate(err, "resolve video address")
	}

	tello := &Tello{
		opt:   opt,
		alive: alive.NewAlive(),
	}
	tello.ctrlConn, err = net.DialUDP("udp", localAddr, droneAddr)
	if err != nil {
		return nil, errors.Annotate(err, "bind command channel")
	}
	tello.stateConn, err = net.ListenUDP("udp", stateAddr)
	if err != nil {
		tello.ctrlConn.Close()
		return nil, errors.Annotate(err, "bind state channel")
	}
	tello.videoConn, err = net.ListenUDP("udp", videoAddr)
	if err != nil {
		tello.ctrlConn.Close()
		tello.stateConn.Close()
		return nil, errors.Annotate(err, "bind video channel")
	}
	tello.videoChan = make(chan []byte, 100)

	tello.alive.Add(2)
	go tello.stateListener()
	go tello.videoListener()

	return tello, nil
}

// ConnectDefault connects to a Tello on the default network addresses.
func ConnectDefault() (*Tello, error) {
	return Connect(Options{})
}

// Close stops both background listeners and releases all three sockets.
// It must be called exactly once per connected session; any command issued
// afterwards fails with ErrNotConnected.
func (tello *Tello) Close() error {
	tello.alive.Stop()
	// closing the conns unblocks any in-flight reads
	tello.ctrlConn.Close()
	tello.stateConn.Close()
	tello.videoConn.Close()
	tello.alive.Wait()
	return nil
}

// SendCommand transmits a raw SDK command string to the drone and blocks until
// the response datagram arrives or the configured timeout expires.  A timeout
// means the outcome of the command is unknown, not that it failed.
//
// Commands are strictly one-at-a-time: the response to a concurrent command
// would be indistinguishable from the one awaited here.
func (tello *Tello) SendCommand(cmd string) (string, error) {
	if !tello.alive.IsRunning() {
		return "", errors.Trace(ErrNotConnected)
	}
	if _, err := tello.ctrlConn.Write([]byte(cmd)); err != nil {
		if !tello.alive.IsRunning() {
			return "", errors.Trace(ErrNotConnected)
		}
		return "", errors.Annotatef(err, "send <%s>", cmd)
	}

	// the drone tears down the control link on "emergency" without answering
	if cmd == cmdEmergency {
		return responseOK, nil
	}

	if err := tello.ctrlConn.SetReadDeadline(time.Now().Add(tello.opt.Timeout)); err != nil {
		return "", errors.Annotate(err, "set response deadline")
	}
	buff := make([]byte, 1024)
	n, err := tello.ctrlConn.Read(buff)
	if err != nil {
		if !tello.alive.IsRunning() {
			return "", errors.Trace(ErrNotConnected)
		}
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return "", errors.Timeoutf("no response to <%s> within %v", cmd, tello.opt.Timeout)
		}
		return "", errors.Annotatef(err, "receive response to <%s>", cmd)
	}
	resp := string(buff[:n])
	if strings.HasSuffix(cmd, "?") {
		// query responses carry a trailing line terminator
		resp = strings.TrimRight(resp, "\r\n")
	}
	return resp, nil
}
