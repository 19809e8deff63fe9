// video.go

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
	"time"
)

// VideoStream returns the channel of raw video payloads from the drone.
// Packets are exactly as received off the wire (H.264 fragments, no
// reassembly); StreamOn() must be issued before the drone sends anything.
// The channel is buffered and the listener never blocks on it, so packets
// arriving while the consumer is slow are dropped.
func (tello *Tello) VideoStream() <-chan []byte {
	return tello.videoChan
}

// videoListener runs until the session is closed or the video socket times
// out.
func (tello *Tello) videoListener() {
	defer tello.alive.Done()
	for {
		vbuf := make([]byte, 2048)
		// a deadline error surfaces as a read error on the next ReadFromUDP
		_ = tello.videoConn.SetReadDeadline(time.Now().Add(tello.opt.ReceiveTimeout))
		n, _, err := tello.videoConn.ReadFromUDP(vbuf)
		if err != nil {
			if !tello.alive.IsRunning() {
				return
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				log.Printf("No video from Tello within %v - video listener stopping\n", tello.opt.ReceiveTimeout)
				return
			}
			log.Printf("Error reading from video channel - %v\n", err)
			continue
		}
		select {
		case tello.videoChan <- vbuf[:n]:
		default: // so we don't block
		}
	}
}
