// flightCommands.go

// This file contains the high-level Tello flight command API

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

const (
	cmdEmergency = "emergency"
	responseOK   = "ok"
)

// StickMessage holds one set of remote-control axis values, each in the
// range -100 to 100.
type StickMessage struct {
	LeftRight, ForwardBackward, UpDown, Yaw int
}

// *** Mode and lifecycle commands ***

// CommandMode switches the drone into SDK mode.  It should normally be the
// first command issued after connecting; until the drone has entered SDK mode
// it silently ignores all other commands.
func (tello *Tello) CommandMode() (string, error) {
	return tello.SendCommand("command")
}

// TakeOff sends a normal takeoff request to the Tello.
func (tello *Tello) TakeOff() (string, error) {
	return tello.SendCommand("takeoff")
}

// Land sends a normal Land request to the Tello.
func (tello *Tello) Land() (string, error) {
	return tello.SendCommand("land")
}

// Emergency stops all motors immediately.  The drone does not answer this
// command, so "ok" is always returned without waiting.
func (tello *Tello) Emergency() (string, error) {
	return tello.SendCommand(cmdEmergency)
}

// StreamOn asks the Tello to start sending video.
func (tello *Tello) StreamOn() (string, error) {
	return tello.SendCommand("streamon")
}

// StreamOff asks the Tello to stop sending video.
func (tello *Tello) StreamOff() (string, error) {
	return tello.SendCommand("streamoff")
}

// *** Motion commands ***
// Distances are in cm and clamped to 20..500, turns are in degrees clamped
// to 1..3600.

// Forward moves the drone forward by cm.
func (tello *Tello) Forward(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("forward", clamp(cm, minDistance, maxDistance)))
}

// Back moves the drone backward by cm.
func (tello *Tello) Back(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("back", clamp(cm, minDistance, maxDistance)))
}

// Up moves the drone up by cm.
func (tello *Tello) Up(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("up", clamp(cm, minDistance, maxDistance)))
}

// Down moves the drone down by cm.
func (tello *Tello) Down(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("down", clamp(cm, minDistance, maxDistance)))
}

// Left moves the drone left by cm.
func (tello *Tello) Left(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("left", clamp(cm, minDistance, maxDistance)))
}

// Right moves the drone right by cm.
func (tello *Tello) Right(cm int) (string, error) {
	return tello.SendCommand(encodeCommand("right", clamp(cm, minDistance, maxDistance)))
}

// Go flies the drone to the given coordinates relative to its current
// position at the given speed in cm/s.
func (tello *Tello) Go(x, y, z, speed int) (string, error) {
	return tello.SendCommand(encodeCommand("go",
		clamp(x, minDistance, maxDistance),
		clamp(y, minDistance, maxDistance),
		clamp(z, minDistance, maxDistance),
		clamp(speed, minSpeed, maxSpeed)))
}

// Curve flies the drone along a curve defined by two sets of coordinates
// relative to its current position at the given speed in cm/s.
func (tello *Tello) Curve(x1, y1, z1, x2, y2, z2, speed int) (string, error) {
	return tello.SendCommand(encodeCommand("curve",
		clamp(x1, minDistance, maxDistance),
		clamp(y1, minDistance, maxDistance),
		clamp(z1, minDistance, maxDistance),
		clamp(x2, minDistance, maxDistance),
		clamp(y2, minDistance, maxDistance),
		clamp(z2, minDistance, maxDistance),
		clamp(speed, minSpeed, maxCurveSpeed)))
}

// Clockwise rotates the drone clockwise by the given number of degrees.
func (tello *Tello) Clockwise(deg int) (string, error) {
	return tello.SendCommand(encodeCommand("cw", clamp(deg, minDegrees, maxDegrees)))
}

// TurnRight is an alias for Clockwise().
func (tello *Tello) TurnRight(deg int) (string, error) {
	return tello.Clockwise(deg)
}

// Anticlockwise rotates the drone anticlockwise by the given number of degrees.
func (tello *Tello) Anticlockwise(deg int) (string, error) {
	return tello.SendCommand(encodeCommand("ccw", clamp(deg, minDegrees, maxDegrees)))
}

// TurnLeft is an alias for Anticlockwise().
func (tello *Tello) TurnLeft(deg int) (string, error) {
	return tello.Anticlockwise(deg)
}

// FlipLeft performs a leftwards flip.
func (tello *Tello) FlipLeft() (string, error) {
	return tello.SendCommand("flip l")
}

// FlipRight performs a rightwards flip.
func (tello *Tello) FlipRight() (string, error) {
	return tello.SendCommand("flip r")
}

// FlipForward performs a forwards flip.
func (tello *Tello) FlipForward() (string, error) {
	return tello.SendCommand("flip f")
}

// FlipBackward performs a backwards flip.
func (tello *Tello) FlipBackward() (string, error) {
	return tello.SendCommand("flip b")
}

// *** Parameter setting commands ***

// SetSpeed sets the drone's forward speed in cm/s, clamped to 10..100.
func (tello *Tello) SetSpeed(speed int) (string, error) {
	return tello.SendCommand(encodeCommand("speed", clamp(speed, minSpeed, maxSpeed)))
}

// UpdateSticks sends a one-off set of remote-control axis values to the
// Tello, each clamped to -100..100.
func (tello *Tello) UpdateSticks(sm StickMessage) (string, error) {
	return tello.SendCommand(encodeCommand("rc",
		clamp(sm.LeftRight, minStick, maxStick),
		clamp(sm.ForwardBackward, minStick, maxStick),
		clamp(sm.UpDown, minStick, maxStick),
		clamp(sm.Yaw, minStick, maxStick)))
}

// SetWifiCredentials changes the SSID and password of the drone's own
// access point.  The drone reboots to apply them.
func (tello *Tello) SetWifiCredentials(ssid, pass string) (string, error) {
	return tello.SendCommand("wifi " + ssid + " " + pass)
}

// *** Query commands ***
// Each of these asks the drone directly, as opposed to reading the
// continuously updated state report (see GetFlightState).

// GetSpeed queries the current speed setting in cm/s.
func (tello *Tello) GetSpeed() (string, error) {
	return tello.SendCommand("speed?")
}

// GetBattery queries the remaining battery percentage.
func (tello *Tello) GetBattery() (string, error) {
	return tello.SendCommand("battery?")
}

// GetFlightTime queries the accumulated motor-on time.
func (tello *Tello) GetFlightTime() (string, error) {
	return tello.SendCommand("time?")
}

// GetHeight queries the current height in dm.
func (tello *Tello) GetHeight() (string, error) {
	return tello.SendCommand("height?")
}

// GetTemperature queries the drone's internal temperature range.
func (tello *Tello) GetTemperature() (string, error) {
	return tello.SendCommand("temp?")
}

// GetAttitude queries the current pitch, roll and yaw in degrees.
func (tello *Tello) GetAttitude() (string, error) {
	return tello.SendCommand("attitude?")
}

// GetBarometer queries the barometric altitude in m.
func (tello *Tello) GetBarometer() (string, error) {
	return tello.SendCommand("baro?")
}

// GetAcceleration queries the current acceleration on each axis.
func (tello *Tello) GetAcceleration() (string, error) {
	return tello.SendCommand("acceleration?")
}

// GetTOF queries the time-of-flight sensor's distance to the ground.
func (tello *Tello) GetTOF() (string, error) {
	return tello.SendCommand("tof?")
}

// GetWifiSignal queries the wifi signal-to-noise ratio.
func (tello *Tello) GetWifiSignal() (string, error) {
	return tello.SendCommand("wifi?")
}
