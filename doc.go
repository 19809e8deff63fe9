/*Package tellosdk provides an unofficial, easy-to-use, standalone client for the text-based
'SDK mode' protocol of the Ryze Tello® drone.

Disclaimer

Tello is a registered trademark of Ryze Tech.  The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.
The package has been developed from the published SDK documentation and by examining the datagrams
exchanged with a real drone.

Use this package at your own risk.  The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Features

The following features have been implemented...
  * Synchronous command/response control, eg. TakeOff(), Forward(), Clockwise()
  * Drone state ('telemetry') reporting via GetFlightState()
  * Parameter setting, eg. SetSpeed(), UpdateSticks(), SetWifiCredentials()
  * On-demand queries, eg. GetBattery(), GetAttitude()
  * Raw video stream delivery via VideoStream() (decoding is left to the consumer)
  * A raw SendCommand() escape hatch for any SDK command not wrapped here

Concepts

Connections

The drone exchanges three independent UDP flows with the client: a command channel
(strict request/response, one outstanding command at a time), a state feed of
semicolon-separated key:value reports, and a one-way H.264 video stream.
Connect() binds all three sockets and starts background listeners for the state
and video feeds; the listeners run until the session is closed or their socket
times out.  Callers should arrange guaranteed release, ie.

  drone, err := tellosdk.ConnectDefault()
  if err != nil { ... }
  defer drone.Close()

The drone only accepts SDK commands after it has been switched into SDK mode,
so CommandMode() should normally be the first command issued.

Commands

Every command func blocks until the drone answers (or the configured timeout
expires) and returns the drone's response text.  The protocol carries no
request identifiers, so the reply to one command cannot be told apart from the
reply to another: do not issue commands concurrently from multiple goroutines,
or a response may be attributed to the wrong command.

State

The latest state report is available at any time from GetFlightState().  Before
the first report has arrived this returns ErrNoFlightState; afterwards it always
returns the most recent complete report, even if the state feed has since died.

*/
package tellosdk
