// Package timeouts defines the timeouts shared by the game client and its
// commands.
package timeouts

import "time"

// GRPCDial caps the wait for a game server to report healthy.
const GRPCDial = 5 * time.Second

// GRPCRequest caps a single Start or Act call. Queued Start retries each get
// their own budget.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long a command waits for telemetry to flush on exit.
const Shutdown = 5 * time.Second
