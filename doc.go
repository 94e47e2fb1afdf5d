// Package lifecycle runs the executor process from an initialized logger to a clean exit.
// An Application writes a startup marker, parks until SIGINT, and writes a shutdown marker.
// Plugins may hook initialization, start and shutdown, so later subsystems can attach to
// the same lifecycle without owning signal handling themselves.
package lifecycle
