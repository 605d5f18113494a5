//go:build windows

package main

import (
	"os"
	"os/signal"
)

// notifySignals registers the signals that stop the server gracefully.
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
