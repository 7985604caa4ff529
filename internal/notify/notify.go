// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/dummy-forge/internal/generator"
	"github.com/dummy-forge/internal/logger"
)

// sendFunc matches beeep.Notify and beeep.Alert
type sendFunc func(title, message string, icon interface{}) error

// Notifier raises a desktop notification when a generation run finishes
type Notifier struct {
	enabled bool
	notify  sendFunc
	alert   sendFunc
}

// NewNotifier creates a notifier; a disabled notifier does nothing
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		notify:  beeep.Notify,
		alert:   beeep.Alert,
	}
}

// RunFinished reports a completed run. A failed run (err != nil) raises an alert.
// Notification failures are logged, never returned.
func (n *Notifier) RunFinished(results []generator.Result, runErr error) {
	if !n.enabled {
		return
	}

	title, message := Summary(results, runErr)
	send := n.notify
	if runErr != nil {
		send = n.alert
	}
	if err := send(title, message, ""); err != nil {
		logger.Warnf("Failed to send OS notification: %v", err)
	}
}

// Summary builds the notification title and body for a run
func Summary(results []generator.Result, runErr error) (string, string) {
	if runErr != nil {
		return "Dummy file generation failed", fmt.Sprintf("%d file(s) written before the error: %v", len(results), runErr)
	}

	var oversized []string
	for _, r := range results {
		if r.Oversized {
			oversized = append(oversized, string(r.Format))
		}
	}

	title := "Dummy files ready"
	message := fmt.Sprintf("%d file(s) written", len(results))
	if len(results) > 0 {
		message += fmt.Sprintf(" at %d bytes each", results[0].TargetSize)
	}
	if len(oversized) > 0 {
		message += fmt.Sprintf("; oversized: %s", strings.Join(oversized, ", "))
	}
	return title, message
}
