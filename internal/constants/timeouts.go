// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// Timeout applied to each call to the movies API.
	DefaultRequestTimeout = 10 * time.Second

	// Deadline for a whole page render, covering every API call it makes.
	PageTimeout = 30 * time.Second

	// Server timeouts
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 35 * time.Second
	IdleTimeout     = time.Minute
	ShutdownTimeout = 15 * time.Second
)
