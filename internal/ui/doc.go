package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the library scanner, progress
// tracker, and playback launcher, and renders the episode list with
// watched/unwatched status.
