// Package cli holds the plain-terminal presentation layer: the spinner used
// when the full-screen animation is unavailable, and the speech-bubble
// renderer that prints the collected feedback once the checks are over.
package cli
