// Package tui plays the full-screen animation shown while files are being
// checked. It is a bubbletea program on the alternate screen: the terminal
// is switched into raw mode when the program starts and restored when it
// exits, on every path.
package tui
