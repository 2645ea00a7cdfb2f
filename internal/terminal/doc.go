// Package terminal implements the shell hosted by the terminal window. It
// browses the portfolio file tree and drives the window manager.
package terminal
