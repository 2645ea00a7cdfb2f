// Package vfs is the read-only file tree browsed from the terminal
// application. It is rebuilt from the portfolio whenever the portfolio
// changes.
package vfs
