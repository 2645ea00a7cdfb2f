// Package portfolio loads the content shown by the desktop's applications
// and keeps it current when the file changes on disk.
package portfolio
