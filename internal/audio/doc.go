// Package audio provides the music application's playback.
// It uses the beep library to stream WAV, OGG, and MP3 files with volume
// control, and hands songs that only exist on YouTube to the URL opener.
package audio
