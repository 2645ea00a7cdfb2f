package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jmylchreest/deskfolio/internal/audio"
	"github.com/jmylchreest/deskfolio/internal/dbus"
	"github.com/jmylchreest/deskfolio/internal/model"
)

// newMusic creates a music manager over the portfolio playlist. Track
// changes are announced as desktop notifications.
func newMusic() (*audio.Manager, error) {
	mode, err := audio.ParseRepeatMode(cfg.Music.Repeat)
	if err != nil {
		return nil, err
	}

	playlist := audio.NewPlaylist(source.Current().Music, mode)
	music := audio.NewManager(playlist, audio.NewPlayer(logger), opener, logger)
	music.SetVolume(cfg.Music.Volume)

	notifier := dbus.NewNotifier(logger)
	var lastID atomic.Uint32
	music.SetTrackHandler(func(song model.Song) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		id, err := notifier.Notify(ctx, dbus.Notification{
			AppName:       "deskfolio",
			ReplacesID:    lastID.Load(),
			AppIcon:       "audio-x-generic",
			Summary:       "Now playing",
			Body:          fmt.Sprintf("%s (%s)", song.Label(), song.Genre),
			Category:      "x-deskfolio.music",
			Urgency:       dbus.UrgencyLow,
			ExpireTimeout: -1,
		})
		if err != nil {
			logger.Debug("failed to post track notification", "error", err)
			return
		}
		lastID.Store(id)
	})

	return music, nil
}
