package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/audio"
)

var playOpts struct {
	index  int
	repeat string
	volume int
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the portfolio playlist",
	Long: `Play the portfolio's music until interrupted.

Songs with a local file are played through the speaker and advance
according to the repeat mode. Songs with only a YouTube id are opened in
the browser.

Examples:
  deskfolio play
  deskfolio play --index 3 --repeat shuffle --volume 50`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().IntVarP(&playOpts.index, "index", "i", 1,
		"1-based index of the first song")
	playCmd.Flags().StringVar(&playOpts.repeat, "repeat", "",
		"Repeat mode (repeat, repeat_one, shuffle; default from config)")
	playCmd.Flags().IntVar(&playOpts.volume, "volume", -1,
		"Volume 0-100 (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playOpts.repeat != "" {
		if _, err := audio.ParseRepeatMode(playOpts.repeat); err != nil {
			return err
		}
		cfg.Music.Repeat = playOpts.repeat
	}
	if playOpts.volume >= 0 {
		cfg.Music.Volume = playOpts.volume
	}

	music, err := newMusic()
	if err != nil {
		return err
	}
	defer music.Close()

	if music.Playlist().Len() == 0 {
		return audio.ErrEmptyPlaylist
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := music.Select(ctx, playOpts.index-1); err != nil {
		return err
	}
	if song, ok := music.NowPlaying(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Playing %s (%s)\n", song.Label(), music.Playlist().Mode())
	}

	if !music.Playing() {
		// Opened in the browser; nothing left to drive.
		return nil
	}

	<-ctx.Done()
	return nil
}
