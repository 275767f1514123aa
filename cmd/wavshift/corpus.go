package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/wavshift/internal/corpus"
	"github.com/nguyentantai21042004/wavshift/internal/playback"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus [dir]",
	Short: "Load every WAV clip in a directory and print its length",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		dir := a.cfg.Paths.Corpus
		if len(args) == 1 {
			dir = args[0]
		}

		c, err := corpus.Load(dir)
		if err != nil {
			return err
		}
		a.log.Info(ctx, "Loaded %d clips from %s", len(c), dir)
		lengths := corpus.Lengths(c)
		for _, label := range c.Labels() {
			fmt.Println(label, lengths[label].Milliseconds())
		}
		return nil
	}),
}

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a WAV file on the default output device",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		clip, err := corpus.LoadClip(args[0])
		if err != nil {
			return err
		}
		a.log.Info(ctx, "Playing %s (%s)", clip.Label, clip.Duration())
		return playback.New().Play(ctx, clip)
	}),
}

func init() {
	rootCmd.AddCommand(corpusCmd, playCmd)
}
