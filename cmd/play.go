/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/cardtable/go-card-hand/ui"
	"github.com/cardtable/go-card-hand/ui/screens"
)

var (
	playWidth  int
	playHeight int
	playCards  int
	playDebug  bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table demo window",
	Long: `Open an interactive window with a draw pile and a fanned hand.

Controls:
  Left click pile  - Draw a card into the hand
  Right click card - Discard a card
  S / L            - Save and reload the hand over the wire format
  C                - Clear the hand`,
	Run: func(cmd *cobra.Command, args []string) {
		// Window setup
		ebiten.SetWindowSize(playWidth, playHeight)
		ebiten.SetWindowTitle("Card Hand")

		// Start the game loop
		prog := &ui.Program{
			M:         screens.NewTable(playWidth, playHeight, playCards),
			Width:     playWidth,
			Height:    playHeight,
			ShowDebug: playDebug,
		}
		if err := ebiten.RunGame(prog); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playWidth, "width", 1000, "window width in pixels")
	playCmd.Flags().IntVar(&playHeight, "height", 800, "window height in pixels")
	playCmd.Flags().IntVar(&playCards, "cards", 3, "cards dealt at startup")
	playCmd.Flags().BoolVar(&playDebug, "debug", false, "show TPS/FPS overlay")
}
