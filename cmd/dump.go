/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cardtable/go-card-hand/deck"
	"github.com/cardtable/go-card-hand/hand"
	"github.com/cardtable/go-card-hand/wire"
)

var (
	dumpWidth  float64
	dumpHeight float64
	dumpCards  int
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Serialize a sample hand and print the wire bytes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := hand.Config{CardWidth: deck.Width, Decode: deck.Decode}
		h := hand.New(dumpWidth, dumpHeight, cfg)
		for range dumpCards {
			h.Add(deck.New(rand.Intn(deck.NumRanks), rand.Intn(deck.NumSuits), hand.Point{}))
		}

		buf := wire.NewBuffer(nil)
		if err := h.Serialize(buf); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("hand segment (%d bytes):\n%s", len(buf.Bytes()), hex.Dump(buf.Bytes()))

		registry := deck.NewRegistry()
		loaded := hand.New(dumpWidth, dumpHeight, cfg)
		if err := loaded.Deserialize(wire.NewBuffer(buf.Bytes()), registry); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("decoded %d cards, %d registered\n", loaded.Len(), registry.Len())
		for i, c := range loaded.Cards() {
			pos := c.Position()
			fmt.Printf("  %2d: %-3s at (%.1f, %.1f)\n", i, c.(*deck.Card).Name(), pos.X, pos.Y)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Float64Var(&dumpWidth, "width", 1000, "viewport width in pixels")
	dumpCmd.Flags().Float64Var(&dumpHeight, "height", 800, "viewport height in pixels")
	dumpCmd.Flags().IntVar(&dumpCards, "cards", 5, "cards to deal into the sample hand")
}
