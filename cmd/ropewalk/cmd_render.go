package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ropewalk/internal/render"
)

// renderCmd draws the final chain and the tail's visited map
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the chain and the positions its tail visited",
	Long: `Simulates one chain over a movement log and prints the result as a grid,
top row first. H is the head, 1-9 the following knots (T for a two-knot
chain), s the start, # a position visited by the tail.

Example:
  ropewalk render input.txt -n 10 --color`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	segments, _ := cmd.Flags().GetInt("segments")
	if segments == 0 {
		segments = cfg.Render.Segments
	}
	if segments == 0 {
		segments = 10
	}
	color, _ := cmd.Flags().GetBool("color")
	color = color || cfg.Render.Color
	showChain := true
	if cmd.Flags().Lookup("chain") != nil {
		showChain, _ = cmd.Flags().GetBool("chain")
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out, err := render.RenderString(string(data), segments, parser(), render.Options{
		ShowChain: showChain,
		Color:     color,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
