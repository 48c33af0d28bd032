package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <level|file>",
	Short: "Render a puzzle",
	Long: `Draws the puzzle grid with its trains and destination.

Examples:
  railsolve show 1-2
  railsolve show ./levels/1-2.json`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	lvl, err := newLoader().Resolve(args[0])
	if err != nil {
		fail("%v", err)
	}

	root, err := lvl.NewState()
	if err != nil {
		fail("%v", err)
	}

	r := newRenderer()
	fmt.Println(r.Title(r.Truncate(fmt.Sprintf("%s - %s", lvl.ID, lvl.Name))))
	fmt.Println(r.Field("Size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)))
	fmt.Println(r.Field("Open cells", root.Grid.OpenCount()))
	fmt.Println(r.Field("Max tracks", lvl.MaxTracks))
	for _, t := range root.Trains {
		fmt.Println(r.Field("Train", t))
	}
	fmt.Println()
	fmt.Print(r.State(root))
}
