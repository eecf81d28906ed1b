package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/render"
)

var (
	showGen    genFlags
	flagMarked bool
	flagPlain  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one card in the terminal",
	Long: `Generate a single card and print it with its verified winning call.

With --marked the card is shown as it stands on the winning call, with
called cells shaded and the completed line highlighted. Output is plain
text when standard output is not a terminal or --plain is set.

Examples:
  bingo show
  bingo show --seed 42 --marked
  bingo show -g vintage_christmas_films -w 15`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showGen.register(showCmd)
	showCmd.Flags().BoolVar(&flagMarked, "marked", false, "Mark the items called up to the winning call")
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Plain text output without styling")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := resolveCatalog(showGen.game, showGen.catalogFile)
	if err != nil {
		return err
	}

	p := showGen.params(cmd, c)
	cards, err := card.GenerateBatch(resolveSeed(), p, 1)
	if err != nil {
		return explain(err)
	}
	crd := cards[0]
	win := card.Simulate(crd.Grid, c.Size())

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		s, err := render.PlainCard(c, crd)
		if err != nil {
			return err
		}
		fmt.Print(s)
		fmt.Printf("First bingo on call %d (%d attempts)\n", win, crd.Attempts)
		return nil
	}

	var called *card.CalledSet
	if flagMarked {
		called = card.NewCalledSet()
		for order := 1; order <= win; order++ {
			called.Add(order)
		}
	}

	s, err := render.CardText(c, crd, called, render.NewTextTheme(c.Theme))
	if err != nil {
		return err
	}
	fmt.Print(s)
	fmt.Printf("First bingo on call %d (%d attempts)\n", win, crd.Attempts)
	return nil
}
