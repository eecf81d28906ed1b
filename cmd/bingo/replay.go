package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/platform/tui"
)

var (
	replayGen   genFlags
	replayCards int
	replaySpeed int
	replayPick  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a game call by call",
	Long: `Generate cards and step through the game in the terminal, calling
items in order until the engineered bingo appears.

Controls:
  Space/N    - Call the next item
  B          - Undo the last call
  W          - Jump to the winning call
  A          - Toggle autoplay
  Tab        - Next card
  R          - Reset
  ?          - More keys
  Q/Ctrl+C   - Quit

Examples:
  bingo replay
  bingo replay -n 5 --speed 4
  bingo replay --pick
  bingo replay -g vintage_christmas_films -w 12`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayGen.register(replayCmd)
	replayCmd.Flags().IntVarP(&replayCards, "num", "n", 1, "Number of cards to replay")
	replayCmd.Flags().IntVar(&replaySpeed, "speed", 2, "Autoplay speed in calls per second")
	replayCmd.Flags().BoolVar(&replayPick, "pick", false, "Pick the catalog from a menu")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if replayPick {
		id, ok, err := pickCatalog(cmd)
		if err != nil || !ok {
			return err
		}
		replayGen.game = id
	}

	c, err := resolveCatalog(replayGen.game, replayGen.catalogFile)
	if err != nil {
		return err
	}
	if replayCards < 1 {
		return fmt.Errorf("number of cards must be at least 1, got %d", replayCards)
	}

	cards, err := card.GenerateBatch(resolveSeed(), replayGen.params(cmd, c), replayCards)
	if err != nil {
		return explain(err)
	}

	model := tui.NewReplayModel(c, cards, replaySpeed)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running replay: %w", err)
	}
	return nil
}

// pickCatalog shows the catalog menu. ok is false when the user quits.
func pickCatalog(cmd *cobra.Command) (id string, ok bool, err error) {
	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	final, err := tea.NewProgram(tui.NewMenuModel(width), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return "", false, fmt.Errorf("running menu: %w", err)
	}
	menu, _ := final.(tui.MenuModel)
	if sel := menu.Selected(); sel != nil {
		return sel.CatalogID, true, nil
	}
	return "", false, nil
}
