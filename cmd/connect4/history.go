package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show results of finished games",
	Long: `Display the most recent finished games and the overall tally.

When stdout is a terminal the results are shown in an interactive
table; use --plain for text output suitable for scripts.

Examples:
  connect4 history
  connect4 history --limit 50
  connect4 history --plain
  connect4 history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes recent results and the tally as plain text.
func printHistory(store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	tally, err := store.Tally()
	if err != nil {
		return err
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connect4 play' and finish a game to record it!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-14s  %-24s  %-5s  %-8s  %-10s  %s\n", "#", "Winner", "Players", "Moves", "Time", "Where", "Date")
	fmt.Printf("  %-5s  %-14s  %-24s  %-5s  %-8s  %-10s  %s\n", "-", "------", "-------", "-----", "----", "-----", "----")

	for _, row := range tui.HistoryRows(results) {
		fmt.Printf("  %-5s  %-14s  %-24s  %-5s  %-8s  %-10s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Println()
	fmt.Println(tui.TallyLine(tally))
	return nil
}
