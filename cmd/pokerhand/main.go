package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/poker"
)

type CLI struct {
	Verbose bool `short:"v" help:"Verbose logging"`

	Classify ClassifyCmd `cmd:"" help:"Classify a five-card hand"`
	Deal     DealCmd     `cmd:"" help:"Shuffle a fresh deck, deal hands and classify them"`
	Simulate SimulateCmd `cmd:"" help:"Deal and classify many hands, reporting category frequencies"`
}

var (
	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhand"),
		kong.Description("Poker hand classification and deck simulation"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// printHand renders a classified hand to stdout.
func printHand(hand poker.Hand) {
	cards := make([]string, len(hand.Cards))
	for i, c := range hand.Cards {
		cards[i] = c.String()
	}

	fmt.Printf("%s  %s",
		handStyle.Render(strings.Join(cards, " ")),
		categoryStyle.Render(hand.Category.String()))

	if len(hand.Tiebreaks) > 0 {
		tiebreaks := make([]string, len(hand.Tiebreaks))
		for i, r := range hand.Tiebreaks {
			tiebreaks[i] = r.String()
		}
		fmt.Printf("  (tiebreaks: %s)", strings.Join(tiebreaks, " "))
	}
	fmt.Println()
}
