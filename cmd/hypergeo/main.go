package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/hand"
	"github.com/lox/twentyone/internal/odds"
	"github.com/lox/twentyone/internal/randutil"
)

type CLI struct {
	PMF  PMFCmd  `cmd:"" name:"pmf" help:"Print the distribution of successes in n draws"`
	Risk RiskCmd `cmd:"" help:"Show what one more card does to a blackjack hand"`
	Sim  SimCmd  `cmd:"" help:"Compare an empirical sample with the exact distribution"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// runContext is bound into every command's Run method.
type runContext struct {
	out io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hypergeo"),
		kong.Description("Hypergeometric odds for a single 52-card deck."),
		kong.UsageOnError())

	if err := ctx.Run(&runContext{out: os.Stdout}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

type PopulationFlags struct {
	Population int    `short:"N" default:"52" help:"Cards left to draw from"`
	Successes  int    `short:"K" default:"16" help:"Success cards among them (ten-valued in a full deck)"`
	Draws      int    `short:"n" default:"3" help:"Cards drawn"`
	Seen       string `help:"Cards already seen, e.g. 'As 10h Kd'; derives N and K from a full deck"`
}

func (f PopulationFlags) resolve() (odds.Population, error) {
	pop := odds.Population{N: f.Population, K: f.Successes}
	if f.Seen != "" {
		seen, err := parseUnique(f.Seen)
		if err != nil {
			return odds.Population{}, fmt.Errorf("seen cards: %w", err)
		}
		pop = odds.EstimatePopulation(seen)
	}
	if err := odds.CheckPopulation(pop.N, pop.K, f.Draws); err != nil {
		return odds.Population{}, err
	}
	return pop, nil
}

// PMFCmd prints P(X=k) and P(X<=k).
type PMFCmd struct {
	PopulationFlags `embed:""`
}

func (c *PMFCmd) Run(rc *runContext) error {
	pop, err := c.resolve()
	if err != nil {
		return err
	}
	curve := odds.Curve(pop.N, pop.K, c.Draws)

	fmt.Fprintf(rc.out, "%s N=%d K=%d n=%d\n\n", headerStyle.Render("population"), pop.N, pop.K, c.Draws)

	w := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t\n", headerStyle.Render("k"), headerStyle.Render("P(X=k)"), headerStyle.Render("P(X<=k)"))
	for _, p := range curve {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			valueStyle.Render(fmt.Sprint(p.K)),
			percentStyle.Render(formatPercent(p.P)),
			formatPercent(odds.CDF(p.K, pop.N, pop.K, c.Draws)),
			barStyle.Render(strings.Repeat("█", int(math.Round(p.P*40)))))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(rc.out, "\nmean %.3f  variance %.3f  total %.4f\n",
		odds.Mean(pop.N, pop.K, c.Draws), odds.Variance(pop.N, pop.K, c.Draws), odds.Total(curve))
	return nil
}

// RiskCmd reports the bust risk of one more card.
type RiskCmd struct {
	Hand string `arg:"" help:"Hand, e.g. 'As 6d'"`
	Seen string `help:"Other cards already out of the deck"`
}

func (c *RiskCmd) Run(rc *runContext) error {
	cards, err := parseUnique(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	if len(cards) == 0 {
		return fmt.Errorf("hand: no cards given")
	}

	visible := cards
	if c.Seen != "" {
		visible, err = parseUnique(c.Hand + " " + c.Seen)
		if err != nil {
			return fmt.Errorf("seen cards: %w", err)
		}
	}

	r := odds.RiskFromCounts(cards, odds.CountsFromVisible(visible))

	fmt.Fprintf(rc.out, "%s %s (%s)\n", headerStyle.Render("hand"), formatCards(cards), hand.Value(cards))
	fmt.Fprintf(rc.out, "%s %d cards, %d ten-valued\n\n", headerStyle.Render("deck"), r.Population.N, r.Population.K)

	w := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "safe margin\t%d\n", r.SafeMargin)
	fmt.Fprintf(w, "P(ten-valued)\t%s\n", percentStyle.Render(formatPercent(r.TenProbability)))
	fmt.Fprintf(w, "P(bust)\t%s\n", dangerStyle.Render(formatPercent(r.BustProbability)))
	fmt.Fprintf(w, "P(safe)\t%s\n", percentStyle.Render(formatPercent(r.SafeProbability())))
	if err := w.Flush(); err != nil {
		return err
	}

	switch {
	case r.Danger && slices.Contains(r.BustRanks, deck.Ten):
		fmt.Fprintln(rc.out, dangerStyle.Render("\na ten-valued card busts this hand"))
	case r.Danger:
		fmt.Fprintln(rc.out, "\na ten-valued card turns the ace back into 1")
	}
	if len(r.BustRanks) == 0 {
		fmt.Fprintln(rc.out, "\nno card can bust this hand")
		return nil
	}

	fmt.Fprintln(rc.out)
	w = tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("bust rank"), headerStyle.Render("left"))
	for _, rank := range r.BustRanks {
		fmt.Fprintf(w, "%s\t%d\n", rank, r.Counts[rank])
	}
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("total"), r.BustOuts)
	return w.Flush()
}

// SimCmd samples the distribution and tests the fit.
type SimCmd struct {
	PopulationFlags `embed:""`
	Trials          int    `short:"t" default:"1000" help:"Number of simulated draws"`
	Seed            *int64 `help:"Random seed for reproducible results"`
}

func (c *SimCmd) Run(rc *runContext) error {
	pop, err := c.resolve()
	if err != nil {
		return err
	}

	rng := randutil.Fresh()
	if c.Seed != nil {
		rng = randutil.New(*c.Seed)
	}

	sample, err := odds.Simulate(context.Background(), pop.N, pop.K, c.Draws, c.Trials, rng)
	if err != nil {
		return err
	}
	curve := odds.Curve(pop.N, pop.K, c.Draws)
	fit := odds.Fit(curve, sample)

	fmt.Fprintf(rc.out, "%s N=%d K=%d n=%d trials=%d\n\n",
		headerStyle.Render("population"), pop.N, pop.K, c.Draws, sample.Trials)

	w := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("k"), headerStyle.Render("exact"), headerStyle.Render("sampled"), headerStyle.Render("count"))
	for _, p := range curve {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			valueStyle.Render(fmt.Sprint(p.K)),
			formatPercent(p.P),
			percentStyle.Render(formatPercent(sample.Frequency(p.K))),
			sample.Counts[p.K])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(rc.out, "\nmean exact %.3f sampled %.3f\n", odds.Mean(pop.N, pop.K, c.Draws), sample.Mean())
	fmt.Fprintf(rc.out, "variance exact %.3f sampled %.3f\n", odds.Variance(pop.N, pop.K, c.Draws), sample.Variance())
	fmt.Fprintf(rc.out, "chi-square %.3f df=%d p=%.3f\n", fit.ChiSquare, fit.DegreesOfFreedom, fit.PValue)
	return nil
}

// parseUnique parses cards and rejects duplicates.
func parseUnique(s string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return nil, fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	return cards, nil
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
