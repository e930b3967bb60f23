package tui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/odds"
)

const barWidth = 24

// bar draws p in [0,1] as a run of block characters barWidth wide.
func bar(p float64, style func(...string) string) string {
	p = math.Max(0, math.Min(1, p))
	filled := int(math.Round(p * barWidth))
	return style(strings.Repeat("█", filled)) + strings.Repeat("·", barWidth-filled)
}

func percent(p float64) string {
	return fmt.Sprintf("%5.1f%%", p*100)
}

// renderRisk shows what the next card can do to the player's hand.
func renderRisk(snap game.Snapshot) string {
	r := snap.Risk
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Next card risk"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hand %d, margin %d, %d cards left (%d ten-valued)\n\n",
		r.Total, r.SafeMargin, r.Population.N, r.Population.K)

	fmt.Fprintf(&b, "ten-value %s %s\n", bar(r.TenProbability, BarStyle.Render), percent(r.TenProbability))
	fmt.Fprintf(&b, "bust      %s %s\n", bar(r.BustProbability, ErrorStyle.Render), percent(r.BustProbability))
	fmt.Fprintf(&b, "safe      %s %s\n", bar(r.SafeProbability(), SuccessStyle.Render), percent(r.SafeProbability()))
	b.WriteString("\n")

	switch {
	case r.Danger && slices.Contains(r.BustRanks, deck.Ten):
		b.WriteString(WarningStyle.Render("A ten-valued card busts this hand"))
	case r.Danger:
		b.WriteString(HandInfoStyle.Render("A ten-valued card turns the ace back into 1"))
	default:
		b.WriteString(SuccessStyle.Render("A ten-valued card is safe"))
	}
	b.WriteString("\n")

	if len(r.BustRanks) == 0 {
		b.WriteString(InfoStyle.Render("No card can bust this hand"))
		return b.String()
	}

	outs := make([]string, len(r.BustRanks))
	for i, rank := range r.BustRanks {
		outs[i] = fmt.Sprintf("%s×%d", rank, r.Counts[rank])
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Bust outs %d: %s", r.BustOuts, strings.Join(outs, " "))))
	return b.String()
}

// renderPMF shows the distribution of ten-valued cards in the next n draws,
// with the empirical sample beside it once one is available.
func renderPMF(snap game.Snapshot, sample *odds.Sample) string {
	var b strings.Builder
	pop := snap.Population

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Ten-valued cards in the next %d draws", snap.CurveDraws)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "N=%d K=%d n=%d  mean %.2f  sd %.2f\n\n",
		pop.N, pop.K, snap.CurveDraws,
		odds.Mean(pop.N, pop.K, snap.CurveDraws),
		math.Sqrt(odds.Variance(pop.N, pop.K, snap.CurveDraws)))

	if len(snap.Curve) == 0 {
		b.WriteString(InfoStyle.Render("No cards to draw"))
		return b.String()
	}

	mode, _ := odds.Mode(snap.Curve)
	for _, p := range snap.Curve {
		label := fmt.Sprintf("k=%-2d", p.K)
		if p.K == mode.K {
			label = WarningStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s %s %s", label, bar(p.P, BarStyle.Render), percent(p.P))
		if sample != nil {
			fmt.Fprintf(&b, "  sim %s", percent(sample.Frequency(p.K)))
		}
		b.WriteString("\n")
	}

	if sample == nil {
		b.WriteString(InfoStyle.Render("sampling..."))
		return b.String()
	}

	fit := odds.Fit(snap.Curve, *sample)
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%d samples  mean %.2f  χ²=%.2f df=%d p=%.2f",
		sample.Trials, sample.Mean(), fit.ChiSquare, fit.DegreesOfFreedom, fit.PValue)))
	return b.String()
}

// formatCards formats cards with colors. A hidden hole card shows as ??.
func formatCards(cards []deck.Card, holeHidden bool) string {
	if len(cards) == 0 {
		return InfoStyle.Render("[ ]")
	}

	formatted := make([]string, 0, len(cards))
	for i, card := range cards {
		switch {
		case i == 0 && holeHidden:
			formatted = append(formatted, HiddenCardStyle.Render("??"))
		case card.IsRed():
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		default:
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}
