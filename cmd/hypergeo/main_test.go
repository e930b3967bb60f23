package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/odds"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runCmd(t *testing.T, cmd interface{ Run(*runContext) error }) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := cmd.Run(&runContext{out: &buf})
	return buf.String(), err
}

func fullDeck(draws int) PopulationFlags {
	return PopulationFlags{Population: 52, Successes: 16, Draws: draws}
}

func TestPMF(t *testing.T) {
	out, err := runCmd(t, &PMFCmd{fullDeck(3)})
	require.NoError(t, err)

	assert.Contains(t, out, "N=52 K=16 n=3")
	assert.Contains(t, out, "32.31%", "P(X=0) = C(36,3)/C(52,3)")
	assert.Contains(t, out, "100.00%", "CDF reaches one at k=n")
	assert.Contains(t, out, "mean 0.923")
	assert.Contains(t, out, "total 1.0000")
}

func TestPMFFromSeenCards(t *testing.T) {
	flags := fullDeck(2)
	flags.Seen = "10h Kd 5c"

	out, err := runCmd(t, &PMFCmd{flags})
	require.NoError(t, err)
	assert.Contains(t, out, "N=49 K=14 n=2")
}

func TestPMFErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags PopulationFlags
	}{
		{"K above N", PopulationFlags{Population: 10, Successes: 11, Draws: 2}},
		{"draws above N", PopulationFlags{Population: 5, Successes: 2, Draws: 6}},
		{"negative draws", PopulationFlags{Population: 52, Successes: 16, Draws: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, &PMFCmd{tt.flags})
			assert.ErrorIs(t, err, odds.ErrInvalidPopulation)
		})
	}

	flags := fullDeck(3)
	flags.Seen = "As As"
	_, err := runCmd(t, &PMFCmd{flags})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate card")
}

func TestRisk(t *testing.T) {
	tests := []struct {
		name     string
		cmd      RiskCmd
		contains []string
	}{
		{
			name:     "hard sixteen",
			cmd:      RiskCmd{Hand: "10h 6d"},
			contains: []string{"(16)", "50 cards, 15 ten-valued", "60.00%", "busts this hand"},
		},
		{
			name:     "hard twelve with seen cards",
			cmd:      RiskCmd{Hand: "10h 2d", Seen: "Kc Ks"},
			contains: []string{"48 cards, 13 ten-valued", "27.08%"},
		},
		{
			name:     "soft seventeen",
			cmd:      RiskCmd{Hand: "As 6d"},
			contains: []string{"soft 17", "no card can bust this hand", "ace back into 1"},
		},
		{
			name:     "small hand",
			cmd:      RiskCmd{Hand: "2c 3d"},
			contains: []string{"0.00%", "no card can bust this hand"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, &tt.cmd)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRiskErrors(t *testing.T) {
	for _, cmd := range []RiskCmd{
		{Hand: ""},
		{Hand: "Zz"},
		{Hand: "As 6d", Seen: "6d"},
	} {
		_, err := runCmd(t, &cmd)
		assert.Error(t, err, cmd.Hand+" / "+cmd.Seen)
	}
}

func TestSimIsReproducible(t *testing.T) {
	seed := int64(7)
	cmd := &SimCmd{PopulationFlags: fullDeck(4), Trials: 2000, Seed: &seed}

	first, err := runCmd(t, cmd)
	require.NoError(t, err)
	second, err := runCmd(t, cmd)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "trials=2000")
	assert.Contains(t, first, "chi-square")
	assert.Contains(t, first, "mean exact 1.231")
}

func TestSimRejectsNoTrials(t *testing.T) {
	_, err := runCmd(t, &SimCmd{PopulationFlags: fullDeck(3), Trials: 0})
	assert.ErrorIs(t, err, odds.ErrInvalidTrials)
}

func TestParseCommands(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"pmf", "-N", "40", "-K", "10", "-n", "5"})
	require.NoError(t, err)
	assert.Equal(t, "pmf", ctx.Command())
	assert.Equal(t, PopulationFlags{Population: 40, Successes: 10, Draws: 5}, cli.PMF.PopulationFlags)

	ctx, err = parser.Parse([]string{"risk", "As 6d", "--seen", "Kd"})
	require.NoError(t, err)
	assert.Equal(t, "risk <hand>", ctx.Command())
	assert.Equal(t, "As 6d", cli.Risk.Hand)
	assert.Equal(t, "Kd", cli.Risk.Seen)

	ctx, err = parser.Parse([]string{"sim", "--trials", "50", "--seed", "3"})
	require.NoError(t, err)
	assert.Equal(t, "sim", ctx.Command())
	assert.Equal(t, 50, cli.Sim.Trials)
	require.NotNil(t, cli.Sim.Seed)
	assert.Equal(t, 52, cli.Sim.Population)
}
