// Package odds computes draw probabilities for a blackjack deck using the
// hypergeometric distribution.
//
// A draw of n cards without replacement from N remaining cards, K of which are
// "successes" (for example ten-valued cards), has
//
//	P(X = k) = C(K, k) · C(N-K, n-k) / C(N, n)
//
// # Basic Usage
//
//	pop := odds.RemainingPopulation(d)        // N and K read from the deck
//	p := odds.PMF(1, pop.N, pop.K, 1)         // chance the next card is a ten
//	report := odds.NextDrawRisk(h, d)         // bust odds for the player's hand
//	curve := odds.Curve(pop.N, pop.K, 5)      // P(X=k) for k = 0..5
//
// Impossible parameter combinations are not errors: every probability
// function returns 0 for them.
//
// # Empirical Sampling
//
// Simulate draws repeated samples with independently seeded workers so the
// theoretical curve can be compared with observed frequencies. Fit reports a
// chi-square statistic for that comparison. Sampling never feeds back into
// game decisions.
package odds
