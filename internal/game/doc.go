// Package game implements a ten-round session of single-player blackjack.
//
// The main type is Session, which owns the deck, both hands, the running
// score and the round counter. It moves through four states:
//
//	AwaitingName -> Playing -> RoundEnd -> Playing ... -> SessionEnd
//
// # Basic Usage
//
//	s := game.NewSession(randutil.Fresh(), game.WithScoreRecorder(board))
//	s.SubmitName("Ana")
//	s.Apply(game.Start)
//	s.Apply(game.Hit)
//	s.Apply(game.Stand)
//	snap := s.Snapshot() // hands, totals, risk report, PMF curve
//
// Every input goes through Apply or SubmitName. Inputs that are not valid in
// the current state are ignored and Apply reports false.
//
// # Deterministic Testing
//
// The RNG is required so shuffles are explicit. Seed it for reproducible
// deals, or stack the deck outright:
//
//	d := deck.NewFromCards(deck.MustParseCards("As Kh 9c 7d"), randutil.New(1))
//	s := game.NewSession(randutil.New(1), game.WithDeck(d))
//
// Event timestamps come from a quartz.Clock so tests can pin them.
package game
