// Package bench runs the engine across a fixed suite of historical games
// to a configured search depth, reporting node counts and throughput.
// It exists so non-functional changes to search/evaluation can be caught
// by a node-count regression the way a change in node count for the same
// depth flags an accidental behavior change, not just a performance one.
package bench

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/janmarthedal/gopawn/engine"
)

// Game is one historical game, given as a move sequence in long
// algebraic notation, replayed from the standard starting position.
type Game struct {
	Description string   `toml:"description"`
	Moves       []string `toml:"moves"`
}

// DefaultGames are the games bundled with the binary; a non-empty
// Config.Games (from a TOML suite file) replaces them.
var DefaultGames = []Game{
	{
		Description: "Garry Kasparov - Veselin Topalov, Wijk aan Zee 1999.01.20",
		Moves: splitMoves("e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6 f2f3 b7b5 " +
			"g1e2 b8d7 e3h6 g7h6 d2h6 c8b7 a2a3 e7e5 e1c1 d8e7 c1b1 a7a6 e2c1 e8c8 " +
			"c1b3 e5d4 d1d4 c6c5 d4d1 d7b6 g2g3 c8b8 b3a5 b7a8 f1h3 d6d5 h6f4 b8a7"),
	},
	{
		Description: "Vladimir Kramnik - Alexey Shirov, Linares 1994",
		Moves: splitMoves("g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6 c4c5 b6c7 " +
			"c1f4 c7c8 e2e3 g8f6 b3a4 b8d7 b2b4 a7a6 h2h3 f8e7 a4b3 e8g8 f1e2 f5e4 " +
			"e1g1 e4f3 e2f3 e7d8 a2a4 d8c7 f4g5 h7h6 g5f6 d7f6"),
	},
	{
		Description: "Mikhail Tal - Boris Spassky, Leningrad 1954",
		Moves: splitMoves("c2c4 g8f6 b1c3 e7e6 d2d4 c7c5 d4d5 e6d5 c4d5 g7g6 g1f3 f8g7 " +
			"c1f4 d7d6 h2h3 e8g8 e2e3 f6e8 f1e2 b8d7 e1g1 d7e5 f4e5 d6e5 f3d2 f7f5 " +
			"d1b3 e8d6 d2c4 e5e4 c3b5 d6b5 b3b5 b7b6 d5d6 c8d7"),
	},
}

func splitMoves(s string) []string {
	var moves []string
	word := ""
	for _, r := range s {
		if r == ' ' {
			if word != "" {
				moves = append(moves, word)
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		moves = append(moves, word)
	}
	return moves
}

// Config is the TOML-driven shape of a benchmark suite file: the depth
// to search every position to, and optionally a set of games used in
// place of DefaultGames.
type Config struct {
	Depth   int    `toml:"depth"`
	Games   []Game `toml:"game"`
	Logging string `toml:"logging"` // "console" or "json"; decoded but not read: cmd/bench always builds a zap production logger
}

// LoadConfig parses a TOML suite file. A missing Depth defaults to 5, the
// depth the original games were calibrated against.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: loading config %s: %w", path, err)
	}
	if cfg.Depth == 0 {
		cfg.Depth = 5
	}
	return cfg, nil
}

// Suite is a resolved, ready-to-run benchmark: games plus the depth to
// search each position to.
type Suite struct {
	Games []Game
	Depth int
}

// NewSuite builds a Suite from a Config, falling back to DefaultGames
// when the config supplies none.
func NewSuite(cfg Config) *Suite {
	games := cfg.Games
	if len(games) == 0 {
		games = DefaultGames
	}
	depth := cfg.Depth
	if depth == 0 {
		depth = 5
	}
	return &Suite{Games: games, Depth: depth}
}

// Fingerprint returns a stable 64-bit identifier for this exact suite
// (games + depth), so two bench runs can confirm they compared apples to
// apples.
func (s *Suite) Fingerprint() uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "depth=%d\n", s.Depth)
	for _, g := range s.Games {
		fmt.Fprintf(h, "%s|%v\n", g.Description, g.Moves)
	}
	return h.Sum64()
}

// GameResult is the node count and elapsed time for replaying one game.
type GameResult struct {
	Description string
	Nodes       int64
	Elapsed     time.Duration
}

// Result is the outcome of a full Suite run.
type Result struct {
	RunID     uuid.UUID
	Games     []GameResult
	Nodes     int64
	Elapsed   time.Duration
	NodesPerS float64
}

// Run replays every game in the suite, searching each position in the
// game to s.Depth and summing the node counts think() reports. It logs
// per-game progress through logger (typically built with zap in the
// caller).
func (s *Suite) Run(logger *zap.Logger) Result {
	runID := uuid.New()
	start := time.Now()

	result := Result{RunID: runID, Games: make([]GameResult, 0, len(s.Games))}
	for _, g := range s.Games {
		gr := s.runGame(g)
		result.Games = append(result.Games, gr)
		result.Nodes += gr.Nodes
		logger.Info("game complete",
			zap.String("description", g.Description),
			zap.Int64("nodes", gr.Nodes),
			zap.Duration("elapsed", gr.Elapsed))
	}
	result.Elapsed = time.Since(start)
	if secs := result.Elapsed.Seconds(); secs > 0 {
		result.NodesPerS = float64(result.Nodes) / secs
	}
	return result
}

func (s *Suite) runGame(g Game) GameResult {
	pos, err := engine.FromFEN(engine.FENStartPos)
	if err != nil {
		// DefaultGames and a well-formed suite file never hit this; a
		// broken constant is a programmer error, not a runtime one.
		panic(fmt.Sprintf("bench: invalid start position: %v", err))
	}

	start := time.Now()
	var nodes int64
	for _, mstr := range g.Moves {
		e := engine.NewEngine(pos, engine.Options{MaxDepth: s.Depth})
		e.Think(60_000, s.Depth, engine.NopSink{})
		nodes += e.Stats().Nodes
		pos.MakeMoveAlgebraic(mstr)
	}
	return GameResult{Description: g.Description, Nodes: nodes, Elapsed: time.Since(start)}
}
