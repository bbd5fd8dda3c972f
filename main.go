package main

import (
	"bestiary/engine"
	"bestiary/experiments"
	"bestiary/game"
	"bestiary/meta"
	"bestiary/searcher"
	"bestiary/searcher/agent"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode         string
	depth        int
	maxDecrement int
	minDecrement int
	goroutines   int
	games        int
	maxMoves     int
	seed         uint64
	out          string
	human        string
	state        string
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "play", "play, depth, decrement or throughput")
	flag.IntVar(&cfg.depth, "depth", meta.DEPTH, "search depth of the AI")
	flag.IntVar(&cfg.maxDecrement, "max-decrement", searcher.MaxDecrement, "depth consumed by a maximizing (Red) ply")
	flag.IntVar(&cfg.minDecrement, "min-decrement", searcher.MinDecrement, "depth consumed by a minimizing (Blue) ply")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "goroutines scoring root moves")
	flag.IntVar(&cfg.games, "games", meta.GAMES, "games per matchup")
	flag.IntVar(&cfg.maxMoves, "max-moves", meta.MAX_MOVES, "move limit per self-play game")
	flag.Uint64Var(&cfg.seed, "seed", meta.SEED, "seed for random agents")
	flag.StringVar(&cfg.out, "out", "", "directory for experiment CSV files")
	flag.StringVar(&cfg.human, "human", "blue", "side played by the human: red or blue")
	flag.StringVar(&cfg.state, "state", "", "encoded start state (default: the opening, Blue to move)")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func run(cfg config, in io.Reader, out io.Writer) error {
	opts := experiments.Options{Games: cfg.games, MaxMoves: cfg.maxMoves, OutDir: cfg.out, Seed: cfg.seed}

	switch cfg.mode {
	case "play":
		return play(cfg, in, out)
	case "depth":
		summary, err := experiments.RunDepthExperiment(opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wins by agent: %v, unresolved: %d\n", summary.Wins, summary.Unresolved)
		return nil
	case "decrement":
		summary, err := experiments.RunDecrementExperiment(cfg.depth, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wins by agent: %v, unresolved: %d\n", summary.Wins, summary.Unresolved)
		return nil
	case "throughput":
		_, err := experiments.RunThroughputExperiment(game.Initial(), cfg.depth, []int{1, 2, 4, 8})
		return err
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

// play runs a human against the AI on a line-based board: each input line is
// "<from> <to>", "rules" or "quit".
func play(cfg config, in io.Reader, out io.Writer) error {
	state, err := startState(cfg.state)
	if err != nil {
		return err
	}
	humanColor := game.Blue
	if strings.EqualFold(cfg.human, "red") {
		humanColor = game.Red
	}

	minimax := searcher.NewMinimax(
		searcher.WithDecrements(cfg.maxDecrement, cfg.minDecrement),
		searcher.WithGoroutines(cfg.goroutines),
		searcher.WithMetrics(),
	)
	session := engine.NewSession(state, agent.NewMinimaxAgent(minimax, cfg.depth), humanColor.Opponent())

	if outcome, _ := session.Outcome(); outcome == game.Ongoing && state.Player() != humanColor {
		if _, err := session.Reply(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, session.State().Grid())
		if outcome, reason := session.Outcome(); outcome != game.Ongoing {
			fmt.Fprintf(out, "%s (%s)\n", outcome, reason)
			return nil
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit":
			return nil
		case "rules":
			for _, rule := range game.RulesText() {
				fmt.Fprintln(out, rule)
			}
			continue
		}

		from, to, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		turn, err := session.Play(from, to)
		switch {
		case errors.Is(err, game.ErrIllegalMove):
			fmt.Fprintln(out, "illegal move")
			continue
		case err != nil:
			return err
		}
		if turn.Replied {
			fmt.Fprintf(out, "AI plays %s\n", turn.Reply)
		}
	}
}

func startState(encoded string) (*game.GameState, error) {
	if encoded == "" {
		return game.NewGameState(game.Standard, game.Blue)
	}
	return game.Decode(encoded)
}

func parseMove(line string) (game.Position, game.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"<from> <to>\", got %q", line)
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad from square %q", fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad to square %q", fields[1])
	}
	return from, to, nil
}
