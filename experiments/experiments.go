package experiments

import (
	"bestiary/engine"
	"bestiary/experiments/metrics"
	"bestiary/game"
	"bestiary/searcher"
	"bestiary/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Options shared by every experiment.
type Options struct {
	Games    int    // Per match up
	MaxMoves int    // Per game
	OutDir   string // CSV output root, "" to skip writing
	Seed     uint64
}

// Summary tallies results by AgentConfig.ID; Unresolved counts games that hit
// the move limit.
type Summary struct {
	Wins       map[int]int
	Unresolved int
	Games      []metrics.GameRecord
	Moves      []metrics.MoveRecord
}

// RunDepthExperiment pits minimax agents of increasing depth against a random
// baseline.
func RunDepthExperiment(opts Options) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: opts.Seed}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 1},
		{ID: 2, Kind: "minimax", Depth: 2},
		{ID: 3, Kind: "minimax", Depth: 4},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", append(depthConfigs, baseline), matchUps, opts)
}

// RunDecrementExperiment plays the asymmetric 1/3 depth decrement against a
// uniform one at the same nominal depth.
func RunDecrementExperiment(depth int, opts Options) (Summary, error) {
	asymmetric := metrics.AgentConfig{ID: 1, Kind: "minimax", Depth: depth, MaxDecrement: searcher.MaxDecrement, MinDecrement: searcher.MinDecrement}
	uniform := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: depth, MaxDecrement: 1, MinDecrement: 1}

	configs := []metrics.AgentConfig{asymmetric, uniform}
	return runExperiment("decrement", configs, [][]metrics.AgentConfig{configs}, opts)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, opts Options) (Summary, error) {
	if opts.Games <= 0 || opts.MaxMoves <= 0 {
		return Summary{}, fmt.Errorf("experiment %s needs positive games and max moves, got %d and %d", name, opts.Games, opts.MaxMoves)
	}

	summary := Summary{Wins: make(map[int]int)}
	seeds := rand.New(rand.NewSource(opts.Seed))
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.Games; i++ {
			// Alternate colors so neither agent always moves first
			red, blue := config1, config2
			if i%2 == 1 {
				red, blue = config2, config1
			}

			outcome, gameMetric, moveMetrics := runGame(red, blue, opts.MaxMoves, seeds.Uint64())
			count++
			summary.Games = append(summary.Games, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch outcome {
			case game.RedWins:
				summary.Wins[red.ID]++
			case game.BlueWins:
				summary.Wins[blue.ID]++
			default:
				summary.Unresolved++
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %s (%s)", mi+1, len(matchUps), i+1, outcome, gameMetric.Reason)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if opts.OutDir == "" {
		return summary, nil
	}
	return summary, store(name, opts.OutDir, configs, summary)
}

func store(name, root string, configs []metrics.AgentConfig, summary Summary) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame plays a single game from the opening and returns the outcome
func runGame(red, blue metrics.AgentConfig, maxMoves int, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(game.Initial(), createAgent(red, seed), createAgent(blue, seed+1), maxMoves)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == "random" {
		if config.Seed != 0 {
			seed = config.Seed
		}
		return agent.NewRandomAgent(seed)
	}
	return agent.NewMinimaxAgent(createMinimax(config), config.Depth)
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDecrements(config.MaxDecrement, config.MinDecrement),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return searcher.NewMinimax(options...)
}
