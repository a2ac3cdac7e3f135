package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peacelens/transcript-scorer/internal/classifier"
	"github.com/peacelens/transcript-scorer/internal/config"
	"github.com/peacelens/transcript-scorer/internal/emotion"
	"github.com/peacelens/transcript-scorer/internal/llm"
	"github.com/peacelens/transcript-scorer/internal/repository"
	"github.com/peacelens/transcript-scorer/internal/scoring"
	"github.com/peacelens/transcript-scorer/internal/valence"
	dbbuilder "github.com/peacelens/transcript-scorer/pkg/database"
)

var rootCmd = &cobra.Command{
	Use:           "goldrun",
	Short:         "Run scoring methods over the gold-standard corpus.",
	Long:          `Goldrun batch-scores the stored gold-standard transcripts and reports how well each method agrees with the human raters.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(runCmd, compareCmd, importCmd)
}

// toolkit bundles everything a subcommand needs. Subcommands call
// setup once and close the pool when done.
type toolkit struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sql.DB
	repo   *repository.ScoreRepository
	svc    *scoring.Service
}

func (t *toolkit) close() {
	_ = t.db.Close()
	_ = t.logger.Sync()
}

func setup(cmd *cobra.Command) (*toolkit, error) {
	if err := emotion.ValidateVocabulary(); err != nil {
		return nil, fmt.Errorf("vocabulary check failed: %w", err)
	}

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	db, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repo := repository.NewScoreRepository(db)
	if err := repo.EnsureSchema(cmd.Context()); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	rubric := valence.DefaultRubric
	if cfg.ValenceRubricPath != "" {
		rubric, err = valence.LoadRubric(cfg.ValenceRubricPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("rubric load failed: %w", err)
		}
	}
	valenceScorer, err := valence.NewScorer(rubric, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("valence scorer init failed: %w", err)
	}

	aggregator := emotion.NewAggregator(
		classifier.NewHTTPAdapter(cfg.ClassifierURL, cfg.ClassifierModel, logger),
		logger,
	)

	analyzer := llm.NewClient(llm.Config{
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		GeminiBaseURL: cfg.GeminiBaseURL,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
	}, logger)

	return &toolkit{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repo:   repo,
		svc:    scoring.NewService(aggregator, analyzer, valenceScorer, repo, logger),
	}, nil
}

// parseMethods turns a comma-separated spec into Methods. Classifier
// methods are named directly; LLM methods take the form
// llm:<prompt_version>:<provider>.
func parseMethods(spec string) ([]scoring.Method, error) {
	var methods []scoring.Method
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 3)
		var m scoring.Method
		var err error
		switch len(fields) {
		case 1:
			m, err = scoring.ParseMethod(fields[0], "", "")
		case 3:
			m, err = scoring.ParseMethod(fields[0], fields[1], fields[2])
		default:
			return nil, fmt.Errorf("malformed method %q: llm methods need llm:<prompt_version>:<provider>", part)
		}
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("no methods given")
	}
	return methods, nil
}
