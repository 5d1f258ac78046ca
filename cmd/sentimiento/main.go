package main

import (
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spacesedan/sentimiento/config"
	"github.com/spacesedan/sentimiento/internal/cli"
	"github.com/spacesedan/sentimiento/internal/history"
	"github.com/spacesedan/sentimiento/internal/logging"
	"github.com/spacesedan/sentimiento/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(logging.ParseLevel(cfg.LogLevel))

	lexicon, err := sentiment.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		slog.Error("[Main] Failed to load lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var scorer sentiment.LexicalScorer = sentiment.NewVaderScorer()
	if cfg.CacheEnabled() {
		scorer = sentiment.NewCachedScorer(scorer, cfg.ScoreCacheTTL, cfg.ScoreCacheCleanup)
	}

	clock := clockwork.NewRealClock()
	engine := sentiment.NewEngine(scorer, lexicon, clock)
	app := cli.NewApp(engine, history.NewStore(), clock)

	slog.Debug("[Main] Engine initialized",
		slog.String("environment", cfg.AppEnv),
		slog.String("lexicon", lexicon.Language()),
		slog.Bool("score_cache", cfg.CacheEnabled()))

	if err := app.RootCommand().Execute(); err != nil {
		slog.Error("[Main] Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
