package cli

import (
	"github.com/jonboulle/clockwork"
	"github.com/spacesedan/sentimiento/internal/history"
	"github.com/spacesedan/sentimiento/internal/sentiment"
	"github.com/spf13/cobra"
)

// App is the console front end. It owns the session history; the engine does
// the analysis.
type App struct {
	engine  *sentiment.Engine
	history *history.Store
	clock   clockwork.Clock
}

func NewApp(engine *sentiment.Engine, store *history.Store, clock clockwork.Clock) *App {
	if store == nil {
		store = history.NewStore()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{engine: engine, history: store, clock: clock}
}

func (a *App) History() *history.Store {
	return a.history
}

func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sentimiento",
		Short:         "Classify Spanish or English text as positive, negative or neutral",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.textCommand(),
		a.fileCommand(),
		a.interactiveCommand(),
	)
	return root
}
