package cli

import (
	"fmt"
	"io"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/localstore"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/remote"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// App wires the client-side use cases behind the commands.
type App struct {
	Source    contract.IFeedSource
	Reactions *usecase.ReactionStore
	Interests *usecase.InterestUsecase
	Polls     *usecase.PollUsecase
	Logger    usecasecontract.IAppLogger

	closers []io.Closer
}

type feedAPI interface {
	contract.IFeedSource
	contract.IReactionRemote
}

// NewApp opens the local state and builds an App talking to cfg.APIURL.
func NewApp(cfg *Config) (*App, error) {
	appLogger, err := logger.NewZapLogger("production", cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	store, err := localstore.NewSQLiteStore(cfg.StatePath)
	if err != nil {
		return nil, err
	}
	api := remote.NewAPIClient(cfg.APIURL, cfg.Token, validator.NewValidator(), nil)
	app := NewAppWith(store, api, appLogger)
	app.closers = append(app.closers, store)
	return app, nil
}

// NewAppWith builds an App over an existing store and API.
func NewAppWith(store contract.ILocalStore, api feedAPI, appLogger usecasecontract.IAppLogger) *App {
	session := usecase.NewClientSession(store, uuidgen.NewGenerator(), appLogger)
	return &App{
		Source:    api,
		Reactions: usecase.NewReactionStore(session, store, api, appLogger),
		Interests: usecase.NewInterestUsecase(store, appLogger),
		Polls:     usecase.NewPollUsecase(store),
		Logger:    appLogger,
	}
}

// Close releases the local state.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
