//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/spellcheck/pkg/di/config"
	shortcontext "github.com/lintang-b-s/spellcheck/pkg/di/context"
	logger_di "github.com/lintang-b-s/spellcheck/pkg/di/logger"
	speller_di "github.com/lintang-b-s/spellcheck/pkg/di/speller"
	spellerHttp "github.com/lintang-b-s/spellcheck/pkg/http"
	"github.com/lintang-b-s/spellcheck/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/spellcheck/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	speller_di.New,
)

var spellerSet = wire.NewSet(
	defaultSet,
	NewSpellerService,
	NewSpellerAPIServer,
)

func NewSpellerService(log *zap.Logger, engine usecases.Speller) controllers.SpellerService {
	return usecases.New(log, engine)
}

func NewSpellerAPIServer(ctx context.Context, log *zap.Logger,
	spellerService controllers.SpellerService) (*spellerHttp.Server, error) {
	api := spellerHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, spellerService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeSpellerService() (*spellerHttp.Server, func(), error) {

	panic(wire.Build(spellerSet))
}
