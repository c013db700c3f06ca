//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/syedmuhib/meeting-assistant/internal/bootstrap"
	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
	"github.com/syedmuhib/meeting-assistant/internal/infra/config"
	httpiface "github.com/syedmuhib/meeting-assistant/internal/interface/http"
	"github.com/syedmuhib/meeting-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideNotesConfig,
		provideSummarizer,
		provideExtractor,
		provideStore,
		provideTokenCounter,
		notes.NewService,
		httpiface.NewAnalysisHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
