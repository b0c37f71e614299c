// Package app wires application services with infrastructure adapters.
package app

import (
	"github.com/sleepystudio/terminai/internal/application/doctor"
	"github.com/sleepystudio/terminai/internal/application/suggest"
	"github.com/sleepystudio/terminai/internal/infrastructure/ai"
	"github.com/sleepystudio/terminai/internal/infrastructure/config"
	"github.com/sleepystudio/terminai/internal/infrastructure/executor"
	"github.com/sleepystudio/terminai/internal/infrastructure/history"
	"github.com/sleepystudio/terminai/internal/infrastructure/security"
	"github.com/sleepystudio/terminai/internal/pkg/logger"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Container holds the wired dependency graph.
type Container struct {
	SuggestService *suggest.Service
	DoctorService  *doctor.Service
	ConfigLoader   *config.FileLoader
	PersonaStore   *config.PersonaStore
	HistoryStore   ports.HistoryRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph. The Presenter is attached
// by the CLI layer, which owns the terminal.
func BuildContainer(verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	cfgLoader := config.NewFileLoader("")
	personaStore := config.NewPersonaStore("")
	historyStore := history.NewSQLiteStore()

	denylist, err := security.NewDenylist("")
	if err != nil {
		return nil, err
	}

	suggestService := &suggest.Service{
		ConfigProvider:  cfgLoader,
		PersonaProvider: personaStore,
		Client:          ai.NewClient(),
		Parser:          ai.NewReplyParser(),
		Classifier:      denylist,
		Executor:        executor.NewShellExecutor(""),
		History:         historyStore,
		Logger:          log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		PersonaProvider: personaStore,
		Classifier:      denylist,
		History:         historyStore,
	}

	return &Container{
		SuggestService: suggestService,
		DoctorService:  doctorService,
		ConfigLoader:   cfgLoader,
		PersonaStore:   personaStore,
		HistoryStore:   historyStore,
		Logger:         log,
	}, nil
}
