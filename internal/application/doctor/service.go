// Package doctor runs environment diagnostics.
package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Service checks that a suggestion cycle could run on this machine.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	PersonaProvider ports.PersonaProvider
	Classifier      ports.SafetyClassifier
	History         ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Credentials", err.Error()))
	} else {
		checks = append(checks, ok("Credentials", fmt.Sprintf("provider %s, model %s", cfg.Provider, cfg.Model)))
	}

	if s.PersonaProvider != nil {
		if persona := s.PersonaProvider.Load(ctx); persona.IsZero() {
			checks = append(checks, warn("Persona", "not initialized (run `terminai init`)"))
		} else {
			checks = append(checks, ok("Persona", persona.Name))
		}
	}

	if s.Classifier != nil {
		if verdict := s.Classifier.Classify("sudo true"); verdict.Verdict != domain.VerdictUnsafe {
			checks = append(checks, fail("Denylist", "built-in entries not active"))
		} else {
			checks = append(checks, ok("Denylist", "built-in entries active"))
		}
	}

	if s.History != nil {
		if _, err := s.History.Records(1); err != nil {
			checks = append(checks, warn("History", err.Error()))
		} else {
			checks = append(checks, ok("History", "store reachable"))
		}
	}

	if shell := os.Getenv("SHELL"); shell == "" {
		checks = append(checks, warn("Shell", "SHELL not set; executor falls back to /bin/sh"))
	} else {
		checks = append(checks, ok("Shell", shell))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
