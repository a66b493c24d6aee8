// Package doctor runs environment diagnostics for the CLI.
package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/magikvoice/callctl/internal/infrastructure/api"
	"github.com/magikvoice/callctl/internal/ports"
)

// Pinger is the minimal backend surface used for the reachability check.
type Pinger interface {
	Get(ctx context.Context, path string, out interface{}) error
}

// Check is one diagnostic result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Service runs the diagnostics.
type Service struct {
	config  ports.ConfigProvider
	catalog ports.Catalog
	tokens  ports.TokenSource
	backend Pinger
}

// NewService wires the doctor service.
func NewService(config ports.ConfigProvider, catalog ports.Catalog, tokens ports.TokenSource, backend Pinger) *Service {
	return &Service{config: config, catalog: catalog, tokens: tokens, backend: backend}
}

// Run executes every check and returns the results in a fixed order.
func (s *Service) Run(ctx context.Context) []Check {
	return []Check{
		s.checkConfig(ctx),
		s.checkCatalog(),
		s.checkToken(ctx),
		s.checkBackend(ctx),
	}
}

func (s *Service) checkConfig(ctx context.Context) Check {
	cfg, err := s.config.Load(ctx)
	if err != nil {
		return Check{Name: "config", Detail: err.Error()}
	}
	return Check{Name: "config", OK: true, Detail: "base URL " + cfg.ResolveBaseURL()}
}

func (s *Service) checkCatalog() Check {
	agents := s.catalog.All()
	if len(agents) == 0 {
		return Check{Name: "catalog", Detail: "no agents defined"}
	}
	for _, agent := range agents {
		if _, ok := agent.PromptTemplates[agent.DefaultLanguage]; !ok {
			return Check{
				Name:   "catalog",
				Detail: fmt.Sprintf("agent %s missing default-language template", agent.ID),
			}
		}
	}
	return Check{Name: "catalog", OK: true, Detail: fmt.Sprintf("%d agents", len(agents))}
}

func (s *Service) checkToken(ctx context.Context) Check {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return Check{Name: "auth", Detail: err.Error()}
	}
	if token == "" {
		return Check{Name: "auth", OK: true, Detail: "not signed in, requests go unauthenticated"}
	}
	return Check{Name: "auth", OK: true, Detail: "token available"}
}

// checkBackend treats any HTTP response, including an error status, as
// reachable. Only transport failures count as unreachable.
func (s *Service) checkBackend(ctx context.Context) Check {
	err := s.backend.Get(ctx, "/api/health", nil)
	if err == nil {
		return Check{Name: "backend", OK: true, Detail: "reachable"}
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return Check{Name: "backend", OK: true, Detail: fmt.Sprintf("reachable (status %d)", apiErr.Status)}
	}
	return Check{Name: "backend", Detail: err.Error()}
}
