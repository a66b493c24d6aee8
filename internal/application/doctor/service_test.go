package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/infrastructure/api"
	"github.com/magikvoice/callctl/internal/infrastructure/catalog"
)

type staticConfig struct{ err error }

func (s staticConfig) Load(context.Context) (domain.Config, error) {
	return domain.Config{}, s.err
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

type staticPinger struct{ err error }

func (s staticPinger) Get(context.Context, string, interface{}) error { return s.err }

func checkByName(t *testing.T, checks []Check, name string) Check {
	t.Helper()
	for _, c := range checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q missing", name)
	return Check{}
}

func TestRunAllHealthy(t *testing.T) {
	svc := NewService(staticConfig{}, catalog.NewStore(), staticTokens{token: "tok"}, staticPinger{})
	checks := svc.Run(context.Background())
	for _, c := range checks {
		if !c.OK {
			t.Errorf("check %s failed: %s", c.Name, c.Detail)
		}
	}
}

func TestMissingTokenIsHealthy(t *testing.T) {
	svc := NewService(staticConfig{}, catalog.NewStore(), staticTokens{}, staticPinger{})
	auth := checkByName(t, svc.Run(context.Background()), "auth")
	if !auth.OK {
		t.Fatalf("auth check failed: %s", auth.Detail)
	}
}

func TestBackendErrorStatusCountsAsReachable(t *testing.T) {
	pinger := staticPinger{err: &api.APIError{Status: 404, Message: "not found"}}
	svc := NewService(staticConfig{}, catalog.NewStore(), staticTokens{}, pinger)
	backend := checkByName(t, svc.Run(context.Background()), "backend")
	if !backend.OK {
		t.Fatalf("backend check failed: %s", backend.Detail)
	}
}

func TestBackendTransportFailure(t *testing.T) {
	pinger := staticPinger{err: errors.New("dial tcp: connection refused")}
	svc := NewService(staticConfig{}, catalog.NewStore(), staticTokens{}, pinger)
	backend := checkByName(t, svc.Run(context.Background()), "backend")
	if backend.OK {
		t.Fatal("backend check passed despite transport failure")
	}
}

func TestConfigLoadFailure(t *testing.T) {
	svc := NewService(staticConfig{err: errors.New("yaml broken")}, catalog.NewStore(), staticTokens{}, staticPinger{})
	cfg := checkByName(t, svc.Run(context.Background()), "config")
	if cfg.OK {
		t.Fatal("config check passed despite load failure")
	}
}
