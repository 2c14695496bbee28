package cluster

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Source produces a Model. Loading may be expensive.
type Source interface {
	Load(ctx context.Context) (*Model, error)
}

// Provider loads a Model from its Source at most once and shares the result.
// It is safe for concurrent use.
type Provider struct {
	src    Source
	logger hclog.Logger

	mu     sync.Mutex
	loaded bool
	model  *Model
	err    error
}

// NewProvider returns a Provider backed by src. A nil logger discards output.
func NewProvider(src Source, logger hclog.Logger) *Provider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Provider{src: src, logger: logger.Named("cluster")}
}

// Static returns a Provider that always yields m.
func Static(m *Model) *Provider {
	p := NewProvider(nil, nil)
	p.model, p.loaded = m, true
	return p
}

// Load returns the Model, loading it on the first call. Subsequent calls
// return the same Model or the same error. A load abandoned because ctx was
// cancelled or timed out is not remembered, so the next call tries again.
func (p *Provider) Load(ctx context.Context) (*Model, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return p.model, p.err
	}

	start := time.Now()
	m, err := p.src.Load(ctx)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		p.logger.Debug("cluster model load interrupted", "error", err)
		return nil, err
	}

	p.model, p.err, p.loaded = m, err, true
	if err != nil {
		p.logger.Error("failed to load cluster model", "error", err)
		return nil, err
	}
	p.logger.Debug("loaded cluster model", "clusters", len(m.Labels), "took", time.Since(start))
	return m, nil
}
