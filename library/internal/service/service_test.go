package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/events"
	"github.com/Astemirdum/biblioteca/library/internal/ledger"
	"github.com/Astemirdum/biblioteca/library/internal/model"
	"github.com/Astemirdum/biblioteca/library/internal/repository/memory"
	"github.com/Astemirdum/biblioteca/library/internal/service"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.LoanEvent
	err    error
}

var _ events.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(_ context.Context, ev model.LoanEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []model.LoanEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]model.LoanEventType, 0, len(p.events))
	for _, ev := range p.events {
		types = append(types, ev.Type)
	}
	return types
}

type services struct {
	store     *memory.Store
	catalog   *service.Catalog
	registry  *service.Registry
	publisher *recordingPublisher
}

func newServices() services {
	log := zap.NewNop()
	store := memory.New()
	l := ledger.New(log)
	pub := &recordingPublisher{}
	return services{
		store:     store,
		catalog:   service.NewCatalog(store, l, log),
		registry:  service.NewRegistry(store, l, pub, log),
		publisher: pub,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (s services) book(t *testing.T, total int) model.Book {
	t.Helper()
	b, err := s.catalog.CreateBook(context.Background(), model.CreateBookRequest{
		Title:           "Vidas Secas",
		Author:          "Graciliano Ramos",
		PublicationYear: ptr(1938),
		TotalCopies:     ptr(total),
	})
	require.NoError(t, err)
	return b
}

var errBroker = errors.New("broker down")
