package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"searchbar/internal/catalog"
	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
)

type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(event eventbus.DomainEvent) {
	m.Called(event)
}

func (m *mockBus) Subscribe(eventType eventbus.EventType, handler eventbus.EventHandler) func() {
	args := m.Called(eventType, handler)
	return args.Get(0).(func())
}

func (m *mockBus) Close() {
	m.Called()
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, query string) ([]domain.Item, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func TestSearchPublishesCompleted(t *testing.T) {
	items := []domain.Item{{Name: "Desk Lamp"}, {Name: "Lamp Shade"}}
	source := &mockSearcher{}
	source.On("Search", mock.Anything, "lamp").Return(items, nil)

	bus := &mockBus{}
	bus.On("Publish", eventbus.SearchStartedEvent{Query: "lamp"}).Once()
	bus.On("Publish", mock.MatchedBy(func(e eventbus.SearchCompletedEvent) bool {
		return e.Query == "lamp" && len(e.Items) == 2
	})).Once()

	svc := NewService(source, bus, time.Second, zerolog.Nop())
	require.NoError(t, svc.Search(context.Background(), "  lamp "))

	bus.AssertExpectations(t)
	source.AssertExpectations(t)
	last := svc.Last()
	assert.Equal(t, "lamp", last.Query)
	assert.Equal(t, 2, last.Results)
	assert.NoError(t, last.Err)
}

func TestSearchPublishesFailed(t *testing.T) {
	boom := errors.New("boom")
	source := &mockSearcher{}
	source.On("Search", mock.Anything, "desk").Return(nil, boom)

	bus := &mockBus{}
	bus.On("Publish", eventbus.SearchStartedEvent{Query: "desk"}).Once()
	bus.On("Publish", eventbus.SearchFailedEvent{Query: "desk", Err: boom}).Once()

	svc := NewService(source, bus, 0, zerolog.Nop())
	err := svc.Search(context.Background(), "desk")
	assert.ErrorIs(t, err, boom)
	bus.AssertExpectations(t)
	assert.ErrorIs(t, svc.Last().Err, boom)
}

func TestSearchTimeout(t *testing.T) {
	store := catalog.NewStore([]domain.Item{{Name: "Desk Lamp"}})
	store.SetLatency(time.Second)

	bus := &mockBus{}
	bus.On("Publish", mock.Anything)

	svc := NewService(store, bus, 20*time.Millisecond, zerolog.Nop())
	err := svc.Search(context.Background(), "lamp")
	assert.ErrorIs(t, err, ErrTimeout)
	bus.AssertCalled(t, "Publish", mock.MatchedBy(func(e eventbus.SearchFailedEvent) bool {
		return errors.Is(e.Err, ErrTimeout)
	}))
}

func TestSearchWithRealBus(t *testing.T) {
	bus := eventbus.New(zerolog.Nop())
	defer bus.Close()

	got := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.SearchCompletedEvent)
	})

	store := catalog.NewStore(catalog.LoadDefault())
	svc := NewService(store, bus, time.Second, zerolog.Nop())
	require.NoError(t, svc.Search(context.Background(), "lamp"))

	select {
	case e := <-got:
		assert.Equal(t, "lamp", e.Query)
		assert.NotEmpty(t, e.Items)
	case <-time.After(2 * time.Second):
		t.Fatal("no SearchCompletedEvent")
	}
}
