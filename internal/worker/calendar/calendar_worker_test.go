package calendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/worker/calendar"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockCalendarGenerator is a mock of CalendarGenerator
type MockCalendarGenerator struct {
	mock.Mock
}

func (m *MockCalendarGenerator) GenerateForCulture(ctx context.Context, cultureID int64) (int, error) {
	args := m.Called(ctx, cultureID)
	return args.Int(0), args.Error(1)
}

func TestCalendarWorker_Name(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	assert.Equal(t, "calendar-generation", w.Name())
}

func TestCalendarWorker_Stop(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	// Stop should not error even if not started
	err := w.Stop()
	assert.NoError(t, err)

	// Calling stop multiple times should be safe
	err = w.Stop()
	assert.NoError(t, err)
}

func TestCalendarWorker_ContextCancellation(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCultureCreated, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return([]domain.StreamMessage{}, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop on context cancellation")
	}

	mockStream.AssertExpectations(t)
}

func TestCalendarWorker_BatchProcessing(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	event1 := &domain.CultureCreatedEvent{
		EventID:   uuid.New(),
		CultureID: 10,
		BedID:     1,
		StartDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	}
	event2 := &domain.CultureCreatedEvent{
		EventID:   uuid.New(),
		CultureID: 11,
		BedID:     2,
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	eventJSON1, _ := json.Marshal(event1)
	eventJSON2, _ := json.Marshal(event2)

	messages := []domain.StreamMessage{
		{ID: "1234567890-0", Data: string(eventJSON1)},
		{ID: "1234567890-1", Data: string(eventJSON2)},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCultureCreated, "test-group").
		Return(nil)

	// First read returns the batch, subsequent reads an empty queue
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return([]domain.StreamMessage{}, nil)

	mockGen.On("GenerateForCulture", mock.Anything, int64(10)).Return(4, nil)
	mockGen.On("GenerateForCulture", mock.Anything, int64(11)).Return(2, nil)

	mockStream.On("AckMessage", mock.Anything, domain.StreamCultureCreated, "test-group", "1234567890-0").
		Return(nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamCultureCreated, "test-group", "1234567890-1").
		Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Worker did not stop in time")
	}

	mockStream.AssertExpectations(t)
	mockGen.AssertExpectations(t)
}

func TestCalendarWorker_MalformedMessageAcked(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	messages := []domain.StreamMessage{
		{ID: "1234567890-0", Data: "not json"},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCultureCreated, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return([]domain.StreamMessage{}, nil)

	// Malformed messages are acked so they do not stay pending
	mockStream.On("AckMessage", mock.Anything, domain.StreamCultureCreated, "test-group", "1234567890-0").
		Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Worker did not stop in time")
	}

	mockStream.AssertExpectations(t)
	mockGen.AssertNotCalled(t, "GenerateForCulture", mock.Anything, mock.Anything)
}

func TestCalendarWorker_DeadLetterAfterRetries(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockGen := &MockCalendarGenerator{}

	w := calendar.NewCalendarWorker(mockStream, mockGen, "test-group", 3, zap.NewNop())

	event := &domain.CultureCreatedEvent{
		EventID:   uuid.New(),
		CultureID: 10,
		BedID:     1,
		StartDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	}
	eventJSON, _ := json.Marshal(event)

	messages := []domain.StreamMessage{
		{ID: "1234567890-0", Data: string(eventJSON)},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCultureCreated, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamCultureCreated, "test-group", mock.AnythingOfType("string"), 20).
		Return([]domain.StreamMessage{}, nil)

	// Every attempt fails, so the generator is tried exactly three times
	mockGen.On("GenerateForCulture", mock.Anything, int64(10)).
		Return(0, errors.New("generation failed")).Times(3)

	// The exhausted message lands on the failed stream with the original
	// payload, then gets acked on the source stream
	mockStream.On("PublishToStream", mock.Anything, domain.StreamCultureFailed, mock.MatchedBy(func(data interface{}) bool {
		raw, ok := data.(json.RawMessage)
		return ok && string(raw) == string(eventJSON)
	})).Return(nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamCultureCreated, "test-group", "1234567890-0").
		Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Worker did not stop in time")
	}

	mockStream.AssertExpectations(t)
	mockGen.AssertExpectations(t)
}
