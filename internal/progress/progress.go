// Package progress defines the progress reporting primitives shared by the
// expression evaluator, the orchestration layer, and the user interfaces.
// Evaluators publish coarse progress through a subject; observers forward the
// updates to channels, logs, or discard them.
package progress

import (
	"sync"

	"github.com/hausp/bigcalc/internal/logging"
)

// ProgressUpdate is a single progress report from one evaluator.
type ProgressUpdate struct {
	// CalculatorIndex identifies which evaluator sent the update.
	CalculatorIndex int
	// Value is the fraction of work completed, in [0, 1].
	Value float64
}

// ProgressCallback receives the fraction of work completed, in [0, 1].
// Evaluation hot paths call it directly, without going through a subject.
type ProgressCallback func(progress float64)

// ProgressObserver consumes progress updates published by a subject.
type ProgressObserver interface {
	// OnProgress is called for each published update. Implementations must
	// not block: slow consumers drop updates rather than stall evaluation.
	OnProgress(update ProgressUpdate)
}

// ProgressSubject fans progress updates out to registered observers.
// It is safe for concurrent use.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Attach registers an observer. Nil observers are ignored.
func (s *ProgressSubject) Attach(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Detach removes a previously attached observer.
func (s *ProgressSubject) Detach(o ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify publishes an update to all attached observers.
func (s *ProgressSubject) Notify(update ProgressUpdate) {
	s.mu.RLock()
	observers := s.observers
	s.mu.RUnlock()
	for _, o := range observers {
		o.OnProgress(update)
	}
}

// Callback returns a ProgressCallback that publishes updates for the given
// evaluator index through the subject.
func (s *ProgressSubject) Callback(index int) ProgressCallback {
	return func(value float64) {
		s.Notify(ProgressUpdate{CalculatorIndex: index, Value: value})
	}
}

// ChannelObserver forwards updates to a channel, dropping them when the
// channel is full so evaluation never blocks on a slow consumer.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnProgress sends the update without blocking.
func (o *ChannelObserver) OnProgress(update ProgressUpdate) {
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver writes updates to a structured logger at debug level.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver creates an observer writing to logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnProgress logs the update.
func (o *LoggingObserver) OnProgress(update ProgressUpdate) {
	o.logger.Debug("progress",
		logging.Int("calculator", update.CalculatorIndex),
		logging.Float64("value", update.Value))
}

// NoOpObserver discards all updates.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that ignores everything.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// OnProgress does nothing.
func (*NoOpObserver) OnProgress(ProgressUpdate) {}
