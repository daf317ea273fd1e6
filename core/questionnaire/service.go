package questionnaire

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

// DefaultAdviceDelay is how long the advice of a NON answer stays on screen.
const DefaultAdviceDelay = 2 * time.Second

var (
	afterFunc = time.AfterFunc // mockable

	ErrNotStarted = errors.New("questionnaire not started")
	ErrCompleted  = errors.New("questionnaire already completed")
)

// Service drives the questionnaire. A NON answer shows the advice and moves
// on by itself after the advice delay unless another action comes first.
type Service struct {
	store  core.Store
	logger core.Logger
	delay  time.Duration

	mu      sync.Mutex
	pending *time.Timer
	seq     uint64
}

func NewService(store core.Store, delay time.Duration, logger core.Logger) *Service {
	if delay <= 0 {
		delay = DefaultAdviceDelay
	}
	return &Service{store: store, logger: logger, delay: delay}
}

func (svc *Service) load(ctx context.Context) (State, error) {
	var s State
	if _, err := svc.store.Load(ctx, core.KeyQuestionnaire, &s); err != nil {
		return s, errors.Wrap(err, "loading questionnaire state")
	}
	return s, nil
}

func (svc *Service) save(ctx context.Context, s State) error {
	return errors.Wrap(svc.store.Save(ctx, core.KeyQuestionnaire, s), "saving questionnaire state")
}

// cancelPending must be called with mu held.
func (svc *Service) cancelPending() {
	svc.seq++
	if svc.pending != nil {
		svc.pending.Stop()
		svc.pending = nil
	}
}

func (svc *Service) view(s State) View {
	v := NewView(s)
	v.AdvancePending = svc.pending != nil
	return v
}

func (svc *Service) Get(ctx context.Context) (View, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, err := svc.load(ctx)
	if err != nil {
		return View{}, err
	}
	v := svc.view(s)
	if v.AdvancePending && v.Question != nil {
		v.Advice = v.Question.Advice
	}
	return v, nil
}

// Start begins the questionnaire from scratch, dropping previous answers.
func (svc *Service) Start(ctx context.Context) (View, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.cancelPending()
	s := State{Responses: []string{}, Started: true}
	if err := svc.save(ctx, s); err != nil {
		return View{}, err
	}
	return svc.view(s), nil
}

func (svc *Service) Answer(ctx context.Context, answer string) (View, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.cancelPending()
	s, err := svc.load(ctx)
	if err != nil {
		return View{}, err
	}
	switch {
	case !s.Started:
		return View{}, core.NewValidationError(ErrNotStarted)
	case s.Completed:
		return View{}, core.NewValidationError(ErrCompleted)
	}

	s = s.record(answer)
	if answer != No {
		s = s.next(len(Questions()))
		if err = svc.save(ctx, s); err != nil {
			return View{}, err
		}
		return svc.view(s), nil
	}

	if err = svc.save(ctx, s); err != nil {
		return View{}, err
	}
	seq := svc.seq
	svc.pending = afterFunc(svc.delay, func() { svc.advance(seq) })

	v := svc.view(s)
	if v.Question != nil {
		v.Advice = v.Question.Advice
	}
	return v, nil
}

// advance runs when the advice delay of the answer numbered seq elapses.
func (svc *Service) advance(seq uint64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if seq != svc.seq {
		return // cancelled
	}
	svc.pending = nil

	ctx := context.Background()
	s, err := svc.load(ctx)
	if err != nil {
		svc.logger.Error(err.Error(), err)
		return
	}
	if !s.Started || s.Completed {
		return
	}
	if err = svc.save(ctx, s.next(len(Questions()))); err != nil {
		svc.logger.Error(err.Error(), err)
	}
}

// Previous goes back one question and keeps the recorded answers.
func (svc *Service) Previous(ctx context.Context) (View, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.cancelPending()
	s, err := svc.load(ctx)
	if err != nil {
		return View{}, err
	}
	switch {
	case !s.Started:
		return View{}, core.NewValidationError(ErrNotStarted)
	case s.Completed:
		return View{}, core.NewValidationError(ErrCompleted)
	}
	s = s.previous()
	if err = svc.save(ctx, s); err != nil {
		return View{}, err
	}
	return svc.view(s), nil
}

// Close stops a pending advance.
func (svc *Service) Close() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.cancelPending()
}
