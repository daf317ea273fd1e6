package questionnaire

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// fakeTimers replaces afterFunc; fire runs the last scheduled callback.
type fakeTimers struct {
	delays []time.Duration
	fns    []func()
}

func mockAfterFunc(t *testing.T) *fakeTimers {
	ft := &fakeTimers{}
	orig := afterFunc
	afterFunc = func(d time.Duration, f func()) *time.Timer {
		ft.delays = append(ft.delays, d)
		ft.fns = append(ft.fns, f)
		return time.NewTimer(time.Hour)
	}
	t.Cleanup(func() { afterFunc = orig })
	return ft
}

func (ft *fakeTimers) fire() {
	ft.fns[len(ft.fns)-1]()
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 20)
	for i, q := range qs {
		assert.NotEmpty(t, q.Question, "question %d", i)
		assert.NotEmpty(t, q.Advice, "advice %d", i)
	}
}

func TestScore(t *testing.T) {
	responses := make([]string, 20)
	prev := 101.0
	for no := 0; no <= 20; no++ {
		for i := range responses {
			responses[i] = Yes
			if i < no {
				responses[i] = No
			}
		}
		score := Score(responses, 20)
		assert.Less(t, score, prev, "no=%d", no)
		prev = score
	}
	assert.Equal(t, 100.0, Score(nil, 20))
	assert.Equal(t, 0.0, Score(responses, 20))
	assert.Equal(t, 0.0, Score(nil, 0))
}

func TestAssessment(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, AssessmentExcellent},
		{90, AssessmentExcellent},
		{85, AssessmentGood},
		{75, AssessmentGood},
		{70, AssessmentAverage},
		{60, AssessmentAverage},
		{55, AssessmentInsufficient},
		{0, AssessmentInsufficient},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Assessment(tt.score), "score %v", tt.score)
	}
}

func TestAnswerInput_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	in := AnswerInput{Answer: " oui "}
	require.NoError(t, in.Validate(validate))
	assert.Equal(t, Yes, in.Answer)

	in = AnswerInput{Answer: "peut-être"}
	assert.Error(t, in.Validate(validate))
}

func TestNewView(t *testing.T) {
	v := NewView(State{})
	assert.Zero(t, v.Progress)
	assert.Nil(t, v.Question)
	assert.Equal(t, 20, v.Total)

	v = NewView(State{Started: true, CurrentIndex: 10})
	assert.Equal(t, 50.0, v.Progress)
	require.NotNil(t, v.Question)
	assert.Equal(t, Questions()[10].Question, v.Question.Question)
	assert.Equal(t, Section(10), v.Section)

	v = NewView(State{Started: true, Completed: true, CurrentIndex: 19, Responses: []string{No, No, Yes}})
	assert.Equal(t, 100.0, v.Progress)
	require.NotNil(t, v.Report)
	assert.Equal(t, Report{Score: 90, Assessment: AssessmentExcellent, NoCount: 2}, *v.Report)
}

func TestService_Flow(t *testing.T) {
	ft := mockAfterFunc(t)
	ctx := context.Background()
	svc := NewService(kv.NewMemory(), 0, nopLogger{})

	_, err := svc.Answer(ctx, Yes)
	require.Error(t, err)
	assert.Equal(t, ErrNotStarted, errors.Cause(err.(*core.ValidationError).Err))

	v, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.True(t, v.Started)
	assert.Equal(t, 0, v.CurrentIndex)

	v, err = svc.Answer(ctx, Yes)
	require.NoError(t, err)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Empty(t, ft.fns)

	// NON: advice shown, advance deferred
	v, err = svc.Answer(ctx, No)
	require.NoError(t, err)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.True(t, v.AdvancePending)
	assert.Equal(t, Questions()[1].Advice, v.Advice)
	require.Len(t, ft.delays, 1)
	assert.Equal(t, DefaultAdviceDelay, ft.delays[0])

	ft.fire()
	v, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v.CurrentIndex)
	assert.False(t, v.AdvancePending)
	assert.Equal(t, []string{Yes, No}, v.Responses)

	// previous keeps the answers
	v, err = svc.Previous(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Equal(t, []string{Yes, No}, v.Responses)
}

func TestService_ActionCancelsPendingAdvance(t *testing.T) {
	ft := mockAfterFunc(t)
	ctx := context.Background()
	svc := NewService(kv.NewMemory(), 5*time.Second, nopLogger{})

	_, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, Yes)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, No)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, ft.delays[0])

	v, err := svc.Previous(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v.CurrentIndex)
	assert.False(t, v.AdvancePending)

	ft.fire() // stale callback
	v, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v.CurrentIndex)
}

func TestService_Completion(t *testing.T) {
	ft := mockAfterFunc(t)
	ctx := context.Background()
	svc := NewService(kv.NewMemory(), 0, nopLogger{})

	_, err := svc.Start(ctx)
	require.NoError(t, err)
	for i := 0; i < 19; i++ {
		_, err = svc.Answer(ctx, Yes)
		require.NoError(t, err)
	}
	v, err := svc.Answer(ctx, No)
	require.NoError(t, err)
	assert.False(t, v.Completed)

	ft.fire()
	v, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, v.Completed)
	require.NotNil(t, v.Report)
	assert.Equal(t, 95.0, v.Report.Score)
	assert.Equal(t, 20, v.Answered())

	_, err = svc.Answer(ctx, Yes)
	assert.Error(t, err)
	_, err = svc.Previous(ctx)
	assert.Error(t, err)

	v, err = svc.Start(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Responses)
	assert.False(t, v.Completed)
}
