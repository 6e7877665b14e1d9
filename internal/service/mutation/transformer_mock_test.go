package mutation

import (
	"context"
	"sync"
)

var _ transformer = &transformerMock{}

type transformerMock struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *transformerMock) Complete(ctx context.Context, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("transformerMock.CompleteFunc: method is nil but transformer.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *transformerMock) CompleteCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
