package user

import (
	"sync"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID string
	}{UserID: userID}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
