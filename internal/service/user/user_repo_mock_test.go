package user

import (
	"context"
	"sync"

	"github.com/mirrornote/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc            func(ctx context.Context, id domain.UserID) error
	GetByIDFunc           func(ctx context.Context, id domain.UserID) (*domain.User, error)
	UpdatePublicationFunc func(ctx context.Context, id domain.UserID, isPublic bool, favorite domain.VariantID) error
	DeleteFunc            func(ctx context.Context, id domain.UserID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			ID  domain.UserID
		}
		GetByID []struct {
			Ctx context.Context
			ID  domain.UserID
		}
		UpdatePublication []struct {
			Ctx      context.Context
			ID       domain.UserID
			IsPublic bool
			Favorite domain.VariantID
		}
		Delete []struct {
			Ctx context.Context
			ID  domain.UserID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockUpdatePublication sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, id domain.UserID) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserID
	}{Ctx: ctx, ID: id}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, id)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	ID  domain.UserID
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  domain.UserID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePublication(ctx context.Context, id domain.UserID, isPublic bool, favorite domain.VariantID) error {
	if mock.UpdatePublicationFunc == nil {
		panic("userRepoMock.UpdatePublicationFunc: method is nil but userRepo.UpdatePublication was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       domain.UserID
		IsPublic bool
		Favorite domain.VariantID
	}{Ctx: ctx, ID: id, IsPublic: isPublic, Favorite: favorite}
	mock.lockUpdatePublication.Lock()
	mock.calls.UpdatePublication = append(mock.calls.UpdatePublication, callInfo)
	mock.lockUpdatePublication.Unlock()
	return mock.UpdatePublicationFunc(ctx, id, isPublic, favorite)
}

func (mock *userRepoMock) UpdatePublicationCalls() []struct {
	Ctx      context.Context
	ID       domain.UserID
	IsPublic bool
	Favorite domain.VariantID
} {
	mock.lockUpdatePublication.RLock()
	calls := mock.calls.UpdatePublication
	mock.lockUpdatePublication.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id domain.UserID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  domain.UserID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
