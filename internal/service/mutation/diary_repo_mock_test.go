package mutation

import (
	"context"
	"sync"

	"github.com/mirrornote/backend/internal/domain"
)

var _ diaryRepo = &diaryRepoMock{}

type diaryRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id domain.UserID) (*domain.User, error)
	SaveVariantDiaryFunc func(ctx context.Context, id domain.UserID, d domain.Diary) error
	SaveSourceDiaryFunc  func(ctx context.Context, id domain.UserID, content domain.DiaryContent) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  domain.UserID
		}
		SaveVariantDiary []struct {
			Ctx context.Context
			ID  domain.UserID
			D   domain.Diary
		}
		SaveSourceDiary []struct {
			Ctx     context.Context
			ID      domain.UserID
			Content domain.DiaryContent
		}
	}
	lockGetByID          sync.RWMutex
	lockSaveVariantDiary sync.RWMutex
	lockSaveSourceDiary  sync.RWMutex
}

func (mock *diaryRepoMock) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("diaryRepoMock.GetByIDFunc: method is nil but diaryRepo.GetByID was just called")
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

func (mock *diaryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  domain.UserID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *diaryRepoMock) SaveVariantDiary(ctx context.Context, id domain.UserID, d domain.Diary) error {
	if mock.SaveVariantDiaryFunc == nil {
		panic("diaryRepoMock.SaveVariantDiaryFunc: method is nil but diaryRepo.SaveVariantDiary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserID
		D   domain.Diary
	}{Ctx: ctx, ID: id, D: d}
	mock.lockSaveVariantDiary.Lock()
	mock.calls.SaveVariantDiary = append(mock.calls.SaveVariantDiary, callInfo)
	mock.lockSaveVariantDiary.Unlock()
	return mock.SaveVariantDiaryFunc(ctx, id, d)
}

func (mock *diaryRepoMock) SaveVariantDiaryCalls() []struct {
	Ctx context.Context
	ID  domain.UserID
	D   domain.Diary
} {
	mock.lockSaveVariantDiary.RLock()
	calls := mock.calls.SaveVariantDiary
	mock.lockSaveVariantDiary.RUnlock()
	return calls
}

func (mock *diaryRepoMock) SaveSourceDiary(ctx context.Context, id domain.UserID, content domain.DiaryContent) error {
	if mock.SaveSourceDiaryFunc == nil {
		panic("diaryRepoMock.SaveSourceDiaryFunc: method is nil but diaryRepo.SaveSourceDiary was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      domain.UserID
		Content domain.DiaryContent
	}{Ctx: ctx, ID: id, Content: content}
	mock.lockSaveSourceDiary.Lock()
	mock.calls.SaveSourceDiary = append(mock.calls.SaveSourceDiary, callInfo)
	mock.lockSaveSourceDiary.Unlock()
	return mock.SaveSourceDiaryFunc(ctx, id, content)
}

func (mock *diaryRepoMock) SaveSourceDiaryCalls() []struct {
	Ctx     context.Context
	ID      domain.UserID
	Content domain.DiaryContent
} {
	mock.lockSaveSourceDiary.RLock()
	calls := mock.calls.SaveSourceDiary
	mock.lockSaveSourceDiary.RUnlock()
	return calls
}
