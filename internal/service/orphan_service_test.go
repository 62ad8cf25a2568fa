package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestOrphanService(ctrl *gomock.Controller) (*OrphanServiceImpl, *mocks.MockOrphanRepository, *mocks.MockPinningService) {
	repo := mocks.NewMockOrphanRepository(ctrl)
	pins := mocks.NewMockPinningService(ctrl)
	svc := NewOrphanService(repo, pins, 10, newTestLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, pins
}

func TestOrphanService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _ := newTestOrphanService(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.OrphanPin) error {
		assert.Equal(t, "bafkreiaudio", o.CID)
		assert.Equal(t, "metadata insert failed", o.Reason)
		assert.Equal(t, 0, o.Attempts)
		assert.Equal(t, fixedNow.Add(15*time.Second), o.NextRetryAt)
		require.NotNil(t, o.LastError)
		assert.Equal(t, "unpin: 502", *o.LastError)
		return nil
	})

	svc.Record(context.Background(), "bafkreiaudio", "metadata insert failed", errors.New("unpin: 502"))
}

func TestOrphanService_Record_RepoFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _ := newTestOrphanService(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	svc.Record(context.Background(), "bafkreiaudio", "x", nil)
}

func TestOrphanService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, pins := newTestOrphanService(ctrl)

	ok := domain.OrphanPin{ID: uuid.New(), CID: "bafkreiok"}
	stuck := domain.OrphanPin{ID: uuid.New(), CID: "bafkreistuck", Attempts: 1}

	repo.EXPECT().ListDue(gomock.Any(), fixedNow, 10).Return([]domain.OrphanPin{ok, stuck}, nil)
	pins.EXPECT().Unpin(gomock.Any(), "bafkreiok").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), ok.ID).Return(nil)
	pins.EXPECT().Unpin(gomock.Any(), "bafkreistuck").Return(errors.New("pinata 500"))
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.OrphanPin) error {
		assert.Equal(t, stuck.ID, o.ID)
		assert.Equal(t, 2, o.Attempts)
		assert.Equal(t, fixedNow.Add(5*time.Minute), o.NextRetryAt)
		return nil
	})

	n, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOrphanService_Sweep_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _ := newTestOrphanService(ctrl)

	repo.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Sweep(context.Background())
	assert.Error(t, err)
}

func TestOrphanService_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _ := newTestOrphanService(ctrl)

	repo.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
