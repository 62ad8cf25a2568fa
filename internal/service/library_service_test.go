package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLibraryService_GetTrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackRepository(ctrl)
	svc := NewLibraryService(repo)

	track := testTrack(90)
	repo.EXPECT().GetByID(gomock.Any(), track.ID).Return(track, nil)
	got, err := svc.GetTrack(context.Background(), track.ID)
	require.NoError(t, err)
	assert.Equal(t, track, got)

	missing := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, nil)
	_, err = svc.GetTrack(context.Background(), missing)
	assertAppError(t, err, "VAL_002")

	repo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, errors.New("conn reset"))
	_, err = svc.GetTrack(context.Background(), missing)
	assertAppError(t, err, "SYS_001")
}

func TestLibraryService_ListTracks_NormalizesParams(t *testing.T) {
	tests := []struct {
		name     string
		in       ports.TrackListParams
		wantPage int
		wantSize int
	}{
		{"defaults", ports.TrackListParams{}, 1, 20},
		{"oversized page", ports.TrackListParams{Page: 3, PageSize: 500}, 3, 20},
		{"explicit", ports.TrackListParams{Page: 2, PageSize: 50}, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockTrackRepository(ctrl)
			repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p ports.TrackListParams) ([]domain.Track, int64, error) {
					assert.Equal(t, tt.wantPage, p.Page)
					assert.Equal(t, tt.wantSize, p.PageSize)
					return []domain.Track{*testTrack(60)}, 1, nil
				})

			tracks, total, err := NewLibraryService(repo).ListTracks(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Len(t, tracks, 1)
			assert.Equal(t, int64(1), total)
		})
	}
}

func TestLibraryService_ListTracks_OwnerFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackRepository(ctrl)
	svc := NewLibraryService(repo)

	lower := strings.ToLower(testAddress)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.TrackListParams) ([]domain.Track, int64, error) {
			require.NotNil(t, p.Owner)
			assert.Equal(t, testAddress, *p.Owner)
			return nil, 0, nil
		})
	_, _, err := svc.ListTracks(context.Background(), ports.TrackListParams{Owner: &lower})
	require.NoError(t, err)

	bad := "not-an-address"
	_, _, err = svc.ListTracks(context.Background(), ports.TrackListParams{Owner: &bad})
	assertAppError(t, err, "VAL_001")
}
