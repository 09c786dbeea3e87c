package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-contact-share/internal/mock"
	"github.com/MKhiriev/go-contact-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func contactRecord(id, name, phone string) models.Record {
	return models.Record{
		RecordID: id,
		ZoneID:   models.ContactZoneID,
		Type:     models.RecordTypeContact,
		Fields: map[string]any{
			models.FieldName:        name,
			models.FieldPhoneNumber: phone,
		},
	}
}

// ── fetchZone ────────────────────────────────────────────────────────────────

func TestChangeFetcher_FetchZone_SinglePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().
		FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("")).
		Return(models.ChangePage{
			Records:    []models.Record{contactRecord("c-1", "Ada", "555-0100")},
			MoreComing: false,
		}, nil)

	contacts, err := fetcher.fetchZone(ctx, models.ScopePrivate, models.ContactZoneID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ada", contacts[0].Name)
}

func TestChangeFetcher_FetchZone_FollowsCursorUntilDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)
	ctx := context.Background()

	// Каждая страница запрашивается с курсором предыдущей.
	gomock.InOrder(
		mockStore.EXPECT().
			FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("")).
			Return(models.ChangePage{
				Records:    []models.Record{contactRecord("c-1", "Ada", "555-0100")},
				MoreComing: true,
				NextCursor: models.Cursor("p1"),
			}, nil),
		mockStore.EXPECT().
			FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("p1")).
			Return(models.ChangePage{
				Records:    []models.Record{contactRecord("c-2", "Grace", "555-0101")},
				MoreComing: true,
				NextCursor: models.Cursor("p2"),
			}, nil),
		mockStore.EXPECT().
			FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("p2")).
			Return(models.ChangePage{
				Records:    []models.Record{contactRecord("c-3", "Edsger", "555-0102")},
				MoreComing: false,
			}, nil),
	)

	contacts, err := fetcher.fetchZone(ctx, models.ScopePrivate, models.ContactZoneID)
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	ids := []string{contacts[0].ID, contacts[1].ID, contacts[2].ID}
	assert.Equal(t, []string{"c-1", "c-2", "c-3"}, ids)
}

func TestChangeFetcher_FetchZone_DropsUnmappableRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)
	ctx := context.Background()

	broken := models.Record{
		RecordID: "c-bad",
		ZoneID:   models.ContactZoneID,
		Type:     models.RecordTypeContact,
		Fields:   map[string]any{models.FieldName: "No Phone"},
	}

	mockStore.EXPECT().
		FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("")).
		Return(models.ChangePage{
			Records: []models.Record{
				contactRecord("c-1", "Ada", "555-0100"),
				broken,
				contactRecord("c-2", "Grace", "555-0101"),
			},
			MoreComing: false,
		}, nil)

	contacts, err := fetcher.fetchZone(ctx, models.ScopePrivate, models.ContactZoneID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "c-1", contacts[0].ID)
	assert.Equal(t, "c-2", contacts[1].ID)
}

func TestChangeFetcher_FetchZone_PageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().
		FetchChangePage(ctx, models.ScopePrivate, models.ContactZoneID, models.Cursor("")).
		Return(models.ChangePage{}, errors.New("boom"))

	_, err := fetcher.fetchZone(ctx, models.ScopePrivate, models.ContactZoneID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch change page for zone contacts")
}

// ── fetchZones ───────────────────────────────────────────────────────────────

func TestChangeFetcher_FetchZones_EmptyZoneList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)

	contacts, err := fetcher.fetchZones(context.Background(), models.ScopeShared, nil)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestChangeFetcher_FetchZones_UnionAcrossZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)

	mockStore.EXPECT().
		FetchChangePage(gomock.Any(), models.ScopeShared, "zone-a", models.Cursor("")).
		Return(models.ChangePage{
			Records: []models.Record{contactRecord("c-1", "Ada", "555-0100")},
		}, nil)
	mockStore.EXPECT().
		FetchChangePage(gomock.Any(), models.ScopeShared, "zone-b", models.Cursor("")).
		Return(models.ChangePage{
			Records: []models.Record{contactRecord("c-2", "Grace", "555-0101")},
		}, nil)

	contacts, err := fetcher.fetchZones(context.Background(), models.ScopeShared, []string{"zone-a", "zone-b"})
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	ids := map[string]bool{}
	for _, c := range contacts {
		ids[c.ID] = true
	}
	assert.True(t, ids["c-1"])
	assert.True(t, ids["c-2"])
}

func TestChangeFetcher_FetchZones_FailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockRecordStore(ctrl)
	fetcher := newChangeFetcher(mockStore)

	wantErr := errors.New("zone-a unavailable")
	mockStore.EXPECT().
		FetchChangePage(gomock.Any(), models.ScopeShared, "zone-a", models.Cursor("")).
		Return(models.ChangePage{}, wantErr)
	mockStore.EXPECT().
		FetchChangePage(gomock.Any(), models.ScopeShared, "zone-b", models.Cursor("")).
		Return(models.ChangePage{
			Records: []models.Record{contactRecord("c-2", "Grace", "555-0101")},
		}, nil).
		AnyTimes()

	_, err := fetcher.fetchZones(context.Background(), models.ScopeShared, []string{"zone-a", "zone-b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
