package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/service"
)

func testRecord() service.ProfileRecord {
	return service.ProfileRecord{
		ID:          "0190c3a4-0000-7000-8000-000000000001",
		Slug:        "mateo-rivas",
		Name:        "Mateo Rivas",
		URL:         "https://www.ufc.com/athlete/mateo-rivas",
		ScrapedAt:   time.Unix(1700000000, 0).UTC(),
		WeightClass: athlete.Lightweight,
		Gender:      athlete.Man,
		Rank:        "#5 Lightweight Division",
		Record:      athlete.Record{Wins: 22, Losses: 3, Draws: 1},
		Fighter:     &athlete.Fighter{Name: "Mateo Rivas"},
	}
}

func TestSaveProfileInsertsRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewProfileStoreWithPool(mock, "athlete_profiles")
	require.NoError(t, err)

	rec := testRecord()
	mock.ExpectExec("INSERT INTO athlete_profiles").
		WithArgs(
			rec.ID,
			rec.Slug,
			rec.Name,
			rec.URL,
			rec.ScrapedAt,
			"Lightweight",
			"Man",
			rec.Rank,
			"22-3-1",
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.SaveProfile(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveProfileWrapsExecError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewProfileStoreWithPool(mock, "")
	require.NoError(t, err)

	boom := errors.New("connection refused")
	mock.ExpectExec("INSERT INTO athlete_profiles").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(boom)

	err = store.SaveProfile(context.Background(), testRecord())
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveProfileRequiresID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewProfileStoreWithPool(mock, "")
	require.NoError(t, err)
	require.Error(t, store.SaveProfile(context.Background(), service.ProfileRecord{}))
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewProfileStoreWithPool(mock, "profiles")
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS profiles").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewProfileStoreValidation(t *testing.T) {
	t.Parallel()

	_, err := NewProfileStoreWithPool(nil, "")
	require.Error(t, err)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	_, err = NewProfileStoreWithPool(mock, "bad-name;drop")
	require.Error(t, err)

	_, err = NewProfileStore(context.Background(), ProfileStoreConfig{})
	require.Error(t, err)
}
