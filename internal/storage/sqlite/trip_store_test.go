package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
	"bikeshare-explorer/internal/storage/migrations"
	"bikeshare-explorer/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunSQLiteMigrations(ctx, db), "failed to apply migrations")
	return db
}

func sampleTrips() []domain.Trip {
	return []domain.Trip{
		{
			StartTime:    time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC),
			StartStation: "Wood St & Hubbard St",
			EndStation:   "Damen Ave & Chicago Ave",
			TripDuration: 321,
			UserType:     "Subscriber",
			Gender:       "Male",
			HasGender:    true,
			BirthYear:    1992,
			HasBirthYear: true,
		},
		{
			StartTime:    time.Date(2017, time.January, 2, 7, 45, 0, 0, time.UTC),
			StartStation: "Theater on the Lake",
			EndStation:   "Sheffield Ave & Waveland Ave",
			TripDuration: 1610.5,
			UserType:     "Customer",
		},
	}
}

func TestTripStore_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTripStore(db)
	ctx := context.Background()

	schema := domain.NewSchema(append(append([]string(nil), domain.RequiredColumns...), domain.OptionalColumns...)...)
	require.NoError(t, store.WriteTrips(ctx, domain.CityChicago, schema, sampleTrips()))

	ds, err := store.ReadDataset(ctx, domain.CityChicago)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start_time", "start_station", "end_station", "trip_duration", "user_type", "gender", "birth_year",
	}, ds.Columns)
	require.Len(t, ds.Rows, 2)

	assert.Equal(t, "2017-06-23 15:09:32", ds.Rows[0][0])
	assert.Equal(t, "Wood St & Hubbard St", ds.Rows[0][1])
	assert.Equal(t, "Male", ds.Rows[0][5])
	assert.Equal(t, "1992", ds.Rows[0][6])

	// Insertion order survives and NULLs read back as empty cells.
	assert.Equal(t, "2017-01-02 07:45:00", ds.Rows[1][0])
	assert.Equal(t, "1610.5", ds.Rows[1][3])
	assert.Equal(t, "", ds.Rows[1][5])
	assert.Equal(t, "", ds.Rows[1][6])
}

func TestTripStore_WashingtonSchema(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTripStore(db)
	ctx := context.Background()

	schema := domain.NewSchema(domain.RequiredColumns...)
	require.NoError(t, store.WriteTrips(ctx, domain.CityWashington, schema, sampleTrips()))

	ds, err := store.ReadDataset(ctx, domain.CityWashington)
	require.NoError(t, err)
	assert.NotContains(t, ds.Columns, domain.ColumnGender)
	assert.NotContains(t, ds.Columns, domain.ColumnBirthYear)
	assert.Len(t, ds.Rows, 2)
}

func TestTripStore_DuplicateLoad(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTripStore(db)
	ctx := context.Background()

	schema := domain.NewSchema(domain.RequiredColumns...)
	require.NoError(t, store.WriteTrips(ctx, domain.CityNewYorkCity, schema, sampleTrips()))

	err := store.WriteTrips(ctx, domain.CityNewYorkCity, schema, sampleTrips())
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestTripStore_EmptyTable(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTripStore(db)

	ds, err := store.ReadDataset(context.Background(), domain.CityChicago)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Len(t, ds.Columns, 7)
}

func TestTripStore_MissingTable(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := sqlite.NewTripStore(db)

	_, err = store.ReadDataset(ctx, domain.CityChicago)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.WriteTrips(ctx, domain.CityChicago, domain.NewSchema(domain.RequiredColumns...), sampleTrips())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTripStore_InvalidCity(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewTripStore(db)

	_, err := store.ReadDataset(context.Background(), domain.City("boston"))
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}
