package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectBucketLock(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT floor, wing, total_qty FROM room_blocks`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"floor", "wing", "total_qty"}).
			AddRow("1", "A", 1).
			AddRow("1", "A", 1).
			AddRow("", "", 4))
}

func TestGuestRepository_CommitAllocation_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	expectBucketLock(mock)
	mock.ExpectExec(`UPDATE guests SET allocated_floor`).
		WithArgs("g1", "e1", "1", "A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT allocated_floor, allocated_wing, COUNT`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"allocated_floor", "allocated_wing", "count"}).AddRow("1", "A", 2))
	mock.ExpectCommit()

	err := repo.CommitAllocation(context.Background(), "e1", []domain.Assignment{
		{GuestID: "g1", Floor: "1", Wing: "A"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_CommitAllocation_BucketFull(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	expectBucketLock(mock)
	mock.ExpectExec(`UPDATE guests SET allocated_floor`).
		WithArgs("g1", "e1", "1", "A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT allocated_floor, allocated_wing, COUNT`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"allocated_floor", "allocated_wing", "count"}).AddRow("1", "A", 3))
	mock.ExpectRollback()

	err := repo.CommitAllocation(context.Background(), "e1", []domain.Assignment{
		{GuestID: "g1", Floor: "1", Wing: "A"},
	})

	assert.ErrorIs(t, err, domain.ErrBucketFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_CommitAllocation_UnknownBucket(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	expectBucketLock(mock)
	mock.ExpectRollback()

	err := repo.CommitAllocation(context.Background(), "e1", []domain.Assignment{
		{GuestID: "g1", Floor: "9", Wing: "Z"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestRepository_CommitAllocation_GuestMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	expectBucketLock(mock)
	mock.ExpectExec(`UPDATE guests SET allocated_floor`).
		WithArgs("ghost", "e1", "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CommitAllocation(context.Background(), "e1", []domain.Assignment{
		{GuestID: "ghost"},
	})

	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}

func TestGuestRepository_CommitAllocation_DoesNotLockRoomBlocks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuestRepo(db)

	expectBucketLock(mock)
	mock.ExpectRollback()

	_ = repo.CommitAllocation(context.Background(), "e1", []domain.Assignment{
		{GuestID: "g1", Floor: "9", Wing: "Z"},
	})

	require.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, bucketCapacityQuery, "FOR UPDATE")
}
