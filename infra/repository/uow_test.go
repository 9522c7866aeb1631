package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	infrarepo "github.com/bankinc/cardledger/infra/repository"
	"github.com/bankinc/cardledger/pkg/domain/card"
	txdomain "github.com/bankinc/cardledger/pkg/domain/transaction"
	"github.com/bankinc/cardledger/pkg/domain/user"
	"github.com/bankinc/cardledger/pkg/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "cardledger.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	require.NoError(t, infrarepo.Migrate(db))
	return db
}

func fixedDigits(seq string) card.DigitSource {
	return func(n int) (string, error) { return seq[:n], nil }
}

func buildCard(t *testing.T, digits string) *card.Card {
	t.Helper()
	c, err := card.New().
		WithProductID("102030").
		WithHolderName("Jane Roe").
		WithDigits(fixedDigits(digits)).
		Build()
	require.NoError(t, err)
	return c
}

func TestCardRepository_SaveAndFind(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	c := buildCard(t, "0000000001")
	require.NoError(t, uow.Cards().Save(ctx, c))

	stored, err := uow.Cards().FindByCardID(ctx, c.CardID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, c.CardID, stored.CardID)
	assert.Equal(t, "102030", stored.ProductID)
	assert.Equal(t, "Jane Roe", stored.HolderName)
	assert.True(t, stored.Balance.IsZero())
	assert.False(t, stored.Active)
}

func TestCardRepository_FindMissing(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))

	stored, err := uow.Cards().FindByCardID(context.Background(), "0000000000000000")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCardRepository_SaveUpsertsOnCardID(t *testing.T) {
	db := newTestDB(t)
	uow := infrarepo.NewUoW(db)
	ctx := context.Background()

	c := buildCard(t, "0000000001")
	require.NoError(t, uow.Cards().Save(ctx, c))

	require.NoError(t, c.Enroll())
	require.NoError(t, c.Recharge(decimal.RequireFromString("100.50")))
	require.NoError(t, uow.Cards().Save(ctx, c))

	var count int64
	require.NoError(t, db.Table("cards").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := uow.Cards().FindByCardID(ctx, c.CardID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("100.50")), "got %s", stored.Balance)
}

func TestTransactionRepository_SaveAndFind(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	tx := txdomain.New("1020300000000001", decimal.RequireFromString("12.34"), at)
	require.NoError(t, uow.Transactions().Save(ctx, tx))

	stored, err := uow.Transactions().FindByTransactionID(ctx, tx.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, tx.CardID, stored.CardID)
	assert.Equal(t, txdomain.StatusCompleted, stored.Status)
	assert.True(t, stored.Price.Equal(tx.Price))
	assert.True(t, stored.TransactionDate.Equal(at))
}

func TestTransactionRepository_UpsertKeepsPrice(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	tx := txdomain.New("1020300000000001", decimal.RequireFromString("12.34"), at)
	require.NoError(t, uow.Transactions().Save(ctx, tx))

	require.NoError(t, tx.Annul(at.Add(time.Hour)))
	require.NoError(t, uow.Transactions().Save(ctx, tx))

	stored, err := uow.Transactions().FindByTransactionID(ctx, tx.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, txdomain.StatusAnnulled, stored.Status)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("12.34")))
}

func TestTransactionRepository_FindMissing(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))

	stored, err := uow.Transactions().FindByTransactionID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	u := user.New("jane", "hashed")
	require.NoError(t, uow.Users().Create(ctx, u))

	stored, err := uow.Users().FindByUsername(ctx, "jane")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, u.ID, stored.ID)
	assert.Equal(t, "hashed", stored.PasswordHash)

	missing, err := uow.Users().FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, uow.Users().Create(ctx, user.New("jane", "h1")))
	err := uow.Users().Create(ctx, user.New("jane", "h2"))
	assert.Error(t, err)
}

func TestUoW_RollbackOnError(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	boom := errors.New("boom")
	c := buildCard(t, "0000000001")
	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		if err := tx.Cards().Save(ctx, c); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := uow.Cards().FindByCardID(ctx, c.CardID)
	require.NoError(t, err)
	assert.Nil(t, stored, "write inside a failed unit of work must roll back")
}

func TestUoW_CommitsBothWrites(t *testing.T) {
	uow := infrarepo.NewUoW(newTestDB(t))
	ctx := context.Background()

	c := buildCard(t, "0000000001")
	require.NoError(t, c.Enroll())
	require.NoError(t, c.Recharge(decimal.RequireFromString("50.00")))

	var transactionID string
	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		if err := c.Debit(decimal.RequireFromString("12.34")); err != nil {
			return err
		}
		if err := tx.Cards().Save(ctx, c); err != nil {
			return err
		}
		record := txdomain.New(c.CardID, decimal.RequireFromString("12.34"), time.Now())
		transactionID = record.TransactionID
		return tx.Transactions().Save(ctx, record)
	})
	require.NoError(t, err)

	stored, err := uow.Cards().FindByCardID(ctx, c.CardID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("37.66")))

	record, err := uow.Transactions().FindByTransactionID(ctx, transactionID)
	require.NoError(t, err)
	require.NotNil(t, record)
}
