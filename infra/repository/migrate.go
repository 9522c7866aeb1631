package repository

import (
	cardrepo "github.com/bankinc/cardledger/infra/repository/card"
	txrepo "github.com/bankinc/cardledger/infra/repository/transaction"
	userrepo "github.com/bankinc/cardledger/infra/repository/user"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cardrepo.Card{},
		&txrepo.Transaction{},
		&userrepo.User{},
	)
}
