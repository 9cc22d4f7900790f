// internal/repository/repository.go
package repository

import (
	"gorm.io/gorm"
)

// inTransaction runs fn inside a single database transaction. Mutations
// that touch more than one row set (a post and its attachments) must not
// be observable half-applied, so they all go through here.
func inTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}
