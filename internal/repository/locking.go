package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate applies a pessimistic row lock on dialects that support it.
// SQLite (the test database) serializes writers on its own and rejects
// FOR UPDATE, so the clause is postgres-only.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if strings.EqualFold(tx.Dialector.Name(), "postgres") {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
