package connection

import (
	"database/sql"

	"gorm.io/gorm"
)

// GormWithTx returns a gorm handle whose statements run on tx. Services open
// transactions on *sql.DB so raw-SQL repositories (outbox) and gorm
// repositories can share one.
func GormWithTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	txDB := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	txDB.Statement.ConnPool = tx
	return txDB
}
