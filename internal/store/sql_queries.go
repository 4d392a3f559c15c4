package store

import (
	"strings"

	"github.com/MKhiriev/intelli-scan/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	columnID       = "id"
	columnEmail    = "email"
	columnGoogleID = "google_id"
)

// userColumns is the column order every user query returns and scanUser reads.
var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"google_id",
	"created_at",
	"updated_at",
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func (db *DB) buildFindUserQuery(column string, value any) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Insert(user.TableName()).
		Columns("name", "email", "password_hash", "google_id", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, user.GoogleID, user.CreatedAt, user.UpdatedAt).
		Suffix(returningUser()).
		ToSql()
}

func (db *DB) buildSaveUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("google_id", user.GoogleID).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{columnID: user.ID}).
		Suffix(returningUser()).
		ToSql()
}

func (db *DB) buildDeleteUserQuery(userID int64) (string, []any, error) {
	return db.builder().
		Delete(models.User{}.TableName()).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}
