package db_test

import (
	"testing"

	"coffee-wifi-server/db"
	"coffee-wifi-server/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	gdb, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "cafe"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cafe", "name", "qualification", "t_opinions", "stars"}).
			AddRow(1, "Central Perk", 4.0, 2, "★★★★☆"))
	// two prior comments scoring 3 and 5
	mock.ExpectQuery(`SELECT \* FROM "comment" WHERE id_cafe = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id_comment", "id_author", "id_cafe", "score", "body", "date"}).
			AddRow(1, 10, 1, 3, "nice", "July 01, 2025").
			AddRow(2, 11, 1, 5, "great", "July 02, 2025"))
	mock.ExpectQuery(`INSERT INTO "comment"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_comment"}).AddRow(3))
	// the aggregate triple is overwritten in the same transaction,
	// new mean is (3+5+4)/3 = 4.0
	mock.ExpectExec(`UPDATE "cafe" SET`).
		WithArgs(4.0, "★★★★☆", 3, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	commentDAO := db.NewCommentDAO(gdb)
	comment := model.Comment{
		AuthorID: 12,
		CafeID:   1,
		Score:    4,
		Body:     "lovely flat white",
		Date:     "July 03, 2025",
	}

	err := commentDAO.CreateComment(&comment)
	require.NoError(t, err)
	assert.Equal(t, 3, comment.CommentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentAlreadyCommented(t *testing.T) {
	gdb, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "cafe"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cafe", "name"}).AddRow(1, "Central Perk"))
	// author 12 already commented on this cafe
	mock.ExpectQuery(`SELECT \* FROM "comment" WHERE id_cafe = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id_comment", "id_author", "id_cafe", "score"}).
			AddRow(1, 12, 1, 3))
	mock.ExpectRollback()

	commentDAO := db.NewCommentDAO(gdb)
	comment := model.Comment{
		AuthorID: 12,
		CafeID:   1,
		Score:    5,
		Date:     "July 03, 2025",
	}

	err := commentDAO.CreateComment(&comment)
	assert.ErrorIs(t, err, db.ErrAlreadyCommented)

	// nothing was inserted and nothing was updated
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentCafeNotFound(t *testing.T) {
	gdb, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "cafe"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cafe"}))
	mock.ExpectRollback()

	commentDAO := db.NewCommentDAO(gdb)
	comment := model.Comment{AuthorID: 12, CafeID: 99, Score: 4, Date: "July 03, 2025"}

	err := commentDAO.CreateComment(&comment)
	assert.ErrorIs(t, err, db.ErrCafeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByCafe(t *testing.T) {
	gdb, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "comment" WHERE id_cafe = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id_comment", "id_author", "id_cafe", "score", "body", "date"}).
			AddRow(1, 10, 1, 3, "nice", "July 01, 2025"))
	// the author name is injected from the users table
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_user", "name", "email", "password_hash", "is_admin"}).
			AddRow(10, "Ana", "ana@example.com", "hash", false))

	commentDAO := db.NewCommentDAO(gdb)
	comments, err := commentDAO.GetCommentsByCafe(1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ana", comments[0].AuthorName)
	assert.Equal(t, 3, comments[0].Score)
}
