package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "user_id", "views_count", "comments_count", "likes_count"}).
		AddRow(2, "newer", 1, 7, 3, 5).
		AddRow(1, "older", 1, 2, 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count FROM "posts" WHERE posts.is_deleted = $1 ORDER BY posts.created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(false, 2, 0).
		WillReturnRows(rows)
	userRows := sqlmock.NewRows([]string{"id", "nickname"}).AddRow(1, "author")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(1).
		WillReturnRows(userRows)

	posts, err := repo.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// The subquery aliases shadow the stored counter columns.
	assert.Equal(t, 3, posts[0].CommentsCount)
	assert.Equal(t, 5, posts[0].LikesCount)
	assert.Equal(t, 7, posts[0].ViewsCount)
	assert.Equal(t, "author", posts[0].User.Nickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "posts" WHERE is_deleted = $1`)).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CounterUpdates(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		call func(repo PostRepository) error
	}{
		{
			name: "IncrementViews",
			sql:  `UPDATE "posts" SET "views_count"=views_count + 1 WHERE id = $1`,
			call: func(repo PostRepository) error { return repo.IncrementViews(context.Background(), 5) },
		},
		{
			name: "IncrementLikes",
			sql:  `UPDATE "posts" SET "likes_count"=likes_count + 1 WHERE id = $1`,
			call: func(repo PostRepository) error { return repo.IncrementLikes(context.Background(), 5) },
		},
		{
			name: "DecrementLikes Clamped",
			sql:  `UPDATE "posts" SET "likes_count"=CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END WHERE id = $1`,
			call: func(repo PostRepository) error { return repo.DecrementLikes(context.Background(), 5) },
		},
		{
			name: "IncrementComments",
			sql:  `UPDATE "posts" SET "comments_count"=comments_count + 1 WHERE id = $1`,
			call: func(repo PostRepository) error { return repo.IncrementComments(context.Background(), 5) },
		},
		{
			name: "DecrementComments Unclamped",
			sql:  `UPDATE "posts" SET "comments_count"=comments_count - 1 WHERE id = $1`,
			call: func(repo PostRepository) error { return repo.DecrementComments(context.Background(), 5) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPostRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tt.sql)).
				WithArgs(5).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			require.NoError(t, tt.call(repo))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "is_deleted"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(true, sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SoftDelete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
