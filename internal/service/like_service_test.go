package service

import (
	"context"
	"testing"

	"community/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_AddLike(t *testing.T) {
	t.Parallel()

	t.Run("first like creates row and bumps counter", func(t *testing.T) {
		var createdUser, createdPost, bumpedPost uint
		postRepo := &postRepoStub{
			getByID: livePost,
			incrementLikes: func(id uint) error {
				bumpedPost = id
				return nil
			},
		}
		likeRepo := &likeRepoStub{
			create: func(userID, postID uint) error {
				createdUser, createdPost = userID, postID
				return nil
			},
		}

		svc := NewLikeService(likeRepo, postRepo, &userRepoStub{})
		err := svc.AddLike(context.Background(), 9, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(9), createdUser)
		assert.Equal(t, uint(5), createdPost)
		assert.Equal(t, uint(5), bumpedPost)
	})

	t.Run("repeat like is a no-op", func(t *testing.T) {
		postRepo := &postRepoStub{
			getByID: livePost,
			incrementLikes: func(id uint) error {
				t.Fatal("counter must not move on a repeat like")
				return nil
			},
		}
		likeRepo := &likeRepoStub{
			exists: func(userID, postID uint) (bool, error) { return true, nil },
			create: func(userID, postID uint) error {
				t.Fatal("no new row on a repeat like")
				return nil
			},
		}

		svc := NewLikeService(likeRepo, postRepo, &userRepoStub{})
		err := svc.AddLike(context.Background(), 9, 5)
		require.NoError(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		svc := NewLikeService(&likeRepoStub{}, &postRepoStub{}, &userRepoStub{})
		err := svc.AddLike(context.Background(), 9, 404)
		assertNotFoundError(t, err)
	})

	t.Run("soft deleted post cannot gain likes", func(t *testing.T) {
		postRepo := &postRepoStub{getByID: deletedPost}
		svc := NewLikeService(&likeRepoStub{}, postRepo, &userRepoStub{})
		err := svc.AddLike(context.Background(), 9, 5)
		assertNotFoundError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		postRepo := &postRepoStub{getByID: livePost}
		userRepo := &userRepoStub{
			getByID: func(id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewLikeService(&likeRepoStub{}, postRepo, userRepo)
		err := svc.AddLike(context.Background(), 99, 5)
		assertNotFoundError(t, err)
	})
}

func TestLikeService_RemoveLike(t *testing.T) {
	t.Parallel()

	t.Run("removes row and drops counter", func(t *testing.T) {
		var droppedPost uint
		var deleted bool
		postRepo := &postRepoStub{
			getByID: livePost,
			decrementLikes: func(id uint) error {
				droppedPost = id
				return nil
			},
		}
		likeRepo := &likeRepoStub{
			exists: func(userID, postID uint) (bool, error) { return true, nil },
			delete: func(userID, postID uint) error {
				deleted = true
				return nil
			},
		}

		svc := NewLikeService(likeRepo, postRepo, &userRepoStub{})
		err := svc.RemoveLike(context.Background(), 9, 5)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, uint(5), droppedPost)
	})

	t.Run("unliking without a like is not found", func(t *testing.T) {
		postRepo := &postRepoStub{getByID: livePost}
		svc := NewLikeService(&likeRepoStub{}, postRepo, &userRepoStub{})
		err := svc.RemoveLike(context.Background(), 9, 5)
		assertNotFoundError(t, err)
	})

	t.Run("unliking a soft deleted post still works", func(t *testing.T) {
		postRepo := &postRepoStub{getByID: deletedPost}
		likeRepo := &likeRepoStub{
			exists: func(userID, postID uint) (bool, error) { return true, nil },
		}

		svc := NewLikeService(likeRepo, postRepo, &userRepoStub{})
		err := svc.RemoveLike(context.Background(), 9, 5)
		require.NoError(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		svc := NewLikeService(&likeRepoStub{}, &postRepoStub{}, &userRepoStub{})
		err := svc.RemoveLike(context.Background(), 9, 404)
		assertNotFoundError(t, err)
	})
}
