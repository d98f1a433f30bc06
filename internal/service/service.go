// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/kairos-net/kairos/internal/entities"
	"github.com/kairos-net/kairos/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound returned when a referenced post is absent.
var ErrNotFound = errors.New("post not found")

// ErrNotPostOwner returned when an author-scoped operation is requested by
// somebody else than the post's author.
var ErrNotPostOwner = errors.New("post is not owned by account")

// ErrInsufficientFunds returned when the acting account can not pay the
// operation's token cost.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Service implements the post lifecycle and time economy. Every mutating call
// charges its token cost exactly once and commits atomically.
type Service interface {
	CreatePost(ctx context.Context, author string, p *CreatePostParams) (*entities.Post, error)
	LikePost(ctx context.Context, actor, postUUID string) error
	DislikePost(ctx context.Context, actor, postUUID string) error
	WithdrawTime(ctx context.Context, actor, postUUID string) error

	GetPost(ctx context.Context, postUUID string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error)
	GetAccountStats(ctx context.Context, account string, category *entities.Category) (*entities.AccountStats, error)
	GetOwnPostStats(ctx context.Context, account, postUUID string) (*entities.PostStats, error)
	GetNFT(ctx context.Context, postUUID string) (*entities.NFT, error)
	GetBalance(ctx context.Context, account string) (int64, error)
}

// CreatePostParams ...
type CreatePostParams struct {
	Category entities.Category
	Heading  string
	Text     string
	Image    string
}
