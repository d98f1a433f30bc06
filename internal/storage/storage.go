// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/kairos-net/kairos/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrInsufficientFunds is returned by Transfer when the payer can not cover
// the requested amount.
var ErrInsufficientFunds = fmt.Errorf("insufficient funds")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	GetBalance(ctx context.Context, account string) (int64, error)
	Transfer(ctx context.Context, from, to string, amount int64) error

	CreatePost(ctx context.Context, p *CreatePostParams) error
	GetPost(ctx context.Context, uuid string) (*Post, error)
	DeletePost(ctx context.Context, uuid string) error
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*Post, error)
	AddEngagement(ctx context.Context, uuid string, likes, dislikes, time int64) (int64, error)

	GetAccountStats(ctx context.Context, owner string, category *entities.Category) (*AccountStats, error)

	CreateNFT(ctx context.Context, p *CreateNFTParams) error
	GetNFT(ctx context.Context, postUUID string) (*NFT, error)
}

// SortType ...
type SortType string

const (
	// CreatedAtSortType ...
	CreatedAtSortType SortType = "created_at"
	// LikesSortType ...
	LikesSortType SortType = "likes"
	// DislikesSortType ...
	DislikesSortType SortType = "dislikes"
	// TimeSortType ...
	TimeSortType SortType = "time"
)

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder = "desc"
)

// ListPostsParams ...
type ListPostsParams struct {
	SortBy   SortType
	OrderBy  OrderType
	Limit    uint16
	Category *entities.Category
	Owner    *string
	After    *string
}

// CreatePostParams ...
type CreatePostParams struct {
	UUID      string
	Owner     string
	Category  entities.Category
	Heading   string
	Text      string
	Image     string
	Time      int64
	CreatedAt time.Time
}

// Post ...
type Post struct {
	UUID      string
	Owner     string
	Category  entities.Category
	Heading   string
	Text      string
	Image     string
	Likes     uint64
	Dislikes  uint64
	Time      int64
	CreatedAt time.Time
}

// AccountStats ...
type AccountStats struct {
	PostsCount    int64
	TotalLikes    int64
	TotalDislikes int64
	TotalTime     int64
	HighestTime   *int64
}

// CreateNFTParams ...
type CreateNFTParams struct {
	PostUUID string
	Image    string
	Token    string
	MintedAt time.Time
}

// NFT ...
type NFT struct {
	PostUUID string
	Image    string
	Token    string
	MintedAt time.Time
}
