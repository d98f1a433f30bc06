// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-net/kairos/internal/entities"
	"github.com/kairos-net/kairos/internal/service"
	"github.com/kairos-net/kairos/internal/storage"
)

const (
	createPostCost  = 5
	initialPostTime = 5
	engagementCost  = 1
)

type srv struct {
	s storage.Storage

	treasury string
}

func (s srv) CreatePost(ctx context.Context, author string, p *service.CreatePostParams) (*entities.Post, error) {
	post := entities.Post{
		UUID:      uuid.New().String(),
		Owner:     author,
		Category:  p.Category,
		Heading:   p.Heading,
		Text:      p.Text,
		Image:     p.Image,
		Time:      initialPostTime,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.Transfer(ctx, author, s.treasury, createPostCost); err != nil {
			return fmt.Errorf("failed to charge author: %w", err)
		}

		if err := tx.CreatePost(ctx, &storage.CreatePostParams{
			UUID:      post.UUID,
			Owner:     post.Owner,
			Category:  post.Category,
			Heading:   post.Heading,
			Text:      post.Text,
			Image:     post.Image,
			Time:      post.Time,
			CreatedAt: post.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to create post on storage side: %w", err)
		}

		if err := tx.CreateNFT(ctx, &storage.CreateNFTParams{
			PostUUID: post.UUID,
			Image:    post.Image,
			Token:    uuid.New().String(),
			MintedAt: post.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to mint nft: %w", err)
		}

		return nil
	}); err != nil {
		return nil, toServiceError(err)
	}

	return &post, nil
}

func (s srv) LikePost(ctx context.Context, actor, postUUID string) error {
	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := tx.GetPost(ctx, postUUID); err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if err := tx.Transfer(ctx, actor, s.treasury, engagementCost); err != nil {
			return fmt.Errorf("failed to charge actor: %w", err)
		}

		if _, err := tx.AddEngagement(ctx, postUUID, 1, 0, 1); err != nil {
			return fmt.Errorf("failed to add engagement: %w", err)
		}

		return nil
	})

	return toServiceError(err)
}

func (s srv) DislikePost(ctx context.Context, actor, postUUID string) error {
	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := tx.GetPost(ctx, postUUID); err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if err := tx.Transfer(ctx, actor, s.treasury, engagementCost); err != nil {
			return fmt.Errorf("failed to charge actor: %w", err)
		}

		t, err := tx.AddEngagement(ctx, postUUID, 0, 1, -1)
		if err != nil {
			return fmt.Errorf("failed to add engagement: %w", err)
		}

		// a post which ran out of time is removed within the same commit
		if t <= 0 {
			if err := tx.DeletePost(ctx, postUUID); err != nil {
				return fmt.Errorf("failed to delete exhausted post: %w", err)
			}
		}

		return nil
	})

	return toServiceError(err)
}

func (s srv) WithdrawTime(ctx context.Context, actor, postUUID string) error {
	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postUUID)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		if p.Owner != actor {
			return service.ErrNotPostOwner
		}

		if err := tx.Transfer(ctx, actor, s.treasury, engagementCost); err != nil {
			return fmt.Errorf("failed to charge actor: %w", err)
		}

		// only a dislike removes an exhausted post, a withdrawal may leave
		// the time non-positive
		if _, err := tx.AddEngagement(ctx, postUUID, 0, 0, -1); err != nil {
			return fmt.Errorf("failed to add engagement: %w", err)
		}

		return nil
	})

	return toServiceError(err)
}

func (s srv) GetPost(ctx context.Context, postUUID string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, postUUID)
	if err != nil {
		return nil, toServiceError(err)
	}

	return toPost(p), nil
}

func (s srv) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	posts, err := s.s.ListPosts(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts on storage side: %w", err)
	}

	out := make([]*entities.Post, len(posts))
	for i, v := range posts {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s srv) GetAccountStats(ctx context.Context, account string, category *entities.Category) (*entities.AccountStats, error) {
	st, err := s.s.GetAccountStats(ctx, account, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get account stats on storage side: %w", err)
	}

	return &entities.AccountStats{
		PostsCount:    st.PostsCount,
		TotalLikes:    st.TotalLikes,
		TotalDislikes: st.TotalDislikes,
		TotalTime:     st.TotalTime,
		HighestTime:   st.HighestTime,
	}, nil
}

func (s srv) GetOwnPostStats(ctx context.Context, account, postUUID string) (*entities.PostStats, error) {
	p, err := s.s.GetPost(ctx, postUUID)
	if err != nil {
		return nil, toServiceError(err)
	}

	if p.Owner != account {
		return nil, service.ErrNotPostOwner
	}

	return &entities.PostStats{
		Likes:    p.Likes,
		Dislikes: p.Dislikes,
		Time:     p.Time,
	}, nil
}

func (s srv) GetNFT(ctx context.Context, postUUID string) (*entities.NFT, error) {
	n, err := s.s.GetNFT(ctx, postUUID)
	if err != nil {
		return nil, toServiceError(err)
	}

	return &entities.NFT{
		PostUUID: n.PostUUID,
		Image:    n.Image,
		Token:    n.Token,
		MintedAt: n.MintedAt,
	}, nil
}

func (s srv) GetBalance(ctx context.Context, account string) (int64, error) {
	b, err := s.s.GetBalance(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance on storage side: %w", err)
	}

	return b, nil
}

// New creates new instance of service. Token costs are paid to the treasury
// account.
func New(s storage.Storage, treasury string) service.Service {
	return srv{
		s:        s,
		treasury: treasury,
	}
}

func toServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return service.ErrNotFound
	case errors.Is(err, storage.ErrInsufficientFunds):
		return service.ErrInsufficientFunds
	default:
		return err
	}
}

func toPost(p *storage.Post) *entities.Post {
	return &entities.Post{
		UUID:      p.UUID,
		Owner:     p.Owner,
		Category:  p.Category,
		Heading:   p.Heading,
		Text:      p.Text,
		Image:     p.Image,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		Time:      p.Time,
		CreatedAt: p.CreatedAt,
	}
}
