// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/kairos-net/kairos/internal/entities"
	"github.com/kairos-net/kairos/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

type pg struct {
	ext sqlx.ExtContext

	initialBalance int64
}

type postDTO struct {
	UUID      string    `db:"uuid"`
	Owner     string    `db:"owner"`
	Category  uint8     `db:"category"`
	Heading   string    `db:"heading"`
	Text      string    `db:"text"`
	Image     string    `db:"image"`
	Likes     uint64    `db:"likes"`
	Dislikes  uint64    `db:"dislikes"`
	Time      int64     `db:"time"`
	CreatedAt time.Time `db:"created_at"`
}

type nftDTO struct {
	PostUUID string    `db:"post_uuid"`
	Image    string    `db:"image"`
	Token    string    `db:"token"`
	MintedAt time.Time `db:"minted_at"`
}

type accountStatsDTO struct {
	PostsCount    int64         `db:"posts_count"`
	TotalLikes    int64         `db:"total_likes"`
	TotalDislikes int64         `db:"total_dislikes"`
	TotalTime     int64         `db:"total_time"`
	HighestTime   sql.NullInt64 `db:"highest_time"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx, initialBalance: s.initialBalance}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	var one int
	if err := sqlx.GetContext(ctx, s.ext, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to query: %w", err)
	}

	return nil
}

func (s pg) GetBalance(ctx context.Context, account string) (int64, error) {
	var b int64
	if err := sqlx.GetContext(ctx, s.ext, &b, `SELECT amount FROM balance WHERE account = $1`, account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// account wasn't touched yet, the initial grant is still pending
			return s.initialBalance, nil
		}

		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return b, nil
}

func (s pg) Transfer(ctx context.Context, from, to string, amount int64) error {
	for _, account := range []string{from, to} {
		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO balance(account, amount) VALUES($1, $2) ON CONFLICT(account) DO NOTHING`,
			account, s.initialBalance,
		); err != nil {
			return fmt.Errorf("failed to init balance: %w", err)
		}
	}

	res, err := s.ext.ExecContext(ctx,
		`UPDATE balance SET amount = amount - $2 WHERE account = $1 AND amount >= $2`,
		from, amount,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrInsufficientFunds
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE balance SET amount = amount + $2 WHERE account = $1`,
		to, amount,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) error {
	post := postDTO{
		UUID:      p.UUID,
		Owner:     p.Owner,
		Category:  uint8(p.Category),
		Heading:   p.Heading,
		Text:      p.Text,
		Image:     p.Image,
		Time:      p.Time,
		CreatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(uuid, owner, category, heading, text, image, likes, dislikes, "time", created_at)
			VALUES(:uuid, :owner, :category, :heading, :text, :image, 0, 0, :time, :created_at)
		`, post,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, uuid string) (*storage.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT uuid, owner, category, heading, text, image, likes, dislikes, "time", created_at
			FROM post
			WHERE uuid = $1
		`,
		uuid,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toStoragePost(&p), nil
}

// DeletePost is idempotent, deleting an absent post is not an error.
func (s pg) DeletePost(ctx context.Context, uuid string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE uuid = $1`, uuid); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddEngagement(ctx context.Context, uuid string, likes, dislikes, time int64) (int64, error) {
	var t int64

	if err := sqlx.GetContext(ctx, s.ext, &t, `
			UPDATE post SET likes = likes + $2, dislikes = dislikes + $3, "time" = "time" + $4
			WHERE uuid = $1
			RETURNING "time"
		`,
		uuid, likes, dislikes, time,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return t, nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*storage.Post, error) {
	column := string(p.SortBy)
	if p.SortBy == storage.TimeSortType {
		column = `"time"`
	}

	var (
		where []string
		args  []interface{}
	)

	if p.Owner != nil {
		args = append(args, *p.Owner)
		where = append(where, fmt.Sprintf("owner = $%d", len(args)))
	}

	if p.Category != nil {
		args = append(args, uint8(*p.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	if p.After != nil {
		cmp := ">"
		if p.OrderBy == storage.DescendingOrder {
			cmp = "<"
		}

		args = append(args, *p.After)
		where = append(where, fmt.Sprintf(
			"(%s, uuid) %s (SELECT %s, uuid FROM post WHERE uuid = $%d)",
			column, cmp, column, len(args),
		))
	}

	query := `SELECT uuid, owner, category, heading, text, image, likes, dislikes, "time", created_at FROM post`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY %s %s, uuid %s", column, p.OrderBy, p.OrderBy)
	if p.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", p.Limit)
	}

	var posts []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.Post, len(posts))
	for i, v := range posts {
		out[i] = toStoragePost(v)
	}

	return out, nil
}

func (s pg) GetAccountStats(ctx context.Context, owner string, category *entities.Category) (*storage.AccountStats, error) {
	query := `
		SELECT
			COUNT(*) AS posts_count,
			COALESCE(SUM(likes), 0) AS total_likes,
			COALESCE(SUM(dislikes), 0) AS total_dislikes,
			COALESCE(SUM("time"), 0) AS total_time,
			MAX("time") AS highest_time
		FROM post
		WHERE owner = $1
	`
	args := []interface{}{owner}

	if category != nil {
		query += ` AND category = $2`
		args = append(args, uint8(*category))
	}

	var dto accountStatsDTO
	if err := sqlx.GetContext(ctx, s.ext, &dto, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := storage.AccountStats{
		PostsCount:    dto.PostsCount,
		TotalLikes:    dto.TotalLikes,
		TotalDislikes: dto.TotalDislikes,
		TotalTime:     dto.TotalTime,
	}

	if dto.HighestTime.Valid {
		out.HighestTime = &dto.HighestTime.Int64
	}

	return &out, nil
}

func (s pg) CreateNFT(ctx context.Context, p *storage.CreateNFTParams) error {
	nft := nftDTO{
		PostUUID: p.PostUUID,
		Image:    p.Image,
		Token:    p.Token,
		MintedAt: p.MintedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO nft(post_uuid, image, token, minted_at)
			VALUES(:post_uuid, :image, :token, :minted_at)
		`, nft,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetNFT(ctx context.Context, postUUID string) (*storage.NFT, error) {
	var n nftDTO

	if err := sqlx.GetContext(ctx, s.ext, &n,
		`SELECT post_uuid, image, token, minted_at FROM nft WHERE post_uuid = $1`,
		postUUID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &storage.NFT{
		PostUUID: n.PostUUID,
		Image:    n.Image,
		Token:    n.Token,
		MintedAt: n.MintedAt,
	}, nil
}

// New creates new instance of pg. Accounts get initialBalance tokens the
// first time they take part in a transfer.
func New(db *sql.DB, initialBalance int64) storage.Storage {
	return pg{
		ext:            sqlx.NewDb(db, "postgres"),
		initialBalance: initialBalance,
	}
}

func toStoragePost(p *postDTO) *storage.Post {
	return &storage.Post{
		UUID:      p.UUID,
		Owner:     p.Owner,
		Category:  entities.Category(p.Category),
		Heading:   p.Heading,
		Text:      p.Text,
		Image:     p.Image,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		Time:      p.Time,
		CreatedAt: p.CreatedAt,
	}
}
