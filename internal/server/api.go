package server

import (
	"github.com/kairos-net/kairos/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20

const maxHeadingLength = 150
const maxTextLength = 10000

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Category entities.Category `json:"category"`
	Heading  string            `json:"heading"`
	Text     string            `json:"text"`
	// Image is a hex-encoded 32-byte content hash.
	Image string `json:"image"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts []*Post `json:"posts"`
}

// Post ...
type Post struct {
	UUID          string            `json:"uuid"`
	Owner         string            `json:"owner"`
	Category      entities.Category `json:"category"`
	Heading       string            `json:"heading"`
	Text          string            `json:"text"`
	Image         string            `json:"image"`
	LikesCount    uint64            `json:"likesCount"`
	DislikesCount uint64            `json:"dislikesCount"`
	Time          int64             `json:"time"`
	CreatedAt     uint64            `json:"createdAt"`
}

// AccountStats ...
// HighestTime is null when the account has no posts in the filtered set.
type AccountStats struct {
	PostsCount    int64  `json:"postsCount"`
	TotalLikes    int64  `json:"totalLikes"`
	TotalDislikes int64  `json:"totalDislikes"`
	TotalTime     int64  `json:"totalTime"`
	HighestTime   *int64 `json:"highestTime"`
}

// PostStats ...
type PostStats struct {
	LikesCount    uint64 `json:"likesCount"`
	DislikesCount uint64 `json:"dislikesCount"`
	Time          int64  `json:"time"`
}

// NFT ...
type NFT struct {
	PostUUID string `json:"postUuid"`
	Image    string `json:"image"`
	Token    string `json:"token"`
	MintedAt uint64 `json:"mintedAt"`
}

// Balance ...
type Balance struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

func toAPIPost(p *entities.Post) *Post {
	if p == nil {
		return nil
	}

	return &Post{
		UUID:          p.UUID,
		Owner:         p.Owner,
		Category:      p.Category,
		Heading:       p.Heading,
		Text:          p.Text,
		Image:         p.Image,
		LikesCount:    p.Likes,
		DislikesCount: p.Dislikes,
		Time:          p.Time,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
	}
}

func toAPIPosts(pp []*entities.Post) []*Post {
	out := make([]*Post, len(pp))
	for i, v := range pp {
		out[i] = toAPIPost(v)
	}

	return out
}
