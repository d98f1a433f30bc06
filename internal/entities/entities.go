// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Category of a post. The set is closed, values outside [WorldNewsCategory,
// SportsCategory] are rejected on input.
type Category uint8

const (
	// UndefinedCategory ...
	UndefinedCategory Category = iota
	// WorldNewsCategory ...
	WorldNewsCategory
	// TravelAndTourismCategory ...
	TravelAndTourismCategory
	// ScienceAndTechnologyCategory ...
	ScienceAndTechnologyCategory
	// StrangeWorldCategory ...
	StrangeWorldCategory
	// ArtsAndEntertainmentCategory ...
	ArtsAndEntertainmentCategory
	// WritersAndWritingCategory ...
	WritersAndWritingCategory
	// HealthAndFitnessCategory ...
	HealthAndFitnessCategory
	// CryptoAndBlockchainCategory ...
	CryptoAndBlockchainCategory
	// SportsCategory ...
	SportsCategory
)

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	return c > UndefinedCategory && c <= SportsCategory
}

// Post ...
type Post struct {
	UUID      string
	Owner     string
	Category  Category
	Heading   string
	Text      string
	Image     string
	Likes     uint64
	Dislikes  uint64
	Time      int64
	CreatedAt time.Time
}

// NFT is a collectible minted for a post's image at creation time.
type NFT struct {
	PostUUID string
	Image    string
	Token    string
	MintedAt time.Time
}

// AccountStats are aggregates over the posts of one account, optionally
// narrowed to a category. HighestTime is nil when the account has no posts in
// the filtered set.
type AccountStats struct {
	PostsCount    int64
	TotalLikes    int64
	TotalDislikes int64
	TotalTime     int64
	HighestTime   *int64
}

// PostStats are the engagement counters of a single post.
type PostStats struct {
	Likes    uint64
	Dislikes uint64
	Time     int64
}
