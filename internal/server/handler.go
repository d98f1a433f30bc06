package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/kairos-net/kairos/internal/entities"
	"github.com/kairos-net/kairos/internal/service"
	"github.com/kairos-net/kairos/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

var imageRegExp = regexp.MustCompile(`^[0-9a-f]{64}$`)

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Community CreatePost
	//
	// Create a post. Costs 5 tokens, the post starts with 5 time.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: X-Kairos-Account
	//   description: acting account
	//   in: header
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '402':
	//     description: insufficient funds
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	account := r.Header.Get(AccountHeader)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account header is required")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := validateCreatePostRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := s.s.CreatePost(r.Context(), account, &service.CreatePostParams{
		Category: req.Category,
		Heading:  req.Heading,
		Text:     req.Text,
		Image:    req.Image,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to create post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) likePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{uuid}/like Community LikePost
	//
	// Like a post. Costs 1 token, grants the post 1 time.
	//
	// ---
	// parameters:
	// - name: X-Kairos-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: post liked
	//   '402':
	//     description: insufficient funds
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.engage(w, r, s.s.LikePost)
}

func (s server) dislikePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{uuid}/dislike Community DislikePost
	//
	// Dislike a post. Costs 1 token, takes 1 time from the post; a post left
	// with no time is removed.
	//
	// ---
	// parameters:
	// - name: X-Kairos-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: post disliked
	//   '402':
	//     description: insufficient funds
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.engage(w, r, s.s.DislikePost)
}

func (s server) withdrawTime(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{uuid}/time/withdraw Community WithdrawTime
	//
	// Withdraw 1 time from an own post. Costs 1 token, author only.
	//
	// ---
	// parameters:
	// - name: X-Kairos-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: time withdrawn
	//   '402':
	//     description: insufficient funds
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: post is not owned by account
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.engage(w, r, s.s.WithdrawTime)
}

func (s server) engage(w http.ResponseWriter, r *http.Request, f func(ctx context.Context, actor, postUUID string) error) {
	account := r.Header.Get(AccountHeader)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account header is required")
		return
	}

	uuid := chi.URLParam(r, "uuid")
	if uuid == "" {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	if err := f(r.Context(), account, uuid); err != nil {
		writeServiceError(r.Context(), w, err, "failed to process engagement: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{uuid} Community GetPost
	//
	// Get post by uuid.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	uuid := chi.URLParam(r, "uuid")
	if uuid == "" {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	post, err := s.s.GetPost(r.Context(), uuid)
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Community ListPosts
	//
	// Return posts, newest first by default.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: category
	//   description: filters posts by category
	//   in: query
	//   required: false
	//   minimum: 1
	//   maximum: 9
	// - name: owner
	//   description: filters posts by owner
	//   in: query
	//   required: false
	// - name: sortBy
	//   in: query
	//   required: false
	//   default: createdAt
	//   type: string
	//   enum: [createdAt, likesCount, dislikesCount, time]
	// - name: orderBy
	//   in: query
	//   required: false
	//   default: desc
	//   type: string
	//   enum: [asc, desc]
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// - name: after
	//   description: sets not-including bound for list by post uuid
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, ListPostsResponse{Posts: toAPIPosts(posts)})
}

func (s server) getPostNFT(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{uuid}/nft Community GetPostNFT
	//
	// Get the collectible minted for the post's image.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: NFT
	//     schema:
	//       "$ref": "#/definitions/NFT"
	//   '404':
	//     description: nft not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	uuid := chi.URLParam(r, "uuid")
	if uuid == "" {
		writeError(w, http.StatusBadRequest, "invalid uuid")
		return
	}

	nft, err := s.s.GetNFT(r.Context(), uuid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "nft not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get nft: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, NFT{
		PostUUID: nft.PostUUID,
		Image:    nft.Image,
		Token:    nft.Token,
		MintedAt: uint64(nft.MintedAt.Unix()),
	})
}

func (s server) getAccountStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /accounts/{account}/stats Accounts GetAccountStats
	//
	// Aggregates over the account's posts: count, total likes, dislikes and
	// time, highest time. highestTime is null when the account has no posts
	// in the filtered set.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: account
	//   in: path
	//   required: true
	//   type: string
	// - name: category
	//   description: narrows aggregates to one category
	//   in: query
	//   required: false
	//   minimum: 1
	//   maximum: 9
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/AccountStats"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	account := chi.URLParam(r, "account")
	if account == "" {
		writeError(w, http.StatusBadRequest, "invalid account")
		return
	}

	category, err := extractCategoryFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := s.s.GetAccountStats(r.Context(), account, category)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get account stats: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, AccountStats{
		PostsCount:    stats.PostsCount,
		TotalLikes:    stats.TotalLikes,
		TotalDislikes: stats.TotalDislikes,
		TotalTime:     stats.TotalTime,
		HighestTime:   stats.HighestTime,
	})
}

func (s server) getOwnPostStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /accounts/{account}/posts/{uuid}/stats Accounts GetOwnPostStats
	//
	// Engagement counters of a single post, restricted to its author.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: account
	//   in: path
	//   required: true
	//   type: string
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/PostStats"
	//   '403':
	//     description: post is not owned by account
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	account, uuid := chi.URLParam(r, "account"), chi.URLParam(r, "uuid")
	if account == "" || uuid == "" {
		writeError(w, http.StatusBadRequest, "invalid account or uuid")
		return
	}

	stats, err := s.s.GetOwnPostStats(r.Context(), account, uuid)
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get post stats: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, PostStats{
		LikesCount:    stats.Likes,
		DislikesCount: stats.Dislikes,
		Time:          stats.Time,
	})
}

func (s server) getBalance(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /accounts/{account}/balance Accounts GetBalance
	//
	// Get the account's token balance.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: account
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Balance
	//     schema:
	//       "$ref": "#/definitions/Balance"

	account := chi.URLParam(r, "account")
	if account == "" {
		writeError(w, http.StatusBadRequest, "invalid account")
		return
	}

	balance, err := s.s.GetBalance(r.Context(), account)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get balance: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, Balance{
		Account: account,
		Amount:  balance,
	})
}

func validateCreatePostRequest(req *CreatePostRequest) error {
	if !req.Category.IsValid() {
		return fmt.Errorf("%w: invalid category value", errInvalidRequest)
	}

	if req.Heading == "" || len(req.Heading) > maxHeadingLength {
		return fmt.Errorf("%w: invalid heading", errInvalidRequest)
	}

	if req.Text == "" || len(req.Text) > maxTextLength {
		return fmt.Errorf("%w: invalid text", errInvalidRequest)
	}

	if !imageRegExp.MatchString(req.Image) {
		return fmt.Errorf("%w: image must be a hex-encoded 32-byte hash", errInvalidRequest)
	}

	return nil
}

func extractListParamsFromQuery(q url.Values) (*storage.ListPostsParams, error) {
	out := storage.ListPostsParams{
		SortBy:  storage.CreatedAtSortType,
		OrderBy: storage.DescendingOrder,
		Limit:   defaultLimit,
	}

	switch q.Get("sortBy") {
	case "createdAt":
		out.SortBy = storage.CreatedAtSortType
	case "likesCount":
		out.SortBy = storage.LikesSortType
	case "dislikesCount":
		out.SortBy = storage.DislikesSortType
	case "time":
		out.SortBy = storage.TimeSortType
	case "":
	default:
		return nil, fmt.Errorf("%w: invalid sortBy", errInvalidRequest)
	}

	orderBy := storage.OrderType(q.Get("orderBy"))
	switch orderBy {
	case storage.AscendingOrder, storage.DescendingOrder:
		out.OrderBy = orderBy
	case "":
	default:
		return nil, fmt.Errorf("%w: invalid orderBy", errInvalidRequest)
	}

	category, err := extractCategoryFromQuery(q)
	if err != nil {
		return nil, err
	}
	out.Category = category

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}

		if v > maxLimit {
			return nil, fmt.Errorf("%w: limit is too big", errInvalidRequest)
		}

		out.Limit = uint16(v)
	}

	if s := q.Get("owner"); s != "" {
		out.Owner = &s
	}

	if s := q.Get("after"); s != "" {
		out.After = &s
	}

	return &out, nil
}

func extractCategoryFromQuery(q url.Values) (*entities.Category, error) {
	s := q.Get("category")
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse category", errInvalidRequest)
	}

	c := entities.Category(v)
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: invalid category value", errInvalidRequest)
	}

	return &c, nil
}
