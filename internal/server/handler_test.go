package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairos-net/kairos/internal/entities"
	"github.com/kairos-net/kairos/internal/service"
	"github.com/kairos-net/kairos/internal/service/mock"
	"github.com/kairos-net/kairos/internal/storage"
)

var testImage = strings.Repeat("ab", 32)

func Test_createPost(t *testing.T) {
	timestamp := time.Unix(100, 0)

	body := fmt.Sprintf(`{"category":4,"heading":"heading","text":"text","image":"%s"}`, testImage)

	r, err := http.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(body))
	require.NoError(t, err)
	r.Header.Set(AccountHeader, "author")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().CreatePost(gomock.Any(), "author", &service.CreatePostParams{
		Category: entities.StrangeWorldCategory,
		Heading:  "heading",
		Text:     "text",
		Image:    testImage,
	}).Return(&entities.Post{
		UUID:      "uuid",
		Owner:     "author",
		Category:  entities.StrangeWorldCategory,
		Heading:   "heading",
		Text:      "text",
		Image:     testImage,
		Time:      5,
		CreatedAt: timestamp,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"uuid":"uuid",
	"owner":"author",
	"category":4,
	"heading":"heading",
	"text":"text",
	"image":"%s",
	"likesCount":0,
	"dislikesCount":0,
	"time":5,
	"createdAt":100
}
	`, testImage), w.Body.String())
}

func Test_createPost_NoAccount(t *testing.T) {
	body := fmt.Sprintf(`{"category":4,"heading":"heading","text":"text","image":"%s"}`, testImage)

	r, err := http.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_createPost_Invalid(t *testing.T) {
	tt := []struct {
		name string
		body string
	}{
		{
			name: "invalid category",
			body: fmt.Sprintf(`{"category":10,"heading":"heading","text":"text","image":"%s"}`, testImage),
		},
		{
			name: "empty heading",
			body: fmt.Sprintf(`{"category":1,"heading":"","text":"text","image":"%s"}`, testImage),
		},
		{
			name: "empty text",
			body: fmt.Sprintf(`{"category":1,"heading":"heading","text":"","image":"%s"}`, testImage),
		},
		{
			name: "invalid image",
			body: `{"category":1,"heading":"heading","text":"text","image":"not-a-hash"}`,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(tc.body))
			require.NoError(t, err)
			r.Header.Set(AccountHeader, "author")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock.NewMockService(ctrl)

			router := chi.NewRouter()
			srv := server{s: svc}
			router.Post("/v1/posts", srv.createPost)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_likePost(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "success",
			status: http.StatusNoContent,
		},
		{
			name:   "not found",
			err:    service.ErrNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "insufficient funds",
			err:    service.ErrInsufficientFunds,
			status: http.StatusPaymentRequired,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/posts/uuid/like", nil)
			require.NoError(t, err)
			r.Header.Set(AccountHeader, "actor")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock.NewMockService(ctrl)

			svc.EXPECT().LikePost(gomock.Any(), "actor", "uuid").Return(tc.err)

			router := chi.NewRouter()
			srv := server{s: svc}
			router.Post("/v1/posts/{uuid}/like", srv.likePost)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func Test_withdrawTime_NotOwner(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/uuid/time/withdraw", nil)
	require.NoError(t, err)
	r.Header.Set(AccountHeader, "stranger")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().WithdrawTime(gomock.Any(), "stranger", "uuid").Return(service.ErrNotPostOwner)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts/{uuid}/time/withdraw", srv.withdrawTime)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_getPost(t *testing.T) {
	timestamp := time.Unix(3000, 0)

	r, err := http.NewRequest(http.MethodGet, "/v1/posts/uuid", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetPost(gomock.Any(), "uuid").Return(&entities.Post{
		UUID:      "uuid",
		Owner:     "author",
		Category:  entities.WorldNewsCategory,
		Heading:   "heading",
		Text:      "text",
		Image:     testImage,
		Likes:     1,
		Dislikes:  2,
		Time:      4,
		CreatedAt: timestamp,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/posts/{uuid}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"uuid":"uuid",
	"owner":"author",
	"category":1,
	"heading":"heading",
	"text":"text",
	"image":"%s",
	"likesCount":1,
	"dislikesCount":2,
	"time":4,
	"createdAt":3000
}
	`, testImage), w.Body.String())
}

func Test_getPost_NotFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/uuid", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetPost(gomock.Any(), "uuid").Return(nil, service.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/posts/{uuid}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"post not found"}`, w.Body.String())
}

func Test_listPosts(t *testing.T) {
	timestamp := time.Unix(100, 0)

	query := "category=2&owner=addr&sortBy=likesCount&orderBy=asc&limit=50&after=4321"

	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts?%s", query), nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storage.ListPostsParams) {
		assert.Equal(t, storage.LikesSortType, p.SortBy)
		assert.Equal(t, storage.AscendingOrder, p.OrderBy)
		assert.EqualValues(t, 2, *p.Category)
		assert.Equal(t, "addr", *p.Owner)
		assert.EqualValues(t, 50, p.Limit)
		assert.Equal(t, "4321", *p.After)
	}).Return([]*entities.Post{
		{
			UUID:      "uuid",
			Owner:     "author",
			Category:  2,
			Heading:   "heading",
			Text:      "text",
			Image:     testImage,
			Likes:     1,
			Dislikes:  2,
			Time:      4,
			CreatedAt: timestamp,
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/posts", srv.listPosts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"posts":[
		{
			"uuid":"uuid",
			"owner":"author",
			"category":2,
			"heading":"heading",
			"text":"text",
			"image":"%s",
			"likesCount":1,
			"dislikesCount":2,
			"time":4,
			"createdAt":100
		}
	]
}
	`, testImage), w.Body.String())
}

func Test_listPosts_InvalidQuery(t *testing.T) {
	tt := []struct {
		name  string
		query string
	}{
		{name: "invalid sortBy", query: "sortBy=views"},
		{name: "invalid orderBy", query: "orderBy=up"},
		{name: "invalid category", query: "category=100"},
		{name: "limit too big", query: "limit=1000"},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts?%s", tc.query), nil)
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock.NewMockService(ctrl)

			router := chi.NewRouter()
			srv := server{s: svc}
			router.Get("/v1/posts", srv.listPosts)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_getAccountStats(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/accounts/addr/stats", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	highest := int64(8)

	svc.EXPECT().GetAccountStats(gomock.Any(), "addr", gomock.Nil()).Return(&entities.AccountStats{
		PostsCount:    2,
		TotalLikes:    3,
		TotalDislikes: 4,
		TotalTime:     11,
		HighestTime:   &highest,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/accounts/{account}/stats", srv.getAccountStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"postsCount":2,
	"totalLikes":3,
	"totalDislikes":4,
	"totalTime":11,
	"highestTime":8
}
	`, w.Body.String())
}

func Test_getAccountStats_NoPosts(t *testing.T) {
	// highest time over an empty set is an explicit null, not a fault
	r, err := http.NewRequest(http.MethodGet, "/v1/accounts/addr/stats?category=9", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	category := entities.SportsCategory

	svc.EXPECT().GetAccountStats(gomock.Any(), "addr", &category).Return(&entities.AccountStats{}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/accounts/{account}/stats", srv.getAccountStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"postsCount":0,
	"totalLikes":0,
	"totalDislikes":0,
	"totalTime":0,
	"highestTime":null
}
	`, w.Body.String())
}

func Test_getOwnPostStats(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/accounts/author/posts/uuid/stats", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetOwnPostStats(gomock.Any(), "author", "uuid").Return(&entities.PostStats{
		Likes:    3,
		Dislikes: 1,
		Time:     7,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/accounts/{account}/posts/{uuid}/stats", srv.getOwnPostStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likesCount":3,"dislikesCount":1,"time":7}`, w.Body.String())
}

func Test_getOwnPostStats_NotOwner(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/accounts/stranger/posts/uuid/stats", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetOwnPostStats(gomock.Any(), "stranger", "uuid").Return(nil, service.ErrNotPostOwner)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/accounts/{account}/posts/{uuid}/stats", srv.getOwnPostStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_getPostNFT(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/uuid/nft", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetNFT(gomock.Any(), "uuid").Return(&entities.NFT{
		PostUUID: "uuid",
		Image:    testImage,
		Token:    "token",
		MintedAt: time.Unix(200, 0),
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/posts/{uuid}/nft", srv.getPostNFT)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`
{
	"postUuid":"uuid",
	"image":"%s",
	"token":"token",
	"mintedAt":200
}
	`, testImage), w.Body.String())
}

func Test_getBalance(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/accounts/addr/balance", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetBalance(gomock.Any(), "addr").Return(int64(42), nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/accounts/{account}/balance", srv.getBalance)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"account":"addr","amount":42}`, w.Body.String())
}
