package post

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*MockRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo), zerolog.Nop())

	r := chi.NewRouter()
	r.Route("/v1", handler.Routes)
	return mockRepo, r
}

func postBody(category string) string {
	return fmt.Sprintf(`{"title":"Top 10 Secrets","content":%q,"summary":"ok","category":%q}`,
		strings.Repeat("a", 250), category)
}

func TestHTTPHandler_Create(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(postBody("Fiction"))))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("lowercase category", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(postBody("fiction"))))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, FieldCategory, body.Error.Details[0].Field)
	})
}

func TestHTTPHandler_List(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("category filter", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), Query{Category: "Non-Fiction", Limit: 20, Offset: 0}).Return([]Post{}, 0, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/posts?category=Non-Fiction", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/posts?category=Poetry", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_GetUpdateDelete(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	stored, err := New(validFields())
	require.NoError(t, err)
	stored.ID = 1

	t.Run("get", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(*stored, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/posts/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update with long summary", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(*stored, nil)
		body := fmt.Sprintf(`{"summary":%q}`, strings.Repeat("s", 251))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/posts/1", strings.NewReader(body)))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(ErrNotFound)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/posts/9", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/posts/-1", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
