package author

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httpx.ErrorResponse {
	t.Helper()
	var body httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHTTPHandler_Create(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByName(gomock.Any(), "Jane").Return(false, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *Author) error {
			a.ID = 1
			return nil
		})

		w := do(router, http.MethodPost, "/v1/authors", `{"name":"Jane","phone_number":"1234567890"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body struct {
			Data Author `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, int64(1), body.Data.ID)
		assert.Equal(t, "Jane", body.Data.Name)
	})

	t.Run("invalid phone", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByName(gomock.Any(), "Jane").Return(false, nil)

		w := do(router, http.MethodPost, "/v1/authors", `{"name":"Jane","phone_number":"12345"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "phone_number", body.Error.Details[0].Field)
	})

	t.Run("bad json", func(t *testing.T) {
		w := do(router, http.MethodPost, "/v1/authors", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body over size limit", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("a", 4096) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/v1/authors", io.NopCloser(strings.NewReader(body)))
		r.ContentLength = -1
		w := httptest.NewRecorder()

		httpx.RequestSizeLimitMiddleware(1024)(router).ServeHTTP(w, r)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeError(t, w).Error.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo.EXPECT().ExistsByName(gomock.Any(), "Jane").Return(false, errors.New("db down"))

		w := do(router, http.MethodPost, "/v1/authors", `{"name":"Jane"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(Author{ID: 3, Name: "Jane"}, nil)
		w := do(router, http.MethodGet, "/v1/authors/3", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(Author{}, ErrNotFound)
		w := do(router, http.MethodGet, "/v1/authors/4", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := do(router, http.MethodGet, "/v1/authors/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_List(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), Query{Limit: 10, Offset: 10}).Return([]Author{{ID: 11, Name: "Jane"}}, 11, nil)

		w := do(router, http.MethodGet, "/v1/authors?page=2&page_size=10", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Meta map[string]any `json:"meta"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, float64(2), body.Meta["total_pages"])
	})

	t.Run("page size too large", func(t *testing.T) {
		w := do(router, http.MethodGet, "/v1/authors?page_size=500", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("page number out of range", func(t *testing.T) {
		w := do(router, http.MethodGet, "/v1/authors?page=9223372036854775807&page_size=100", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		require.NotEmpty(t, body.Error.Details)
		assert.Equal(t, "page", body.Error.Details[0].Field)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(Author{ID: 1, Name: "Jane"}, nil)
		mockRepo.EXPECT().ExistsByName(gomock.Any(), "John").Return(true, nil)

		w := do(router, http.MethodPatch, "/v1/authors/1", `{"name":"John"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Name must be unique.", decodeError(t, w).Error.Message)
	})

	t.Run("clear phone", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(Author{ID: 1, Name: "Jane", PhoneNumber: strPtr("1234567890")}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		w := do(router, http.MethodPatch, "/v1/authors/1", `{"clear_phone_number":true}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	mockRepo, router := newTestRouter(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	w := do(router, http.MethodDelete, "/v1/authors/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(ErrNotFound)
	w = do(router, http.MethodDelete, "/v1/authors/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
