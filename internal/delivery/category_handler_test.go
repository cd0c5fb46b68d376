package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"category_admin/internal/auth"
	"category_admin/internal/domain"
	"category_admin/internal/store"
	"category_admin/internal/usecase"
	"category_admin/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategoryAPI struct {
	nextID int
	err    error
}

func (s *stubCategoryAPI) FetchAll(ctx context.Context) ([]domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Category{{ID: 1, Name: "Books", Description: "Paper", Image: "https://x/b.png"}}, nil
}

func (s *stubCategoryAPI) Get(ctx context.Context, id int) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return &domain.Category{ID: 1, Name: "Books", Description: "Paper", Image: "https://x/b.png"}, nil
}

func (s *stubCategoryAPI) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	return &domain.Category{ID: s.nextID, Name: input.Name, Description: input.Description, Image: input.Image}, nil
}

func (s *stubCategoryAPI) Update(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: id, Name: input.Name, Description: input.Description, Image: input.Image}, nil
}

func (s *stubCategoryAPI) Delete(ctx context.Context, id int) error {
	return s.err
}

type stubAccountAPI struct{}

func (stubAccountAPI) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	return nil, domain.ErrUnauthorized
}

func (stubAccountAPI) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{}, nil
}

func setupRouter(t *testing.T, api *stubCategoryAPI, seed ...domain.Category) (*gin.Engine, domain.CategoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := store.NewCategoryStore(logger)
	s.Load(seed)
	v := validation.New()

	categoryUC := usecase.NewCategoryUseCase(api, s, v, logger)
	accountUC := usecase.NewAccountUseCase(stubAccountAPI{}, auth.NewSession(), v, logger)
	router := NewRouter(NewCategoryHandler(categoryUC, logger), NewAccountHandler(accountUC, logger), logger)
	return router, s
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var res Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w, res
}

var books = domain.Category{ID: 1, Name: "Books", Description: "Paper", Image: "https://x/b.png"}

func TestListCategoriesEmpty(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	w, res := doJSON(t, router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Success", res.Status)
	assert.Equal(t, []interface{}{}, res.Data)
}

func TestRefreshThenList(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{})

	w, _ := doJSON(t, router, http.MethodPost, "/categories/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.Len())

	w, res := doJSON(t, router, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, res.Data, 1)
}

func TestRefreshRemoteFailure(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{err: domain.ErrRemote})

	w, res := doJSON(t, router, http.MethodPost, "/categories/refresh", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Fail", res.Status)
}

func TestCreateCategory(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{nextID: 10}, books)

	w, res := doJSON(t, router, http.MethodPost, "/categories", domain.CategoryInput{Name: "Toys", Description: "d", Image: "https://x/y.png"})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := res.Data.(map[string]interface{})
	assert.Equal(t, float64(11), data["id"])
	assert.Equal(t, 2, s.Len())
}

func TestCreateCategoryDuplicate(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{}, books)

	w, res := doJSON(t, router, http.MethodPost, "/categories", domain.CategoryInput{Name: "books", Description: "d", Image: "https://x/y.png"})

	assert.Equal(t, http.StatusConflict, w.Code)
	fields := res.Data.([]interface{})
	require.Len(t, fields, 1)
	assert.Equal(t, map[string]interface{}{"field": "name", "message": "Category already exists"}, fields[0])
	assert.Equal(t, 1, s.Len())
}

func TestCreateCategoryInvalidFields(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	w, res := doJSON(t, router, http.MethodPost, "/categories", domain.CategoryInput{Name: "Toys", Description: "d", Image: "not a url"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, res.Data, 1)
}

func TestCreateCategoryMalformedBody(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategorySelfName(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{}, books)

	w, _ := doJSON(t, router, http.MethodPut, "/categories/1", domain.CategoryInput{Name: "Books", Description: "Hardcover", Image: "https://x/b.png"})

	assert.Equal(t, http.StatusOK, w.Code)
	got, _ := s.Find(1)
	assert.Equal(t, "Hardcover", got.Description)
}

func TestUpdateCategoryBadID(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	w, _ := doJSON(t, router, http.MethodPut, "/categories/abc", domain.CategoryInput{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategoryNotFound(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	w, _ := doJSON(t, router, http.MethodGet, "/categories/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, res := doJSON(t, router, http.MethodGet, "/categories/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Books", res.Data.(map[string]interface{})["name"])
}

func TestDeleteCategory(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{}, books)

	w, _ := doJSON(t, router, http.MethodDelete, "/categories/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, s.Len())
}

func TestDeleteCategoryRemoteFailure(t *testing.T) {
	router, s := setupRouter(t, &stubCategoryAPI{err: domain.ErrRemote}, books)

	w, _ := doJSON(t, router, http.MethodDelete, "/categories/1", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 1, s.Len())
}

func TestValidateCategoryEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{}, books)
	input := domain.CategoryInput{Name: "BOOKS", Description: "d", Image: "https://x/y.png"}

	w, _ := doJSON(t, router, http.MethodPost, "/categories/validate", input)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/categories/validate?exclude_id=1", input)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/categories/validate?exclude_id=x", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountEndpoints(t *testing.T) {
	router, _ := setupRouter(t, &stubCategoryAPI{})

	w, _ := doJSON(t, router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/login", domain.LoginRequest{Email: "ada@example.com", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/login", domain.LoginRequest{Email: "bad"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCategoryLogLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := logtest.NewNullLogger()
	api := &stubCategoryAPI{}
	s := store.NewCategoryStore(logger)
	s.Load([]domain.Category{books})
	uc := usecase.NewCategoryUseCase(api, s, validation.New(), logger)
	router := gin.New()
	NewCategoryHandler(uc, logger).RegisterRoutes(router)

	hook.Reset()
	w, _ := doJSON(t, router, http.MethodPost, "/categories", domain.CategoryInput{Name: "books", Description: "d", Image: "https://x/y.png"})
	require.Equal(t, http.StatusConflict, w.Code)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, entry.Level, entry.Message)
	}
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	api.err = domain.ErrRemote
	w, _ = doJSON(t, router, http.MethodPost, "/categories", domain.CategoryInput{Name: "Toys", Description: "d", Image: "https://x/y.png"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
