package employer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"colfdesk/internal/employer"
	employererrors "colfdesk/internal/employer/errors"
	"colfdesk/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

type fakeService struct {
	createFn  func(ctx context.Context, req employer.CreateEmployerRequest) (employer.EmployerResponse, error)
	getAllFn  func(ctx context.Context) ([]employer.EmployerResponse, error)
	getByIDFn func(ctx context.Context, id string) (employer.EmployerResponse, error)
	updateFn  func(ctx context.Context, id string, req employer.UpdateEmployerRequest) (employer.EmployerResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req employer.CreateEmployerRequest) (employer.EmployerResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employer.EmployerResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (employer.EmployerResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req employer.UpdateEmployerRequest) (employer.EmployerResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHandler_CreateAndPaginatedList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employer.CreateEmployerRequest) (employer.EmployerResponse, error) {
			return employer.EmployerResponse{ID: uuid.New().String(), TaxCode: strings.ToUpper(req.TaxCode)}, nil
		},
		getAllFn: func(ctx context.Context) ([]employer.EmployerResponse, error) {
			return []employer.EmployerResponse{
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
			}, nil
		},
	}
	h := employer.NewHandler(svc)

	body := `{
		"subject_type": "PERSONA_FISICA",
		"first_name": "Mario",
		"last_name": "Verdi",
		"tax_code": "VRDMRA80A01H501Z",
		"email": "mario.verdi@example.com",
		"phone": "3331234567",
		"work_address": "Via Roma 1, Milano",
		"notify_preference": "EMAIL"
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employers", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/employers?page=2&page_size=2", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)

	var envelope struct {
		Ok   bool              `json:"ok"`
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			Page       int   `json:"page"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, int64(3), envelope.Meta.Total)
	assert.Equal(t, 2, envelope.Meta.TotalPages)
	assert.Equal(t, 2, envelope.Meta.Page)
}

func TestHandler_Create_BadTaxCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := employer.NewHandler(&fakeService{})

	body := `{
		"subject_type": "PERSONA_FISICA",
		"first_name": "Mario",
		"last_name": "Verdi",
		"tax_code": "short",
		"email": "mario.verdi@example.com",
		"phone": "3331234567",
		"work_address": "Via Roma 1, Milano",
		"notify_preference": "EMAIL"
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employers", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id string) (employer.EmployerResponse, error) {
			return employer.EmployerResponse{}, employererrors.ErrEmployerNotFound
		},
	}
	h := employer.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employers/x", nil)
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Delete_NoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	h := employer.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/employers/x", nil)
	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
