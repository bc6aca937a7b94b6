package interview_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/interview"
	interviewerrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/interview/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeInterviewService struct {
	listFn    func(ctx context.Context, userID string) ([]interview.InterviewListItem, error)
	getByIDFn func(ctx context.Context, userID, id string) (*interview.InterviewDetailResponse, error)
	createFn  func(ctx context.Context, userID string, req interview.CreateInterviewRequest) (*interview.InterviewResponse, error)
	updateFn  func(ctx context.Context, userID, id string, req interview.UpdateInterviewRequest) (*interview.InterviewResponse, error)
	deleteFn  func(ctx context.Context, userID, id string) error
}

func (f *fakeInterviewService) List(ctx context.Context, userID string) ([]interview.InterviewListItem, error) {
	return f.listFn(ctx, userID)
}
func (f *fakeInterviewService) GetByID(ctx context.Context, userID, id string) (*interview.InterviewDetailResponse, error) {
	return f.getByIDFn(ctx, userID, id)
}
func (f *fakeInterviewService) Create(ctx context.Context, userID string, req interview.CreateInterviewRequest) (*interview.InterviewResponse, error) {
	return f.createFn(ctx, userID, req)
}
func (f *fakeInterviewService) Update(ctx context.Context, userID, id string, req interview.UpdateInterviewRequest) (*interview.InterviewResponse, error) {
	return f.updateFn(ctx, userID, id, req)
}
func (f *fakeInterviewService) Delete(ctx context.Context, userID, id string) error {
	return f.deleteFn(ctx, userID, id)
}

func TestInterviewHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		applicationID := uuid.New().String()
		svc := &fakeInterviewService{
			createFn: func(ctx context.Context, uid string, req interview.CreateInterviewRequest) (*interview.InterviewResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, applicationID, req.ApplicationID)
				assert.Equal(t, "Technical", req.InterviewType)
				assert.Equal(t, "Video Call", req.Format)
				return &interview.InterviewResponse{
					ID:            uuid.New().String(),
					ApplicationID: req.ApplicationID,
					InterviewType: req.InterviewType,
				}, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"applicationId":"` + applicationID + `","interviewType":"Technical","interviewDate":"2026-05-01","time":"14:00","duration":"60 minutes","format":"Video Call"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("format outside the vocabulary rejected by binding", func(t *testing.T) {
		svc := &fakeInterviewService{
			createFn: func(ctx context.Context, uid string, req interview.CreateInterviewRequest) (*interview.InterviewResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"applicationId":"` + uuid.New().String() + `","interviewType":"Technical","interviewDate":"2026-05-01","time":"14:00","duration":"60 minutes","format":"Carrier Pigeon"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", userID)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("application of another owner returns not found", func(t *testing.T) {
		svc := &fakeInterviewService{
			createFn: func(ctx context.Context, uid string, req interview.CreateInterviewRequest) (*interview.InterviewResponse, error) {
				return nil, interviewerrors.ErrApplicationNotFound
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"applicationId":"` + uuid.New().String() + `","interviewType":"Technical","interviewDate":"2026-05-01","time":"14:00","duration":"60 minutes","format":"Video Call"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", userID)

		h.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestInterviewHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeInterviewService{
			listFn: func(ctx context.Context, uid string) ([]interview.InterviewListItem, error) {
				assert.Equal(t, userID, uid)
				return []interview.InterviewListItem{{ID: uuid.New().String(), InterviewType: "Technical"}}, nil
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/interviews", nil)
		c.Set("user_id_validated", userID)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})
}

func TestInterviewHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	t.Run("missing interview", func(t *testing.T) {
		svc := &fakeInterviewService{
			deleteFn: func(ctx context.Context, uid, id string) error {
				return interviewerrors.ErrInterviewNotFound
			},
		}

		h := interview.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodDelete, "/interviews/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("user_id_validated", userID)

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
