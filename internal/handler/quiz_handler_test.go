package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/handler"
	"quizdeck/internal/middleware"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock for the service.QuizService interface
type ManualMockQuizService struct {
	CreateQuizFunc           func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error)
	UpdateQuizFunc           func(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.AdminQuizResponse, error)
	DeleteQuizFunc           func(ctx context.Context, id string) error
	SetPublishedFunc         func(ctx context.Context, id string, published bool) (*dto.AdminQuizResponse, error)
	GetQuizForAdminFunc      func(ctx context.Context, id string) (*dto.AdminQuizResponse, error)
	ListQuizzesForAdminFunc  func(ctx context.Context) (*dto.AdminQuizListResponse, error)
	GetPublishedQuizFunc     func(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListPublishedQuizzesFunc func(ctx context.Context) (*dto.QuizListResponse, error)
}

func (m *ManualMockQuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, req)
	}
	return nil, errors.New("CreateQuizFunc not set on mock")
}

func (m *ManualMockQuizService) UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.AdminQuizResponse, error) {
	if m.UpdateQuizFunc != nil {
		return m.UpdateQuizFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateQuizFunc not set on mock")
}

func (m *ManualMockQuizService) DeleteQuiz(ctx context.Context, id string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id)
	}
	return errors.New("DeleteQuizFunc not set on mock")
}

func (m *ManualMockQuizService) SetPublished(ctx context.Context, id string, published bool) (*dto.AdminQuizResponse, error) {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, id, published)
	}
	return nil, errors.New("SetPublishedFunc not set on mock")
}

func (m *ManualMockQuizService) GetQuizForAdmin(ctx context.Context, id string) (*dto.AdminQuizResponse, error) {
	if m.GetQuizForAdminFunc != nil {
		return m.GetQuizForAdminFunc(ctx, id)
	}
	return nil, errors.New("GetQuizForAdminFunc not set on mock")
}

func (m *ManualMockQuizService) ListQuizzesForAdmin(ctx context.Context) (*dto.AdminQuizListResponse, error) {
	if m.ListQuizzesForAdminFunc != nil {
		return m.ListQuizzesForAdminFunc(ctx)
	}
	return nil, errors.New("ListQuizzesForAdminFunc not set on mock")
}

func (m *ManualMockQuizService) GetPublishedQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if m.GetPublishedQuizFunc != nil {
		return m.GetPublishedQuizFunc(ctx, id)
	}
	return nil, errors.New("GetPublishedQuizFunc not set on mock")
}

func (m *ManualMockQuizService) ListPublishedQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	if m.ListPublishedQuizzesFunc != nil {
		return m.ListPublishedQuizzesFunc(ctx)
	}
	return nil, errors.New("ListPublishedQuizzesFunc not set on mock")
}

func newQuizTestApp(mockSvc *ManualMockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	v := validation.NewValidator()
	public := handler.NewQuizHandler(mockSvc)
	admin := handler.NewAdminQuizHandler(mockSvc, v)

	app.Get("/api/quizzes", public.ListPublished)
	app.Get("/api/quizzes/admin/all", admin.List)
	app.Get("/api/quizzes/admin/:id", admin.Get)
	app.Get("/api/quizzes/:id", public.GetPublished)
	app.Post("/api/quizzes", admin.Create)
	app.Put("/api/quizzes/:id", admin.Update)
	app.Delete("/api/quizzes/:id", admin.Delete)
	app.Patch("/api/quizzes/:id/publish", admin.Publish)
	app.Patch("/api/quizzes/:id/unpublish", admin.Unpublish)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestQuizHandler_ListPublished(t *testing.T) {
	mockSvc := &ManualMockQuizService{
		ListPublishedQuizzesFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
			return &dto.QuizListResponse{
				Quizzes: []dto.QuizResponse{
					{ID: "quiz-1", Title: "World Capitals", IsPublished: true, CreatedAt: time.Now()},
				},
			}, nil
		},
	}
	app := newQuizTestApp(mockSvc)

	status, raw := doRequest(t, app, "GET", "/api/quizzes")

	assert.Equal(t, fiber.StatusOK, status)
	var resp dto.QuizListResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	require.Len(t, resp.Quizzes, 1)
	assert.Equal(t, "World Capitals", resp.Quizzes[0].Title)
}

func TestQuizHandler_GetPublished(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			GetPublishedQuizFunc: func(ctx context.Context, id string) (*dto.QuizResponse, error) {
				assert.Equal(t, "quiz-1", id)
				return &dto.QuizResponse{
					ID:    "quiz-1",
					Title: "World Capitals",
					Questions: []dto.QuestionView{
						{ID: "q1", Type: "MCQ", Question: "Capital of France?", Options: []string{"London", "Paris"}},
					},
				}, nil
			},
		}
		app := newQuizTestApp(mockSvc)

		status, raw := doRequest(t, app, "GET", "/api/quizzes/quiz-1")

		assert.Equal(t, fiber.StatusOK, status)
		// Redacted views must never leak an answer field.
		assert.NotContains(t, string(raw), "correctAnswer")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			GetPublishedQuizFunc: func(ctx context.Context, id string) (*dto.QuizResponse, error) {
				return nil, domain.NewQuizNotFoundError(id)
			},
		}
		app := newQuizTestApp(mockSvc)

		status, _ := doRequest(t, app, "GET", "/api/quizzes/missing")
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestAdminQuizHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error) {
				return &dto.AdminQuizResponse{ID: "quiz-1", Title: req.Title}, nil
			},
		}
		app := newQuizTestApp(mockSvc)

		status, raw := postJSON(t, app, "/api/quizzes", dto.CreateQuizRequest{
			Title: "World Capitals",
			Questions: []dto.QuestionPayload{
				{Type: "TEXT", Question: "Capital of Japan?", CorrectAnswer: "Tokyo"},
			},
		})

		assert.Equal(t, fiber.StatusCreated, status)
		var resp dto.AdminQuizResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		assert.Equal(t, "quiz-1", resp.ID)
	})

	t.Run("EmptyBodyRejected", func(t *testing.T) {
		app := newQuizTestApp(&ManualMockQuizService{})

		status, _ := postJSON(t, app, "/api/quizzes", dto.CreateQuizRequest{})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("DomainValidationRejected", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error) {
				return nil, domain.NewInvalidInputError("MCQ questions require at least 2 options")
			},
		}
		app := newQuizTestApp(mockSvc)

		status, _ := postJSON(t, app, "/api/quizzes", dto.CreateQuizRequest{
			Title: "Broken",
			Questions: []dto.QuestionPayload{
				{Type: "MCQ", Question: "Q?", Options: []string{"A"}, CorrectAnswer: "A"},
			},
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestAdminQuizHandler_PublishUnpublish(t *testing.T) {
	var gotPublished *bool
	mockSvc := &ManualMockQuizService{
		SetPublishedFunc: func(ctx context.Context, id string, published bool) (*dto.AdminQuizResponse, error) {
			gotPublished = &published
			return &dto.AdminQuizResponse{ID: id, IsPublished: published}, nil
		},
	}
	app := newQuizTestApp(mockSvc)

	status, _ := doRequest(t, app, "PATCH", "/api/quizzes/quiz-1/publish")
	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, gotPublished)
	assert.True(t, *gotPublished)

	status, _ = doRequest(t, app, "PATCH", "/api/quizzes/quiz-1/unpublish")
	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, *gotPublished)
}

func TestAdminQuizHandler_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id string) error {
				assert.Equal(t, "quiz-1", id)
				return nil
			},
		}
		app := newQuizTestApp(mockSvc)

		status, _ := doRequest(t, app, "DELETE", "/api/quizzes/quiz-1")
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := &ManualMockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id string) error {
				return domain.NewQuizNotFoundError(id)
			},
		}
		app := newQuizTestApp(mockSvc)

		status, _ := doRequest(t, app, "DELETE", "/api/quizzes/missing")
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestAdminQuizHandler_List(t *testing.T) {
	mockSvc := &ManualMockQuizService{
		ListQuizzesForAdminFunc: func(ctx context.Context) (*dto.AdminQuizListResponse, error) {
			return &dto.AdminQuizListResponse{
				Quizzes: []dto.AdminQuizResponse{
					{ID: "quiz-1", Questions: []dto.QuestionPayload{
						{ID: "q1", Type: "TEXT", Question: "Q?", CorrectAnswer: "Tokyo"},
					}},
				},
			}, nil
		},
	}
	app := newQuizTestApp(mockSvc)

	status, raw := doRequest(t, app, "GET", "/api/quizzes/admin/all")

	assert.Equal(t, fiber.StatusOK, status)
	// Admin views keep the correct answers.
	assert.Contains(t, string(raw), "correctAnswer")
}
