package main

import (
	"context"
	"log"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/domain"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func sampleQuizzes() []*domain.Quiz {
	quizzes := []*domain.Quiz{
		domain.NewQuiz("World Capitals", "How well do you know the world's capital cities?", []domain.Question{
			{
				Type:          domain.QuestionTypeMCQ,
				Question:      "What is the capital of France?",
				Options:       []string{"London", "Paris", "Berlin", "Madrid"},
				CorrectAnswer: "Paris",
			},
			{
				Type:          domain.QuestionTypeTrueFalse,
				Question:      "Canberra is the capital of Australia.",
				CorrectAnswer: "true",
			},
			{
				Type:          domain.QuestionTypeText,
				Question:      "What is the capital of Japan?",
				CorrectAnswer: "Tokyo",
			},
		}),
		domain.NewQuiz("Basic Arithmetic", "Quick mental math.", []domain.Question{
			{
				Type:          domain.QuestionTypeMCQ,
				Question:      "What is 7 * 8?",
				Options:       []string{"54", "56", "64"},
				CorrectAnswer: "56",
			},
			{
				Type:          domain.QuestionTypeText,
				Question:      "What is 12 + 30?",
				CorrectAnswer: "42",
			},
		}),
		domain.NewQuiz("Go Basics", "A short check on Go fundamentals.", []domain.Question{
			{
				Type:          domain.QuestionTypeTrueFalse,
				Question:      "A nil map can be read from without panicking.",
				CorrectAnswer: "true",
			},
			{
				Type:          domain.QuestionTypeMCQ,
				Question:      "Which keyword starts a goroutine?",
				Options:       []string{"go", "async", "spawn"},
				CorrectAnswer: "go",
			},
		}),
	}

	// Answers are keyed by question id at scoring time, so every seeded
	// question needs one just like questions created over the API.
	for _, q := range quizzes {
		for i := range q.Questions {
			q.Questions[i].ID = util.NewULID()
		}
	}
	return quizzes
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	quizRepository := repository.NewQuizDatabaseAdapter(db)

	g, ctx := errgroup.WithContext(context.Background())
	for _, quiz := range sampleQuizzes() {
		g.Go(func() error {
			if err := quiz.Validate(); err != nil {
				return err
			}
			if err := quizRepository.SaveQuiz(ctx, quiz); err != nil {
				return err
			}
			if err := quizRepository.SetPublished(ctx, quiz.ID, true); err != nil {
				return err
			}
			appLogger.Info("Seeded quiz",
				zap.String("quizID", quiz.ID),
				zap.String("title", quiz.Title))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}
	appLogger.Info("Seeding complete")
}
