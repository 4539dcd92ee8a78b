package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam-review-service/internal/app"
	"exam-review-service/internal/config"
	"exam-review-service/internal/domain"
	"exam-review-service/internal/game"
	"exam-review-service/internal/infra/memory"
	pgloader "exam-review-service/internal/infra/postgres"
	redisinfra "exam-review-service/internal/infra/redis"
	transport "exam-review-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the exam-review server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.QuestionSetLoader = memory.NewStaticSetLoader(sampleQuestionSets())
	if pool != nil {
		loader = pgloader.NewQuestionSetLoader(pool)
	}

	setTTL := config.TTLDuration(cfg.QuestionSet.TTL, 10*time.Minute)
	var sets app.QuestionSetRepository
	if redisClient != nil {
		sets = redisinfra.NewQuestionSetRepository(redisClient, loader, setTTL)
	} else {
		sets = memory.NewQuestionSetRepository(loader, setTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		store = memory.NewSessionStore()
	}

	selection := game.SelectionConfig{
		MaxQuestions: cfg.Game.MaxQuestions,
		Shuffle:      cfg.Game.Shuffle,
	}
	service := app.NewGameService(store, sets, selection)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting exam-review service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuestionSets provides a minimal playable set; swap this loader with the
// Postgres-backed one in production.
func sampleQuestionSets() map[string]domain.QuestionSet {
	return map[string]domain.QuestionSet{
		"demo01": {
			ID:      "set-demo",
			Code:    "demo01",
			Name:    "Demo set",
			Subject: "general",
			Questions: []domain.Question{
				{
					ID:          "q1",
					Text:        "What is 2 + 2?",
					Type:        domain.MultipleChoice,
					Options:     []string{"3", "4", "5"},
					CorrectText: "4",
					Explanation: "Two plus two is four.",
				},
				{
					ID:                "q2",
					Text:              "What is the capital of France?",
					Type:              domain.FillBlank,
					CorrectText:       "Paris",
					AcceptableAnswers: []string{"city of paris"},
					Explanation:       "Paris has been the capital since 508.",
				},
				{
					ID:          "q3",
					Text:        "The Moon orbits the Earth.",
					Type:        domain.TrueFalse,
					CorrectBool: true,
					Explanation: "One orbit takes about 27 days.",
				},
			},
		},
	}
}
