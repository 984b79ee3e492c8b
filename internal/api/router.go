package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/vocab-trainer/internal/api/handlers"
	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/jmoiron/sqlx"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	DB             *sqlx.DB
	Tokens         *auth.TokenManager
	Users          services.UserServiceProvider
	Words          services.WordServiceProvider
	Questions      services.QuestionServiceProvider
	Quiz           services.QuizServiceProvider
	Events         services.EventServiceProvider
	AllowedOrigins []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(auth.SessionMiddleware(d.Tokens))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(d.Users, d.Tokens)
	adminHandler := handlers.NewAdminHandler(d.Users, d.Events)
	wordHandler := handlers.NewWordHandler(d.Words, d.Events)
	questionHandler := handlers.NewQuestionHandler(d.Questions, d.Events)
	eventHandler := handlers.NewEventHandler(d.Events)
	quizHandler := handlers.NewQuizHandler(d.Quiz)
	healthHandler := handlers.NewHealthHandler(d.DB)

	gate := auth.NewGate(handlers.RespondAccessDenied)

	// Public routes
	r.Get("/", userHandler.Index)
	r.Post("/login", userHandler.Login)
	r.Get("/register", userHandler.RegisterForm)
	r.Post("/register", userHandler.Register)
	r.Get("/logout", userHandler.Logout)
	r.Get("/healthz", healthHandler.Check)

	// Signed-in routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession)

		r.Get("/home", userHandler.Home)
		r.Get("/quick_trainer", quizHandler.Show)
		r.Post("/quick_trainer", quizHandler.Answer)
		r.Get("/lessons", wordHandler.Lessons)
	})

	// Admin routes. Each goes through the same gate, anonymous callers included.
	manageWords := gate.Require(auth.ActionManageWords)
	r.With(manageWords).Get("/add_word", wordHandler.GetAll)
	r.With(manageWords).Post("/add_word", wordHandler.Create)
	r.With(gate.Require(auth.ActionDeleteWord)).Get("/delete_word/{id}", wordHandler.Delete)

	manageQuestions := gate.Require(auth.ActionManageQuestions)
	r.With(manageQuestions).Get("/add_question", questionHandler.GetAll)
	r.With(manageQuestions).Post("/add_question", questionHandler.Create)
	r.With(gate.Require(auth.ActionDeleteQuestion)).Get("/delete_question/{id}", questionHandler.Delete)

	manageUsers := gate.Require(auth.ActionManageUsers)
	r.With(manageUsers).Get("/admin", adminHandler.GetUsers)
	r.With(manageUsers).Post("/admin", adminHandler.CreateUser)
	r.With(gate.Require(auth.ActionViewEvents)).Get("/admin/events", eventHandler.GetRecent)

	return r
}
