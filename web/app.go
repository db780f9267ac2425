package web

import (
	"log"
	"net/http"
	"os"
	"time"

	"blog/internal/database"

	"github.com/caarlos0/env/v11"
)

// config читается из переменных окружения.
// SECRET_KEY подписывает cookie сессии, DATABASE_URI - путь к базе.
type config struct {
	Addr      string `env:"ADDR" envDefault:":4000"`
	DSN       string `env:"DATABASE_URI" envDefault:"./blog.db"`
	SecretKey string `env:"SECRET_KEY,required"`
	HTMLDir   string `env:"HTML_DIR" envDefault:"./ui/html"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./ui/static"`
}

type app struct {
	infoLog        *log.Logger
	errorLog       *log.Logger
	HTMLDir        string
	StaticDir      string
	secret         []byte
	Database       *database.Database
	UserService    *database.UserService
	SessionService *database.SessionService
	PostService    *database.PostService
	CommentService *database.CommentService
}

func newApp(cfg config, db *database.Database, infoLog, errorLog *log.Logger) *app {
	return &app{
		infoLog:        infoLog,
		errorLog:       errorLog,
		HTMLDir:        cfg.HTMLDir,
		StaticDir:      cfg.StaticDir,
		secret:         []byte(cfg.SecretKey),
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db),
		PostService:    database.NewPostService(db),
		CommentService: database.NewCommentService(db),
	}
}

func RunApp() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		errorLog.Fatal("Failed to parse environment:", err)
	}

	db, err := database.NewDatabase(cfg.DSN)
	if err != nil {
		errorLog.Fatal("Failed to open SQLite DB:", err)
	}
	defer db.Close()

	infoLog.Println("SQLite DB connected:", cfg.DSN)

	app := newApp(cfg, db, infoLog, errorLog)

	if err := app.SessionService.CleanupExpiredSessions(); err != nil {
		app.infoLog.Printf("Warning: failed to cleanup expired sessions: %v", err)
	}

	srv := &http.Server{
		Addr:     cfg.Addr,
		ErrorLog: app.errorLog,
		Handler:  app.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on http://localhost%s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
