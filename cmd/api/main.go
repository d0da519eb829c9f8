package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"hustlehub-backend/internal/analytics"
	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/calendar"
	"hustlehub-backend/internal/config"
	"hustlehub-backend/internal/engine"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/groups"
	"hustlehub-backend/internal/habits"
	"hustlehub-backend/internal/insights"
	"hustlehub-backend/internal/leaderboard"
	"hustlehub-backend/internal/logger"
	"hustlehub-backend/internal/motivation"
	"hustlehub-backend/internal/priorities"
	"hustlehub-backend/internal/profile"
	"hustlehub-backend/internal/roadmap"
	"hustlehub-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogDir)
	defer log.Sync()

	var st store.Store
	switch cfg.StorageDriver {
	case "postgres":
		pg, err := store.OpenPostgres(cfg.ConnString())
		if err != nil {
			log.Fatalw("failed to connect to postgres", "error", err)
		}
		defer pg.Close()
		st = pg
		log.Infow("connected to postgres", "host", cfg.DBHost, "db", cfg.DBName)
	case "sqlite":
		lite, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalw("failed to open sqlite", "error", err)
		}
		defer lite.Close()
		st = lite
		log.Infow("opened sqlite store", "path", cfg.SQLitePath)
	default:
		log.Fatalw("unknown storage driver", "driver", cfg.StorageDriver)
	}

	var ranks leaderboard.RankStore
	if cfg.RedisAddr != "" {
		redisRanks, err := leaderboard.OpenRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalw("failed to connect to redis", "error", err)
		}
		defer redisRanks.Close()
		ranks = redisRanks
		log.Infow("connected to redis", "addr", cfg.RedisAddr)
	} else {
		ranks = leaderboard.NewMemoryRanks()
		log.Infow("redis not configured, ranking kept in memory")
	}

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)
	gen := engine.New(nil)
	planner := roadmap.New(nil)
	cal := calendar.New(nil)
	rng := motivation.NewRand(time.Now().UnixNano())

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH -----
	mux.HandleFunc("/auth/register", post(auth.RegisterHandler(st, secret)))
	mux.HandleFunc("/auth/login", post(auth.LoginHandler(st, secret)))
	mux.HandleFunc("/auth/me", mw.Wrap(get(auth.MeHandler(st))))
	mux.HandleFunc("/auth/logout", mw.Wrap(post(auth.LogoutHandler())))
	mux.HandleFunc("/auth/delete", mw.Wrap(post(auth.DeleteAccountHandler(st))))

	// ----- ANALYTICS -----
	mux.HandleFunc("/events/app-opened", mw.Wrap(post(analytics.AppOpenedHandler(st))))

	// ----- GOALS -----
	mux.HandleFunc("/goals", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			goals.ListHandler(st)(w, r)
		case http.MethodPost:
			goals.CreateHandler(st)(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))
	mux.HandleFunc("/goals/update", mw.Wrap(post(goals.UpdateHandler(st))))
	mux.HandleFunc("/goals/delete", mw.Wrap(post(goals.DeleteHandler(st))))
	mux.HandleFunc("/metrics", mw.Wrap(goals.MetricsHandler(st)))

	// ----- BUSINESS MODELS -----
	mux.HandleFunc("/business", mw.Wrap(business.ListHandler(st)))
	mux.HandleFunc("/business/update", mw.Wrap(post(business.UpdateHandler(st))))
	mux.HandleFunc("/business/delete", mw.Wrap(post(business.DeleteHandler(st))))
	mux.HandleFunc("/business/task", mw.Wrap(post(business.TaskHandler(st))))

	// ----- GENERATED TASKS -----
	mux.HandleFunc("/tasks/smart", mw.Wrap(get(engine.SmartTasksHandler(st, gen))))
	mux.HandleFunc("/tasks/daily", mw.Wrap(get(engine.DailyTasksHandler(st, gen))))

	// ----- PRIORITIES -----
	mux.HandleFunc("/priorities", mw.Wrap(priorities.ListHandler(st)))
	mux.HandleFunc("/priorities/toggle", mw.Wrap(post(priorities.ToggleHandler(st))))
	mux.HandleFunc("/priorities/delete", mw.Wrap(post(priorities.DeleteHandler(st))))
	mux.HandleFunc("/priorities/promote", mw.Wrap(post(priorities.PromoteHandler(st))))

	// ----- ROADMAP / CALENDAR -----
	mux.HandleFunc("/roadmap", mw.Wrap(get(roadmap.Handler(st, planner))))
	mux.HandleFunc("/calendar", mw.Wrap(get(calendar.Handler(st, cal))))

	// ----- HABITS -----
	mux.HandleFunc("/habits", mw.Wrap(habits.ListHandler(st)))
	mux.HandleFunc("/habits/toggle", mw.Wrap(post(habits.ToggleHandler(st))))
	mux.HandleFunc("/habits/delete", mw.Wrap(post(habits.DeleteHandler(st))))

	// ----- INSIGHTS -----
	mux.HandleFunc("/insights", mw.Wrap(get(insights.Handler(st))))
	mux.HandleFunc("/achievements", mw.Wrap(insights.AchievementsHandler(st)))

	// ----- MOTIVATION -----
	mux.HandleFunc("/motivation/quotes", mw.Wrap(motivation.QuotesHandler(st, rng)))
	mux.HandleFunc("/motivation/quotes/delete", mw.Wrap(post(motivation.DeleteQuoteHandler(st))))
	mux.HandleFunc("/motivation/vision", mw.Wrap(motivation.VisionHandler(st)))
	mux.HandleFunc("/motivation/vision/delete", mw.Wrap(post(motivation.DeleteVisionHandler(st))))

	// ----- LEADERBOARD -----
	mux.HandleFunc("/leaderboard", mw.Wrap(get(leaderboard.Handler(st, ranks))))
	mux.HandleFunc("/leaderboard/report", mw.Wrap(post(leaderboard.ReportHandler(st, ranks))))

	// ----- PROFILE -----
	mux.HandleFunc("/profile", mw.Wrap(profile.Handler(st)))

	// ----- GROUPS -----
	mux.HandleFunc("/groups", mw.Wrap(get(groups.ListHandler(st))))
	mux.HandleFunc("/groups/create", mw.Wrap(post(groups.CreateHandler(st))))
	mux.HandleFunc("/groups/join", mw.Wrap(post(groups.JoinHandler(st))))
	mux.HandleFunc("/groups/leave", mw.Wrap(post(groups.LeaveHandler(st))))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type", "Authorization",
			"X-Platform", "X-Session-Id", "X-App-Version", "X-Device-Locale",
			"Idempotency-Key", "X-Source-Event-Key",
		},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Infow("api server is running", "addr", cfg.ListenAddr, "env", cfg.Environment)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}

// get rejects everything but GET, letting CORS preflights through.
func get(next http.HandlerFunc) http.HandlerFunc {
	return allow(http.MethodGet, next)
}

func post(next http.HandlerFunc) http.HandlerFunc {
	return allow(http.MethodPost, next)
}

func allow(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case method:
			next(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
