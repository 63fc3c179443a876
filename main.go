package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hustleHQAPI/handlers"
	"hustleHQAPI/internal/notification"
	"hustleHQAPI/middleware"
	"hustleHQAPI/services"

	_ "net/http/pprof"
)

var (
	dbPool              *pgxpool.Pool
	notificationService *services.NotificationService
	profileService      *services.ProfileService
	statsService        *services.StatsService
	achievementService  *services.AchievementService
	challengeService    *services.ChallengeService
	goalService         *services.GoalService
	activityService     *services.ActivityService
	habitService        *services.HabitService
	streakReminder      *services.StreakReminderWorker
	fcmService          *notification.FCMService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	clerkSecretKey := os.Getenv("CLERK_SECRET_KEY")
	if clerkSecretKey == "" {
		log.Fatal("CLERK_SECRET_KEY environment variable is not set")
	}
	clerk.SetKey(clerkSecretKey)
	log.Println("Clerk initialized successfully")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to database")

	// Services wire in dependency order: notifications first, the activity
	// fan-out last.
	notificationService = services.NewNotificationService(dbPool)
	profileService = services.NewProfileService(dbPool, notificationService)
	statsService = services.NewStatsService(dbPool)
	achievementService = services.NewAchievementService(dbPool, profileService, notificationService)
	challengeService = services.NewChallengeService(dbPool, profileService, notificationService)
	goalService = services.NewGoalService(dbPool, profileService, notificationService)
	activityService = services.NewActivityService(dbPool, statsService, profileService, challengeService, goalService, achievementService)
	habitService = services.NewHabitService(dbPool, activityService)
	streakReminder = services.NewStreakReminderWorker(dbPool, notificationService)

	fcmService, err = notification.NewFCMService("./serviceAccountKey.json")
	if err != nil {
		log.Printf("Warning: Could not initialize FCM: %v", err)
	} else {
		notificationService.Dispatcher().SetPushProvider(fcmService)
		log.Println("FCM Push Provider initialized successfully")
	}

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		streakReminder.Stop()
		notificationService.Dispatcher().Stop()
		dbPool.Close()
	}()

	streakReminder.Start()

	profileHandler := handlers.NewProfileHandler(profileService, statsService)
	habitHandler := handlers.NewHabitHandler(habitService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	goalHandler := handlers.NewGoalHandler(goalService)
	activityHandler := handlers.NewActivityHandler(activityService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	webhookHandler := handlers.NewWebhookHandler(profileService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "hustleHQ-api"}`))
	}).Methods("GET")

	r.HandleFunc("/webhooks/clerk", webhookHandler.HandleClerkWebhook).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.ClerkAuthMiddleware)

	protected.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/profile", profileHandler.DeleteProfile).Methods("DELETE")
	protected.HandleFunc("/profile/stats", profileHandler.GetUserStats).Methods("GET")
	protected.HandleFunc("/profile/stats/today", profileHandler.GetTodayStats).Methods("GET")
	protected.HandleFunc("/profile/analytics", profileHandler.GetAnalytics).Methods("GET")
	protected.HandleFunc("/leaderboard", profileHandler.GetLeaderboard).Methods("GET")

	protected.HandleFunc("/habits", habitHandler.GetHabits).Methods("GET")
	protected.HandleFunc("/habits", habitHandler.CreateHabit).Methods("POST")
	protected.HandleFunc("/habits/{id}", habitHandler.UpdateHabit).Methods("PUT")
	protected.HandleFunc("/habits/{id}", habitHandler.DeleteHabit).Methods("DELETE")
	protected.HandleFunc("/habits/{id}/complete", habitHandler.CompleteHabit).Methods("POST")
	protected.HandleFunc("/habits/{id}/complete", habitHandler.UncompleteHabit).Methods("DELETE")
	protected.HandleFunc("/habits/{id}/calendar", habitHandler.GetCalendar).Methods("GET")

	protected.HandleFunc("/achievements", achievementHandler.GetAchievements).Methods("GET")
	protected.HandleFunc("/achievements/check", achievementHandler.CheckAchievements).Methods("POST")

	protected.HandleFunc("/challenges/today", challengeHandler.GetTodayChallenge).Methods("GET")
	protected.HandleFunc("/challenges/{id}/progress", challengeHandler.UpdateProgress).Methods("PUT")
	protected.HandleFunc("/challenges/{id}/complete", challengeHandler.CompleteChallenge).Methods("POST")

	protected.HandleFunc("/goals", goalHandler.GetWeeklyGoals).Methods("GET")
	protected.HandleFunc("/goals", goalHandler.CreateGoal).Methods("POST")
	protected.HandleFunc("/goals/{id}/progress", goalHandler.UpdateProgress).Methods("PUT")
	protected.HandleFunc("/goals/{id}", goalHandler.DeleteGoal).Methods("DELETE")

	protected.HandleFunc("/activity/task-completed", activityHandler.TaskCompleted).Methods("POST")
	protected.HandleFunc("/activity/transaction", activityHandler.Transaction).Methods("POST")
	protected.HandleFunc("/activity/focus-session", activityHandler.FocusSession).Methods("POST")
	protected.HandleFunc("/activity/login", activityHandler.Login).Methods("POST")

	protected.HandleFunc("/notifications", notificationHandler.ListNotifications).Methods("GET")
	protected.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods("PUT")
	protected.HandleFunc("/notifications/read-all", notificationHandler.MarkAllRead).Methods("PUT")
	protected.HandleFunc("/notifications/preferences", notificationHandler.GetPreferences).Methods("GET")
	protected.HandleFunc("/notifications/preferences", notificationHandler.UpdatePreferences).Methods("PUT")
	protected.HandleFunc("/notifications/register-device", notificationHandler.RegisterDevice).Methods("POST")
	protected.HandleFunc("/notifications/register-device", notificationHandler.UnregisterDevice).Methods("DELETE")

	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
