package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	league "github.com/nvbf/league-desk/repos/league"
	resend "github.com/nvbf/league-desk/repos/resend"
	sessionstore "github.com/nvbf/league-desk/repos/sessionstore"

	auth "github.com/nvbf/league-desk/pkg/auth"
	config "github.com/nvbf/league-desk/pkg/config"
	logging "github.com/nvbf/league-desk/pkg/logging"
	requestID "github.com/nvbf/league-desk/pkg/requestID"
	timehelper "github.com/nvbf/league-desk/pkg/timeHelper"

	admin "github.com/nvbf/league-desk/services/admin"
	matches "github.com/nvbf/league-desk/services/matches"
	players "github.com/nvbf/league-desk/services/players"
	search "github.com/nvbf/league-desk/services/search"
	session "github.com/nvbf/league-desk/services/session"
	stats "github.com/nvbf/league-desk/services/stats"
	teams "github.com/nvbf/league-desk/services/teams"
	venues "github.com/nvbf/league-desk/services/venues"
)

func openStore(ctx context.Context, cfg *config.Config) (sessionstore.Store, func(), error) {
	switch cfg.Session.Store {
	case config.StoreFirestore:
		var opts []option.ClientOption
		if cfg.Firebase.CredentialsJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.CredentialsJSON)))
		}
		client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sessionstore.NewFirestoreStore(client, cfg.Session.Profile), func() { client.Close() }, nil
	case config.StoreMemory:
		return sessionstore.NewMemoryStore(sessionstore.Snapshot{}), func() {}, nil
	default:
		store := sessionstore.NewFileStore(cfg.Session.File)
		log.Debug().Str("file", store.Path()).Msg("session file")
		return store, func() {}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.Development())
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Session.Store).Msg("failed to open session store")
	}
	defer closeStore()

	client := league.NewService(cfg.LeagueAPIURL, cfg.RequestTimeout)
	sess := session.NewSession(client, store)
	client.UseAdminSource(sess)

	initCtx := requestID.WithID(ctx, requestID.New())
	if err := sess.Init(initCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to restore session")
	}
	log.Info().Str("state", string(sess.State())).Str("api", client.BaseURL()).Msg("session restored")

	var mailer teams.Mailer
	if cfg.Mail.ResendKey != "" {
		mailer = resend.NewMailer(cfg.Mail.ResendKey, cfg.Mail.From)
	}

	loc := cfg.Location()
	clock := clockwork.NewRealClock()
	log.Info().Str("today", timehelper.GetTodaysDateString(clock, loc)).Str("timezone", loc.String()).Msg("match calendar")

	matchesService := matches.NewMatchesService(client, sess, clock, loc)
	statsService := stats.NewStatsService(client, sess)
	teamsService := teams.NewTeamsService(client, sess, mailer)
	playersService := players.NewPlayersService(client, sess)
	venuesService := venues.NewVenuesService(client, sess)
	searchService := search.NewSearchService(client, sess, loc)
	adminService := admin.NewAdminService(client, sess)

	router := gin.New()
	router.Use(logging.Middleware(), gin.Recovery())

	if len(cfg.CORSHosts) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSHosts
		corsConfig.AllowCredentials = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestID.Header}
		corsConfig.ExposeHeaders = []string{requestID.Header}
		router.Use(cors.New(corsConfig))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "session": sess.State()})
	})

	requireSession := auth.RequireSession(sess)
	requireAdmin := auth.RequireAdmin(sess)

	session.NewHTTPHandler(session.HTTPOptions{
		Session: sess,
		Router:  router.Group("/session/v1"),
	})

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service:   matchesService,
		Router:    router.Group("/matches/v1", requireSession),
		AdminOnly: requireAdmin,
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service: statsService,
		Router:  router.Group("/stats/v1", requireSession),
	})

	teams.NewHTTPHandler(teams.HTTPOptions{
		Service:   teamsService,
		Router:    router.Group("/teams/v1", requireSession),
		AdminOnly: requireAdmin,
	})

	players.NewHTTPHandler(players.HTTPOptions{
		Service:   playersService,
		Router:    router.Group("/players/v1", requireSession),
		AdminOnly: requireAdmin,
	})

	venues.NewHTTPHandler(venues.HTTPOptions{
		Service:   venuesService,
		Router:    router.Group("/venues/v1", requireSession),
		AdminOnly: requireAdmin,
	})

	search.NewHTTPHandler(search.HTTPOptions{
		Service: searchService,
		Router:  router.Group("/search/v1", requireSession),
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service: adminService,
		Router:  router.Group("/admin/v1", requireAdmin),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("console listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := sess.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}
}
