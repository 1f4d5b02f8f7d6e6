package connection

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ppdb/config"
	"ppdb/controller/admin"
	"ppdb/controller/auth"
	"ppdb/controller/page"
	"ppdb/controller/product"
	"ppdb/controller/registration"
	"ppdb/controller/user"
	"ppdb/middleware"
	"ppdb/services"
	"ppdb/store"
)

const shutdownTimeout = 15 * time.Second

// NewRouter wires services, middleware and controllers over st. A nil
// captcha disables the captcha endpoint.
func NewRouter(cfg *config.Config, st store.Store, captcha services.CaptchaVerifier) *gin.Engine {
	hasher := services.NewBcryptHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	authSvc := services.NewAuthService(st, hasher)
	userSvc := services.NewUserService(st)
	regSvc := services.NewRegistrationService(st)
	productSvc := services.NewProductService(st)

	cookies := middleware.CookieOptions{
		Secure: cfg.CookieSecure,
		MaxAge: int(tokens.TTL().Seconds()),
	}
	guard := middleware.GuardConfig{
		AdminPrefixes: cfg.GuardAdminPrefixes,
		UserPrefixes:  cfg.GuardUserPrefixes,
		AdminLanding:  cfg.AdminLanding,
		UserLanding:   cfg.UserLanding,
	}
	metrics := middleware.NewMetrics()

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		metrics.Middleware(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.Session(tokens, st, cookies),
		middleware.PageGuard(guard),
	)

	router.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth.SignInController(router, authSvc, tokens, userSvc, cookies)
	auth.SignUpController(router, authSvc)
	auth.CaptchaController(router, captcha)
	registration.RegistrationController(router, regSvc)
	user.UserController(router, userSvc)
	product.ProductController(router, productSvc)
	admin.AdminController(router, userSvc, regSvc)
	page.PageController(router, cfg.WebDir)

	return router
}

// StartServer opens the configured store and serves until SIGINT or
// SIGTERM, then drains in-flight requests.
func StartServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var captcha services.CaptchaVerifier
	if cfg.CaptchaEnabled() {
		rv, err := services.NewRecaptchaVerifier(ctx, cfg.RecaptchaProjectID, cfg.RecaptchaSiteKey, cfg.RecaptchaCredentials)
		if err != nil {
			return err
		}
		defer rv.Close()
		captcha = rv
	} else {
		log.Info().Msg("reCAPTCHA not configured; captcha endpoint disabled")
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           NewRouter(cfg, st, captcha),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.StoreDriver).Msg("PPDB backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server exited")
	return nil
}
