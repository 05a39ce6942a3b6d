package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/sovanra/uxfolio/internal/app_context"
	"github.com/sovanra/uxfolio/internal/auth"
	"github.com/sovanra/uxfolio/internal/config"
	"github.com/sovanra/uxfolio/internal/controller"
	"github.com/sovanra/uxfolio/internal/env"
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/gallery"
	"github.com/sovanra/uxfolio/internal/middleware"
	"github.com/sovanra/uxfolio/internal/nda"
	"github.com/sovanra/uxfolio/internal/pipeline"
	ratelimiter "github.com/sovanra/uxfolio/internal/rate_limiter"
	"github.com/sovanra/uxfolio/internal/repository"
	"github.com/sovanra/uxfolio/internal/route"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	dataStore, err := store.New(cfg.Data.Dir, logger)
	if err != nil {
		logger.Panic(err)
	}
	logger.Infof("Flat-file store ready at %s \n", cfg.Data.Dir)

	storage, err := filestorage.NewStorage(&cfg.Storage, logger)
	if err != nil {
		logger.Error("Error initializing file storage")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(dataStore, logger, storage)

	codes, err := nda.LoadCodes(cfg.Nda.CodesFile)
	if err != nil {
		logger.Panic(err)
	}
	gate := nda.NewGate(codes, logger)
	logger.Infof("Loaded %d NDA access codes \n", len(codes))

	app := appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repo,
		JWTService: jwtService,
		Storage:    storage,
		Pipeline:   pipeline.New(logger, storage, repo.Image, nil),
		Gallery:    gallery.NewAssembler(repo.Project, repo.Image, gate),
		NdaGate:    gate,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 64 << 20

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept", "x-nda-code"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	if strings.EqualFold(cfg.Storage.Driver, "local") {
		r.Static("/uploads", cfg.Storage.UploadsDir)
	}

	rApi := r.Group("/api")

	route.Admin_Auth(rApi, _controller.Auth)
	route.Admin_Projects(rApi, _controller.Project, _controller.Upload, _controller.Series, _middleware)
	route.Admin_Images(rApi, _controller.Image, _middleware)
	route.Public_Gallery(rApi, _controller.Gallery, _controller.Nda)

	// Generous write timeout: a full 100-file batch has to finish deriving
	// within one request.
	server := &http.Server{
		Addr:         "0.0.0.0:" + app.Config.Port,
		Handler:      r,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  time.Minute,
	}

	logger.Infof("Listening on %s \n", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
