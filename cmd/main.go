package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/config"
	"github.com/hqtran/examportal/database"
	_ "github.com/hqtran/examportal/docs" // Swagger docs
	admctrl "github.com/hqtran/examportal/internal/controller/admin"
	stuctrl "github.com/hqtran/examportal/internal/controller/student"
	"github.com/hqtran/examportal/internal/logger"
	"github.com/hqtran/examportal/internal/middleware"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/hqtran/examportal/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Student Exam Portal API
// @version 1.0
// @description Student record management and multiple-choice exam administration: admins create exams and questions, assign them to students; students take one attempt per assigned exam and receive an automatic score.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewAdminRepository,
			repository.NewStudentRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewAssignmentRepository,
			repository.NewAnswerRecordRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewQRCodeService,
			service.NewAuthService,
			service.NewStudentService,
			service.NewExamService,
			service.NewQuestionService,
			service.NewQuestionImportService,
			service.NewAssignmentService,
			service.NewAttemptService,
		),

		fx.Provide(
			middleware.NewAuthMiddleware,
			admctrl.NewAuthController,
			admctrl.NewStudentController,
			admctrl.NewExamController,
			admctrl.NewQuestionController,
			stuctrl.NewStudentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded student images are served statically, as the admin UI links
	// to them directly.
	r.Static("/uploads", cfg.Upload.Dir)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.AuthMiddleware,
	adminAuthCtrl *admctrl.AuthController,
	adminStudentCtrl *admctrl.StudentController,
	adminExamCtrl *admctrl.ExamController,
	adminQuestionCtrl *admctrl.QuestionController,
	studentCtrl *stuctrl.StudentController,
) {
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/auth/register", adminAuthCtrl.Register)
		adminGroup.POST("/auth/login", adminAuthCtrl.Login)

		protected := adminGroup.Group("")
		protected.Use(auth.RequireAdmin())
		{
			protected.POST("/students", adminStudentCtrl.Create)
			protected.GET("/students", adminStudentCtrl.List)
			protected.GET("/students/:student_id", adminStudentCtrl.Get)
			protected.PUT("/students/:student_id", adminStudentCtrl.Update)
			protected.DELETE("/students/:student_id", adminStudentCtrl.Delete)
			protected.POST("/students/:student_id/images", adminStudentCtrl.UploadImages)
			protected.POST("/images/base64", adminStudentCtrl.ImageToBase64)

			protected.POST("/exams", adminExamCtrl.Create)
			protected.GET("/exams", adminExamCtrl.List)
			protected.POST("/exams/search", adminExamCtrl.Search)
			protected.POST("/exams/assign", adminExamCtrl.Assign)
			protected.GET("/exams/:exam_id", adminExamCtrl.Get)
			protected.PUT("/exams/:exam_id", adminExamCtrl.Update)
			protected.DELETE("/exams/:exam_id", adminExamCtrl.Delete)
			protected.GET("/exams/:exam_id/questions", adminQuestionCtrl.ListByExam)
			protected.POST("/exams/:exam_id/questions/import", adminQuestionCtrl.Import)

			protected.POST("/questions", adminQuestionCtrl.Create)
			protected.PUT("/questions/:question_id", adminQuestionCtrl.Update)
			protected.DELETE("/questions/:question_id", adminQuestionCtrl.Delete)
		}
	}

	studentGroup := router.Group("/api/v1/student")
	{
		studentGroup.POST("/auth/login", studentCtrl.Login)

		protected := studentGroup.Group("")
		protected.Use(auth.RequireStudent())
		{
			protected.GET("/exams", studentCtrl.GetAssignedExams)
			protected.GET("/exams/:exam_id", studentCtrl.GetAssignedExam)
			protected.POST("/exams/:exam_id/attempts", studentCtrl.SubmitAttempt)
			protected.GET("/results", studentCtrl.GetResults)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam portal server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Admin{},
		&model.Student{},
		&model.Exam{},
		&model.Question{},
		&model.ExamAssignment{},
		&model.AnswerRecord{},
		&model.RecordedAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
