package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizbank-api/internal/config"
	"github.com/yourusername/quizbank-api/internal/handler"
	"github.com/yourusername/quizbank-api/internal/middleware"
	pgRepo "github.com/yourusername/quizbank-api/internal/repository/postgres"
	"github.com/yourusername/quizbank-api/internal/service"
	"github.com/yourusername/quizbank-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(
		cfg.Database.PostgresConnectionString(),
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to PostgreSQL")

	// Инициализируем репозитории
	temaRepo := pgRepo.NewTemaRepo(db)
	preguntaRepo := pgRepo.NewPreguntaRepo(db)
	respuestaRepo := pgRepo.NewRespuestaRepo(db)

	// Источник случайности для сборки экзаменов.
	// В тестах сервис получает фиксированный seed, здесь — время запуска.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Инициализируем сервисы
	temaService := service.NewTemaService(temaRepo)
	preguntaService := service.NewPreguntaService(preguntaRepo, respuestaRepo)
	respuestaService := service.NewRespuestaService(respuestaRepo)
	examenService := service.NewExamenService(temaRepo, preguntaRepo, respuestaRepo, rng)

	// Инициализируем обработчики
	temaHandler := handler.NewTemaHandler(temaService)
	preguntaHandler := handler.NewPreguntaHandler(preguntaService)
	respuestaHandler := handler.NewRespuestaHandler(respuestaService)
	examenHandler := handler.NewExamenHandler(examenService)

	// Инициализируем роутер Gin
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS открыт для всех источников: API обслуживает произвольные
	// учебные фронтенды
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	// Темы
	temas := router.Group("/temas")
	{
		temas.GET("", temaHandler.List)
		temas.POST("", temaHandler.Create)

		temaWithID := temas.Group("/:id")
		temaWithID.Use(middleware.ExtractUintParam("id", "temaID"))
		{
			temaWithID.GET("", temaHandler.GetByID)
			temaWithID.PUT("", temaHandler.Update)
			temaWithID.DELETE("", temaHandler.Delete)
		}
	}

	// Вопросы
	preguntas := router.Group("/preguntas")
	{
		preguntas.GET("", preguntaHandler.List)
		preguntas.POST("", preguntaHandler.Create)

		preguntaWithID := preguntas.Group("/:id")
		preguntaWithID.Use(middleware.ExtractUintParam("id", "preguntaID"))
		{
			preguntaWithID.GET("", preguntaHandler.GetByID)
			preguntaWithID.PUT("", preguntaHandler.Update)
			preguntaWithID.DELETE("", preguntaHandler.Delete)
		}
	}

	// Ответы
	respuestas := router.Group("/respuestas")
	{
		respuestas.GET("", respuestaHandler.List)
		respuestas.POST("", respuestaHandler.Create)

		respuestaWithID := respuestas.Group("/:id")
		respuestaWithID.Use(middleware.ExtractUintParam("id", "respuestaID"))
		{
			respuestaWithID.GET("", respuestaHandler.GetByID)
			respuestaWithID.PUT("", respuestaHandler.Update)
			respuestaWithID.DELETE("", respuestaHandler.Delete)
		}
	}

	// Сборка экзамена
	router.POST("/examen", examenHandler.Armar)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
