package main

import (
	"log"
	"strconv"

	"crit-server/configs"
	"crit-server/controllers"
	"crit-server/repository"
	"crit-server/routes"
	service "crit-server/services"
	"crit-server/utils"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	configs.LoadEnv()

	port := configs.Getenv("PORT", "4000")
	portNum, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT value: %v", err)
	}

	err = configs.RegisterService(
		"crit-server",
		"crit-server",
		"localhost",
		portNum,
		"http://localhost:"+port+"/health",
	)
	if err != nil {
		log.Fatalf("Consul service registration failed: %v", err)
	}

	configs.ConnectRedis()
	client := configs.ConnectMongo()
	redisClient := configs.GetRedisClient()

	db := client.Database(configs.Getenv("MONGO_DB", "critboard"))
	boardRepo := repository.NewBoardRepository(db.Collection("boards"))
	elementRepo := repository.NewElementRepository(db.Collection("elements"))
	commentRepo := repository.NewCommentRepository(db.Collection("comments"))
	taskRepo := repository.NewTaskRepository(db.Collection("tasks"))
	sessionRepo := repository.NewCritSessionRepository(db.Collection("crit_sessions"))

	criticRepo := repository.NewRedisCriticRepository(redisClient)
	criticService := service.NewCriticService(criticRepo)
	relay := service.NewRelayService()

	store := utils.NewPublicKeyStore()
	keyDir := configs.Getenv("JWT_PUBLIC_KEY_DIR", "keys")
	if loaded, err := store.LoadKeys(keyDir); err != nil {
		log.Printf("Failed to load JWT public keys from %s: %v", keyDir, err)
	} else {
		log.Printf("Loaded %d JWT public keys", loaded)
	}

	boardController := controllers.NewBoardController(boardRepo, elementRepo, commentRepo, taskRepo, sessionRepo)
	elementController := controllers.NewElementController(elementRepo)
	commentController := controllers.NewCommentController(commentRepo, sessionRepo, relay)
	taskController := controllers.NewTaskController(taskRepo, commentRepo)
	sessionController := controllers.NewCritSessionController(sessionRepo, boardRepo)
	liveController := controllers.NewLiveCritController(criticService, relay)
	adminController := controllers.NewAdminController(store, keyDir)

	app := fiber.New()

	p := fiberprometheus.New("crit-server")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: configs.Getenv("CORS_ORIGINS", "http://localhost:3000"),
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	routes.BoardRoutes(app, boardController, store)
	routes.ElementRoutes(app, elementController, store)
	routes.CommentRoutes(app, commentController, store)
	routes.TaskRoutes(app, taskController, store)
	routes.CritSessionRoutes(app, sessionController, store)
	routes.WebSocketRoutes(app, liveController)
	routes.AdminRoutes(app, adminController, store)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	log.Printf("Starting server on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
