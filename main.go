package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"store2070/internal/database"
	"store2070/internal/handlers"
	"store2070/internal/mailer"
	"store2070/internal/repositories"
	"store2070/internal/schema"
	"store2070/internal/services"
	"store2070/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "sql_app.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("PUBLIC_WEB_URL", "http://localhost:3000")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := database.Open(database.Config{
		Driver: viper.GetString("DATABASE_DRIVER"),
		DSN:    viper.GetString("DATABASE_DSN"),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Auth lifecycle events are published only when a broker URL is
	// configured; without one the services run with a nil client.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, auth event publishing disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Services ---
	mailService := mailer.New(viper.GetString("PUBLIC_WEB_URL"))
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo)
	authService := services.NewAuthService(userRepo, mailService, mqClient)

	// --- GraphQL Schema ---
	gqlSchema, err := schema.New(schema.Resolvers{
		Catalog: catalogService,
		Orders:  orderService,
		Auth:    authService,
	})
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	// --- Handlers ---
	graphqlHandler := handlers.NewGraphQLHandler(gqlSchema)
	systemHandler := handlers.NewSystemHandler(db)

	// --- Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())   // CORS open to all origins

	// --- Routes ---
	graphqlHandler.RegisterRoutes(app)
	systemHandler.RegisterRoutes(app)

	// --- Start Auth Event Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for auth events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Auth Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeAuthEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
