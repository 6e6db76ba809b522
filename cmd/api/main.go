package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/database"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/middleware"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/repository"
	routes "github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/server"
	"github.com/AgusMolinaCode/BTC_DCA_Tracker.git/internal/services"
)

// Instancia global del actualizador de precios
var priceUpdater *services.PriceUpdater

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{allowedOrigin}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Servicios de precios: tasas de cambio y precio de Bitcoin
	rateService := services.NewExchangeRateService()
	priceService := services.NewBtcPriceService(rateService)

	// Iniciar el servicio de actualización de precios
	interval := 60 * time.Second
	if value := os.Getenv("REFRESH_INTERVAL"); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			interval = time.Duration(seconds) * time.Second
		} else {
			log.Printf("REFRESH_INTERVAL inválido (%s), se usa el valor por defecto", value)
		}
	}
	priceUpdater = services.NewPriceUpdater(interval, priceService)
	defer priceUpdater.Stop()

	// Hacer disponible el actualizador de precios para los handlers
	middleware.SetPriceUpdater(priceUpdater)

	// Configurar las rutas
	routes.RegisterRoutes(router, priceService, rateService)

	// El auto-refresco arranca solo si el usuario lo dejó activado
	prefsRepo := repository.NewPreferencesRepository(database.DB)
	if prefs, err := prefsRepo.GetPreferences(); err == nil && prefs.AutoRefresh {
		priceUpdater.Start()
	}

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
