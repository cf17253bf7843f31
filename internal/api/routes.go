package api

import (
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/collectorhq/sticker-tracker/backend/internal/api/handlers"
	"github.com/collectorhq/sticker-tracker/backend/internal/services"
)

func SetupRouter(tradeService *services.TradeService, inventoryService *services.InventoryService, statsService *services.StatsService) *gin.Engine {
	router := gin.Default()

	// CORS configuration - allow origins from environment or use defaults
	config := cors.DefaultConfig()
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		config.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		config.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	router.Use(cors.New(config))

	router.Use(metricsMiddleware())
	router.Use(rateLimitMiddleware(rateLimitFromEnv()))

	// Initialize handlers
	competitionHandler := handlers.NewCompetitionHandler()
	albumHandler := handlers.NewAlbumHandler()
	stickerHandler := handlers.NewStickerHandler(statsService)
	cardHandler := handlers.NewCardHandler(statsService)
	packHandler := handlers.NewPackHandler(statsService)
	boxHandler := handlers.NewBoxHandler(statsService)
	memorabiliaHandler := handlers.NewMemorabiliaHandler(statsService)
	collectorHandler := handlers.NewCollectorHandler(statsService)
	tradeHandler := handlers.NewTradeHandler(tradeService, statsService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// API routes
	api := router.Group("/api/v1")
	{
		competitions := api.Group("/competitions")
		{
			competitions.GET("", competitionHandler.ListCompetitions)
			competitions.POST("", competitionHandler.CreateCompetition)
			competitions.GET("/:id", competitionHandler.GetCompetition)
			competitions.PUT("/:id", competitionHandler.UpdateCompetition)
			competitions.DELETE("/:id", competitionHandler.DeleteCompetition)
			competitions.GET("/:id/stats", competitionHandler.GetCompetitionStats)
		}

		albums := api.Group("/albums")
		{
			albums.GET("", albumHandler.ListAlbums)
			albums.POST("", albumHandler.CreateAlbum)
			albums.GET("/:id", albumHandler.GetAlbum)
			albums.PUT("/:id", albumHandler.UpdateAlbum)
			albums.POST("/:id/sections", albumHandler.CreateAlbumSection)
			albums.GET("/:id/sections", albumHandler.ListAlbumSections)
			albums.GET("/collector/:collectorId", albumHandler.ListCollectorAlbums)
		}

		stickers := api.Group("/stickers")
		{
			stickers.POST("", stickerHandler.CreateSticker)
			stickers.GET("/:id", stickerHandler.GetSticker)
			stickers.GET("/album/:albumId", stickerHandler.ListAlbumStickers)
			stickers.POST("/collector", stickerHandler.AddCollectorSticker)
			stickers.PUT("/collector/:id", stickerHandler.UpdateCollectorSticker)
			stickers.GET("/collector-album/:collectorAlbumId", stickerHandler.ListCollectorStickers)
			stickers.GET("/missing/:collectorAlbumId", stickerHandler.ListMissingStickers)
		}

		cards := api.Group("/cards")
		{
			cards.POST("", cardHandler.CreateCard)
			cards.GET("/:id", cardHandler.GetCard)
			cards.GET("/competition/:competitionId", cardHandler.ListCompetitionCards)
			cards.POST("/collector", cardHandler.AddCollectorCard)
			cards.GET("/collector/:collectorId", cardHandler.ListCollectorCards)
			cards.PUT("/collector/:id", cardHandler.UpdateCollectorCard)
		}

		packs := api.Group("/packs")
		{
			packs.POST("", packHandler.CreatePack)
			packs.GET("/:id", packHandler.GetPack)
			packs.GET("/album/:albumId", packHandler.ListAlbumPacks)
			packs.POST("/collector", packHandler.AddCollectorPack)
			packs.GET("/collector/:collectorId", packHandler.ListCollectorPacks)
			packs.PUT("/collector/:id", packHandler.UpdateCollectorPack)
		}

		boxes := api.Group("/boxes")
		{
			boxes.POST("", boxHandler.CreateBox)
			boxes.GET("/:id", boxHandler.GetBox)
			boxes.GET("/album/:albumId", boxHandler.ListAlbumBoxes)
			boxes.POST("/collector", boxHandler.AddCollectorBox)
			boxes.GET("/collector/:collectorId", boxHandler.ListCollectorBoxes)
			boxes.PUT("/collector/:id", boxHandler.UpdateCollectorBox)
		}

		memorabilia := api.Group("/memorabilia")
		{
			memorabilia.POST("", memorabiliaHandler.CreateMemorabilia)
			memorabilia.GET("/:id", memorabiliaHandler.GetMemorabilia)
			memorabilia.GET("/album/:albumId", memorabiliaHandler.ListAlbumMemorabilia)
			memorabilia.POST("/collector", memorabiliaHandler.AddCollectorMemorabilia)
			memorabilia.GET("/collector/:collectorId", memorabiliaHandler.ListCollectorMemorabilia)
			memorabilia.PUT("/collector/:id", memorabiliaHandler.UpdateCollectorMemorabilia)
		}

		collectors := api.Group("/collectors")
		{
			collectors.POST("", collectorHandler.CreateCollector)
			collectors.GET("/:id", collectorHandler.GetCollector)
			collectors.PUT("/:id", collectorHandler.UpdateCollector)
			collectors.GET("/:id/statistics", collectorHandler.GetStatistics)
			collectors.POST("/:id/albums", collectorHandler.AddCollectorAlbum)
			collectors.GET("/:id/albums", collectorHandler.ListOwnedAlbums)
			collectors.PUT("/:id/albums/:albumId/recalculate", collectorHandler.RecalculateCompletion)
		}

		trading := api.Group("/trading")
		{
			trading.POST("/request", tradeHandler.CreateTradeRequest)
			trading.GET("/request/:id", tradeHandler.GetTradeRequest)
			trading.GET("/requests", tradeHandler.ListTradeRequests)
			trading.PUT("/request/:id/accept", tradeHandler.AcceptTradeRequest)
			trading.PUT("/request/:id/reject", tradeHandler.RejectTradeRequest)
			trading.PUT("/request/:id/cancel", tradeHandler.CancelTradeRequest)
			trading.PUT("/request/:id/complete", tradeHandler.CompleteTradeRequest)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ListInventory)
			inventory.POST("", inventoryHandler.AddInventory)
			inventory.GET("/:id", inventoryHandler.GetInventory)
			inventory.PUT("/:id", inventoryHandler.UpdateInventory)
			inventory.GET("/:id/movements", inventoryHandler.ListMovements)
			inventory.POST("/movement", inventoryHandler.RecordMovement)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func rateLimitFromEnv() (rate.Limit, int) {
	rps := 50.0
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			rps = parsed
		}
	}
	burst := 100
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		}
	}
	return rate.Limit(rps), burst
}
