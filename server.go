package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

type WebServer struct {
	cfg        Config
	db         *Database
	lineClient *linebot.Client
	bot        *Bot
	market     MarketClient
	scheduler  *Scheduler
	router     *gin.Engine
}

func NewWebServer(cfg Config) (*WebServer, error) {
	db, err := NewDatabase(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	lineClient, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken)
	if err != nil {
		return nil, err
	}

	market := NewYahooFinanceClient("")
	charts, err := NewChartRenderer(cfg.UploadDir, cfg.HostURL)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &WebServer{
		cfg:        cfg,
		db:         db,
		lineClient: lineClient,
		bot:        NewBot(db, market, charts, cfg.LiffID),
		market:     market,
		router:     router,
	}

	scheduler, err := NewScheduler(db, market, charts)
	if err != nil {
		log.Printf("Warning: Failed to initialize scheduler: %v", err)
	} else {
		server.scheduler = scheduler
		scheduler.Start()
	}

	server.setupRoutes()
	return server, nil
}

func (ws *WebServer) setupRoutes() {
	ws.router.LoadHTMLGlob("templates/*")

	ws.router.GET("/", ws.home)
	ws.router.POST("/callback", ws.callback)

	// Add-favorites front end
	ws.router.GET("/add_favorites", ws.addFavoritesPage)

	// API routes
	api := ws.router.Group("/api")
	{
		api.POST("/add_favorites", ws.apiAddFavorites)
		api.GET("/stocks", ws.getStockSymbols)
	}

	// Generated chart images
	ws.router.Static("/uploads", ws.cfg.UploadDir)
}

func (ws *WebServer) Run(addr string) error {
	log.Printf("Web server starting on %s", addr)
	return ws.router.Run(addr)
}

func (ws *WebServer) Close() {
	if ws.scheduler != nil {
		ws.scheduler.Stop()
	}
	if ws.db != nil {
		ws.db.Close()
	}
}
