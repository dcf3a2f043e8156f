package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

func (ws *WebServer) home(c *gin.Context) {
	c.String(http.StatusOK, "hello")
}

// callback receives LINE webhook deliveries. ParseRequest verifies the
// request signature before any event is looked at; a tampered body is
// rejected with 400. Once dispatched, the endpoint always answers OK even
// if sending a reply failed.
func (ws *WebServer) callback(c *gin.Context) {
	events, err := ws.lineClient.ParseRequest(c.Request)
	if err != nil {
		if err == linebot.ErrInvalidSignature {
			c.Status(http.StatusBadRequest)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	for _, event := range events {
		messages := ws.bot.HandleEvent(event)
		if len(messages) == 0 {
			continue
		}
		if _, err := ws.lineClient.ReplyMessage(event.ReplyToken, messages...).Do(); err != nil {
			log.Printf("Failed to send reply: %v", err)
		}
	}

	c.String(http.StatusOK, "OK")
}

func (ws *WebServer) addFavoritesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_favorites.html", gin.H{
		"LiffID": ws.cfg.LiffID,
	})
}

// apiAddFavorites accepts {userId, stockCodes} from the LIFF page. Codes
// that fail validation are skipped silently; the response carries no
// partial-failure detail.
func (ws *WebServer) apiAddFavorites(c *gin.Context) {
	var req AddFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AddFavoritesResponse{Success: false, Message: "請求格式錯誤"})
		return
	}

	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, AddFavoritesResponse{Success: false, Message: "缺少 userId"})
		return
	}
	if len(req.StockCodes) == 0 {
		c.JSON(http.StatusBadRequest, AddFavoritesResponse{Success: false, Message: "缺少股票代碼 (stockCodes)"})
		return
	}

	for _, code := range req.StockCodes {
		if !ws.market.Validate(code) {
			continue
		}
		if err := ws.db.AddFavorite(req.UserID, code); err != nil {
			log.Printf("Failed to add favorite %s for %s: %v", code, req.UserID, err)
			c.JSON(http.StatusInternalServerError, AddFavoritesResponse{Success: false, Message: "發生錯誤: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, AddFavoritesResponse{Success: true, Message: "收藏添加成功"})
}

// getStockSymbols serves the listed-security directory as JSON.
func (ws *WebServer) getStockSymbols(c *gin.Context) {
	symbols, err := LoadSymbols(ws.cfg.SymbolFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, symbols)
}
