package main

import (
	"log"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// MarketClient is what the dispatcher needs from the market-data layer.
type MarketClient interface {
	FetchHistory(code string) ([]PricePoint, error)
	Validate(code string) bool
}

// ChartService renders a price series and returns a public image URL.
type ChartService interface {
	Render(code string, points []PricePoint) (string, error)
}

// Bot maps inbound LINE events to replies. It keeps no state between
// events; the acting user is taken from each event and passed down.
type Bot struct {
	db     *Database
	market MarketClient
	charts ChartService
	liffID string
}

func NewBot(db *Database, market MarketClient, charts ChartService, liffID string) *Bot {
	return &Bot{
		db:     db,
		market: market,
		charts: charts,
		liffID: liffID,
	}
}

// HandleEvent dispatches one webhook event and returns the reply messages.
// An empty result means no reply is sent.
func (b *Bot) HandleEvent(event *linebot.Event) []linebot.SendingMessage {
	switch event.Type {
	case linebot.EventTypeMessage:
		message, ok := event.Message.(*linebot.TextMessage)
		if !ok {
			return nil
		}
		return b.handleTextCommand(event.Source.UserID, message.Text)
	case linebot.EventTypePostback:
		return b.handlePostback(event.Postback.Data)
	}
	return nil
}

func (b *Bot) handleTextCommand(userID, text string) []linebot.SendingMessage {
	command := strings.ToUpper(strings.TrimSpace(text))

	switch {
	case command == "LIKE":
		return []linebot.SendingMessage{addFavoritesMessage(b.liffID)}

	case command == "STOCK":
		favorites, err := b.db.GetFavorites(userID)
		if err != nil {
			log.Printf("Failed to load favorites for %s: %v", userID, err)
			return []linebot.SendingMessage{lookupFailedMessage(err)}
		}
		if len(favorites) == 0 {
			return []linebot.SendingMessage{noFavoritesMessage()}
		}
		return []linebot.SendingMessage{favoritesCarouselMessage(favorites)}

	case command == "DELETE":
		favorites, err := b.db.GetFavorites(userID)
		if err != nil {
			log.Printf("Failed to load favorites for %s: %v", userID, err)
			return []linebot.SendingMessage{lookupFailedMessage(err)}
		}
		if len(favorites) == 0 {
			return []linebot.SendingMessage{noFavoritesMessage()}
		}
		return []linebot.SendingMessage{deletePickerMessage(favorites)}

	case strings.HasPrefix(command, "DELETE "):
		code := strings.TrimSpace(strings.TrimPrefix(command, "DELETE "))
		// No existence check: removing an absent pair is a no-op and
		// the confirmation is still sent.
		if err := b.db.RemoveFavorite(userID, code); err != nil {
			log.Printf("Failed to remove favorite %s for %s: %v", code, userID, err)
			return []linebot.SendingMessage{lookupFailedMessage(err)}
		}
		return []linebot.SendingMessage{deleteConfirmationMessage(code)}
	}

	// Anything else is silently ignored
	return nil
}

func (b *Bot) handlePostback(data string) []linebot.SendingMessage {
	if !strings.HasPrefix(data, "stock_code:") {
		return []linebot.SendingMessage{invalidSelectionMessage()}
	}

	code := strings.TrimPrefix(data, "stock_code:")
	return []linebot.SendingMessage{b.stockDetail(code)}
}

// stockDetail fetches history for code and composes the detail card, or a
// text message describing why it could not.
func (b *Bot) stockDetail(code string) linebot.SendingMessage {
	points, err := b.market.FetchHistory(code)
	if err != nil {
		log.Printf("History fetch for %s failed: %v", code, err)
		return lookupFailedMessage(err)
	}
	if len(points) == 0 {
		return notFoundMessage(code)
	}

	imageURL, err := b.charts.Render(code, points)
	if err != nil {
		log.Printf("Chart render for %s failed: %v", code, err)
		return lookupFailedMessage(err)
	}

	return stockDetailMessage(code, points, imageURL)
}
