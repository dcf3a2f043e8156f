package main

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Reply composition. Everything in this file is pure construction of LINE
// message payloads; no I/O happens here.

const carouselActionsPerColumn = 3

func noFavoritesMessage() linebot.SendingMessage {
	return linebot.NewTextMessage("您還沒有收藏任何股票")
}

// addFavoritesMessage points the user at the LIFF add-favorites page.
func addFavoritesMessage(liffID string) linebot.SendingMessage {
	liffURL := fmt.Sprintf("https://liff.line.me/%s", liffID)
	template := linebot.NewButtonsTemplate(
		"", "", "請點擊以下連結添加收藏股票：",
		linebot.NewURIAction("添加收藏", liffURL),
	)
	return linebot.NewTemplateMessage("請點擊以下連結添加收藏股票：", template)
}

// favoritesCarouselMessage shows the user's favorites, three per column.
func favoritesCarouselMessage(codes []string) linebot.SendingMessage {
	template := linebot.NewCarouselTemplate(buildCarouselColumns(codes)...)
	return linebot.NewTemplateMessage("我的收藏股票", template)
}

// buildCarouselColumns partitions codes into columns of three actions each.
// LINE requires every column of a carousel to carry the same number of
// actions, so short columns are padded with inert message actions.
func buildCarouselColumns(codes []string) []*linebot.CarouselColumn {
	var columns []*linebot.CarouselColumn
	for i := 0; i < len(codes); i += carouselActionsPerColumn {
		chunk := codes[i:]
		if len(chunk) > carouselActionsPerColumn {
			chunk = chunk[:carouselActionsPerColumn]
		}

		var actions []linebot.TemplateAction
		for _, code := range chunk {
			actions = append(actions, &linebot.PostbackAction{
				Label: code,
				Data:  "stock_code:" + code,
			})
		}
		for len(actions) < carouselActionsPerColumn {
			actions = append(actions, linebot.NewMessageAction(" ", " "))
		}

		columns = append(columns, linebot.NewCarouselColumn("", "我的收藏", "點擊查看詳情", actions...))
	}
	return columns
}

// deletePickerMessage offers one quick-reply shortcut per favorite whose
// tap sends the literal DELETE <code> command back.
func deletePickerMessage(codes []string) linebot.SendingMessage {
	var buttons []*linebot.QuickReplyButton
	for _, code := range codes {
		buttons = append(buttons, linebot.NewQuickReplyButton(
			"",
			linebot.NewMessageAction(code, fmt.Sprintf("DELETE %s", code)),
		))
	}
	return linebot.NewTextMessage("請選擇要刪除的股票:").
		WithQuickReplies(linebot.NewQuickReplyItems(buttons...))
}

func deleteConfirmationMessage(code string) linebot.SendingMessage {
	return linebot.NewTextMessage(fmt.Sprintf("已將 %s 從您的收藏中刪除", code))
}

func notFoundMessage(code string) linebot.SendingMessage {
	return linebot.NewTextMessage(fmt.Sprintf("無法找到 %s 的數據，請確認股票代碼是否正確。", code))
}

func lookupFailedMessage(err error) linebot.SendingMessage {
	return linebot.NewTextMessage(fmt.Sprintf("查詢失敗，請確認股票代碼是否正確。錯誤信息: %v", err))
}

func invalidSelectionMessage() linebot.SendingMessage {
	return linebot.NewTextMessage("無效的選擇，請重新嘗試。")
}

// detailRowCount caps how many recent closes show up on the detail card.
const detailRowCount = 10

// stockDetailMessage combines the rendered chart and the last ten closes
// into one flex bubble.
func stockDetailMessage(code string, points []PricePoint, imageURL string) linebot.SendingMessage {
	recent := points
	if len(recent) > detailRowCount {
		recent = recent[len(recent)-detailRowCount:]
	}

	var rows []linebot.FlexComponent
	for _, p := range recent {
		rows = append(rows, &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeBaseline,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  p.Date.Format("01-02"),
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#555555",
					Flex:  linebot.IntPtr(0),
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  fmt.Sprintf("$%.2f", p.Close),
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#111111",
					Align: linebot.FlexComponentAlignTypeEnd,
				},
			},
		})
	}

	bubble := &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         imageURL,
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType20to13,
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   fmt.Sprintf("%s 收盤價", code),
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeXl,
				},
				&linebot.SeparatorComponent{
					Type:   linebot.FlexComponentTypeSeparator,
					Margin: linebot.FlexComponentMarginTypeXxl,
				},
				&linebot.BoxComponent{
					Type:     linebot.FlexComponentTypeBox,
					Layout:   linebot.FlexBoxLayoutTypeVertical,
					Margin:   linebot.FlexComponentMarginTypeXxl,
					Spacing:  linebot.FlexComponentSpacingTypeSm,
					Contents: rows,
				},
				&linebot.SeparatorComponent{
					Type:   linebot.FlexComponentTypeSeparator,
					Margin: linebot.FlexComponentMarginTypeXxl,
				},
			},
		},
		Styles: &linebot.BubbleStyle{
			Footer: &linebot.BlockStyle{Separator: true},
		},
	}

	return linebot.NewFlexMessage("股票資訊", bubble)
}
