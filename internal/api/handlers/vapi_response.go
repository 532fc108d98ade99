package handlers

import (
	"strings"

	"voice-assistant-backend/internal/cache"

	"github.com/gin-gonic/gin"
)

// noResultMessages are the spoken fallbacks per category when the search
// returns nothing
var noResultMessages = map[string]string{
	"menu":      "I don't have information about that menu item.",
	"modifiers": "I don't have information about those options.",
	"hours":     "I don't have operating hours information available right now.",
	"zones":     "I don't have delivery zone information available right now.",
}

const defaultNoResultMessage = "I don't have information about that."

// buildToolResult builds the Vapi tool-result envelope
func buildToolResult(toolCallID, text string) gin.H {
	return gin.H{
		"results": []gin.H{
			{"toolCallId": toolCallID, "result": text},
		},
	}
}

// buildToolResultWithItems attaches structured items for better TTS answers
func buildToolResultWithItems(toolCallID, text string, items []gin.H) gin.H {
	return gin.H{
		"results": []gin.H{
			{"toolCallId": toolCallID, "result": text, "metadata": gin.H{"items": items}},
		},
	}
}

// buildNoResult builds a spoken fallback. message wins over the category
// default.
func buildNoResult(toolCallID, category, message string) gin.H {
	if message == "" {
		message = noResultMessages[category]
	}
	if message == "" {
		message = defaultNoResultMessage
	}
	return buildToolResult(toolCallID, message)
}

// itemName pulls a display name from metadata, falling back to the leading
// segment of the content ("Name - description" convention)
func itemName(result cache.SearchResult) interface{} {
	if name, ok := result.Metadata["name"]; ok && name != nil {
		return name
	}
	if title, ok := result.Metadata["title"]; ok && title != nil {
		return title
	}
	if parts := strings.SplitN(result.Content, " - ", 2); len(parts) > 0 && parts[0] != "" {
		return strings.TrimSpace(parts[0])
	}
	return nil
}

func metaFirst(md map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := md[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// buildStructuredItems shapes the top results into category-specific items
func buildStructuredItems(results []cache.SearchResult, category string) []gin.H {
	items := make([]gin.H, 0, 3)
	for _, doc := range results {
		if len(items) == 3 {
			break
		}
		md := doc.Metadata
		if md == nil {
			md = map[string]interface{}{}
		}

		var item gin.H
		switch category {
		case "menu":
			item = gin.H{
				"type":        "menu_item",
				"name":        itemName(doc),
				"price":       md["price"],
				"description": md["description"],
				"score":       doc.Score,
			}
		case "modifiers":
			item = gin.H{
				"type":        "modifier",
				"name":        itemName(doc),
				"price_delta": metaFirst(md, "price", "price_delta"),
				"required":    md["required"],
				"score":       doc.Score,
			}
		case "hours":
			item = gin.H{
				"type":        "hours",
				"day_of_week": md["day_of_week"],
				"open_time":   md["open_time"],
				"close_time":  md["close_time"],
				"is_closed":   md["is_closed"],
				"score":       doc.Score,
			}
		case "zones":
			item = gin.H{
				"type":         "zone",
				"zone_name":    metaFirst(md, "name", "zone_name"),
				"delivery_fee": metaFirst(md, "fee", "delivery_fee"),
				"score":        doc.Score,
			}
		default:
			itemType := metaFirst(md, "category", "type")
			if itemType == nil {
				itemType = "unknown"
			}
			item = gin.H{
				"type":  itemType,
				"name":  itemName(doc),
				"score": doc.Score,
			}
		}
		items = append(items, item)
	}
	return items
}
