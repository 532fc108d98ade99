package handlers

import (
	"encoding/json"
	"strings"
)

// toolCategories maps Vapi function-tool names to content categories
var toolCategories = map[string]string{
	"get_menu_info":      "menu",
	"get_modifiers_info": "modifiers",
	"get_hours_info":     "hours",
	"get_zones_info":     "zones",
}

// vapiPhoneValue appears either as a bare string or as an object carrying
// the number under "number" or "phoneNumber"
type vapiPhoneValue struct {
	number string
}

func (v *vapiPhoneValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.number = s
		return nil
	}
	var obj struct {
		Number      string `json:"number"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Number != "" {
			v.number = obj.Number
		} else {
			v.number = obj.PhoneNumber
		}
	}
	// Unknown shapes are ignored rather than rejected
	return nil
}

type vapiToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type vapiToolCall struct {
	ID       string                `json:"id"`
	Type     string                `json:"type"`
	Function *vapiToolCallFunction `json:"function"`
}

type vapiFunctionCall struct {
	Parameters struct {
		Query string `json:"query"`
	} `json:"parameters"`
}

type vapiCall struct {
	PhoneNumber      *vapiPhoneValue `json:"phoneNumber"`
	PhoneNumberSnake *vapiPhoneValue `json:"phone_number"`
}

type vapiMessage struct {
	Type             string            `json:"type"`
	FunctionCall     *vapiFunctionCall `json:"functionCall"`
	ToolCalls        []vapiToolCall    `json:"toolCalls"`
	PhoneNumber      *vapiPhoneValue   `json:"phoneNumber"`
	PhoneNumberSnake *vapiPhoneValue   `json:"phone_number"`
	Call             *vapiCall         `json:"call"`
}

// vapiWebhookRequest tolerates the several payload shapes Vapi sends for
// assistant requests and function-tool calls
type vapiWebhookRequest struct {
	Query    string                   `json:"query"`
	Message  *vapiMessage             `json:"message"`
	Messages []map[string]interface{} `json:"messages"`
	Metadata map[string]interface{}   `json:"metadata"`
}

// extractQuery finds the tool query across payload shapes: a top-level
// query, a legacy functionCall, toolCalls with object or JSON-string
// arguments, or the last chat message content
func (r *vapiWebhookRequest) extractQuery() string {
	if r.Query != "" {
		return r.Query
	}
	if r.Message != nil {
		if r.Message.FunctionCall != nil && r.Message.FunctionCall.Parameters.Query != "" {
			return r.Message.FunctionCall.Parameters.Query
		}
		for _, tc := range r.Message.ToolCalls {
			if tc.Function == nil || len(tc.Function.Arguments) == 0 {
				continue
			}
			if q := queryFromArguments(tc.Function.Arguments); q != "" {
				return q
			}
		}
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if content, ok := r.Messages[i]["content"].(string); ok && content != "" {
			return content
		}
	}
	return ""
}

// queryFromArguments decodes tool-call arguments, which arrive as a JSON
// object or as a JSON string containing one
func queryFromArguments(raw json.RawMessage) string {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(raw, &args); err == nil && args.Query != "" {
		return args.Query
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &args); err == nil {
			return args.Query
		}
	}
	return ""
}

func (r *vapiWebhookRequest) extractToolCallID() string {
	if r.Message == nil {
		return ""
	}
	for _, tc := range r.Message.ToolCalls {
		if tc.ID != "" {
			return tc.ID
		}
	}
	return ""
}

func (r *vapiWebhookRequest) extractToolName() string {
	if r.Message == nil {
		return ""
	}
	for _, tc := range r.Message.ToolCalls {
		if tc.Function != nil && tc.Function.Name != "" {
			return tc.Function.Name
		}
	}
	return ""
}

func (r *vapiWebhookRequest) extractRestaurantID() string {
	if id, ok := r.Metadata["restaurant_id"].(string); ok {
		return strings.TrimSpace(id)
	}
	return ""
}

// extractPhoneNumber finds the called number, checking the message first
// and falling back to the nested call object
func (r *vapiWebhookRequest) extractPhoneNumber() string {
	if r.Message == nil {
		return ""
	}
	for _, v := range []*vapiPhoneValue{r.Message.PhoneNumber, r.Message.PhoneNumberSnake} {
		if v != nil && v.number != "" {
			return v.number
		}
	}
	if r.Message.Call != nil {
		for _, v := range []*vapiPhoneValue{r.Message.Call.PhoneNumber, r.Message.Call.PhoneNumberSnake} {
			if v != nil && v.number != "" {
				return v.number
			}
		}
	}
	return ""
}
