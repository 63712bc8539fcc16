package v1alpha1

// Update is one inbound chat event: a text message or a button press
type Update struct {
	UserID       string `json:"user_id"`
	Text         string `json:"text,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// Button is an inline keyboard button. Data is sent back as CallbackData when pressed.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Reply is what the bot answers with
type Reply struct {
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons,omitempty"`
}

func textReply(text string) *Reply {
	return &Reply{Text: text}
}

func (r *Reply) withButtons(rows [][]Button) *Reply {
	r.Buttons = rows
	return r
}
