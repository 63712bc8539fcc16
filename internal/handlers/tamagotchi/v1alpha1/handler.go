package v1alpha1

import (
	"context"
	"fmt"
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Dispatcher *Dispatcher
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Dispatcher == nil {
		return errors.InvalidArgument("dispatcher is required")
	}
	return nil
}

// Handler implements the BotService gRPC service
type Handler struct {
	dispatcher *Dispatcher
}

var _ BotServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{dispatcher: cfg.Dispatcher}, nil
}

// HandleUpdate runs one chat update through the dispatcher
func (h *Handler) HandleUpdate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	update, err := UpdateFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	reply, err := h.dispatcher.Handle(ctx, update)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := ReplyToStruct(reply)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// UpdateFromStruct reads {user_id, text, callback_data}. Chat platforms often use
// numeric user ids, so whole numbers are accepted for user_id.
func UpdateFromStruct(s *structpb.Struct) (*Update, error) {
	if s == nil {
		return nil, errors.InvalidArgument("request is required")
	}
	fields := s.GetFields()

	update := &Update{
		Text:         fields["text"].GetStringValue(),
		CallbackData: fields["callback_data"].GetStringValue(),
	}

	switch v := fields["user_id"].GetKind().(type) {
	case *structpb.Value_StringValue:
		update.UserID = strings.TrimSpace(v.StringValue)
	case *structpb.Value_NumberValue:
		if v.NumberValue != math.Trunc(v.NumberValue) {
			return nil, errors.InvalidArgumentf("user_id %v is not a whole number", v.NumberValue)
		}
		update.UserID = fmt.Sprintf("%d", int64(v.NumberValue))
	}

	if update.UserID == "" {
		return nil, errors.InvalidArgument("user_id is required")
	}
	return update, nil
}

// UpdateToStruct is the inverse of UpdateFromStruct, used by clients
func UpdateToStruct(u *Update) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		"user_id":       u.UserID,
		"text":          u.Text,
		"callback_data": u.CallbackData,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode update")
	}
	return s, nil
}

// ReplyToStruct encodes {text, buttons: [[{label, data}]]}
func ReplyToStruct(r *Reply) (*structpb.Struct, error) {
	rows := make([]any, 0, len(r.Buttons))
	for _, row := range r.Buttons {
		buttons := make([]any, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, map[string]any{
				"label": b.Label,
				"data":  b.Data,
			})
		}
		rows = append(rows, buttons)
	}

	s, err := structpb.NewStruct(map[string]any{
		"text":    r.Text,
		"buttons": rows,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode reply")
	}
	return s, nil
}

// ReplyFromStruct decodes a reply produced by ReplyToStruct
func ReplyFromStruct(s *structpb.Struct) *Reply {
	fields := s.GetFields()
	reply := &Reply{Text: fields["text"].GetStringValue()}

	for _, row := range fields["buttons"].GetListValue().GetValues() {
		var buttons []Button
		for _, b := range row.GetListValue().GetValues() {
			bf := b.GetStructValue().GetFields()
			buttons = append(buttons, Button{
				Label: bf["label"].GetStringValue(),
				Data:  bf["data"].GetStringValue(),
			})
		}
		reply.Buttons = append(reply.Buttons, buttons)
	}
	return reply
}
