package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FromTelegram приводит апдейт Telegram к Update.
// false означает, что апдейт не относится к боту (сообщения ботов, служебные апдейты).
func FromTelegram(u tgbotapi.Update) (Update, bool) {
	if cq := u.CallbackQuery; cq != nil {
		if cq.From == nil {
			return Update{}, false
		}

		upd := Update{
			Kind:     KindCallback,
			UserID:   cq.From.ID,
			Callback: &Callback{ID: cq.ID, Token: cq.Data},
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			ref := MessageRef{ChatID: cq.Message.Chat.ID, MessageID: cq.Message.MessageID}
			upd.ChatID = ref.ChatID
			upd.Callback.Message = &ref
		}
		return upd, true
	}

	msg := u.Message
	if msg == nil || msg.From == nil || msg.From.IsBot || msg.Chat == nil {
		return Update{}, false
	}

	upd := Update{
		Kind:   KindText,
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	}
	// прочие команды идут как обычный текст
	if msg.IsCommand() && msg.Command() == CommandStart {
		upd.Kind = KindCommand
		upd.Command = CommandStart
	}
	return upd, true
}

// TelegramResponder отправляет ответы через Bot API
type TelegramResponder struct {
	api *tgbotapi.BotAPI
}

func NewTelegramResponder(api *tgbotapi.BotAPI) *TelegramResponder {
	return &TelegramResponder{api: api}
}

func (r *TelegramResponder) Send(ctx context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	if _, err := r.api.Send(msg); err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	return nil
}

func (r *TelegramResponder) Edit(ctx context.Context, ref MessageRef, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		edit.ReplyMarkup = keyboard
	}

	if _, err := r.api.Send(edit); err != nil {
		return fmt.Errorf("edit message failed: %w", err)
	}
	return nil
}

func (r *TelegramResponder) Answer(ctx context.Context, callbackID, text string, alert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := tgbotapi.NewCallback(callbackID, text)
	cfg.ShowAlert = alert

	if _, err := r.api.Request(cfg); err != nil {
		return fmt.Errorf("answer callback failed: %w", err)
	}
	return nil
}
