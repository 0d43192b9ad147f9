package bot

import (
	"context"

	"workout-plan-bot/internal/conversation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// Обработка сообщения здесь
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	chatID := message.Chat.ID

	lock := b.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	in := b.classifier.Classify(message.Text)
	in.UserID = int64(message.From.ID)
	in.Name = message.From.FirstName

	b.log.Debug("message",
		zap.Int64("user_id", in.UserID),
		zap.String("username", message.From.UserName),
		zap.Stringer("kind", in.Kind))

	for _, reply := range b.machine.Handle(ctx, in) {
		b.send(chatID, reply)
	}
}

func (b *Bot) send(chatID int64, reply conversation.Reply) {
	chunks := splitText(reply.Text, maxMessageLength)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		// клавиатура прикрепляется к последней части
		if i == len(chunks)-1 {
			if markup := replyMarkup(reply); markup != nil {
				msg.ReplyMarkup = markup
			}
		}
		if _, err := b.api.Send(msg); err != nil {
			b.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}
	}
}
