package bot

import (
	"strings"

	"workout-plan-bot/internal/conversation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Ограничение Telegram на длину сообщения, в символах
const maxMessageLength = 4096

func createKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	var buttons [][]tgbotapi.KeyboardButton

	for _, row := range rows {
		var line []tgbotapi.KeyboardButton
		for _, label := range row {
			line = append(line, tgbotapi.NewKeyboardButton(label))
		}
		buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(line...))
	}

	keyboard := tgbotapi.NewReplyKeyboard(buttons...)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// replyMarkup возвращает nil, если у ответа нет клавиатуры.
func replyMarkup(reply conversation.Reply) interface{} {
	switch {
	case len(reply.Keyboard) > 0:
		return createKeyboard(reply.Keyboard)
	case reply.RemoveKeyboard:
		return tgbotapi.NewRemoveKeyboard(true)
	}
	return nil
}

// splitText режет текст на части не длиннее limit символов, по возможности по строкам.
func splitText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		if i := lastNewline(runes[:limit]); i > 0 {
			cut = i
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == '\n' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func lastNewline(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i
		}
	}
	return -1
}
