package bot

import (
	"context"
	"fmt"
	"sync"

	"workout-plan-bot/internal/conversation"
	"workout-plan-bot/internal/models/config"
	"workout-plan-bot/pkg/locales"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

type Bot struct {
	api        *tgbotapi.BotAPI
	machine    *conversation.Machine
	classifier *Classifier
	log        *zap.Logger

	chatLocks map[int64]*sync.Mutex // chatID -> lock
	mu        sync.Mutex

	done chan struct{}
	wg   sync.WaitGroup
}

func NewBot(cfg config.BotConfig, machine *conversation.Machine, text *locales.Locales, log *zap.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN не установлен в конфигурации")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Debug

	log.Info("bot initialized", zap.String("username", api.Self.UserName), zap.Bool("debug", cfg.Debug))

	return &Bot{
		api:        api,
		machine:    machine,
		classifier: NewClassifier(text),
		log:        log,
		chatLocks:  make(map[int64]*sync.Mutex),
		done:       make(chan struct{}),
	}, nil
}

// Start запускает long polling и сразу возвращается.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	b.log.Info("polling updates", zap.String("username", b.api.Self.UserName))

	b.wg.Add(1)
	go b.run(updates)
	return nil
}

func (b *Bot) run(updates tgbotapi.UpdatesChannel) {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}

			b.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(context.Background(), message)
			}(update.Message)
		}
	}
}

// Stop прекращает получение обновлений и ждёт обработки уже принятых сообщений.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	close(b.done)
	b.wg.Wait()
}

// chatLock сериализует сообщения одного чата.
func (b *Bot) chatLock(chatID int64) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()

	lock, ok := b.chatLocks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		b.chatLocks[chatID] = lock
	}
	return lock
}

// Notify отправляет сообщение пользователю вне диалога (напоминания).
// В личном чате chatID совпадает с ID пользователя.
func (b *Bot) Notify(_ context.Context, userID int64, text string) error {
	for _, chunk := range splitText(text, maxMessageLength) {
		if _, err := b.api.Send(tgbotapi.NewMessage(userID, chunk)); err != nil {
			return fmt.Errorf("notify user %d: %w", userID, err)
		}
	}
	return nil
}
