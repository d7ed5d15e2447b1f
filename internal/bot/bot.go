package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/assistant"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/datasource"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

// DataSource is the part of the data-access layer the bot renders.
type DataSource interface {
	LoadPresaleOverview(ctx context.Context) datasource.PresaleOverview
	Projects(ctx context.Context) []models.Project
	Changelog(ctx context.Context, f models.ChangelogFilter) models.ChangelogPage
}

type Bot struct {
	api      *tgbotapi.BotAPI
	data     DataSource
	answerer assistant.Answerer
	logger   *zap.Logger

	mutex            sync.RWMutex
	refreshInterval  time.Duration
	lastRefresh      time.Time
	cachedPresaleMsg string
}

func New(token string, data DataSource, answerer assistant.Answerer, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return newBot(api, data, answerer, log), nil
}

func newBot(api *tgbotapi.BotAPI, data DataSource, answerer assistant.Answerer, log *zap.Logger) *Bot {
	return &Bot{
		api:             api,
		data:            data,
		answerer:        answerer,
		logger:          logger.OrNop(log),
		refreshInterval: time.Minute,
	}
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	b.logger.Info("authorized", zap.String("account", b.api.Self.UserName))

	b.refreshPresale(ctx)
	go b.startRefreshTicker(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.handleUpdates(ctx, updates)
}

func (b *Bot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		text := b.reply(ctx, update.Message.Command(), update.Message.CommandArguments())
		if text == "" {
			continue
		}
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, text)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Warn("send failed", zap.Int64("chat_id", update.Message.Chat.ID), zap.Error(err))
		}
	}
}

// reply renders the response to a command. Unknown commands yield "".
func (b *Bot) reply(ctx context.Context, command, args string) string {
	switch command {
	case "start", "help":
		return helpText
	case "presale":
		return b.presaleMessage(ctx)
	case "tier":
		return formatTierLookup(args)
	case "tiers":
		return formatTierTable()
	case "projects":
		return formatProjects(b.data.Projects(ctx))
	case "changelog":
		return formatChangelog(b.data.Changelog(ctx, models.ChangelogFilter{PerPage: 5}))
	case "ask":
		return b.answer(ctx, args)
	}
	return ""
}

func (b *Bot) answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return "Usage: /ask <question>"
	}
	if b.answerer == nil {
		return noAnswer
	}
	answer, err := b.answerer.Answer(ctx, question)
	if err != nil {
		b.logger.Info("no answer", zap.String("question", question), zap.Error(err))
		return noAnswer
	}
	return "💬 " + answer
}

// presaleMessage serves the cached overview, refreshing it once it is older
// than the refresh interval.
func (b *Bot) presaleMessage(ctx context.Context) string {
	b.mutex.RLock()
	msg, fresh := b.cachedPresaleMsg, time.Since(b.lastRefresh) < b.refreshInterval
	b.mutex.RUnlock()
	if msg != "" && fresh {
		return msg
	}
	return b.refreshPresale(ctx)
}

func (b *Bot) startRefreshTicker(ctx context.Context) {
	ticker := time.NewTicker(b.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.refreshPresale(ctx)
		}
	}
}

func (b *Bot) refreshPresale(ctx context.Context) string {
	now := time.Now()
	msg := formatPresale(b.data.LoadPresaleOverview(ctx), now)

	b.mutex.Lock()
	b.cachedPresaleMsg = msg
	b.lastRefresh = now
	b.mutex.Unlock()

	b.logger.Debug("presale overview refreshed")
	return msg
}
