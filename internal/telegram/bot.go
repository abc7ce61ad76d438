package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lunch-planner/internal/config"
	"lunch-planner/internal/metrics"
	"lunch-planner/internal/planner"
	"lunch-planner/internal/weekly"
)

const (
	actionPick = "pick"
	actionDrop = "drop"

	requestTimeout = 30 * time.Second
	maxButtonLabel = 32
)

const helpText = "🍽 *Lunch Planner*\n\n" +
	"/week shows the menu of the coming weeks. Tap a dish to pick it for that day, tap it again to drop it."

// Messenger is the part of the Telegram API the bot talks through.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// WeekPlanner builds weekly views and edits the user's choices on them.
type WeekPlanner interface {
	Upcoming(ctx context.Context, userID string) (*weekly.View, error)
	Choose(ctx context.Context, userID string, option weekly.Option) (string, error)
	Clear(ctx context.Context, userID string, option weekly.Option) error
}

// Bot wraps the Telegram API and the Planner.
type Bot struct {
	api       *tgbotapi.BotAPI
	messenger Messenger
	planner   WeekPlanner
	users     map[int64]string
	adminID   int64
	dataPath  string
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, p *planner.Planner) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url %s: %w", cfg.TelegramWebhookURL, err)
	}
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	b := newBot(api, p, cfg)
	b.api = api
	return b, nil
}

func newBot(m Messenger, p WeekPlanner, cfg *config.Config) *Bot {
	return &Bot{
		messenger: m,
		planner:   p,
		users:     cfg.TelegramUsers,
		adminID:   cfg.AdminTelegramID,
		dataPath:  cfg.DatabasePath,
	}
}

// RegisterHandlers registers the webhook and health handlers on mux.
func (b *Bot) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/webhook", b.handleWebhook)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		b.handleUpdate(ctx, *update)
	}()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// userFor maps a Telegram account to an application user. Unknown accounts
// are logged and get no answer.
func (b *Bot) userFor(from *tgbotapi.User) (string, bool) {
	userID, ok := b.users[from.ID]
	if !ok {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", from.ID, from.UserName)
	}
	return userID, ok
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID, ok := b.userFor(msg.From)
	if !ok {
		return
	}

	switch command(msg.Text) {
	case "/week":
		b.sendWeek(ctx, msg.Chat.ID, userID)
	case "/status":
		b.handleStatusRequest(msg)
	default:
		b.send(markdownMessage(msg.Chat.ID, helpText))
	}
}

func (b *Bot) sendWeek(ctx context.Context, chatID int64, userID string) {
	view, err := b.planner.Upcoming(ctx, userID)
	if err != nil {
		log.Printf("Error building week for user %s: %v", userID, err)
		b.send(markdownMessage(chatID, errorText("loading the menu", err)))
		return
	}

	reply := markdownMessage(chatID, formatWeekMarkdown(view))
	if keyboard, ok := weekKeyboard(view); ok {
		reply.ReplyMarkup = keyboard
	}
	b.send(reply)
}

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID, ok := b.userFor(query.From)
	if !ok {
		return
	}

	action, lunchID, found := strings.Cut(query.Data, "|")
	if !found || (action != actionPick && action != actionDrop) || query.Message == nil {
		b.answer(query.ID, "")
		return
	}

	view, err := b.planner.Upcoming(ctx, userID)
	if err != nil {
		log.Printf("Error building week for user %s: %v", userID, err)
		b.answer(query.ID, "Could not load the menu, try again later.")
		return
	}
	option, ok := view.Option(lunchID)
	if !ok {
		b.answer(query.ID, "That dish is no longer on the menu.")
		return
	}

	if action == actionPick {
		_, err = b.planner.Choose(ctx, userID, option)
	} else {
		err = b.planner.Clear(ctx, userID, option)
	}
	switch {
	case errors.Is(err, planner.ErrNoSelection):
		b.answer(query.ID, "Nothing picked for that day.")
		return
	case errors.Is(err, planner.ErrNotSelectable):
		b.answer(query.ID, "That dish comes with the menu and cannot be picked.")
		return
	case err != nil:
		log.Printf("Error saving %s of lunch %s for user %s: %v", action, lunchID, userID, err)
		b.answer(query.ID, "Could not save your choice, try again later.")
		return
	}
	b.answer(query.ID, "Saved")

	view, err = b.planner.Upcoming(ctx, userID)
	if err != nil {
		log.Printf("Error refreshing week for user %s: %v", userID, err)
		return
	}
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, formatWeekMarkdown(view))
	edit.ParseMode = tgbotapi.ModeMarkdown
	if keyboard, ok := weekKeyboard(view); ok {
		edit.ReplyMarkup = &keyboard
	}
	b.send(edit)
}

func (b *Bot) handleStatusRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.adminID {
		b.send(markdownMessage(msg.Chat.ID, "⛔ *Access Denied*: Admin only."))
		return
	}
	b.send(markdownMessage(msg.Chat.ID, formatHealth(metrics.GetSysHealth(b.dataPath))))
}

func (b *Bot) answer(queryID, text string) {
	if _, err := b.messenger.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.messenger.Send(c); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func markdownMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

// command returns the leading /command of text without any @botname suffix.
func command(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	name, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(name)
}

func errorText(doing string, err error) string {
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	return fmt.Sprintf("❌ *Error %s:*\n```\n%v\n```", doing, safeErr)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatWeekMarkdown(view *weekly.View) string {
	if len(view.Weeks) == 0 {
		return "📭 No lunches on the menu yet."
	}

	var sb strings.Builder
	for i, w := range view.Weeks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("📅 *Week of %s*\n", w.WeekStart.Time().Format("02 Jan")))
		for _, d := range w.Days {
			sb.WriteString(fmt.Sprintf("\n*%s*\n", dayLabel(d.Date)))
			if len(d.Options) == 0 {
				sb.WriteString("_No lunch served_\n")
				continue
			}
			for _, o := range d.Options {
				mark := "•"
				if o.IsSelected {
					mark = "✅"
				}
				sb.WriteString(fmt.Sprintf("%s %s (%s)\n", mark, escape(o.Description), escape(o.Category)))
			}
		}
	}
	return sb.String()
}

// weekKeyboard has one button per selectable option. It reports false when
// there is nothing to pick.
func weekKeyboard(view *weekly.View) (tgbotapi.InlineKeyboardMarkup, bool) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, w := range view.Weeks {
		for _, d := range w.Days {
			for _, o := range d.Options {
				if !o.IsSelectable {
					continue
				}
				label := fmt.Sprintf("%s %s", d.Date.Weekday().String()[:3], truncate(o.Description, maxButtonLabel))
				data := actionPick + "|" + o.ID
				if o.IsSelected {
					label = "✅ " + label
					data = actionDrop + "|" + o.ID
				}
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, data)))
			}
		}
	}
	if len(rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

func dayLabel(d weekly.Date) string {
	return d.Time().Format("Monday 02 Jan")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func formatHealth(health metrics.SysHealth) string {
	var sb strings.Builder
	sb.WriteString("🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Uptime: %s\n", health.Uptime))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataSize))
	return sb.String()
}
