package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lunch-planner/internal/config"
	"lunch-planner/internal/planner"
	"lunch-planner/internal/weekly"
)

type MockMessenger struct {
	sent     []tgbotapi.Chattable
	answered []tgbotapi.CallbackConfig
}

func (m *MockMessenger) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	return tgbotapi.Message{}, nil
}

func (m *MockMessenger) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		m.answered = append(m.answered, cb)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type MockPlanner struct {
	view     *weekly.View
	err      error
	chosen   []weekly.Option
	cleared  []weekly.Option
	clearErr error
}

func (m *MockPlanner) Upcoming(ctx context.Context, userID string) (*weekly.View, error) {
	return m.view, m.err
}

func (m *MockPlanner) Choose(ctx context.Context, userID string, option weekly.Option) (string, error) {
	m.chosen = append(m.chosen, option)
	return "s1", nil
}

func (m *MockPlanner) Clear(ctx context.Context, userID string, option weekly.Option) error {
	m.cleared = append(m.cleared, option)
	return m.clearErr
}

func testView() *weekly.View {
	monday := weekly.NewDate(2024, time.March, 4)
	return &weekly.View{Weeks: []weekly.WeekGroup{{
		WeekStart: monday,
		Days: []weekly.DayGroup{
			{Date: monday, Options: []weekly.Option{
				{ID: "meat", Date: monday, Description: "Roast chicken", Category: "Meat", IsSelectable: true, IsSelected: true, SelectionRef: "s1"},
				{ID: "veg", Date: monday, Description: "Lentil_stew", Category: "Veg", IsSelectable: true, SelectionRef: "s1"},
				{ID: "side", Date: monday, Description: "Rice", Category: "Side", SelectionRef: "s1"},
			}},
			{Date: monday.AddDays(1), Options: []weekly.Option{}},
		},
	}}}
}

func newTestBot() (*Bot, *MockMessenger, *MockPlanner) {
	m := &MockMessenger{}
	p := &MockPlanner{view: testView()}
	cfg := &config.Config{TelegramUsers: map[int64]string{42: "user-1"}, AdminTelegramID: 7}
	return newBot(m, p, cfg), m, p
}

func messageUpdate(from int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: from},
		Chat: &tgbotapi.Chat{ID: 100},
		Text: text,
	}}
}

func callbackUpdate(from int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "q1",
		From:    &tgbotapi.User{ID: from},
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 100}},
		Data:    data,
	}}
}

func TestFormatWeekMarkdown(t *testing.T) {
	out := formatWeekMarkdown(testView())

	if !strings.Contains(out, "📅 *Week of 04 Mar*") {
		t.Error("Missing week header")
	}
	if !strings.Contains(out, "✅ Roast chicken (Meat)") {
		t.Error("Missing selected mark on Monday")
	}
	if !strings.Contains(out, `• Lentil\_stew (Veg)`) {
		t.Errorf("Expected escaped unselected dish, got:\n%s", out)
	}
	if !strings.Contains(out, "*Tuesday 05 Mar*\n_No lunch served_") {
		t.Error("Missing placeholder for empty day")
	}
	if got := formatWeekMarkdown(&weekly.View{}); !strings.Contains(got, "No lunches") {
		t.Errorf("Expected empty notice, got %q", got)
	}
}

func TestWeekKeyboard(t *testing.T) {
	keyboard, ok := weekKeyboard(testView())
	if !ok || len(keyboard.InlineKeyboard) != 2 {
		t.Fatalf("Expected 2 buttons for the selectable dishes, got %+v", keyboard)
	}
	selected := keyboard.InlineKeyboard[0][0]
	if selected.CallbackData == nil || *selected.CallbackData != "drop|meat" || !strings.HasPrefix(selected.Text, "✅ Mon") {
		t.Errorf("Unexpected button for the selected dish %+v", selected)
	}
	if data := keyboard.InlineKeyboard[1][0].CallbackData; data == nil || *data != "pick|veg" {
		t.Errorf("Expected pick|veg, got %v", data)
	}

	if _, ok := weekKeyboard(&weekly.View{}); ok {
		t.Error("Expected no keyboard for an empty view")
	}
}

func TestHandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownUserIgnored", func(t *testing.T) {
		b, m, _ := newTestBot()
		b.handleUpdate(ctx, messageUpdate(1, "/week"))
		if len(m.sent) != 0 {
			t.Errorf("Expected no reply, got %+v", m.sent)
		}
	})

	t.Run("Week", func(t *testing.T) {
		b, m, _ := newTestBot()
		b.handleUpdate(ctx, messageUpdate(42, "/week@LunchBot"))
		if len(m.sent) != 1 {
			t.Fatalf("Expected one reply, got %d", len(m.sent))
		}
		msg, ok := m.sent[0].(tgbotapi.MessageConfig)
		if !ok || msg.ReplyMarkup == nil || !strings.Contains(msg.Text, "Roast chicken") {
			t.Errorf("Expected week with keyboard, got %+v", m.sent[0])
		}
	})

	t.Run("WeekError", func(t *testing.T) {
		b, m, p := newTestBot()
		p.err = errors.New("api down")
		b.handleUpdate(ctx, messageUpdate(42, "/week"))
		msg, ok := m.sent[0].(tgbotapi.MessageConfig)
		if !ok || !strings.Contains(msg.Text, "api down") {
			t.Errorf("Expected error reply, got %+v", m.sent[0])
		}
	})

	t.Run("StatusAdminOnly", func(t *testing.T) {
		b, m, _ := newTestBot()
		b.handleUpdate(ctx, messageUpdate(42, "/status"))
		if msg := m.sent[0].(tgbotapi.MessageConfig); !strings.Contains(msg.Text, "Access Denied") {
			t.Errorf("Expected access denied, got %q", msg.Text)
		}
	})

	t.Run("Help", func(t *testing.T) {
		b, m, _ := newTestBot()
		b.handleUpdate(ctx, messageUpdate(42, "hello"))
		if msg := m.sent[0].(tgbotapi.MessageConfig); !strings.Contains(msg.Text, "/week") {
			t.Errorf("Expected help text, got %q", msg.Text)
		}
	})
}

func TestHandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Pick", func(t *testing.T) {
		b, m, p := newTestBot()
		b.handleUpdate(ctx, callbackUpdate(42, "pick|veg"))
		if len(p.chosen) != 1 || p.chosen[0].ID != "veg" || p.chosen[0].SelectionRef != "s1" {
			t.Fatalf("Expected veg to be chosen against s1, got %+v", p.chosen)
		}
		if len(m.answered) != 1 || m.answered[0].Text != "Saved" {
			t.Errorf("Expected Saved answer, got %+v", m.answered)
		}
		edit, ok := m.sent[0].(tgbotapi.EditMessageTextConfig)
		if !ok || edit.MessageID != 9 || edit.ReplyMarkup == nil {
			t.Errorf("Expected the week message to be re-rendered, got %+v", m.sent)
		}
	})

	t.Run("Drop", func(t *testing.T) {
		b, _, p := newTestBot()
		b.handleUpdate(ctx, callbackUpdate(42, "drop|meat"))
		if len(p.cleared) != 1 || p.cleared[0].ID != "meat" {
			t.Errorf("Expected meat to be cleared, got %+v", p.cleared)
		}
	})

	t.Run("DropWithoutSelection", func(t *testing.T) {
		b, m, p := newTestBot()
		p.clearErr = planner.ErrNoSelection
		b.handleUpdate(ctx, callbackUpdate(42, "drop|meat"))
		if len(m.answered) != 1 || !strings.Contains(m.answered[0].Text, "Nothing picked") || len(m.sent) != 0 {
			t.Errorf("Expected a notice and no re-render, got %+v, %+v", m.answered, m.sent)
		}
	})

	t.Run("UnknownLunch", func(t *testing.T) {
		b, m, p := newTestBot()
		b.handleUpdate(ctx, callbackUpdate(42, "pick|gone"))
		if len(p.chosen) != 0 || len(m.answered) != 1 || !strings.Contains(m.answered[0].Text, "no longer") {
			t.Errorf("Expected a notice, got %+v", m.answered)
		}
	})

	t.Run("UnknownUserIgnored", func(t *testing.T) {
		b, m, p := newTestBot()
		b.handleUpdate(ctx, callbackUpdate(1, "pick|veg"))
		if len(p.chosen) != 0 || len(m.answered) != 0 {
			t.Errorf("Expected nothing to happen, got %+v", m.answered)
		}
	})
}

func TestCommand(t *testing.T) {
	cases := map[string]string{
		"/week":            "/week",
		"/Week@LunchBot x": "/week",
		"week":             "",
		"":                 "",
	}
	for in, want := range cases {
		if got := command(in); got != want {
			t.Errorf("command(%q): expected %q, got %q", in, want, got)
		}
	}
}
