package reporter

import (
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/models"
)

// TelegramReporter pushes a per-run summary of the produced document to a
// chat, so a blocked source gets noticed without reading logs.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendRunSummary formats one line per country plus a provenance marker, so
// synthetic data is visible at a glance.
func (t *TelegramReporter) SendRunSummary(doc models.ScrapeDocument) error {
	names := make([]string, 0, len(doc.Countries))
	for name := range doc.Countries {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>Job market scrape</b> (%s)\n", doc.LastUpdated)
	for _, name := range names {
		r := doc.Countries[name]
		marker := "✅"
		if r.Provenance != models.ProvenanceLive {
			marker = "🎲"
		}
		fmt.Fprintf(&b, "%s <b>%s</b>: 24h %d · 7d %d · 30d %d · remote %d / on-site %d (%s)\n",
			marker, name, r.Last24h, r.Last7d, r.Last30d, r.Remote, r.OnSite, r.Provenance)
	}
	return t.SendMessage(b.String())
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>JobPulse Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
