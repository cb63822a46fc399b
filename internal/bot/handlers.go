package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	tele "gopkg.in/telebot.v3"

	"github.com/paperforge/paperforge/internal/extract"
	"github.com/paperforge/paperforge/internal/quiz"
)

const helpText = `🤖 *Test Paper Extractor*

Commands:
• /extract - Extracts and sends all 3 HTML formats for a given CODE.
• /status - Shows bot status, usage, and plan.
• /info <code> - Gives info about test title, display name, syllabus.
• /au <user_id> - Authorize a user (owner only).
• /ru <user_id> - Revoke a user (owner only).`

func (b *Bot) onStart(c tele.Context) error {
	return c.Send(helpText, tele.ModeMarkdown)
}

func (b *Bot) onStatus(c tele.Context) error {
	ctx := context.Background()

	var papers int64
	if b.events != nil {
		if n, err := b.events.Count(ctx); err == nil {
			papers = n
		}
	}
	users, _ := b.acl.Count(ctx)

	var cpuPct, ramPct float64
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		cpuPct = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		ramPct = vm.UsedPercent
	}

	msg := fmt.Sprintf(`📊 *Bot Status*

📄 Extracted Papers: *%d*
🧠 CPU Usage: *%.1f%%*
💾 RAM Usage: *%.1f%%*
👥 Authorized Users: *%d*
🪪 Plan: *%s*`, papers, cpuPct, ramPct, users, b.opts.PlanLabel)
	return c.Send(msg, tele.ModeMarkdown)
}

func (b *Bot) onInfo(c tele.Context) error {
	testID := strings.TrimSpace(c.Message().Payload)
	if testID == "" {
		return c.Send("❌ Please provide a CODE. Example: /info 4382000229")
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.opts.ExtractTTL)
	defer cancel()

	info, err := b.svc.Info(ctx, testID)
	if err != nil {
		b.log.WithError(err).WithField("test_id", testID).Error("info fetch failed")
		return c.Send(fmt.Sprintf("❌ Failed to fetch info for CODE %s.", testID))
	}

	var sb strings.Builder
	sb.WriteString("*📘 CODE Info*\n\n")
	sb.WriteString(fmt.Sprintf("*📝 Title:* %s\n", escapeMarkdown(info.Title)))
	sb.WriteString(fmt.Sprintf("*📛 Display Name:* %s\n", escapeMarkdown(info.DisplayName)))
	sb.WriteString(fmt.Sprintf("*🟢 Test Opens:* %s\n", escapeMarkdown(scalarToIST(info.QuizOpen.String()))))
	sb.WriteString(fmt.Sprintf("*🔴 Test Closes:* %s\n\n", escapeMarkdown(scalarToIST(info.QuizClose.String()))))

	entries := quiz.ParseSyllabus(info.Description)
	if len(entries) == 0 {
		sb.WriteString("*📚 Syllabus:*\n>Not on Server")
	} else {
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("*%s*\n>%s\n\n", escapeMarkdown(e.Subject), escapeMarkdown(e.Content)))
		}
	}
	return c.Send(strings.TrimSpace(sb.String()), tele.ModeMarkdownV2)
}

func scalarToIST(s string) string {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts == 0 {
		return "N/A"
	}
	return unixToIST(ts)
}

func (b *Bot) onExtract(c tele.Context) error {
	b.state.set(c.Sender().ID, stateAwaitCode)
	return c.Send("🔢 Please send the CODE to extract:")
}

func (b *Bot) onText(c tele.Context) error {
	userID := c.Sender().ID
	if b.state.get(userID) != stateAwaitCode {
		return nil
	}
	return b.handleCode(c, userID, strings.TrimSpace(c.Text()))
}

func (b *Bot) handleCode(c tele.Context, userID int64, testID string) error {
	if !extract.ValidTestID(testID) {
		return c.Send("❌ Invalid CODE. Please Recheck.")
	}
	b.state.clear(userID)

	if err := c.Send("🔍 Extracting data and generating HTMLs..."); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.opts.ExtractTTL)
	defer cancel()

	res, err := b.svc.Extract(ctx, userID, testID)
	if err != nil {
		b.log.WithError(err).WithFields(map[string]interface{}{
			"user_id": userID, "test_id": testID,
		}).Error("extraction failed")
		if errors.Is(err, quiz.ErrNoQuestions) {
			return c.Send("⚠️ No valid data found for this CODE.")
		}
		return c.Send("⚠️ Extraction failed. Please try again later.")
	}

	album := make(tele.Album, 0, len(res.Documents))
	for _, d := range res.Documents {
		album = append(album, &tele.Document{
			File:     tele.FromReader(strings.NewReader(d.HTML)),
			FileName: d.Filename,
		})
	}
	if err := c.SendAlbum(album); err != nil {
		b.log.WithError(err).Error("album send failed")
		return c.Send("⚠️ Could not deliver the documents.")
	}
	return c.Send("✅ All HTML files sent!")
}

func (b *Bot) onAuthorize(c tele.Context) error {
	userID, err := strconv.ParseInt(strings.TrimSpace(c.Message().Payload), 10, 64)
	if err != nil {
		return c.Send("❌ Invalid usage. Example: /au 123456789")
	}
	if err := b.acl.Authorize(context.Background(), userID, b.opts.OwnerID); err != nil {
		b.log.WithError(err).Error("authorize failed")
		return c.Send("⚠️ Could not authorize that user.")
	}
	return c.Send(fmt.Sprintf("✅ User ID %d authorized.", userID))
}

func (b *Bot) onRevoke(c tele.Context) error {
	userID, err := strconv.ParseInt(strings.TrimSpace(c.Message().Payload), 10, 64)
	if err != nil {
		return c.Send("❌ Invalid usage. Example: /ru 123456789")
	}
	if userID == b.opts.OwnerID {
		return c.Send("🚫 You cannot revoke yourself.")
	}
	if err := b.acl.Revoke(context.Background(), userID); err != nil {
		b.log.WithError(err).Error("revoke failed")
		return c.Send("⚠️ Could not revoke that user.")
	}
	return c.Send(fmt.Sprintf("🗑️ User ID %d revoked.", userID))
}

func (b *Bot) onBroadcast(c tele.Context) error {
	code := strings.TrimSpace(c.Message().Payload)
	if code == "" {
		return c.Send("❌ Usage: /send <code>")
	}

	entries, err := b.acl.List(context.Background())
	if err != nil {
		b.log.WithError(err).Error("list users failed")
		return c.Send("⚠️ Could not load the user list.")
	}
	if len(entries) == 0 {
		return c.Send("⚠️ No authorized users to send to.")
	}

	msg := fmt.Sprintf("👋 Hey there! Here is an extraction code:\n`%s`", code)
	success, fail := 0, 0
	for _, e := range entries {
		if _, err := b.tb.Send(&tele.User{ID: e.UserID}, msg, tele.ModeMarkdown); err != nil {
			b.log.WithError(err).WithField("user_id", e.UserID).Warn("broadcast send failed")
			fail++
			continue
		}
		success++
	}
	return c.Send(fmt.Sprintf("📤 Sent to %d user(s). ❌ Failed for %d user(s).", success, fail))
}
