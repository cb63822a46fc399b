package bot

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"github.com/paperforge/paperforge/internal/access"
	"github.com/paperforge/paperforge/internal/extract"
	"github.com/paperforge/paperforge/internal/history"
)

// Counter exposes the extraction tally for /status.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

var _ Counter = (*history.EventRepo)(nil)

type Options struct {
	Token      string
	OwnerID    int64
	PlanLabel  string
	ExtractTTL time.Duration // upper bound for one extraction attempt
}

// Bot is the Telegram front-end. All domain work is delegated to the
// extraction service; the bot owns only conversation state and access checks.
type Bot struct {
	tb     *tele.Bot
	svc    *extract.Service
	acl    access.Store
	events Counter
	opts   Options
	state  *stateManager
	log    *logrus.Entry
}

func New(opts Options, svc *extract.Service, acl access.Store, events Counter) (*Bot, error) {
	if opts.ExtractTTL <= 0 {
		opts.ExtractTTL = 50 * time.Second
	}
	tb, err := tele.NewBot(tele.Settings{
		Token:  opts.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}
	b := &Bot{
		tb:     tb,
		svc:    svc,
		acl:    acl,
		events: events,
		opts:   opts,
		state:  newStateManager(),
		log:    logrus.WithField("component", "bot"),
	}
	b.routes()
	return b, nil
}

func (b *Bot) routes() {
	b.tb.Handle("/start", b.onStart, b.requireAccess)
	b.tb.Handle("/status", b.onStatus, b.requireAccess)
	b.tb.Handle("/info", b.onInfo, b.requireAccess)
	b.tb.Handle("/extract", b.onExtract, b.requireAccess)
	b.tb.Handle("/au", b.onAuthorize, b.ownerOnly)
	b.tb.Handle("/ru", b.onRevoke, b.ownerOnly)
	b.tb.Handle("/send", b.onBroadcast, b.ownerOnly)
	b.tb.Handle(tele.OnText, b.onText, b.requireAccess)
}

// Start blocks polling for updates until Stop.
func (b *Bot) Start() {
	b.log.Info("bot started")
	b.tb.Start()
}

func (b *Bot) Stop() { b.tb.Stop() }

func (b *Bot) requireAccess(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		ok, err := b.acl.IsAuthorized(context.Background(), userID)
		if err != nil {
			b.log.WithError(err).WithField("user_id", userID).Error("access check failed")
			return c.Send("⚠️ Something went wrong. Try again later.")
		}
		if !ok {
			return c.Send("❌ Access Denied. You are not authorized to use this bot.")
		}
		return next(c)
	}
}

func (b *Bot) ownerOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender().ID != b.opts.OwnerID {
			return c.Send("🚫 Only the bot owner can use this command.")
		}
		return next(c)
	}
}
