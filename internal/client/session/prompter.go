package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/storage"
	"github.com/dmitrijs2005/harifurniture/internal/common"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
)

const DefaultLoginPromptDelay = 10 * time.Second

// LoginPrompter opens the login modal once per session for anonymous
// visitors, after a delay.
type LoginPrompter struct {
	controller *Controller
	flags      storage.Store
	delay      time.Duration
	logger     logging.Logger
}

// NewLoginPrompter uses flags (session-scoped storage) to remember that the
// prompt was already shown. A non-positive delay means DefaultLoginPromptDelay.
func NewLoginPrompter(c *Controller, flags storage.Store, delay time.Duration, logger logging.Logger) *LoginPrompter {
	if delay <= 0 {
		delay = DefaultLoginPromptDelay
	}
	return &LoginPrompter{controller: c, flags: flags, delay: delay, logger: logger.With("component", "login-prompter")}
}

// Run blocks until the prompt fires or ctx is done. It reports whether the
// login modal was opened.
func (p *LoginPrompter) Run(ctx context.Context) bool {
	if !p.eligible(ctx) {
		return false
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	if !p.eligible(ctx) {
		return false
	}
	p.controller.SetLoginModalVisible(true)
	if err := p.flags.Set(ctx, common.LoginPopupShownKey, "true"); err != nil {
		p.logger.Warn(ctx, "failed to record login prompt", "error", err)
	}
	return true
}

func (p *LoginPrompter) eligible(ctx context.Context) bool {
	st := p.controller.State()
	if st.IsLoading || st.SignedIn() {
		return false
	}
	_, shown, err := p.flags.Get(ctx, common.LoginPopupShownKey)
	if err != nil {
		p.logger.Warn(ctx, "failed to read login prompt flag", "error", err)
		return false
	}
	return !shown
}
