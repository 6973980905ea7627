package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/harifurniture/internal/client/api"
	"github.com/dmitrijs2005/harifurniture/internal/client/config"
	"github.com/dmitrijs2005/harifurniture/internal/client/services"
	"github.com/dmitrijs2005/harifurniture/internal/client/session"
	"github.com/dmitrijs2005/harifurniture/internal/client/storage"
	"github.com/dmitrijs2005/harifurniture/internal/client/view"
	"github.com/dmitrijs2005/harifurniture/internal/client/visitor"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	visitorID string

	creds    *session.Credentials
	session  *session.Controller
	prompter *session.LoginPrompter

	catalog  services.CatalogService
	likes    services.LikeService
	orders   services.OrderService
	reviews  services.ReviewService
	contact  services.ContactService
	renderer *view.Renderer

	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	started  time.Time
	carousel *view.AdCarousel
	products *services.ProductsPage
}

// NewApp opens local storage at c.StoragePath and wires the client against
// c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing local storage", "path", c.StoragePath, "error", err)
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	app, err := newApp(ctx, c, logger, storage.NewSQLiteStore(db), storage.NewMemoryStore(), httpClient)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.db = db
	app.reader = bufio.NewReader(os.Stdin)
	app.out = os.Stdout
	app.renderer = view.NewRenderer(view.DefaultStyles())
	return app, nil
}

// newApp wires everything except the terminal. persistent survives
// restarts; sessionScoped lives as long as the process.
func newApp(ctx context.Context, c *config.Config, logger logging.Logger, persistent, sessionScoped storage.Store, httpClient api.HTTPClient) (*App, error) {
	visitorID, err := visitor.Ensure(ctx, persistent)
	if err != nil {
		return nil, err
	}

	creds := session.NewCredentials(persistent)
	client, err := api.NewClient(c.APIBaseURL, httpClient, creds)
	if err != nil {
		return nil, err
	}
	ctrl := session.NewController(client, creds, logger)
	client.OnUnauthorized(ctrl.HandleUnauthorized)

	return &App{
		config:    c,
		logger:    logger,
		visitorID: visitorID,
		creds:     creds,
		session:   ctrl,
		prompter:  session.NewLoginPrompter(ctrl, sessionScoped, c.LoginPromptDelay, logger),
		catalog:   services.NewCatalogService(client, visitorID, logger),
		likes:     services.NewLikeService(client, visitorID, ctrl),
		orders:    services.NewOrderService(client, ctrl),
		reviews:   services.NewReviewService(client, ctrl, logger),
		contact:   services.NewContactService(client, ctrl),
		renderer:  view.NewRenderer(view.PlainStyles()),
		out:       io.Discard,
		now:       time.Now,
		started:   time.Now(),
	}, nil
}

// Run restores the session, schedules the login prompt and blocks in the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := a.session.Subscribe(func(s session.State) {
		a.logger.Debug(ctx, "session changed",
			"signedIn", s.SignedIn(),
			"loginModal", s.LoginModalVisible,
			"profileModal", s.ProfileModalVisible,
			"phonePending", s.PhoneEntryPending)
	})
	defer unsubscribe()

	printlnFn(a.renderer.Title("Welcome to " + view.BusinessName + " (type 'help' for commands)"))
	a.session.Bootstrap(ctx)
	if u := a.session.State().User; u != nil {
		printlnFn(fmt.Sprintf("Signed in as %s", u.Name))
	}

	go func() {
		if a.prompter.Run(ctx) {
			printlnFn()
			printlnFn("Sign in to like, order and review products. Type 'login' to continue.")
		}
	}()

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "failed to close local storage", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().SignedIn()
}

func (a *App) getStatus() string {
	if u := a.session.State().User; u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return "(guest)"
}

// beforeCommand closes a login prompt the user walked away from. The phone
// step cannot be dismissed.
func (a *App) beforeCommand(cmd string) {
	st := a.session.State()
	if cmd != "login" && st.LoginModalVisible && !st.PhoneEntryPending {
		a.session.SetLoginModalVisible(false)
	}
}
