// Package runtime provides the application runtime context for encore.
package runtime

import (
	"context"
	"time"

	"github.com/manav03panchal/encore/internal/account"
	"github.com/manav03panchal/encore/internal/config"
	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/form"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/output"
	"github.com/manav03panchal/encore/internal/playlist"
	"github.com/manav03panchal/encore/internal/settings"
	"github.com/manav03panchal/encore/internal/storage"
	"github.com/manav03panchal/encore/internal/theme"
)

// MemoryPath is the storage path that keeps everything in memory.
const MemoryPath = ":memory:"

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter
	Theme     *theme.Context
	Log       *logging.ContextLogger

	// Domain services
	Playlist  *playlist.Store
	Navigator *nav.Navigator
	Accounts  *account.Service
	Settings  *settings.Service

	// Drafts
	ProfileDraft *form.ProfileDraft
	SignupDraft  *form.SignupDraft

	// Debug mode
	Debug bool

	now func() time.Time
}

// Options configures the runtime context.
type Options struct {
	// Config supplies defaults. Nil loads config.FilePaths.
	Config *config.RuntimeConfig
	// DBPath overrides the configured storage path.
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
	// Command is the CLI command being run, used in log records.
	Command string
	// Now is the clock. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context. It opens the database and hydrates
// the playlist, navigation stack and form drafts from it.
func New(opts Options) (*Context, error) {
	if opts.Debug {
		logging.InitDebug()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(config.FilePaths()...)
		if err != nil {
			return nil, err
		}
	}

	reqCtx := logging.WithCommand(logging.NewRequestContext(), opts.Command)
	log := logging.FromContext(reqCtx)

	db, err := openDB(cfg, opts)
	if err != nil {
		return nil, err
	}

	store := playlist.NewStore(db, playlist.Options{
		HistoryLimit: cfg.Playlist.HistoryLimit,
		Now:          opts.Now,
	})
	store.Hydrate()

	navigator := nav.NewNavigator(db)
	navigator.Hydrate()

	settingsSvc := settings.NewService(db)
	current, err := settingsSvc.Get()
	if err != nil {
		log.Warn("failed to load settings, using defaults", logging.KeyError, err)
		current = nil
	}
	th := theme.FromSettings(current)

	profileDraft := form.NewProfileDraft(db)
	profileDraft.Load()
	signupDraft := form.NewSignupDraft(db, opts.Now)
	signupDraft.Load()

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	formatter.Theme = th

	log.Debug("runtime ready",
		logging.KeyKey, db.Path(),
		logging.KeyCount, len(store.State().Songs),
		logging.KeyRoute, navigator.Current())

	return &Context{
		Config:       cfg,
		DB:           db,
		Formatter:    formatter,
		Theme:        th,
		Log:          log,
		Playlist:     store,
		Navigator:    navigator,
		Accounts:     account.NewService(db, navigator, cfg.Login.BcryptCost),
		Settings:     settingsSvc,
		ProfileDraft: profileDraft,
		SignupDraft:  signupDraft,
		Debug:        opts.Debug,
		now:          opts.Now,
	}, nil
}

// openDB resolves the storage location. Options win over the config file,
// ":memory:" selects an in-memory database and an empty path selects the
// XDG data directory.
func openDB(cfg *config.RuntimeConfig, opts Options) (*storage.DB, error) {
	path := cfg.Storage.Path
	if opts.DBPath != "" {
		path = opts.DBPath
	}

	inMemory := opts.InMemory || path == MemoryPath
	if path == "" {
		path = storage.DefaultPath()
	}
	if inMemory {
		path = ""
	}

	db, err := storage.Open(storage.Options{
		Path:         path,
		InMemory:     inMemory,
		MinFreeSpace: cfg.Storage.MinFreeSpace,
	})
	if err != nil && storage.IsDatabaseCorrupted(err) {
		return nil, errors.NewSystemErrorWithOp("open", "cannot open database at "+path, errors.ErrDatabaseCorrupted)
	}
	return db, err
}

// Close waits for pending playlist writes and closes the database. Calling
// it again is a no-op.
func (c *Context) Close() error {
	if c.Playlist != nil {
		c.Playlist.Flush()
	}
	if c.DB == nil {
		return nil
	}
	err := c.DB.Close()
	c.DB = nil
	return err
}

// Now returns the current time from the context clock.
func (c *Context) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Request returns the context carrying the request ID for this invocation.
func (c *Context) Request() context.Context {
	if c.Log == nil {
		return context.Background()
	}
	return c.Log.Context()
}

// Status summarizes the current screen, account and playlist.
func (c *Context) Status() output.Status {
	st := c.Playlist.State()
	s := output.Status{
		Route:        c.Navigator.Current(),
		Songs:        len(st.Songs),
		Undo:         len(st.Past),
		Redo:         len(st.Future),
		HistoryLimit: c.Config.Playlist.HistoryLimit,
	}
	if session, _, err := c.Accounts.Current(); err == nil {
		s.Username = session.Username
	}
	return s
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	f := output.NewCLIFormatter(c.Formatter)
	f.Now = c.Now
	return f
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
