package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/config"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/controllers"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/imagesource"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/keychain"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// imageLoader is satisfied by *imagesource.Loader.
type imageLoader interface {
	Load(ctx context.Context, ref string) ([]byte, error)
}

type App struct {
	config *config.Config
	log    logging.Logger

	out io.Writer

	reader *bufio.Reader

	tokens keychain.TokenStore
	images imageLoader

	auth       *controllers.AuthController
	items      *controllers.ItemsController
	collection *controllers.CollectionController
	groups     *controllers.GroupsController
	profile    *controllers.UserProfileController
	makers     *controllers.MakersController
}

// NewApp builds the whole client graph from c. Output goes to stdout and
// input is read from stdin.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	return newApp(c, log, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	tokens := keychain.NewFileStore(c.TokenFile, c.TokenPassphrase)
	if _, err := tokens.Load(); err != nil {
		log.Warn(context.Background(), "stored token is unreadable, continuing signed out",
			"path", tokens.Path(), "error", err)
	}

	hc, err := client.NewHTTPClient(client.Config{
		BaseURL: c.APIBaseURL,
		Tokens:  tokens,
		Logger:  log,
		Timeout: c.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}

	catalog := services.NewCatalogService(hc)

	a := &App{
		config: c,
		log:    log,
		out:    out,
		reader: bufio.NewReader(in),
		tokens: tokens,
		images: imagesource.New(imagesource.S3Config{
			Region:       c.S3Region,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			BaseEndpoint: c.S3BaseEndpoint,
		}),
		auth:       controllers.NewAuthController(services.NewAuthService(hc, tokens), tokens, log),
		items:      controllers.NewItemsController(catalog, log),
		collection: controllers.NewCollectionController(services.NewCollectionService(hc), log),
		groups:     controllers.NewGroupsController(services.NewGroupService(hc), log),
		profile:    controllers.NewUserProfileController(services.NewUserService(hc), log),
		makers:     controllers.NewMakersController(catalog, log),
	}
	a.auth.WatchUnauthorized(hc)

	return a, nil
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "pencilkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) refreshAuth() {
	a.auth.CheckAuthStatus()
}

func (a *App) getStatus() string {
	if !a.auth.IsAuthenticated() {
		return "(signed out)"
	}
	if u := a.auth.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return "(signed in)"
}

// failure turns a controller's error text into an error for the REPL.
func failure(c interface{ ErrorMessage() string }) error {
	if msg := c.ErrorMessage(); msg != "" {
		return errors.New(msg)
	}
	return nil
}
