// Package nav keeps the screen navigation stack. Screens are addressed by
// route path, the same paths the mobile app's router uses.
package nav

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/storage"
)

// Route paths.
const (
	RouteLogin       = "/(auth)/login"
	RouteSignup      = "/(auth)/signup"
	RouteProfileForm = "/profile-form"
	RoutePlaylist    = "/(tabs)/playlist"
	RouteSettings    = "/(tabs)/settings"
	RouteProfile     = "/(tabs)/profile"
	RouteMap         = "/(tabs)/map"
	RouteCamera      = "/(tabs)/camera"
	RouteShowcase    = "/(tabs)/ComponentShowcase"
)

// InitialRoute is where a fresh session starts.
const InitialRoute = RouteLogin

// Route is a navigable screen.
type Route struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	// Tab is true for screens in the bottom tab bar.
	Tab bool `json:"tab"`
}

// Routes lists every known screen.
var Routes = []Route{
	{Path: RouteLogin, Title: "Login"},
	{Path: RouteSignup, Title: "Sign Up"},
	{Path: RouteProfileForm, Title: "Profile Form"},
	{Path: RoutePlaylist, Title: "Playlist", Tab: true},
	{Path: RouteSettings, Title: "Settings", Tab: true},
	{Path: RouteProfile, Title: "Profile", Tab: true},
	{Path: RouteMap, Title: "Map", Tab: true},
	{Path: RouteCamera, Title: "Camera", Tab: true},
	{Path: RouteShowcase, Title: "Component Showcase", Tab: true},
}

// Lookup returns the route for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve turns user input into a route path. It accepts a full path, the
// last path segment or the title, ignoring case and dashes.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if _, ok := Lookup(input); ok {
		return input, nil
	}

	want := simplify(input)
	if want != "" {
		for _, r := range Routes {
			last := r.Path[strings.LastIndex(r.Path, "/")+1:]
			if simplify(last) == want || simplify(r.Title) == want {
				return r.Path, nil
			}
		}
	}

	return "", &errors.UserError{
		Message: "unknown route",
		Field:   "route",
		Value:   input,
		Cause:   errors.ErrInvalidRoute,
	}
}

func simplify(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", " ", "", "_", "", "/", "").Replace(s)
}

// Navigator is a stack of visited routes. The stack is never empty.
type Navigator struct {
	kv    storage.KV
	key   string
	stack []string
}

type persistedStack struct {
	Stack []string `json:"stack"`
}

// NewNavigator returns a navigator at InitialRoute.
func NewNavigator(kv storage.KV) *Navigator {
	return &Navigator{
		kv:    kv,
		key:   storage.KeyNavigation,
		stack: []string{InitialRoute},
	}
}

// Hydrate restores the persisted stack. Read failures, malformed data and
// stacks naming unknown routes are logged and leave the navigator at
// InitialRoute.
func (n *Navigator) Hydrate() {
	raw, ok, err := n.kv.GetItem(n.key)
	if err != nil {
		logging.Warn("failed to load navigation", logging.KeyKey, n.key, logging.KeyError, err)
		return
	}
	if !ok {
		return
	}

	var p persistedStack
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		logging.Warn("failed to decode navigation", logging.KeyKey, n.key, logging.KeyError, err)
		return
	}
	if len(p.Stack) == 0 {
		return
	}
	for _, route := range p.Stack {
		if _, known := Lookup(route); !known {
			logging.Warn("discarding navigation with unknown route", logging.KeyRoute, route)
			return
		}
	}
	n.stack = p.Stack
}

// Push opens route on top of the current screen.
func (n *Navigator) Push(route string) error {
	if err := check(route); err != nil {
		return err
	}
	n.stack = append(n.stack, route)
	logging.DebugLog("navigate", logging.KeyOperation, "push", logging.KeyRoute, route)
	n.save()
	return nil
}

// Replace swaps the whole stack for route, so Back cannot return to the
// previous screens.
func (n *Navigator) Replace(route string) error {
	if err := check(route); err != nil {
		return err
	}
	n.stack = []string{route}
	logging.DebugLog("navigate", logging.KeyOperation, "replace", logging.KeyRoute, route)
	n.save()
	return nil
}

// Back pops the current screen. It returns false, and does nothing, when
// there is no screen to go back to.
func (n *Navigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	logging.DebugLog("navigate", logging.KeyOperation, "back", logging.KeyRoute, n.Current())
	n.save()
	return true
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() string {
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the stack, bottom first.
func (n *Navigator) Stack() []string {
	out := make([]string, len(n.stack))
	copy(out, n.stack)
	return out
}

func check(route string) error {
	if _, ok := Lookup(route); !ok {
		return &errors.UserError{
			Message: fmt.Sprintf("unknown route %q", route),
			Field:   "route",
			Value:   route,
			Cause:   errors.ErrInvalidRoute,
		}
	}
	return nil
}

func (n *Navigator) save() {
	data, err := json.Marshal(persistedStack{Stack: n.stack})
	if err != nil {
		logging.Warn("failed to encode navigation", logging.KeyKey, n.key, logging.KeyError, err)
		return
	}
	if err := n.kv.SetItem(n.key, string(data)); err != nil {
		logging.Warn("failed to save navigation", logging.KeyKey, n.key, logging.KeyError, err)
	}
}
