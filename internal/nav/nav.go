// Package nav turns named destinations into browser navigations.
package nav

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Destination names a view the user can be sent to.
type Destination string

// Chats is the chat session list.
const Chats Destination = "chats"

// ErrUnknownDestination is returned when no URL is configured for a destination.
var ErrUnknownDestination = errors.New("unknown destination")

// Navigator performs a transition to a destination.
type Navigator interface {
	Navigate(w http.ResponseWriter, r *http.Request, dest Destination) error
}

// Redirector navigates by answering with a 303 redirect. HTMX requests
// also get an HX-Redirect header so the client follows it.
type Redirector struct {
	routes map[Destination]string
}

// NewRedirector creates a Redirector for the given destination URLs.
func NewRedirector(routes map[Destination]string) *Redirector {
	r := &Redirector{routes: make(map[Destination]string, len(routes))}
	for dest, url := range routes {
		r.routes[dest] = strings.TrimSpace(url)
	}
	return r
}

// Navigate writes the redirect. Nothing is written when it returns an error.
func (n *Redirector) Navigate(w http.ResponseWriter, r *http.Request, dest Destination) error {
	url := n.routes[dest]
	if url == "" {
		return fmt.Errorf("navigate to %q: %w", dest, ErrUnknownDestination)
	}
	if strings.EqualFold(r.Header.Get("HX-Request"), "true") {
		w.Header().Set("Location", url)
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusSeeOther)
		return nil
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
	return nil
}

// BestEffort is the handler for navigation failures: it drops them.
// Callers route the result of Navigate through it so the discard is
// visible at the call site.
func BestEffort(error) {}
