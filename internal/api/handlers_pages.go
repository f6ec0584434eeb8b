package api

import (
	"net/http"

	"github.com/dgallion1/ragview/internal/nav"
	"github.com/dgallion1/ragview/internal/sellingpoints"
	"github.com/dgallion1/ragview/internal/views"
)

func (s *Server) handleGettingStarted(w http.ResponseWriter, r *http.Request) {
	page := s.views.NewGettingStartedPage(sellingpoints.GettingStarted(), "/getting-started")
	s.render(w, http.StatusOK, views.PageGettingStarted, page)
}

// handleGetStarted sends the user to the chats view. Navigation is best
// effort: on failure the browser stays where it is and nothing is reported.
func (s *Server) handleGetStarted(w http.ResponseWriter, r *http.Request) {
	if err := s.navigator.Navigate(w, r, nav.Chats); err != nil {
		nav.BestEffort(err)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleNoKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.dataSourceID(w, r); !ok {
		return
	}
	page := s.views.NewNoKnowledgeBasePage(sellingpoints.NoKnowledgeBase())
	s.render(w, http.StatusOK, views.PageNoKnowledgeBase, page)
}
