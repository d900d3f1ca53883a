package booksite

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
)

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	switch {
	case r.URL.Path == "/" || r.URL.Path == "/index.php":
		s.servePage(w, r)
	case strings.HasSuffix(r.URL.Path, "/"):
		// no directory listings
		http.NotFound(w, r)
	default:
		s.assets.ServeHTTP(w, r)
	}
}

func (s *Site) servePage(w http.ResponseWriter, r *http.Request) {
	config, page := s.Snapshot()
	if page == nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	host := config.Host(r.Host)
	Debugf("page for %q: group_name=%q domain=%q theme_root=%q", host.Name, host.GroupName, host.Domain, host.ThemeRoot)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(page)))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(page); err != nil {
		Debugf("write page for %q: %v", host.Name, err)
	}
}

// Handler wraps the site with panic recovery and a combined-format access
// log written to out.
func (s *Site) Handler(out io.Writer) http.Handler {
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(DebugEnabled()))

	return recovery(handlers.CombinedLoggingHandler(out, s))
}
