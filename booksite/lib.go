package booksite

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Site is the currently loaded config together with the page rendered from
// it. Every host gets the same bytes, so the page is rendered once per load.
type Site struct {
	fs     afero.Fs
	assets http.Handler

	mux    sync.RWMutex
	config *Config
	page   []byte
}

// NewSite reads config from fs and serves static files from assets.
func NewSite(fs afero.Fs, assets afero.Fs) *Site {
	return &Site{
		fs:     fs,
		assets: http.FileServer(afero.NewHttpFs(assets)),
	}
}

// Load rereads the config and rerenders the page. On error the previously
// loaded state is kept.
func (s *Site) Load() error {
	config, err := LoadConfig(s.fs, ConfigFile)
	if err != nil {
		return err
	}

	page, err := RenderBytes(config, config.Host(""))
	if err != nil {
		return err
	}

	s.mux.Lock()
	s.config = config
	s.page = page
	s.mux.Unlock()

	return nil
}

func (s *Site) Snapshot() (*Config, []byte) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return s.config, s.page
}

var ErrWatchUnsupported = errors.New("config watching requires the OS filesystem")

// Watch reloads the site whenever the config file changes. It blocks until
// ctx is done or the watcher fails. fsnotify sees only real paths, so the
// site must have been built on an *afero.OsFs.
func (s *Site) Watch(ctx context.Context) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return ErrWatchUnsupported
	}

	configDir := Env("CONFIG")
	if err := s.fs.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}

	defer watcher.Close()

	if err := watcher.Add(configDir); err != nil {
		return errors.Wrap(err, "failed to watch config directory")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != ConfigFile {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if err := s.Load(); err != nil {
					log.Printf("Failed to reload %s: %v", ConfigFile, err)
				} else {
					log.Printf("Reloaded %s", ConfigFile)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Printf("File watcher error: %v", err)
		}
	}
}
