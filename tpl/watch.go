package tpl

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the resolver whenever an .html file under the custom
// template root changes, until ctx is done. Used in development only.
func (r *TemplateResolver) Watch(ctx context.Context) error {
	if r.userRoot == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = filepath.WalkDir(r.userRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != r.userRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		w.Close()
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Create) {
					if d, err := filepath.Abs(ev.Name); err == nil && isDir(d) {
						_ = w.Add(ev.Name)
					}
				}
				if !strings.HasSuffix(ev.Name, ".html") {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if err := r.Reload(ctx); err != nil {
					log.Logger.Error().Err(err).Str("file", ev.Name).Msg("template reload failed")
					continue
				}
				log.Logger.Info().Str("file", ev.Name).Msg("templates reloaded")
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Logger.Warn().Err(err).Msg("template watcher")
			}
		}
	}()
	return nil
}
