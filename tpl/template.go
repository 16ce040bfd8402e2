package tpl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync/atomic"

	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/ignisVeneficus/wifiportal/web"
)

const baseRoot = "templates"

// TemplateResolver holds one parsed set of every template, each named by its
// path relative to the template root (classes/display.html, ...). A custom
// root overrides the embedded defaults file by file.
type TemplateResolver struct {
	set      atomic.Pointer[template.Template]
	userRoot string
	funcMap  template.FuncMap
}

func collectTemplates(ctx context.Context, fsys fs.FS) (map[string]string, error) {
	logg := logging.Enter(ctx, "template.collect", nil)
	result := map[string]string{}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		result[path] = string(data)
		return nil
	})
	if err != nil {
		logging.ExitErr(logg, err)
	} else {
		logging.Exit(logg, "ok", map[string]any{"result": len(result)})
	}
	return result, err
}

func NewTemplateResolver(ctx context.Context, userRoot string, funcMaps ...template.FuncMap) (*TemplateResolver, error) {
	logg := logging.Enter(ctx, "template.resolver.create", map[string]any{"user_root": userRoot})

	merged := template.FuncMap{}
	for _, fm := range funcMaps {
		for k, v := range fm {
			merged[k] = v
		}
	}
	r := &TemplateResolver{userRoot: userRoot, funcMap: merged}
	if err := r.Reload(ctx); err != nil {
		logging.ExitErr(logg, err)
		return nil, err
	}
	logging.Exit(logg, "ok", nil)
	return r, nil
}

// Reload parses the templates again and swaps the set in one step; requests
// in flight keep the set they started with. On error the old set stays.
func (r *TemplateResolver) Reload(ctx context.Context) error {
	base, err := fs.Sub(web.Templates, baseRoot)
	if err != nil {
		return err
	}
	var custom fs.FS
	if r.userRoot != "" {
		custom = os.DirFS(r.userRoot)
	}
	set, err := parseSet(ctx, base, custom, r.funcMap)
	if err != nil {
		return err
	}
	r.set.Store(set)
	return nil
}

func parseSet(ctx context.Context, base, custom fs.FS, funcMap template.FuncMap) (*template.Template, error) {
	all, err := collectTemplates(ctx, base)
	if err != nil {
		return nil, err
	}
	if custom != nil {
		userTpls, err := collectTemplates(ctx, custom)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		for k, v := range userTpls {
			all[k] = v
		}
	}

	set := template.New("").Funcs(funcMap)
	for name, content := range all {
		if _, err := set.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
	}
	return set, nil
}

// Fetch renders a template into a string for embedding in another one.
func (r *TemplateResolver) Fetch(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.execute(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Display renders a template to w. Nothing is written when rendering fails.
func (r *TemplateResolver) Display(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.execute(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *TemplateResolver) execute(w io.Writer, name string, data any) error {
	set := r.set.Load()
	if set == nil || set.Lookup(name) == nil {
		return fmt.Errorf("template not found: %s", name)
	}
	return set.ExecuteTemplate(w, name, data)
}
