package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/citelint/pkg/style"
)

// PatternConfig is the on-disk shape of a custom pattern file. Styles
// map to lists of uncompiled regular expressions that are appended to
// the builtin pattern lists. Both YAML and JSON files are accepted.
type PatternConfig struct {
	InTextPatterns       map[string][]string `yaml:"in_text_patterns" json:"in_text_patterns"`
	FullCitationPatterns map[string][]string `yaml:"full_citation_patterns" json:"full_citation_patterns"`
}

// ValidationError describes a single problem in a pattern file.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects all problems found in a pattern file.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Validate checks every style name and expression in the config without
// touching any catalog.
func (pc *PatternConfig) Validate() error {
	var errs ValidationErrors
	validate := func(section string, patterns map[string][]string) {
		for name, exprs := range patterns {
			parsed, ok := style.Parse(name)
			if !ok || parsed == style.None {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.%s", section, name),
					Message: "unknown citation style",
				})
				continue
			}
			for i, expr := range exprs {
				if expr == "" {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("%s.%s[%d]", section, name, i),
						Message: "empty pattern",
					})
					continue
				}
				if _, err := compile(expr); err != nil {
					errs = append(errs, ValidationError{
						Field:   fmt.Sprintf("%s.%s[%d]", section, name, i),
						Message: fmt.Sprintf("invalid pattern: %v", err),
					})
				}
			}
		}
	}
	validate("in_text_patterns", pc.InTextPatterns)
	validate("full_citation_patterns", pc.FullCitationPatterns)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoadFile reads a custom pattern file and appends its patterns to the
// catalog. The whole file is validated and compiled first; a single bad
// entry rejects the file and leaves the catalog unchanged.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading pattern file: %w", err)
	}

	var config PatternConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	type addition struct {
		target style.Style
		cat    Category
		re     *regexp.Regexp
	}
	var additions []addition
	collect := func(cat Category, patterns map[string][]string) {
		for name, exprs := range patterns {
			parsed, _ := style.Parse(name)
			for _, expr := range exprs {
				re := mustCompile(expr)
				additions = append(additions, addition{target: parsed, cat: cat, re: re})
			}
		}
	}
	collect(CategoryInText, config.InTextPatterns)
	collect(CategoryFullCitation, config.FullCitationPatterns)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, add := range additions {
		switch add.cat {
		case CategoryInText:
			bucket := inTextBucket(add.target)
			c.inText[bucket] = append(c.inText[bucket], add.re)
		case CategoryFullCitation:
			fused := style.Fused(add.target)
			c.fullCitation[fused] = append(c.fullCitation[fused], add.re)
		}
	}
	return nil
}

// Watcher reloads a custom pattern file when it changes on disk.
type Watcher struct {
	catalog  *Catalog
	path     string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onError  func(error)
}

// Watch starts watching a custom pattern file for changes. Reload
// errors are reported through onError, which may be nil. Call Stop to
// release the watcher.
func (c *Catalog) Watch(path string, onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		catalog:  c,
		path:     path,
		watcher:  fw,
		stopChan: make(chan struct{}),
		onError:  onError,
	}

	go w.loop()

	// Watch the directory so editors that replace the file keep the
	// watch alive.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.catalog.LoadFile(w.path); err != nil && w.onError != nil {
				w.onError(err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// Stop ends the watch loop and closes the underlying watcher.
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.watcher.Close()
}
