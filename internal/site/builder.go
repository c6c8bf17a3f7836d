// Package site produces the static build: one index.html plus its assets,
// with every asset reference resolved against the configured base path.
package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/digital-allies/allies/internal/assets"
	"github.com/digital-allies/allies/internal/config"
	"github.com/digital-allies/allies/internal/panel"
	"github.com/digital-allies/allies/internal/progress"
)

// IndexFile is the document every build emits.
const IndexFile = "index.html"

// Builder writes the static build described by a Config.
type Builder struct {
	Config   *config.Config
	Reporter progress.Reporter
}

// NewBuilder creates a Builder that reports nothing.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{Config: cfg, Reporter: progress.Nop{}}
}

// Result describes a finished build.
type Result struct {
	OutputDir string
	// Files are slash-separated paths relative to OutputDir, in write order.
	Files []string
}

// Build renders the panel and writes it, the embedded assets and any public
// files into the output directory. A missing public directory is not an
// error. Generated files are written after public ones and win on conflict.
func (b *Builder) Build() (Result, error) {
	cfg := b.Config
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	content, err := panel.NewContent(cfg.Title, cfg.Description)
	if err != nil {
		return Result{}, err
	}

	publicFiles, err := collectPublic(cfg.PublicDir, cfg.PublicInclude, cfg.PublicExclude)
	if err != nil {
		return Result{}, fmt.Errorf("collecting public files: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	reporter := b.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	total := len(publicFiles) + len(assets.Names()) + 1
	reporter.Start(total)
	defer reporter.Finish()

	res := Result{OutputDir: cfg.OutputDir}
	step := func(rel string) {
		res.Files = append(res.Files, rel)
		reporter.Update(len(res.Files), rel)
	}

	for _, rel := range publicFiles {
		src := filepath.Join(cfg.PublicDir, filepath.FromSlash(rel))
		if err := copyFile(src, filepath.Join(cfg.OutputDir, filepath.FromSlash(rel))); err != nil {
			return res, fmt.Errorf("copying %s: %w", rel, err)
		}
		step(rel)
	}

	assetFS := assets.FS()
	for _, name := range assets.Names() {
		data, err := fs.ReadFile(assetFS, name)
		if err != nil {
			return res, fmt.Errorf("reading asset %s: %w", name, err)
		}
		rel := path.Join(assets.Dir, name)
		if err := writeFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)), data); err != nil {
			return res, err
		}
		step(rel)
	}

	var buf bytes.Buffer
	p := panel.New(content)
	if err := p.Render(&buf, panel.RenderOptions{BasePath: cfg.BasePath}); err != nil {
		return res, err
	}
	if err := writeFile(filepath.Join(cfg.OutputDir, IndexFile), buf.Bytes()); err != nil {
		return res, err
	}
	step(IndexFile)

	return res, nil
}

// collectPublic returns slash-separated paths of the files under dir that
// pass the include and exclude patterns.
func collectPublic(dir string, include, exclude []string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !MatchesInclude(rel, include) || MatchesExclude(rel, exclude) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
