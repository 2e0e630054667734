// Command texcomp renders composite requests to PNG files.
//
// Single request:
//
//	texcomp -base sock.png -request order.json -out preview.png
//
// Batch mode renders every *.json in a directory to a .png beside it:
//
//	texcomp -base sock.png -batch orders/
//
// Image references in a request (upload, logo.image) are file paths
// relative to the request file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/texcomp"
	"github.com/gogpu/texcomp/internal/imageio"
	"github.com/gogpu/texcomp/internal/wire"
	"github.com/gogpu/texcomp/text"
)

type config struct {
	base    string
	request string
	out     string
	layout  string
	fonts   string
	batch   string
	jobs    int
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.base, "base", "", "base texture image (required)")
	flag.StringVar(&cfg.request, "request", "", "request JSON file")
	flag.StringVar(&cfg.out, "out", "out.png", "output PNG file")
	flag.StringVar(&cfg.layout, "layout", "", "TOML layout file (default: built-in sock layout)")
	flag.StringVar(&cfg.fonts, "fonts", "", "directory of extra TTF/OTF fonts")
	flag.StringVar(&cfg.batch, "batch", "", "render every *.json in this directory")
	flag.IntVar(&cfg.jobs, "j", runtime.NumCPU(), "parallel renders in batch mode")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	texcomp.SetLogger(logger)

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("texcomp failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	if cfg.base == "" {
		return errors.New("-base is required")
	}
	if (cfg.request == "") == (cfg.batch == "") {
		return errors.New("exactly one of -request and -batch is required")
	}

	base, err := imageio.DecodeFile(cfg.base)
	if err != nil {
		return err
	}
	comp, err := newCompositor(cfg)
	if err != nil {
		return err
	}

	if cfg.request != "" {
		return render(comp, base, cfg.request, cfg.out)
	}
	return renderBatch(ctx, comp, base, cfg.batch, cfg.jobs)
}

func newCompositor(cfg config) (*texcomp.Compositor, error) {
	var opts []texcomp.Option
	if cfg.layout != "" {
		l, err := texcomp.LoadLayout(cfg.layout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, texcomp.WithLayout(l))
	}
	if cfg.fonts != "" {
		fonts := text.NewFonts()
		n, err := fonts.LoadDir(cfg.fonts)
		if err != nil {
			return nil, err
		}
		texcomp.Logger().Info("fonts loaded", slog.Int("count", n), slog.String("dir", cfg.fonts))
		opts = append(opts, texcomp.WithFonts(fonts))
	}
	return texcomp.New(opts...), nil
}

func renderBatch(ctx context.Context, comp *texcomp.Compositor, base image.Image, dir string, jobs int) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.json requests in %s", dir)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return render(comp, base, path, strings.TrimSuffix(path, ".json")+".png")
		})
	}
	return g.Wait()
}

func render(comp *texcomp.Compositor, base image.Image, reqPath, outPath string) error {
	f, err := os.Open(reqPath)
	if err != nil {
		return err
	}
	doc, err := wire.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", reqPath, err)
	}

	dir := filepath.Dir(reqPath)
	load := func(ref string) (image.Image, error) {
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, ref)
		}
		return imageio.DecodeFile(ref)
	}
	req, recipe, err := wire.Build(doc, base, load)
	if err != nil {
		return fmt.Errorf("%s: %w", reqPath, err)
	}
	out, err := comp.Render(recipe, req)
	if err != nil {
		return fmt.Errorf("%s: %w", reqPath, err)
	}
	if err := imageio.SavePNG(outPath, out); err != nil {
		return err
	}
	texcomp.Logger().Info("rendered", slog.String("request", reqPath), slog.String("out", outPath), slog.String("recipe", recipe.String()))
	return nil
}
