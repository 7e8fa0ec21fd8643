package hover

import (
	"context"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/hoverwave/internal/assets"
	"github.com/Faultbox/hoverwave/internal/config"
	"github.com/Faultbox/hoverwave/internal/engine/texture"
	"github.com/Faultbox/hoverwave/internal/logger"
)

// placeholderSize is the edge of the checkerboard used for missing images.
const placeholderSize = 256

// Loader reads asset bytes by path. *assets.Manager implements it.
type Loader interface {
	Load(name string) ([]byte, error)
}

// ImagePaths names the three images, relative to the loader's roots.
type ImagePaths struct {
	Base         string
	Hover        string
	Displacement string
}

// ImagePathsFromConfig returns the paths named in the assets section.
func ImagePathsFromConfig(c config.AssetsConfig) ImagePaths {
	return ImagePaths{Base: c.Base, Hover: c.Hover, Displacement: c.Displacement}
}

// Images are the decoded plane images.
type Images struct {
	Base         *image.RGBA
	Hover        *image.RGBA
	Displacement *image.RGBA

	// Missing lists the paths replaced by a placeholder.
	Missing []string
}

// LoadImages reads and decodes the three images concurrently. An image that
// cannot be read or decoded before ctx expires is replaced by a checkerboard
// and logged, so the scene can always mount. Only cancellation of ctx by the
// caller is returned as an error.
func LoadImages(ctx context.Context, l Loader, paths ImagePaths) (Images, error) {
	log := logger.Named("assets")
	names := [3]string{paths.Base, paths.Hover, paths.Displacement}
	var decoded [3]*image.RGBA
	var failed [3]bool

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			img, err := loadImage(gctx, l, name)
			if err != nil {
				log.Warn("using placeholder texture", zap.String("path", name), zap.Error(err))
				img = texture.Placeholder(placeholderSize, placeholderSize/8)
				failed[i] = true
			}
			decoded[i] = img
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return Images{}, err
	}

	out := Images{Base: decoded[0], Hover: decoded[1], Displacement: decoded[2]}
	for i, f := range failed {
		if f {
			out.Missing = append(out.Missing, names[i])
		}
	}
	return out, nil
}

// LoadConfigured loads the images named in c from its asset directory,
// bounded by c.LoadTimeout. An unusable directory is logged and every image
// falls back to a placeholder.
func LoadConfigured(ctx context.Context, c config.AssetsConfig) (Images, error) {
	m := assets.NewManager()
	defer m.Close()

	if err := m.AddDir(c.Dir); err != nil {
		logger.Named("assets").Warn("asset directory unavailable", zap.Error(err))
	}

	if c.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.LoadTimeout)
		defer cancel()
	}
	return LoadImages(ctx, m, ImagePathsFromConfig(c))
}

// loadImage reads and decodes one image, giving up when ctx is done. The
// read itself cannot be interrupted; its result is dropped if late.
func loadImage(ctx context.Context, l Loader, name string) (*image.RGBA, error) {
	type result struct {
		img *image.RGBA
		err error
	}
	ch := make(chan result, 1)

	go func() {
		data, err := l.Load(name)
		if err != nil {
			ch <- result{err: err}
			return
		}
		img, _, err := texture.Decode(data)
		ch <- result{img: img, err: err}
	}()

	select {
	case r := <-ch:
		return r.img, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("loading %s: %w", name, ctx.Err())
	}
}

// Upload creates GL textures for the images. Must be called on the GL thread.
func (im Images) Upload() Textures {
	opts := texture.DefaultOptions()
	return Textures{
		Base:         texture.Upload(im.Base, opts),
		Hover:        texture.Upload(im.Hover, opts),
		Displacement: texture.Upload(im.Displacement, opts),
	}
}
