package iconloader

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultSize is the icon size used when Load gets a zero size.
var DefaultSize = image.Pt(24, 24)

const maxIconBytes = 16 << 20 // 16 MiB

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Dispatcher runs a function on the UI goroutine.
type Dispatcher interface {
	Do(fn func())
}

// DispatcherFunc adapts a plain function to Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Do(fn func()) { f(fn) }

// Loader fetches remote images off the UI goroutine and hands the resized
// result back through a Dispatcher.
type Loader struct {
	dispatcher Dispatcher
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

type Option func(*Loader)

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.httpClient = c
		}
	}
}

// WithLimiter paces fetches. Nil disables pacing.
func WithLimiter(lim *rate.Limiter) Option {
	return func(l *Loader) { l.limiter = lim }
}

func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

func NewLoader(d Dispatcher, opts ...Option) *Loader {
	l := &Loader{
		dispatcher: d,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load starts fetching url in the background and returns immediately. On
// success cb runs exactly once through the dispatcher with an image of the
// requested size. On failure the error is logged, cb is never called and the
// task completes with the error.
func (l *Loader) Load(ctx context.Context, url string, size image.Point, cb func(image.Image)) *Task {
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultSize
	}
	task := newTask(url)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("icon worker panic: %v", r)
				l.log.Error().Err(err).Str("url", url).Msg("icon load aborted")
				task.finish(err)
			}
		}()

		img, err := l.fetch(ctx, url, size)
		if err != nil {
			l.log.Warn().Err(err).Str("url", url).Msg("icon load failed")
			task.finish(err)
			return
		}

		l.dispatcher.Do(func() {
			cb(img)
			task.finish(nil)
		})
	}()

	return task
}

func (l *Loader) fetch(ctx context.Context, url string, size image.Point) (image.Image, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for fetch slot: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create icon request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send icon request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	src, format, err := image.Decode(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	l.log.Debug().Str("url", url).Str("format", format).Msg("icon decoded")

	return Resize(src, size), nil
}

// Resize scales img to exactly size with Lanczos resampling.
func Resize(img image.Image, size image.Point) image.Image {
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
}
