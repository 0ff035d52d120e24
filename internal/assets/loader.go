package assets

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"model-viewer/internal/layout"
	"model-viewer/internal/logger"
)

// EventKind tells what a loader Event carries.
type EventKind int

const (
	// EventListed is sent once, after listing, with the grid every asset will be placed on.
	EventListed EventKind = iota
	// EventReady carries a local file path the renderer can decode.
	EventReady
	// EventFailed carries the error for one asset; the asset is simply absent from the scene.
	EventFailed
)

// Asset is one listed model and the grid slot reserved for it.
type Asset struct {
	Name string
	Cell layout.Cell
}

// Event is what the loader reports to the frame loop.
type Event struct {
	Kind  EventKind
	Grid  layout.Grid
	Asset Asset
	Path  string
	Err   error
}

// Options configures a Loader.
type Options struct {
	Source    string
	Extension string
	CacheDir  string
	Workers   int
	Spacing   float32
	Client    *http.Client
}

// Loader lists a model source and prepares every model in the background. Events are delivered
// in completion order on a buffered channel that is closed when loading is over; the frame loop
// drains it without blocking.
type Loader struct {
	opts   Options
	log    *logger.Logger
	events chan Event
}

// NewLoader returns a loader for opts. Nothing happens until Run.
func NewLoader(opts Options, log *logger.Logger) *Loader {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Client == nil {
		opts.Client = NewHTTPClient()
	}
	return &Loader{opts: opts, log: log, events: make(chan Event, 64)}
}

// Events returns the channel the loader reports on.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Run lists the source, announces the grid, then prepares each asset with at most Workers in flight.
// A failed asset never stops the others. Run returns the listing error, if any, and always closes Events.
func (l *Loader) Run(ctx context.Context) error {
	defer close(l.events)

	names, err := List(ctx, l.opts.Client, l.opts.Source, l.opts.Extension)
	if err != nil {
		l.log.Errorf("Error loading models: %v", err)
		return err
	}
	grid := layout.NewGrid(len(names), l.opts.Spacing)
	l.log.Infof("Found %d model(s) in %s", len(names), l.opts.Source)
	if !l.send(ctx, Event{Kind: EventListed, Grid: grid}) {
		return ctx.Err()
	}

	var g errgroup.Group
	g.SetLimit(l.opts.Workers)
	for i, name := range names {
		name := name
		asset := Asset{Name: name, Cell: grid.Cell(i)}
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			path, err := l.prepare(ctx, name)
			if err != nil {
				l.log.Errorf("Error loading model %s: %v", name, err)
				l.send(ctx, Event{Kind: EventFailed, Asset: asset, Err: err})
				return nil
			}
			l.send(ctx, Event{Kind: EventReady, Asset: asset, Path: path})
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// prepare returns a local path for name, downloading it into the cache for remote sources.
func (l *Loader) prepare(ctx context.Context, name string) (string, error) {
	loc, err := Resolve(l.opts.Source, name)
	if err != nil {
		return "", err
	}
	if !IsRemote(l.opts.Source) {
		info, err := os.Stat(loc)
		if err != nil {
			return "", fmt.Errorf("assets: %w", err)
		}
		if info.Size() == 0 {
			return "", fmt.Errorf("assets: %s is empty", loc)
		}
		return loc, nil
	}
	return Fetch(ctx, l.opts.Client, loc, l.opts.CacheDir, name)
}

func (l *Loader) send(ctx context.Context, ev Event) bool {
	select {
	case l.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
