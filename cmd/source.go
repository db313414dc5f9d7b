package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/internal/limiter"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
	"github.com/oakwood-commons/pagingmenu/internal/source"
	"github.com/oakwood-commons/pagingmenu/pkg/loader"
)

// sourceRequest carries the source flags that have no config file field.
type sourceRequest struct {
	File   string
	Filter string
	Limit  limiter.Config
	// Today anchors the calendar source; zero means now.
	Today time.Time
}

// buildProvider creates the item source selected by cfg.Source. Finite
// sources are filtered before the limits are applied.
func buildProvider(cfg config.Config, req sourceRequest) (source.Provider, error) {
	var filter *source.Filter
	if req.Filter != "" {
		f, err := source.NewFilter(req.Filter)
		if err != nil {
			return source.Provider{}, err
		}
		filter = f
	}

	switch cfg.Source.Kind {
	case "index":
		if cfg.Source.Count > 0 {
			items := make([]paging.Item, 0, cfg.Source.Count)
			for i := range cfg.Source.Count {
				items = append(items, paging.IndexItem(cfg.Source.Start+i))
			}
			return finite(source.NewList(items), filter, req.Limit)
		}
		return indexProvider(cfg.Source, filter, req.Limit)
	case "calendar":
		if req.Limit.IsActive() {
			return source.Provider{}, fmt.Errorf("--limit, --offset and --tail need a finite source")
		}
		today := req.Today
		if today.IsZero() {
			today = time.Now()
		}
		cal := source.NewCalendar()
		return infinite(cal, cal.Day(today), filter, cfg.Source.ScanLimit)
	case "markdown":
		if req.File == "" {
			return source.Provider{}, fmt.Errorf("--source markdown needs --file")
		}
		doc, err := os.ReadFile(req.File)
		if err != nil {
			return source.Provider{}, fmt.Errorf("reading %s: %w", req.File, err)
		}
		l, err := source.Markdown(doc, cfg.Source.HeadingLevel)
		if err != nil {
			return source.Provider{}, fmt.Errorf("%s: %w", req.File, err)
		}
		return finite(l, filter, req.Limit)
	case "file":
		if req.File == "" {
			return source.Provider{}, fmt.Errorf("--source file needs --file")
		}
		records, err := loader.LoadFile(req.File)
		if err != nil {
			return source.Provider{}, err
		}
		return finite(source.FromRecords(records), filter, req.Limit)
	default:
		return source.Provider{}, fmt.Errorf("unknown source %q", cfg.Source.Kind)
	}
}

func finite(l *source.List, filter *source.Filter, lim limiter.Config) (source.Provider, error) {
	if filter != nil {
		var err error
		if l, err = filter.List(l); err != nil {
			return source.Provider{}, err
		}
	}
	start, end := lim.Range(l.Len())
	return source.FromList(l.Slice(start, end)), nil
}

// indexProvider maps the limits onto the index bounds: the offset moves the
// first index and the limit caps the last.
func indexProvider(sc config.SourceConfig, filter *source.Filter, lim limiter.Config) (source.Provider, error) {
	lo, hi, capped, err := lim.Bounds(sc.Start)
	if err != nil {
		return source.Provider{}, err
	}

	var opts []source.IndexOption
	switch {
	case sc.Min != nil && lim.Offset == 0:
		opts = append(opts, source.WithMin(*sc.Min))
	case sc.Min != nil:
		opts = append(opts, source.WithMin(max(*sc.Min, lo)))
	case lim.Offset > 0:
		opts = append(opts, source.WithMin(lo))
	}
	switch {
	case capped && sc.Max != nil:
		opts = append(opts, source.WithMax(min(*sc.Max, hi)))
	case capped:
		opts = append(opts, source.WithMax(hi))
	case sc.Max != nil:
		opts = append(opts, source.WithMax(*sc.Max))
	}

	idx := source.NewIndex(opts...)
	return infinite(idx, paging.IndexItem(idx.Clamp(lo)), filter, sc.ScanLimit)
}

func infinite(src source.Infinite, start paging.Item, filter *source.Filter, scan int) (source.Provider, error) {
	if filter == nil {
		return source.FromInfinite(src, start), nil
	}
	filtered := filter.Infinite(src, scan)
	anchor, ok := filtered.Anchor(start)
	if !ok {
		if err := filtered.Err(); err != nil {
			return source.Provider{}, err
		}
		return source.Provider{}, fmt.Errorf("no item near %s matches filter %q", start.ID, filter)
	}
	return source.FromInfinite(filtered, anchor), nil
}
