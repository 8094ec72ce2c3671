// Package index joins the SRFI info and symbol datasets and renders them
// into a table.
package index

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"srfibrowse/internal/metrics"
	"srfibrowse/internal/models"
	"srfibrowse/internal/source"
)

// Renderer runs fetch-join-render cycles against two sources.
type Renderer struct {
	info    source.Source
	symbols source.Source
	logger  *slog.Logger
}

// NewRenderer creates a renderer. A nil logger uses slog.Default().
func NewRenderer(info, symbols source.Source, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{info: info, symbols: symbols, logger: logger}
}

// Sources returns the info and symbol sources.
func (r *Renderer) Sources() []source.Source {
	return []source.Source{r.info, r.symbols}
}

// Load retrieves both datasets concurrently. It fails if either retrieval
// fails; the returned error wraps source.ErrFetchFailure and the other
// retrieval is cancelled.
func (r *Renderer) Load(ctx context.Context) (*models.InfoMap, models.SymbolMap, error) {
	var (
		infoMap   *models.InfoMap
		symbolMap models.SymbolMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := fetch(gctx, r.info, source.DecodeInfoMap)
		infoMap = m
		return err
	})
	g.Go(func() error {
		m, err := fetch(gctx, r.symbols, source.DecodeSymbolMap)
		symbolMap = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return infoMap, symbolMap, nil
}

func fetch[T any](ctx context.Context, src source.Source, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	v, err := func() (T, error) {
		rc, err := src.Open(ctx)
		if err != nil {
			return zero, err
		}
		defer rc.Close()
		return decode(rc)
	}()

	metrics.ObserveFetch(src.Name(), time.Since(start), err)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", source.ErrFetchFailure, src.Name(), err)
	}
	return v, nil
}

// Join produces one record per info entry, in info order. Symbols are looked
// up by the same id; ids present only in symbols are ignored.
func Join(info *models.InfoMap, symbols models.SymbolMap) []models.DisplayRecord {
	records := make([]models.DisplayRecord, 0, info.Len())
	for _, id := range info.Keys() {
		doc, _ := info.Get(id)
		rec := models.DisplayRecord{
			ID:          id,
			Title:       doc.Title,
			OfficialURL: doc.OfficialURL,
		}
		if list, ok := symbols.Lookup(id); ok {
			rec.Symbols = append(make([]string, 0, len(list)), list...)
		}
		records = append(records, rec)
	}
	return records
}

// Render clears c and appends a header row and a symbol row per record.
func Render(c *Container, records []models.DisplayRecord) {
	c.Clear()
	for _, rec := range records {
		c.Append(Row{Cells: []Cell{
			{Header: true, Text: "SRFI " + rec.ID},
			{Header: true, Link: &Link{Href: rec.OfficialURL, Text: rec.Title}},
		}})
		c.Append(Row{Cells: []Cell{
			{ColSpan: 2, List: symbolList(rec)},
		}})
	}
}

func symbolList(rec models.DisplayRecord) *List {
	if !rec.HasSymbols() {
		return &List{Items: []ListItem{{Class: ErrorClass, Text: NoSymbolsText}}}
	}
	items := make([]ListItem, 0, len(rec.Symbols))
	for _, s := range rec.Symbols {
		items = append(items, ListItem{Text: s, Code: true})
	}
	return &List{Items: items}
}

// Records loads both datasets and joins them. A failure is logged once.
func (r *Renderer) Records(ctx context.Context) ([]models.DisplayRecord, error) {
	cycle := uuid.NewString()
	logger := r.logger.With("cycle", cycle)

	info, symbols, err := r.Load(ctx)
	if err != nil {
		logger.Error("failed to load SRFI data", "error", err)
		metrics.RecordCycle(metrics.OutcomeFetchFailure, 0)
		return nil, err
	}

	records := Join(info, symbols)
	logger.Debug("joined SRFI data", "records", len(records), "symbol_lists", len(symbols))
	return records, nil
}

// Run performs one fetch-join-render cycle into c. On failure c is left as
// it was.
func (r *Renderer) Run(ctx context.Context, c *Container) error {
	records, err := r.Records(ctx)
	if err != nil {
		return err
	}
	Render(c, records)
	metrics.RecordCycle(metrics.OutcomeRendered, len(records))
	return nil
}
