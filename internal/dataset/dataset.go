// Package dataset loads the country catalogue: polygon features from a
// world GeoJSON dump joined with restcountries metadata by cca3 code.
// The game core never starts a round without this load succeeding.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worldatlas/globequiz/internal/geo"
)

// ErrDataLoad wraps any failure to produce a usable catalogue.
var ErrDataLoad = errors.New("dataset: load failed")

// feature is one GeoJSON country polygon. The geometry stays opaque; only
// the id is read for the metadata join.
type feature struct {
	ID string `json:"id"`
}

type featureCollection struct {
	Features []json.RawMessage `json:"features"`
}

// meta is the subset of restcountries fields the game uses.
type meta struct {
	CCA3 string `json:"cca3"`
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Translations map[string]struct {
		Common string `json:"common"`
	} `json:"translations"`
	Capital []string  `json:"capital"`
	Region  string    `json:"region"`
	LatLng  []float64 `json:"latlng"`
	Flags   struct {
		SVG string `json:"svg"`
	} `json:"flags"`
}

// Loader fetches and joins the two upstream feeds.
type Loader struct {
	logger  *slog.Logger
	client  *http.Client
	geoURL  string
	metaURL string
}

func NewLoader(logger *slog.Logger, geoURL, metaURL string) *Loader {
	return &Loader{
		logger:  logger,
		client:  &http.Client{Timeout: 30 * time.Second},
		geoURL:  geoURL,
		metaURL: metaURL,
	}
}

// Load fetches both feeds concurrently and joins them. Any fetch or parse
// failure wraps ErrDataLoad; partial catalogues are never returned.
func (l *Loader) Load(ctx context.Context) ([]geo.CountryRecord, error) {
	var geoBody, metaBody []byte

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		geoBody, err = l.fetch(gctx, l.geoURL)
		return err
	})
	g.Go(func() error {
		var err error
		metaBody, err = l.fetch(gctx, l.metaURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	records, err := Parse(geoBody, metaBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	l.logger.Info("country catalogue loaded", "countries", len(records))
	return records, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Parse joins raw GeoJSON and metadata bodies into country records.
// Features without matching metadata are dropped, matching the upstream
// datasets' disjoint coverage of small territories.
func Parse(geoBody, metaBody []byte) ([]geo.CountryRecord, error) {
	var fc featureCollection
	if err := json.Unmarshal(geoBody, &fc); err != nil {
		return nil, fmt.Errorf("parsing geojson: %w", err)
	}

	var metas []meta
	if err := json.Unmarshal(metaBody, &metas); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	byCode := make(map[string]meta, len(metas))
	for _, m := range metas {
		byCode[m.CCA3] = m
	}

	var records []geo.CountryRecord
	for _, raw := range fc.Features {
		var f feature
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parsing feature: %w", err)
		}
		m, ok := byCode[f.ID]
		if !ok {
			continue
		}
		if len(m.LatLng) < 2 {
			continue
		}

		display := m.Name.Common
		if fr, ok := m.Translations["fra"]; ok && fr.Common != "" {
			display = fr.Common
		}
		capital := "N/A"
		if len(m.Capital) > 0 {
			capital = m.Capital[0]
		}

		records = append(records, geo.CountryRecord{
			ID:          f.ID,
			Name:        m.Name.Common,
			DisplayName: display,
			Region:      geo.Region(m.Region),
			Capital:     capital,
			Coords:      geo.Coords{Lat: m.LatLng[0], Lng: m.LatLng[1]},
			FlagURL:     m.Flags.SVG,
			Boundary:    raw,
		})
	}

	if len(records) == 0 {
		return nil, errors.New("no countries after join")
	}
	return records, nil
}
