package metrics

import (
	"errors"

	"github.com/contre95/pressing/src/features/config"
	"github.com/contre95/pressing/src/music"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records catalog activity as prometheus metrics on its own registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry           *prometheus.Registry
	albumsCreated      prometheus.Counter
	tracksAdded        prometheus.Counter
	priceClamps        prometheus.Counter
	validationFailures *prometheus.CounterVec
	albumsByGenre      *prometheus.GaugeVec
}

// NewCollector creates a collector, or nil when metrics are disabled.
func NewCollector(cfg config.Metrics) *Collector {
	if !cfg.Enabled {
		return nil
	}
	ns := cfg.Namespace
	c := &Collector{
		registry: prometheus.NewRegistry(),
		albumsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "albums_created_total",
			Help:      "Albums added to the catalog.",
		}),
		tracksAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "tracks_added_total",
			Help:      "Tracks added to catalog albums.",
		}),
		priceClamps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "price_clamps_total",
			Help:      "Album prices lowered to the online cap when going online.",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "validation_failures_total",
			Help:      "Rejected catalog operations by operation and error kind.",
		}, []string{"operation", "kind"}),
		albumsByGenre: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "albums",
			Help:      "Albums currently in the catalog by genre.",
		}, []string{"genre"}),
	}
	c.registry.MustRegister(c.albumsCreated, c.tracksAdded, c.priceClamps, c.validationFailures, c.albumsByGenre)
	return c
}

// Registry returns the registry holding the catalog metrics.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) AlbumCreated() {
	if c != nil {
		c.albumsCreated.Inc()
	}
}

func (c *Collector) TrackAdded() {
	if c != nil {
		c.tracksAdded.Inc()
	}
}

func (c *Collector) PriceClamped() {
	if c != nil {
		c.priceClamps.Inc()
	}
}

// ValidationFailed counts a rejected operation, labelled with the error kind.
func (c *Collector) ValidationFailed(operation string, err error) {
	if c != nil {
		c.validationFailures.WithLabelValues(operation, KindLabel(err)).Inc()
	}
}

// SetGenreDistribution replaces the per genre album gauge.
func (c *Collector) SetGenreDistribution(counts map[string]int) {
	if c == nil {
		return
	}
	c.albumsByGenre.Reset()
	for genre, n := range counts {
		c.albumsByGenre.WithLabelValues(genre).Set(float64(n))
	}
}

// KindLabel names the kind of a music error for metric labels.
func KindLabel(err error) string {
	switch kind := music.Kind(err); {
	case errors.Is(kind, music.ErrValidation):
		return "validation"
	case errors.Is(kind, music.ErrDuplicate):
		return "duplicate"
	case errors.Is(kind, music.ErrCapacity):
		return "capacity"
	case errors.Is(kind, music.ErrNotFound):
		return "not_found"
	case errors.Is(kind, music.ErrIndex):
		return "index"
	default:
		return "other"
	}
}
