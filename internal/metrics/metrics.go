// Package metrics exports game activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lox/vuezee/internal/game"
)

// Collector counts session events. It is a game.EventSubscriber and may be
// shared by sessions running on different goroutines.
type Collector struct {
	registry *prometheus.Registry

	games      prometheus.Counter
	completed  prometheus.Counter
	rolls      prometheus.Counter
	holds      prometheus.Counter
	scored     *prometheus.CounterVec
	points     *prometheus.CounterVec
	bonuses    prometheus.Counter
	finalScore prometheus.Histogram
}

// NewCollector creates a collector registered on its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vuezee_games_started_total",
			Help: "Games started with a new game.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vuezee_games_completed_total",
			Help: "Games with every category scored.",
		}),
		rolls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vuezee_rolls_total",
			Help: "Dice rolls taken.",
		}),
		holds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vuezee_hold_toggles_total",
			Help: "Dice held or released.",
		}),
		scored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vuezee_categories_scored_total",
			Help: "Scorings applied, by category.",
		}, []string{"category"}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vuezee_points_total",
			Help: "Points awarded, by category.",
		}, []string{"category"}),
		bonuses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vuezee_upper_bonus_total",
			Help: "Upper section bonuses awarded.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vuezee_final_score",
			Help:    "Grand total of completed games.",
			Buckets: prometheus.LinearBuckets(50, 50, 12),
		}),
	}
	c.registry.MustRegister(c.games, c.completed, c.rolls, c.holds, c.scored, c.points, c.bonuses, c.finalScore)
	return c
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// OnEvent implements game.EventSubscriber.
func (c *Collector) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.NewGameEvent:
		c.games.Inc()
	case game.DiceRolledEvent:
		c.rolls.Inc()
	case game.HoldToggledEvent:
		c.holds.Inc()
	case game.CategoryScoredEvent:
		category := string(e.Outcome.Category)
		c.scored.WithLabelValues(category).Inc()
		c.points.WithLabelValues(category).Add(float64(e.Outcome.Points))
		if e.Outcome.BonusAwarded {
			c.bonuses.Inc()
		}
	case game.GameCompleteEvent:
		c.completed.Inc()
		c.finalScore.Observe(float64(e.FinalScore))
	}
}

// WriteTextfile writes the current values in the Prometheus text format,
// for the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
