package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	drawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pond_draws_total",
		Help: "Draws by outcome: caught, empty, blocked, unlucky.",
	}, []string{"outcome"})

	drawRarityTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pond_draw_rarity_total",
		Help: "Successful draws by rarity tier.",
	}, []string{"rarity"})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pond_events_total",
		Help: "Random events triggered by draws, labelled by scope.",
	}, []string{"scope"})

	baitTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pond_bait_total",
		Help: "Successful bait tosses.",
	})

	karmaAdjustTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pond_karma_adjustments_total",
		Help: "Karma adjustments applied outside the draw flow.",
	})

	sweepRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pond_events_swept_total",
		Help: "Expired event instances removed by sweeps.",
	})
)
