package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	botUpdatesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phonebot",
			Name:      "bot_updates_total",
			Help:      "Total Telegram updates processed, by kind.",
		},
		[]string{"kind"}, // "start", "help", "search", "ignored"
	)

	botSearchesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phonebot",
			Name:      "bot_searches_total",
			Help:      "Total phone lookups requested through the bot, by outcome.",
		},
		[]string{"outcome"}, // "found", "not_found", "invalid"
	)
)
