package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SolvesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSolvesProcessed,
			Help: HelpTextSolvesProcessed,
		},
	)

	RewardsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGenerated,
			Help: HelpTextRewardsGenerated,
		},
		[]string{LabelRarity},
	)

	CaptureAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCaptureAttempts,
			Help: HelpTextCaptureAttempts,
		},
		[]string{LabelBall},
	)

	CaptureSuccesses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCaptureSuccesses,
			Help: HelpTextCaptureSuccesses,
		},
		[]string{LabelBall},
	)

	BallsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBallsConsumed,
			Help: HelpTextBallsConsumed,
		},
		[]string{LabelBall},
	)

	AchievementsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsClaimed,
			Help: HelpTextAchievementsClaimed,
		},
		[]string{LabelID},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPurchased,
			Help: HelpTextItemsPurchased,
		},
		[]string{LabelItem},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	EggsHatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEggsHatched,
			Help: HelpTextEggsHatched,
		},
		[]string{LabelSource},
	)

	DetailFetchFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDetailFetchFallback,
			Help: HelpTextDetailFetchFallback,
		},
	)
)
