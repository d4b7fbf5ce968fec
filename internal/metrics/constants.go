package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSolvesProcessed     = "solves_processed_total"
	MetricNameRewardsGenerated    = "rewards_generated_total"
	MetricNameCaptureAttempts     = "capture_attempts_total"
	MetricNameCaptureSuccesses    = "capture_successes_total"
	MetricNameBallsConsumed       = "balls_consumed_total"
	MetricNameAchievementsClaimed = "achievements_claimed_total"
	MetricNameItemsPurchased      = "items_purchased_total"
	MetricNameGoldSpent           = "gold_spent_total"
	MetricNameGoldEarned          = "gold_earned_total"
	MetricNameEggsHatched         = "eggs_hatched_total"
	MetricNameDetailFetchFallback = "detail_fetch_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSolvesProcessed     = "Total number of solve events processed"
	HelpTextRewardsGenerated    = "Total number of encounter rewards generated"
	HelpTextCaptureAttempts     = "Total number of capture attempts"
	HelpTextCaptureSuccesses    = "Total number of successful captures"
	HelpTextBallsConsumed       = "Total number of balls consumed"
	HelpTextAchievementsClaimed = "Total number of achievement rewards claimed"
	HelpTextItemsPurchased      = "Total number of shop items purchased"
	HelpTextGoldSpent           = "Total gold spent in the shop"
	HelpTextGoldEarned          = "Total gold earned from solves"
	HelpTextEggsHatched         = "Total number of eggs hatched"
	HelpTextDetailFetchFallback = "Total number of degraded placeholder rewards served"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelBall   = "ball"
	LabelItem   = "item"
	LabelRarity = "rarity"
	LabelID     = "achievement"
	LabelSource = "source"
)

// Rarity label values
const (
	RarityLegendary = "legendary"
	RarityOrdinary  = "ordinary"
)

// Hatch source label values
const (
	SourceTimer     = "timer"
	SourceIncubator = "incubator"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
