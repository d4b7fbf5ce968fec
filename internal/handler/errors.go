package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// User management error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetUserFailed      = "Failed to get user"

	// Solve error messages
	ErrMsgHandleSolveFailed = "Failed to process solve"

	// Queue and collection error messages
	ErrMsgGetQueueFailed      = "Failed to get encounter queue"
	ErrMsgGetCollectionFailed = "Failed to get collection"

	// Capture error messages
	ErrMsgThrowBallFailed = "Failed to throw ball"

	// Inventory error messages
	ErrMsgGetInventoryFailed = "Failed to get inventory"

	// Shop error messages
	ErrMsgGetShopFailed     = "Failed to get shop items"
	ErrMsgPurchaseFailed    = "Failed to purchase item"
	ErrMsgInvalidItemFormat = "Invalid item ID"

	// Achievement error messages
	ErrMsgGetAchievementsFailed = "Failed to get achievements"
	ErrMsgClaimRewardFailed     = "Failed to claim reward"

	// Hatchery error messages
	ErrMsgGetEggsFailed     = "Failed to get eggs"
	ErrMsgHatchEggFailed    = "Failed to hatch egg"
	ErrMsgUseIncubatorError = "Failed to use incubator"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgUserRegisteredSuccess = "User registered successfully"
	MsgPurchaseSuccess       = "Purchase successful"
	MsgRewardClaimedSuccess  = "Reward claimed successfully"
	MsgEggHatchedSuccess     = "The egg hatched!"
)
