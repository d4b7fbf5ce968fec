package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Queue/collection errors
	ErrMsgQueueEmpty = "no pokemon waiting in queue"

	// Solve errors
	ErrMsgAlreadySolved = "problem already solved"

	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"
	ErrMsgNotCompleted        = "achievement not completed"
	ErrMsgAlreadyClaimed      = "reward already claimed"
	ErrMsgNoReward            = "achievement has no reward"
	ErrMsgInvalidChoice       = "invalid reward choice"

	// Hatchery errors
	ErrMsgEggNotFound = "egg not found"
	ErrMsgEggNotReady = "egg is not ready to hatch"
	ErrMsgNoIncubator = "no incubator available"
	ErrMsgNoEgg       = "no egg available"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Queue/collection errors
	ErrQueueEmpty = errors.New(ErrMsgQueueEmpty)

	// Solve errors
	ErrAlreadySolved = errors.New(ErrMsgAlreadySolved)

	// Achievement errors
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)
	ErrNotCompleted        = errors.New(ErrMsgNotCompleted)
	ErrAlreadyClaimed      = errors.New(ErrMsgAlreadyClaimed)
	ErrNoReward            = errors.New(ErrMsgNoReward)
	ErrInvalidChoice       = errors.New(ErrMsgInvalidChoice)

	// Hatchery errors
	ErrEggNotFound = errors.New(ErrMsgEggNotFound)
	ErrEggNotReady = errors.New(ErrMsgEggNotReady)
	ErrNoIncubator = errors.New(ErrMsgNoIncubator)
	ErrNoEgg       = errors.New(ErrMsgNoEgg)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
