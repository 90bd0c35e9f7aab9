// Package stepcounter turns a session relative pedometer stream into a
// durable, goal tracked daily step count
package stepcounter

import (
	"context"

	"github.com/stepsquad/stepsquad/internal/models"
)

const (
	// DefaultStorageKey is the durable store key holding the last known total.
	DefaultStorageKey = "@StepSquad:currentStepCount"
	// DefaultGoal is used until (or unless) the activity record provides one.
	DefaultGoal = 10000
)

// Status is the lifecycle of the permission and hardware negotiation.
type Status string

const (
	StatusChecking    Status = "checking"
	StatusDenied      Status = "denied"
	StatusUnavailable Status = "unavailable"
	StatusGranted     Status = "granted"
)

// Permission is the answer of a sensor permission request.
type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

// Event is a raw sensor reading. Steps counts from the start of the
// subscription that produced it.
type Event struct {
	Steps int `json:"steps"`
}

// Store is the durable key-value store the step total is persisted to.
type Store interface {
	// GetItem returns the value stored under key. ok is false if the key
	// does not exist.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Subscription is a live sensor subscription.
type Subscription interface {
	Unsubscribe()
}

// Sensor is a permission gated pedometer.
type Sensor interface {
	RequestPermission(ctx context.Context) (Permission, error)
	IsAvailable(ctx context.Context) (bool, error)
	// Subscribe starts delivering events to fn. Events are delivered one at
	// a time, in order.
	Subscribe(fn func(Event)) (Subscription, error)
}

// ActivityAPI is the remote record of today's progress.
type ActivityAPI interface {
	Today(ctx context.Context) (*models.Activity, error)
	Update(
		ctx context.Context,
		req models.ActivityUpdate,
	) (*models.Activity, error)
}

// Snapshot is the observable output of the engine.
type Snapshot struct {
	SensorStatus     Status `json:"sensor_status"`
	CurrentStepCount int    `json:"current_step_count"`
	StepGoal         int    `json:"step_goal"`
	GoalReached      bool   `json:"goal_reached"`
}
