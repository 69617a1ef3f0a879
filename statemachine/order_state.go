package statemachine

import (
	"errors"
	"food-truck-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "truckOwner" or "customer"
}

// validTransitions is the authoritative state machine definition.
// completed and cancelled are terminal; nothing leaves them.
var validTransitions = []Transition{
	// Truck owner works the order forward
	{From: models.StatusPending, To: models.StatusPreparing, Actor: "truckOwner"},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "truckOwner"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "truckOwner"},
	// Truck owner can cancel any non-terminal order
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "truckOwner"},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: "truckOwner"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "truckOwner"},
	// Customer may only back out before preparation starts
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
