package event

import "time"

// Match progression events published by the round coordinator.

// RoundStarted fires when intermission ends and a round goes live.
type RoundStarted struct {
	Round int
}

// RoundEnded fires when a win condition (or administrative termination)
// ends a round. Winner is the winning team ID, empty when the round ended
// with no winner.
type RoundEnded struct {
	Round         int
	Winner        string
	AttackerScore int
	DefenderScore int
	Elapsed       time.Duration
}
