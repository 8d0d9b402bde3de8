package match

import "testing"

func TestNextPlayerToSpectate_PicksNextLivePlayer(t *testing.T) {
	self := &fakePlayer{id: 1, dead: true}
	next := &fakePlayer{id: 2}
	players := []Player{self, next, &fakePlayer{id: 3}}

	if got := nextPlayerToSpectate(players, self); got != next {
		t.Errorf("got %v, want player 2", got)
	}
}

func TestNextPlayerToSpectate_WrapsAround(t *testing.T) {
	first := &fakePlayer{id: 1}
	self := &fakePlayer{id: 3, dead: true}
	players := []Player{first, &fakePlayer{id: 2, dead: true}, self}

	if got := nextPlayerToSpectate(players, self); got != first {
		t.Errorf("got %v, want wrap-around to player 1", got)
	}
}

func TestNextPlayerToSpectate_SkipsDeadPureAndNil(t *testing.T) {
	self := &fakePlayer{id: 1, dead: true}
	eligible := &fakePlayer{id: 4}
	players := []Player{
		self,
		nil,
		&fakePlayer{id: 2, dead: true},
		&fakePlayer{id: 3, pure: true},
		eligible,
	}

	if got := nextPlayerToSpectate(players, self); got != eligible {
		t.Errorf("got %v, want player 4", got)
	}
}

func TestNextPlayerToSpectate_NobodyEligible(t *testing.T) {
	self := &fakePlayer{id: 1, dead: true}
	players := []Player{self, &fakePlayer{id: 2, dead: true}, nil}

	if got := nextPlayerToSpectate(players, self); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestNextPlayerToSpectate_SelfNotInRoster(t *testing.T) {
	self := &fakePlayer{id: 99, dead: true}
	players := []Player{&fakePlayer{id: 1}}

	if got := nextPlayerToSpectate(players, self); got != nil {
		t.Errorf("got %v, want nil when self is not rostered", got)
	}
}
