package match

// nextPlayerToSpectate picks the next live, non-spectator player after
// self in roster order, wrapping around. Returns nil when nobody is
// eligible; the caller leaves the dead player where they are.
func nextPlayerToSpectate(players []Player, self Player) Player {
	start := -1
	for i, p := range players {
		if p != nil && p.ID() == self.ID() {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	n := len(players)
	for off := 1; off <= n; off++ {
		p := players[(start+off)%n]
		if p == nil || p.ID() == self.ID() {
			continue
		}
		if !p.IsDead() && !p.IsPureSpectator() {
			return p
		}
	}
	return nil
}
