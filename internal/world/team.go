package world

import "github.com/breachpoint/server/internal/match"

// TeamInfo is a team roster with its score ledger. The two team IDs are
// fixed for the whole match.
type TeamInfo struct {
	TeamID  string
	members []*PlayerInfo
	points  int
}

var _ match.Team = (*TeamInfo)(nil)

func NewTeam(id string) *TeamInfo {
	return &TeamInfo{TeamID: id}
}

func (t *TeamInfo) ID() string { return t.TeamID }

func (t *TeamInfo) AddMember(p *PlayerInfo) {
	p.TeamID = t.TeamID
	t.members = append(t.members, p)
}

func (t *TeamInfo) Members() []*PlayerInfo { return t.members }

func (t *TeamInfo) TeamSize() int { return len(t.members) }

// IsTeamDead reports whether every rostered member is dead. Vacuously
// true for an empty roster; callers guard with TeamSize.
func (t *TeamInfo) IsTeamDead() bool {
	for _, p := range t.members {
		if !p.Dead {
			return false
		}
	}
	return true
}

func (t *TeamInfo) Score(points int) { t.points += points }
func (t *TeamInfo) Points() int      { return t.points }
