package interaction

import "chosenoffset.com/discoverme/internal/entity"

// FindNearby returns the first candidate, in declared order, that is both
// scannable and within range of the player. Declared order wins over
// distance. A nil player never matches.
func FindNearby(player *entity.Player, candidates []entity.Interactive) entity.Interactive {
	if player == nil {
		return nil
	}
	bounds := player.Bounds()
	for _, c := range candidates {
		if c == nil || !c.Scannable() {
			continue
		}
		if c.Near(bounds) {
			return c
		}
	}
	return nil
}
