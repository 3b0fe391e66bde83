package invasion

// Hits groups the aliens destroyed in one tick by the bullet that hit them.
type Hits map[*Bullet][]*Alien

// Count returns the total number of destroyed aliens.
func (h Hits) Count() int {
	n := 0
	for _, aliens := range h {
		n += len(aliens)
	}
	return n
}

// ResolveBulletAlien checks every bullet against every alien and removes
// both sides of each hit. A bullet destroys all the aliens it overlaps; an
// alien overlapped by several bullets is credited to the first of them, and
// the others survive unless they hit something else.
//
// Hits are marked on a read-only pass and swept afterwards.
func ResolveBulletAlien(bullets *Bullets, fleet *Fleet) Hits {
	hits := make(Hits)
	claimed := make(map[*Alien]struct{})

	for _, b := range bullets.Items() {
		br := b.Rect()
		for _, a := range fleet.Aliens() {
			if _, ok := claimed[a]; ok {
				continue
			}
			if br.Intersects(a.Rect()) {
				claimed[a] = struct{}{}
				hits[b] = append(hits[b], a)
			}
		}
	}

	if len(hits) == 0 {
		return hits
	}

	spent := make(map[*Bullet]struct{}, len(hits))
	for b := range hits {
		spent[b] = struct{}{}
	}
	bullets.remove(spent)
	fleet.remove(claimed)
	return hits
}

// ShipCollides reports whether any alien overlaps the ship.
func ShipCollides(ship *Ship, fleet *Fleet) bool {
	sr := ship.Rect()
	for _, a := range fleet.Aliens() {
		if sr.Intersects(a.Rect()) {
			return true
		}
	}
	return false
}

// FleetBreached reports whether any alien reached the bottom of a viewport
// viewH units tall.
func FleetBreached(fleet *Fleet, viewH int) bool {
	for _, a := range fleet.Aliens() {
		if a.Rect().Bottom() >= viewH {
			return true
		}
	}
	return false
}
