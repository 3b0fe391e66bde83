package invasion

// Layout is the alien grid that fits a viewport.
type Layout struct {
	Cols int
	Rows int
}

// Count returns the number of aliens in the grid.
func (l Layout) Count() int {
	return l.Cols * l.Rows
}

// FleetLayout computes the grid for a viewport. Aliens are spaced one alien
// width apart with a one-alien margin on each side; rows stop three alien
// heights plus the ship height above the bottom. Space that does not fit a
// single alien gives an empty grid.
func FleetLayout(viewW, viewH, alienW, alienH, shipH int) Layout {
	if alienW <= 0 || alienH <= 0 {
		return Layout{}
	}
	cols := floorDiv(viewW-2*alienW, 2*alienW)
	rows := floorDiv(viewH-3*alienH-shipH, 3*alienH)
	if cols <= 0 || rows <= 0 {
		return Layout{}
	}
	return Layout{Cols: cols, Rows: rows}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Fleet is the live alien formation.
type Fleet struct {
	aliens []*Alien
	layout Layout
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{}
}

// Spawn replaces the fleet with a fresh grid and returns its size.
func (f *Fleet) Spawn(s *Settings) int {
	f.layout = FleetLayout(s.ScreenW, s.ScreenH, s.Alien.W, s.Alien.H, s.Ship.H)
	f.aliens = make([]*Alien, 0, f.layout.Count())

	w, h := s.Alien.W, s.Alien.H
	for row := range f.layout.Rows {
		for col := range f.layout.Cols {
			f.aliens = append(f.aliens, &Alien{
				X: float64(w + 2*w*col),
				Y: h + h*row,
				W: w,
				H: h,
			})
		}
	}
	return len(f.aliens)
}

// Aliens returns the live aliens. The slice must not be modified.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}

// Layout returns the grid of the last spawn.
func (f *Fleet) Layout() Layout {
	return f.layout
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

// Empty reports whether every alien has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.aliens) == 0
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	clear(f.aliens)
	f.aliens = f.aliens[:0]
}

// TouchesEdge reports whether any alien touches the side of the viewport
// the fleet is heading towards.
func (f *Fleet) TouchesEdge(viewW int, dir Direction) bool {
	for _, a := range f.aliens {
		if a.AtLeadingEdge(viewW, dir) {
			return true
		}
	}
	return false
}

// ReverseAndDrop drops every alien and flips the shared fleet direction.
func (f *Fleet) ReverseAndDrop(s *Settings) {
	for _, a := range f.aliens {
		a.Y += s.FleetDropSpeed
	}
	s.FleetDirection = s.FleetDirection.Reverse()
}

// Advance moves every alien horizontally.
func (f *Fleet) Advance(speed float64, dir Direction) {
	for _, a := range f.aliens {
		a.Update(speed, dir)
	}
}

// Update runs one tick of fleet movement: edge check, reversal and drop,
// then the horizontal step in the current direction. It reports whether the
// fleet reversed.
//
// Only contact with the edge the fleet is heading towards reverses it, so a
// fleet still inside the edge band right after a reversal keeps its new heading.
func (f *Fleet) Update(s *Settings) bool {
	reversed := false
	if f.TouchesEdge(s.ScreenW, s.FleetDirection) {
		f.ReverseAndDrop(s)
		reversed = true
	}
	f.Advance(s.AlienSpeed, s.FleetDirection)
	return reversed
}

// remove sweeps out the marked aliens, keeping the order of the rest.
func (f *Fleet) remove(dead map[*Alien]struct{}) int {
	if len(dead) == 0 {
		return 0
	}
	kept := f.aliens[:0]
	for _, a := range f.aliens {
		if _, ok := dead[a]; !ok {
			kept = append(kept, a)
		}
	}
	removed := len(f.aliens) - len(kept)
	clear(f.aliens[len(kept):])
	f.aliens = kept
	return removed
}

// Bullets is the collection of live projectiles.
type Bullets struct {
	items []*Bullet
}

// NewBullets creates an empty collection.
func NewBullets() *Bullets {
	return &Bullets{}
}

// Add appends a bullet.
func (b *Bullets) Add(bullet *Bullet) {
	b.items = append(b.items, bullet)
}

// Items returns the live bullets. The slice must not be modified.
func (b *Bullets) Items() []*Bullet {
	return b.items
}

// Len returns the number of live bullets.
func (b *Bullets) Len() int {
	return len(b.items)
}

// Clear removes every bullet.
func (b *Bullets) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}

// Update advances every bullet and prunes those that left the top of the
// viewport. It returns how many were pruned.
func (b *Bullets) Update(speed float64) int {
	gone := make(map[*Bullet]struct{})
	for _, bullet := range b.items {
		bullet.Update(speed)
		if bullet.Gone() {
			gone[bullet] = struct{}{}
		}
	}
	return b.remove(gone)
}

// remove sweeps out the marked bullets, keeping the order of the rest.
func (b *Bullets) remove(dead map[*Bullet]struct{}) int {
	if len(dead) == 0 {
		return 0
	}
	kept := b.items[:0]
	for _, bullet := range b.items {
		if _, ok := dead[bullet]; !ok {
			kept = append(kept, bullet)
		}
	}
	removed := len(b.items) - len(kept)
	clear(b.items[len(kept):])
	b.items = kept
	return removed
}
