package sim

// Status is the outcome of a level.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// DefaultLives is the life count a fresh State starts with.
const DefaultLives = 3

// State is an immutable snapshot of a level in play.
// Treat Actors as read-only; Update always allocates a new slice.
type State struct {
	Level  *Level
	Actors []Actor
	Status Status
	Lives  int

	physics Physics
}

// Start returns the initial state of a level with DefaultLives.
func Start(level *Level) State {
	return StartWithLives(level, DefaultLives)
}

// StartWithLives returns the initial state of a level with the given lives.
func StartWithLives(level *Level, lives int) State {
	return State{
		Level:   level,
		Actors:  level.StartActors(),
		Status:  StatusPlaying,
		Lives:   lives,
		physics: DefaultPhysics(),
	}
}

// WithPhysics returns a copy of s that steps with the given constants.
func (s State) WithPhysics(p Physics) State {
	s.physics = p
	return s
}

// Physics returns the constants this state steps with.
func (s State) Physics() Physics {
	return s.physics
}

// Player returns the player actor.
func (s State) Player() (Player, bool) {
	for _, a := range s.Actors {
		if p, ok := a.(Player); ok {
			return p, true
		}
	}
	return Player{}, false
}

// Count returns the number of live actors of the given kind.
func (s State) Count(k Kind) int {
	n := 0
	for _, a := range s.Actors {
		if a.Kind() == k {
			n++
		}
	}
	return n
}

// Update advances every actor by dt seconds and resolves player contacts.
//
// All actors see the pre-step state. Once the status leaves playing the
// state only animates. Touching a lava tile wins over actor contacts.
// Overlapping actors collide in actor order (spawn order), each seeing the
// state produced by the previous collision.
func (s State) Update(dt float64, keys Keys) State {
	actors := make([]Actor, len(s.Actors))
	for i, a := range s.Actors {
		actors[i] = a.Update(dt, s, keys)
	}

	next := s
	next.Actors = actors
	if next.Status != StatusPlaying {
		return next
	}

	player, ok := next.Player()
	if !ok {
		return next
	}
	if s.Level.Touches(player.Pos(), player.Size(), TileLava) {
		return next.lose()
	}

	for _, a := range actors {
		if a.ID() == player.ID() || !Overlap(a, player) {
			continue
		}
		if c, ok := a.(Collider); ok {
			next = c.Collide(next)
		}
	}
	return next
}

// lose marks the level lost and takes a life.
func (s State) lose() State {
	s.Status = StatusLost
	s.Lives--
	return s
}

// without returns a copy of s with the actor of the given ID removed.
func (s State) without(id int) State {
	actors := make([]Actor, 0, len(s.Actors))
	for _, a := range s.Actors {
		if a.ID() != id {
			actors = append(actors, a)
		}
	}
	s.Actors = actors
	return s
}
