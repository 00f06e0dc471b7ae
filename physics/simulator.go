package physics

// Simulator advances one projectile through an environment one discrete
// tick at a time. It never terminates on its own: deciding when the shot
// has landed is the caller's policy, not the simulator's
type Simulator struct {
	env  Environment
	proj Projectile
}

// NewSimulator captures the environment and the launch state
func NewSimulator(env Environment, proj Projectile) *Simulator {
	return &Simulator{
		env:  env,
		proj: proj,
	}
}

// Tick advances one step: position moves by the current velocity, then the
// velocity picks up gravity and wind. The order is fixed; position always
// integrates the pre-update velocity. Returns a view of the live state,
// valid until the next Tick
func (s *Simulator) Tick() *Projectile {
	s.proj.Pos = s.proj.Pos.Add(s.proj.Vel)
	s.proj.Vel = s.proj.Vel.Add(s.env.Gravity.Add(s.env.Wind))
	return &s.proj
}

// Projectile returns a view of the current state without advancing it
func (s *Simulator) Projectile() *Projectile {
	return &s.proj
}

// Environment returns the simulator's environment
func (s *Simulator) Environment() Environment {
	return s.env
}
