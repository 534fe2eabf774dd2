package sim

// Config holds every tuning constant of the simulation
type Config struct {
	// Pool capacities
	EntityCapacity      int `toml:"entity_capacity"`
	PlayerShotCapacity  int `toml:"player_shot_capacity"`
	HostileShotCapacity int `toml:"hostile_shot_capacity"`

	// Play field
	FieldWidth  float64 `toml:"field_width"`
	FieldHeight float64 `toml:"field_height"`

	// Player
	PlayerStartX float64 `toml:"player_start_x"`
	PlayerStartY float64 `toml:"player_start_y"`
	PlayerSize   float64 `toml:"player_size"`
	PlayerSpeed  float64 `toml:"player_speed"`
	PlayerHealth int     `toml:"player_health"`

	// Player shots
	ShotSpeed          float64 `toml:"shot_speed"`
	ShotDamage         int     `toml:"shot_damage"`
	ShotDamagePerLevel int     `toml:"shot_damage_per_level"`
	ShotSize           float64 `toml:"shot_size"`

	// Elite death burst
	BurstCount  int     `toml:"burst_count"`
	BurstSpeed  float64 `toml:"burst_speed"`
	BurstDamage int     `toml:"burst_damage"`

	// Combat
	ContactDamage     int     `toml:"contact_damage"`
	KillScore         int     `toml:"kill_score"`
	ExplosionDuration float64 `toml:"explosion_duration"`
	PushStep          float64 `toml:"push_step"`

	// Spawning
	SpawnMinDistance float64 `toml:"spawn_min_distance"`
	SpawnAttempts    int     `toml:"spawn_attempts"`
	DifficultyPeriod float64 `toml:"difficulty_period"`
	BossUnlockTime   float64 `toml:"boss_unlock_time"`
	MinionCount      int     `toml:"minion_count"`
	MinionSpread     int     `toml:"minion_spread"`
	OpeningWave      bool    `toml:"opening_wave"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		EntityCapacity:      1000,
		PlayerShotCapacity:  30,
		HostileShotCapacity: 50,

		FieldWidth:  800,
		FieldHeight: 600,

		PlayerStartX: 200,
		PlayerStartY: 100,
		PlayerSize:   50,
		PlayerSpeed:  300,
		PlayerHealth: 200,

		ShotSpeed:          500,
		ShotDamage:         10,
		ShotDamagePerLevel: 5,
		ShotSize:           5,

		BurstCount:  8,
		BurstSpeed:  300,
		BurstDamage: 15,

		ContactDamage:     15,
		KillScore:         5,
		ExplosionDuration: 0.3,
		PushStep:          3,

		SpawnMinDistance: 150,
		SpawnAttempts:    10,
		DifficultyPeriod: 30,
		BossUnlockTime:   300,
		MinionCount:      5,
		MinionSpread:     100,
		OpeningWave:      true,
	}
}

// normalized replaces values that would make the tick panic or divide by zero
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		c.FieldWidth, c.FieldHeight = d.FieldWidth, d.FieldHeight
	}
	if c.DifficultyPeriod <= 0 {
		c.DifficultyPeriod = d.DifficultyPeriod
	}
	if c.MinionSpread < 1 {
		c.MinionSpread = 1
	}
	if c.SpawnAttempts < 0 {
		c.SpawnAttempts = 0
	}
	if c.BurstCount < 0 {
		c.BurstCount = 0
	}
	return c
}
