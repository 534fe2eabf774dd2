package sim

// Variant identifies the kind of hostile entity
type Variant uint8

const (
	Grunt  Variant = iota // Plain chaser
	Elite                 // Releases a death burst when it starts exploding
	Boss                  // Slow and tough, splits into minions on death
	Minion                // Fast and fragile, only spawned by a dying boss
	variantCount
)

var variantNames = [variantCount]string{
	Grunt:  "grunt",
	Elite:  "elite",
	Boss:   "boss",
	Minion: "minion",
}

func (v Variant) String() string {
	if v < variantCount {
		return variantNames[v]
	}
	return "unknown"
}

// Stats holds the spawn-time attributes of an entity
type Stats struct {
	Width, Height float64
	Speed         float64
	Health        int
}

// variantBase holds the per-variant numbers that difficulty scales
type variantBase struct {
	size           float64
	speed          float64
	speedPerLevel  float64
	speedCap       float64 // 0 means uncapped
	health         int
	healthPerLevel int
}

var variantTable = [variantCount]variantBase{
	Grunt: {
		size:           40,
		speed:          150,
		speedPerLevel:  10,
		speedCap:       300,
		health:         30,
		healthPerLevel: 10,
	},
	Elite: {
		size:           40,
		speed:          150,
		speedPerLevel:  10,
		speedCap:       300,
		health:         30,
		healthPerLevel: 10,
	},
	Boss: {
		size:           100,
		speed:          50,
		health:         200,
		healthPerLevel: 50,
	},
	Minion: {
		size:   25,
		speed:  350,
		health: 10,
	},
}

// StatsFor derives size, speed and health for a variant at a difficulty level.
// Unknown variants fall back to Grunt.
func StatsFor(v Variant, difficulty int) Stats {
	if v >= variantCount {
		v = Grunt
	}
	if difficulty < 0 {
		difficulty = 0
	}
	b := variantTable[v]

	speed := b.speed + b.speedPerLevel*float64(difficulty)
	if b.speedCap > 0 && speed > b.speedCap {
		speed = b.speedCap
	}

	return Stats{
		Width:  b.size,
		Height: b.size,
		Speed:  speed,
		Health: b.health + b.healthPerLevel*difficulty,
	}
}
