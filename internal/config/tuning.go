package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Damage policies accepted in Tuning.DamagePolicy.
const (
	DamageEnemiesOnly = "enemies"
	DamageAnyNonOwner = "any"
)

// configEnvKey names the environment variable holding the tuning file path.
const configEnvKey = "ROCKSHOT_CONFIG"

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay parameter that can be overridden from a TOML file.
// Distances are world units, speeds are world units per tick.
type Tuning struct {
	LevelWidth  float64 `toml:"level_width"`
	LevelHeight float64 `toml:"level_height"`

	// Ship
	ShipWidth    float64 `toml:"ship_width"`
	ShipHeight   float64 `toml:"ship_height"`
	ShipStartX   float64 `toml:"ship_start_x"`
	ShipStartY   float64 `toml:"ship_start_y"`
	WeaponOffset float64 `toml:"weapon_offset"` // From the ship's centre along +X
	WeaponSize   float64 `toml:"weapon_size"`   // Drawn square edge

	// Weapon
	FireRate     float64 `toml:"fire_rate"` // shots per second
	BulletSpeed  float64 `toml:"bullet_speed"`
	BulletSpread float64 `toml:"bullet_spread"` // radians
	BulletDamage float64 `toml:"bullet_damage"`
	BulletRange  float64 `toml:"bullet_range"`
	RecoilMin    float64 `toml:"recoil_min"`
	RecoilMax    float64 `toml:"recoil_max"`
	RecoilTime   float64 `toml:"recoil_time"` // seconds

	// Rocks
	RockSize      float64 `toml:"rock_size"`
	RockSpeed     float64 `toml:"rock_speed"`
	RockHealth    float64 `toml:"rock_health"`
	SpawnInterval int     `toml:"spawn_interval"` // frames
	SpawnX        float64 `toml:"spawn_x"`
	SpawnMinY     float64 `toml:"spawn_min_y"`
	SpawnMaxY     float64 `toml:"spawn_max_y"`
	CullMargin    float64 `toml:"cull_margin"`

	// DamagePolicy is DamageEnemiesOnly or DamageAnyNonOwner.
	DamagePolicy string `toml:"damage_policy"`

	// Terrain rows, top row first: '#' destructible, 'X' indestructible, anything else empty.
	Terrain []string `toml:"terrain"`
}

// DefaultTuning returns the stock prototype values.
func DefaultTuning() Tuning {
	return Tuning{
		LevelWidth:  38,
		LevelHeight: 19,

		ShipWidth:    0.75,
		ShipHeight:   3,
		ShipStartX:   2,
		ShipStartY:   9.5,
		WeaponOffset: 0.6,
		WeaponSize:   0.6,

		FireRate:     4,
		BulletSpeed:  0.5,
		BulletSpread: 0.1,
		BulletDamage: 1,
		BulletRange:  5,
		RecoilMin:    0.2,
		RecoilMax:    0.25,
		RecoilTime:   0.1,

		RockSize:      0.75,
		RockSpeed:     0.1,
		RockHealth:    1,
		SpawnInterval: 60,
		SpawnX:        38,
		SpawnMinY:     1,
		SpawnMaxY:     18,
		CullMargin:    2,

		DamagePolicy: DamageEnemiesOnly,
	}
}

// Load reads a TOML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// LoadFromEnv loads the file named by ROCKSHOT_CONFIG, if any.
func LoadFromEnv() (Tuning, error) {
	return Load(GetEnv(configEnvKey, ""))
}

// Validate reports the first parameter that would break the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.LevelWidth <= 0 || t.LevelHeight <= 0:
		return fmt.Errorf("%w: level size must be positive, got %vx%v", ErrInvalidTuning, t.LevelWidth, t.LevelHeight)
	case t.WeaponSize < 0:
		return fmt.Errorf("%w: weapon_size must not be negative, got %v", ErrInvalidTuning, t.WeaponSize)
	case t.FireRate <= 0:
		return fmt.Errorf("%w: fire_rate must be positive, got %v", ErrInvalidTuning, t.FireRate)
	case t.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet_speed must be positive, got %v", ErrInvalidTuning, t.BulletSpeed)
	case t.BulletSpread < 0:
		return fmt.Errorf("%w: bullet_spread must not be negative, got %v", ErrInvalidTuning, t.BulletSpread)
	case t.RecoilMax < t.RecoilMin:
		return fmt.Errorf("%w: recoil_max %v below recoil_min %v", ErrInvalidTuning, t.RecoilMax, t.RecoilMin)
	case t.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive, got %d", ErrInvalidTuning, t.SpawnInterval)
	case t.SpawnMaxY <= t.SpawnMinY:
		return fmt.Errorf("%w: spawn band [%v, %v) is empty", ErrInvalidTuning, t.SpawnMinY, t.SpawnMaxY)
	case t.SpawnMinY < 0 || t.SpawnMaxY > t.LevelHeight:
		return fmt.Errorf("%w: spawn band [%v, %v) outside level height %v", ErrInvalidTuning, t.SpawnMinY, t.SpawnMaxY, t.LevelHeight)
	case t.RockHealth <= 0:
		return fmt.Errorf("%w: rock_health must be positive, got %v", ErrInvalidTuning, t.RockHealth)
	case t.DamagePolicy != DamageEnemiesOnly && t.DamagePolicy != DamageAnyNonOwner:
		return fmt.Errorf("%w: damage_policy %q (want %q or %q)", ErrInvalidTuning, t.DamagePolicy, DamageEnemiesOnly, DamageAnyNonOwner)
	}
	return nil
}
