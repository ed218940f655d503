// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for arena and bot runtime settings.
//
// IMPORTANT: When changing values, only modify this file.
// All other parts of the codebase should reference these values.
package config

import (
	"os"
	"strconv"
)

// =============================================================================
// ARENA CONFIGURATION
// =============================================================================

// ArenaConfig holds the world-size settings shared across the simulation
// core.
type ArenaConfig struct {
	Width  float64 // World width in units
	Height float64 // World height in units
}

// DefaultArena returns the default arena configuration.
// This is the SINGLE SOURCE OF TRUTH for world size.
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		Width:  400,
		Height: 400,
	}
}

// ArenaFromEnv returns arena configuration with environment variable overrides.
// Environment variables take precedence over defaults.
func ArenaFromEnv() ArenaConfig {
	cfg := DefaultArena()

	if w := getEnvFloat("ARENA_WIDTH", 0); w > 0 {
		cfg.Width = w
	}
	if h := getEnvFloat("ARENA_HEIGHT", 0); h > 0 {
		cfg.Height = h
	}

	return cfg
}

// =============================================================================
// BOT RUNTIME CONFIGURATION
// =============================================================================

// BotConfig holds per-bot lifecycle and resource settings.
type BotConfig struct {
	MaxHealth      int     // Maximum (and initial) health
	MaxEnergy      int     // Maximum energy; energy may still go negative
	EnergyRegen    int     // Energy regenerated at the start of each tick
	OpsPerTick     int     // Opcode execution budget per bot per tick
	MaxStackDepth  int     // Operand stack depth before a stack-overflow fault
	Radius         float64 // Collision/scan radius
	MinSpeed       float64
	MaxSpeed       float64
}

// DefaultBot returns the default bot runtime configuration.
func DefaultBot() BotConfig {
	return BotConfig{
		MaxHealth:     100,
		MaxEnergy:     100,
		EnergyRegen:   5,
		OpsPerTick:    50,
		MaxStackDepth: 100,
		Radius:        10,
		MinSpeed:      0,
		MaxSpeed:      10,
	}
}

// BotFromEnv returns bot configuration with environment variable overrides.
func BotFromEnv() BotConfig {
	cfg := DefaultBot()

	if v := getEnvInt("BOT_OPS_PER_TICK", 0); v > 0 {
		cfg.OpsPerTick = v
	}
	if v := getEnvInt("BOT_ENERGY_REGEN", -1); v >= 0 {
		cfg.EnergyRegen = v
	}
	if v := getEnvInt("BOT_MAX_STACK_DEPTH", 0); v > 0 {
		cfg.MaxStackDepth = v
	}

	return cfg
}

// =============================================================================
// PROJECTILE CONFIGURATION
// =============================================================================

// ProjectileConfig holds bullet ballistics settings.
type ProjectileConfig struct {
	MinPower   int     // Minimum FIRE power; not read: FIRE clamps to the fixed range [1,10]
	MaxPower   int     // Maximum FIRE power; not read: FIRE clamps to the fixed range [1,10]
	SpeedBase  float64 // Base speed added to power to get bullet speed
	MaxRange   float64 // Distance at which a bullet expires
	EnergyCost int     // Energy per power point on FIRE; not read: FIRE charges a fixed 2
}

// DefaultProjectile returns the default projectile configuration.
func DefaultProjectile() ProjectileConfig {
	return ProjectileConfig{
		MinPower:   1,
		MaxPower:   10,
		SpeedBase:  10,
		MaxRange:   1000,
		EnergyCost: 2,
	}
}

// =============================================================================
// RESOURCE LIMITS
// =============================================================================

// ResourceLimits bounds worst-case memory/CPU consumption so a pathological
// or malicious bot program cannot degrade the whole arena.
type ResourceLimits struct {
	MaxBots          int // Hard cap on bots an arena will accept
	MaxBullets       int // Hard cap on concurrently live bullets
	FaultLogsPerSec  int // Max diagnostics emitted to the Observer per bot per second
	FaultLogsBurst   int // Burst allowance for the above
}

// DefaultLimits returns the default resource limits.
func DefaultLimits() ResourceLimits {
	return ResourceLimits{
		MaxBots:         256,
		MaxBullets:      4096,
		FaultLogsPerSec: 5,
		FaultLogsBurst:  5,
	}
}

// =============================================================================
// COMPLETE CONFIGURATION
// =============================================================================

// Config holds the complete simulation configuration.
type Config struct {
	Arena      ArenaConfig
	Bot        BotConfig
	Projectile ProjectileConfig
	Limits     ResourceLimits
}

// Load returns the complete configuration with environment overrides applied
// where supported.
func Load() Config {
	return Config{
		Arena:      ArenaFromEnv(),
		Bot:        BotFromEnv(),
		Projectile: DefaultProjectile(),
		Limits:     DefaultLimits(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
