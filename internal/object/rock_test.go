package object_test

import (
	"errors"
	"testing"

	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

func TestRockDrifts(t *testing.T) {
	rock := object.NewRock(physics.V(38, 9), config.DefaultTuning())
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		if _, err := rock.Update(w.ctx(tick)); err != nil {
			t.Fatal(err)
		}
	}
	if want := physics.V(37, 9); !rock.Pos.ApproxEqual(want) {
		t.Errorf("rock pos = %v, want %v", rock.Pos, want)
	}
}

func TestRockKillScoresExactlyOnce(t *testing.T) {
	rock := object.NewRock(physics.V(10, 5), config.DefaultTuning())
	w := newTestWorld()
	ctx := w.ctx(tick)

	rock.Damage(ctx, 1, nil)
	rock.Damage(ctx, 1, nil)
	rock.Damage(ctx, 5, nil)

	if len(w.kills) != 1 {
		t.Fatalf("kills = %d, want 1", len(w.kills))
	}
	if w.kills[0] != rock {
		t.Error("kill should name the rock")
	}
	if !rock.Destroyed() {
		t.Error("rock should be destroyed")
	}

	var debris int
	for _, o := range w.spawned {
		if _, ok := o.(*object.Particle); ok {
			debris++
		}
	}
	if debris == 0 {
		t.Error("kill should burst into debris")
	}
}

func TestRockSurvivesPartialDamage(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.RockHealth = 3
	rock := object.NewRock(physics.V(10, 5), tuning)
	w := newTestWorld()

	rock.Damage(w.ctx(tick), 1, nil)
	rock.Damage(w.ctx(tick), -4, nil)

	if rock.Destroyed() {
		t.Fatal("rock should survive")
	}
	if rock.Health != 2 {
		t.Errorf("Health = %v, want 2 (negative damage clamped)", rock.Health)
	}
}

func TestRockCulledSilently(t *testing.T) {
	rock := object.NewRock(physics.V(-1.95, 5), config.DefaultTuning())
	w := newTestWorld()

	remove, err := rock.Update(w.ctx(tick))
	if err != nil {
		t.Fatal(err)
	}
	if !remove {
		t.Error("rock past the cull margin should be removed")
	}
	if len(w.kills) != 0 {
		t.Errorf("cull scored %d kills, want 0", len(w.kills))
	}
}

func TestRockUpdateAfterDestroy(t *testing.T) {
	rock := object.NewRock(physics.V(10, 5), config.DefaultTuning())
	rock.Destroy()
	rock.Destroy()

	if _, err := rock.Update(newTestWorld().ctx(tick)); !errors.Is(err, object.ErrDestroyed) {
		t.Errorf("Update = %v, want ErrDestroyed", err)
	}
}
