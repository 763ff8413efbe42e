// Package build draws random weapon and attunement combinations.
package build

import (
	"math/rand/v2"
	"sync"
	"time"
)

var Weapons = []string{
	"Dagger",
	"Fist",
	"Gun",
	"Rapier",
	"Twinblade",
	"Sword",
	"Rifle",
	"Club",
	"Greatsword",
	"Greataxe",
	"Greathammer",
	"Greatsword",
	"Greatcannon",
}

var Attunements = []string{
	"Attunementless",
	"Flamecharm",
	"Frostdraw",
	"Galebreath",
	"Bloodrend",
	"Ironsing",
	"Shadowcast",
	"Thundercall",
}

type Build struct {
	Weapon     string
	Attunement string
}

// Roller is safe for concurrent use
type Roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller draws from the provided source, or from a time seeded one if nil
func NewRoller(rng *rand.Rand) *Roller {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	}
	return &Roller{rng: rng}
}

// Roll picks a weapon and an attunement independently and uniformly
func (roller *Roller) Roll() Build {
	weapon, attunement := roller.roll()
	return Build{Weapon: Weapons[weapon], Attunement: Attunements[attunement]}
}

func (roller *Roller) roll() (int, int) {
	roller.mu.Lock()
	defer roller.mu.Unlock()
	return roller.rng.IntN(len(Weapons)), roller.rng.IntN(len(Attunements))
}
