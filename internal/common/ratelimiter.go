package common

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RateLimiter applies the same restrictions to every key independently,
// keeping the history of allowed requests of each key
type RateLimiter struct {
	mu           sync.Mutex
	restrictions []Restriction          // Restrictions to consider
	history      map[string][]time.Time // History of requests per key
	duration     time.Duration          // Min duration to wait for all restrictions to be lifted
	clock        func() time.Time
}

func NewRateLimiter(restrictions []Restriction) *RateLimiter {
	rl := &RateLimiter{
		restrictions: append([]Restriction(nil), restrictions...),
		history:      map[string][]time.Time{},
		clock:        time.Now,
	}
	for _, restriction := range restrictions {
		if restriction.Duration > rl.duration {
			rl.duration = restriction.Duration
		}
	}
	return rl
}

// Decide if a request for the key is allowed, and record it if so
func (rl *RateLimiter) Allow(key string) Analysis {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	requestId := uuid.New()
	currentTime := rl.clock()
	history := rl.trim(rl.history[key], currentTime)

	analysis := rl.analyse(history, currentTime)
	if analysis.Allowed {
		log.Debug().Msg(fmt.Sprintf("Allowing request %s for %s", requestId, key))
		if len(rl.restrictions) > 0 {
			history = append(history, currentTime)
		}
	} else {
		log.Warn().Msg(fmt.Sprintf("Rejecting request %s for %s, allowed again in %.1f seconds", requestId, key, analysis.Wait.Seconds()))
	}

	if len(history) == 0 {
		delete(rl.history, key)
	} else {
		rl.history[key] = history
	}
	return analysis
}

// Prune forgets the keys whose history is too old to affect any restriction
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	currentTime := rl.clock()
	pruned := 0
	for key, history := range rl.history {
		if len(rl.trim(history, currentTime)) == 0 {
			delete(rl.history, key)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug().Msg(fmt.Sprintf("Pruned rate limiter history of %d keys", pruned))
	}
	return pruned
}

// Number of keys with a recent history
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.history)
}

// Trim the history, leaving only the requests
// that are young enough to be affected by at least one restriction
func (rl *RateLimiter) trim(history []time.Time, currentTime time.Time) []time.Time {
	// Times are stored in chronological order, so search from the end
	index := 0
	for i := len(history) - 1; i >= 0; i-- {
		if currentTime.Sub(history[i]) >= rl.duration {
			index = i + 1
			break
		}
	}
	return history[index:]
}

func (rl *RateLimiter) analyse(history []time.Time, currentTime time.Time) Analysis {

	// Merge the analyses of every restriction
	var wait time.Duration = 0
	allowed := true
	for _, restriction := range rl.restrictions {
		analysis := restriction.Analyse(history, currentTime)
		allowed = allowed && analysis.Allowed
		if analysis.Wait > wait {
			wait = analysis.Wait
		}
	}
	return Analysis{Allowed: allowed, Wait: wait}
}
