package config

import "time"

// PollConfig controls the refresh scheduler's pacing. Interval values are
// configuration rather than constants because they track the API plan tier.
type PollConfig struct {
	LiveInterval      time.Duration // while any match is live
	IdleInterval      time.Duration // otherwise, and the base failure delay
	MinInterval       time.Duration // provider floor; LiveInterval never drops below it
	BackoffMultiplier float64       // applied per consecutive failure
	BackoffMax        time.Duration // cap on the failure delay
	FetchTimeout      time.Duration // per-cycle deadline
	StaleMargin       time.Duration // stale notice when age > IdleInterval + StaleMargin
}

func loadPoll() PollConfig {
	return PollConfig{
		LiveInterval:      durationEnvOrDefault(envPollLive, defaultPollLive),
		IdleInterval:      durationEnvOrDefault(envPollIdle, defaultPollIdle),
		MinInterval:       durationEnvOrDefault(envPollMin, defaultPollMin),
		BackoffMultiplier: floatEnvOrDefault(envBackoffMult, defaultBackoffMult),
		BackoffMax:        durationEnvOrDefault(envBackoffMax, defaultBackoffMax),
		FetchTimeout:      durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		StaleMargin:       durationEnvOrDefault(envStaleMargin, defaultStaleMargin),
	}
}

// clamp enforces the relationships the scheduler relies on: the live interval
// respects the provider floor, the idle interval is never shorter than the
// live one, and the backoff cap is at least the idle interval so a capped
// delay still means "try again soon enough".
func (p *PollConfig) clamp() {
	if p.LiveInterval < p.MinInterval {
		p.LiveInterval = p.MinInterval
	}
	if p.IdleInterval < p.LiveInterval {
		p.IdleInterval = p.LiveInterval
	}
	if p.BackoffMultiplier < 1 {
		p.BackoffMultiplier = 1
	}
	if p.BackoffMax < p.IdleInterval {
		p.BackoffMax = p.IdleInterval
	}
}
