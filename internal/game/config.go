package game

import "sync"

type Config struct {
	CandidateRadius      int             `json:"candidate_radius"`
	CenterBias           float64         `json:"center_bias"`
	CenterBiasReach      int             `json:"center_bias_reach"`
	JitterMax            float64         `json:"jitter_max"`
	BlockOpenFourBonus   float64         `json:"block_open_four_bonus"`
	BlockClosedFourBonus float64         `json:"block_closed_four_bonus"`
	Heuristics           HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig holds the per-tier score contributions. Five must stay
// strictly above any sum the lower tiers can reach across the four axes.
type HeuristicConfig struct {
	Five    float64 `json:"five"`
	Open4   float64 `json:"open_4"`
	Closed4 float64 `json:"closed_4"`
	Open3   float64 `json:"open_3"`
	Closed3 float64 `json:"closed_3"`
	Open2   float64 `json:"open_2"`
	Closed2 float64 `json:"closed_2"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		CandidateRadius: 1,

		// Center pull is max(0, reach - manhattan) * bias.
		CenterBias:      5.0,
		CenterBiasReach: 10,

		// Bounded random perturbation; 0 makes selection deterministic
		// for a seeded source.
		JitterMax: 5.0,

		// Must exceed the best non-winning attack+defend sum so blocking
		// an open four always outranks building one.
		BlockOpenFourBonus:   200000.0,
		BlockClosedFourBonus: 2000.0,

		Heuristics: HeuristicConfig{
			Five:    100000.0,
			Open4:   10000.0,
			Closed4: 1000.0,
			Open3:   1000.0,
			Closed3: 100.0,
			Open2:   100.0,
			Closed2: 10.0,
		},
	}
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{config: DefaultConfig()}
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

func resolveHeuristics(config Config) HeuristicConfig {
	if config.Heuristics == (HeuristicConfig{}) {
		return DefaultConfig().Heuristics
	}
	return config.Heuristics
}
