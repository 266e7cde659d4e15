package config

import "strings"

// RedisConfig contains Redis configuration. Exactly one topology is used:
// cluster when UseCluster is set, sentinel when UseSentinel is set, otherwise
// a single node at URI.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// SentinelAddrs returns sentinel addresses, appending SentinelPort to nodes
// configured without one.
func (c RedisConfig) SentinelAddrs() []string {
	addrs := make([]string, 0, len(c.SentinelNodes))
	for _, node := range c.SentinelNodes {
		node = strings.TrimSpace(node)
		if node == "" {
			continue
		}
		if !strings.Contains(node, ":") && c.SentinelPort != "" {
			node += ":" + c.SentinelPort
		}
		addrs = append(addrs, node)
	}
	return addrs
}
