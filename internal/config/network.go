package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
)

// NetworkResolver resolves network names to RPC endpoints from foundry.toml
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// Resolve resolves a network name, or a literal http(s)/ws(s) URL, to a network
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if isRPCURL(networkName) {
		return &config.Network{Name: networkName, RPCURL: networkName}, nil
	}

	var endpoints map[string]string
	if r.foundryConfig != nil {
		endpoints = r.foundryConfig.RpcEndpoints
	}

	rpcURL, exists := endpoints[networkName]
	if !exists {
		return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints] (available: %s)",
			networkName, strings.Join(r.Names(), ", "))
	}
	if strings.TrimSpace(rpcURL) == "" {
		return nil, fmt.Errorf("rpc endpoint for network '%s' is empty, is its environment variable set?", networkName)
	}

	return &config.Network{Name: networkName, RPCURL: rpcURL}, nil
}

// Names returns the configured network names, sorted
func (r *NetworkResolver) Names() []string {
	if r.foundryConfig == nil {
		return nil
	}
	names := make([]string, 0, len(r.foundryConfig.RpcEndpoints))
	for name := range r.foundryConfig.RpcEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isRPCURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
