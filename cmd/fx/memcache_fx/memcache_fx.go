package memcache_fx

import (
	"go.uber.org/fx"
	mem "wanderplan/pkg/memcache"
)

var Module = fx.Provide(provideResetTokens)

func provideResetTokens() mem.TokenStore {
	return mem.NewResetTokens()
}
