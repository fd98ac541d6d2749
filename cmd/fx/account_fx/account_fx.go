package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
	mem "wanderplan/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, resetTokens mem.TokenStore, mailService services.MailServiceInterface) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService)
}
