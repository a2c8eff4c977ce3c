package router

import (
	app "github.com/lawbridge/lawbridge-backend/internal/application"
	"github.com/lawbridge/lawbridge-backend/internal/container"
	"github.com/lawbridge/lawbridge-backend/internal/domain/service"
	pginfra "github.com/lawbridge/lawbridge-backend/internal/infrastructure/postgres"
	handlers "github.com/lawbridge/lawbridge-backend/internal/interface/http"
	"github.com/lawbridge/lawbridge-backend/internal/router/modules"
)

// ModuleDeps aggregates the constructed services so startup code and tests
// can reach them after wiring.
type ModuleDeps struct {
	Accounts   *app.AccountService
	Onboarding *app.OnboardingService
	Lawyers    *app.LawyerOnboardingService
	Catalog    *app.CatalogService
}

func buildDeps() ModuleDeps {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	accountRepo := pginfra.NewAccountRepository(pool)
	clientRepo := pginfra.NewClientProfileRepository(pool)
	lawyerRepo := pginfra.NewLawyerProfileRepository(pool)
	specRepo := pginfra.NewSpecializationRepository(pool)
	langRepo := pginfra.NewLanguageRepository(pool)

	dispatcher := app.NewEventDispatcher(container.GetRabbitPub(), logger)

	accounts := app.NewAccountService(
		accountRepo,
		service.NewUserDomainService(),
		dispatcher,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESAccountsIndex,
	)
	onboarding := app.NewOnboardingService(
		clientRepo,
		service.NewClientDomainService(clientRepo, specRepo),
		dispatcher,
		logger,
	)
	lawyers := app.NewLawyerOnboardingService(
		lawyerRepo,
		langRepo,
		specRepo,
		dispatcher,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
	)
	catalog := app.NewCatalogService(specRepo, langRepo)

	return ModuleDeps{
		Accounts:   accounts,
		Onboarding: onboarding,
		Lawyers:    lawyers,
		Catalog:    catalog,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(deps.Accounts, logger), jwt))
	r.Add(modules.NewClientModule(handlers.NewClientHandler(deps.Onboarding, logger), jwt))
	r.Add(modules.NewLawyerModule(handlers.NewLawyerHandler(deps.Lawyers, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(deps.Accounts, logger), jwt))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(deps.Catalog)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
