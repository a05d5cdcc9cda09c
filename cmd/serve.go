// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/business-access-service/internal/authorization"
	"github.com/canonical/business-access-service/internal/config"
	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/identity"
	"github.com/canonical/business-access-service/internal/kratos"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring/prometheus"
	"github.com/canonical/business-access-service/internal/openfga"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/access"
	"github.com/canonical/business-access-service/pkg/authentication"
	"github.com/canonical/business-access-service/pkg/guard"
	"github.com/canonical/business-access-service/pkg/onboarding"
	"github.com/canonical/business-access-service/pkg/resources"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tenant"
	"github.com/canonical/business-access-service/pkg/tier"
	"github.com/canonical/business-access-service/pkg/web"
	"github.com/canonical/business-access-service/pkg/webhooks"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("business-access-service", logger)
	tracer := tracing.NewTracer(
		tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRate, logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	if specs.RowSecurityCheck {
		if err := s.VerifyRowSecurity(ctx, resources.Tables()...); err != nil {
			return fmt.Errorf("refusing to serve tenant data: %w", err)
		}
	} else {
		logger.Warn("Row security check is disabled")
	}

	authorizer := newAuthorizer(ctx, specs, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	tierResolver := tier.NewResolver(s, tracer, monitor, logger)
	tenantService := tenant.NewService(s, dbClient, kratosClient, tracer, monitor, logger)
	onboardingService := onboarding.NewService(s, tenantService, tracer, monitor, logger)

	sessions := session.NewManager(
		tierResolver,
		tenantService,
		onboardingService,
		specs.SessionResolveTimeout,
		tracer,
		monitor,
		logger,
	)

	// sessions follow business writes made outside of the onboarding flow
	tenantService.OnBusinessChange(func(b *types.Business) {
		sessions.Update(b.OwnerID, func(st *session.State) {
			st.Business = b
		})
	})

	accessService := access.NewService(authorizer, tracer, monitor, logger)
	routeGuard := guard.NewGuard(sessions, specs.GuardResolveWait, tracer, monitor, logger)
	webhookService := webhooks.NewService(s, tierResolver, tenantService, tracer, monitor, logger)

	notifier := db.NewNotifier(dbClient.Pool(), db.ChangesChannel, tracer, monitor, logger)

	verifier, err := newVerifier(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	router := web.NewRouter(
		sessions,
		accessService,
		routeGuard,
		tenantService,
		onboardingService,
		webhookService,
		resources.Dependencies{
			Storage: s,
			Scope:   dbClient,
			Tenants: tenantService,
			Changes: notifier,
			Tracer:  tracer,
			Monitor: monitor,
			Logger:  logger,
		},
		authentication.NewMiddleware(verifier, tracer, monitor, logger),
		identity.NewMiddleware(specs.IdentityHeaderEnabled, tracer, monitor, logger),
		dbClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return notifier.Run(gctx)
	})

	g.Go(func() error {
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Security().SystemShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newAuthorizer(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor *prometheus.Monitor, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer, page grants are not enforced")
		return authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(
		ofga,
		tracer,
		monitor,
		logger,
	)
	logger.Info("Authorization is enabled")
	if authorizer.ValidateModel(ctx) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer
}

func newVerifier(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor *prometheus.Monitor, logger logging.LoggerInterface) (authentication.TokenVerifierInterface, error) {
	if !specs.AuthenticationEnabled {
		logger.Warn("Authentication is disabled, bearer tokens are taken as identity IDs")
		return authentication.NewNoopVerifier(), nil
	}

	verifier, err := authentication.NewJWTAuthenticator(
		ctx,
		specs.OIDCIssuer,
		specs.OIDCJWKSURL,
		authentication.Policy{
			AllowedSubjects: specs.OIDCAllowedSubjects,
			RequiredScope:   specs.OIDCRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authentication: %w", err)
	}

	return verifier, nil
}
