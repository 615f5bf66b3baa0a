package routes

import (
	"context"
	"fmt"
	"log"

	"seguros_xpto/internal/adapter/persistence/repository"
	"seguros_xpto/internal/infrastructure/broker"
	"seguros_xpto/internal/infrastructure/config"
	"seguros_xpto/internal/infrastructure/database"
	"seguros_xpto/internal/usecase/interfaces"
)

// cleanup releases a connection opened during wiring.
type cleanup func()

func newProposalRepository(ctx context.Context, cfg config.Config) (interfaces.IProposalRepository, cleanup, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		log.Printf("[proposal][storage] using dynamodb table=%s", cfg.ProposalsTable)
		return repository.NewProposalDynamoRepository(ddb, cfg.ProposalsTable), func() {}, nil
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.PostgresConn, database.MigrationsProposals); err != nil {
				return nil, nil, err
			}
		}
		pool, err := database.ConnectPostgres(ctx, cfg.PostgresConn)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[proposal][storage] using postgres")
		return repository.NewProposalPostgresRepository(pool), pool.Close, nil
	}
}

func newHiringRepository(ctx context.Context, cfg config.Config) (interfaces.IHiringRepository, cleanup, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		log.Printf("[hiring][storage] using dynamodb table=%s", cfg.HiringsTable)
		return repository.NewHiringDynamoRepository(ddb, cfg.HiringsTable), func() {}, nil
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.PostgresConn, database.MigrationsHirings); err != nil {
				return nil, nil, err
			}
		}
		pool, err := database.ConnectPostgres(ctx, cfg.PostgresConn)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[hiring][storage] using postgres")
		return repository.NewHiringPostgresRepository(pool), pool.Close, nil
	}
}

// newAuditPublisher returns nil when RABBIT_URI is empty or the broker is
// unreachable; handlers then skip auditing.
func newAuditPublisher(cfg config.Config) (interfaces.IEventPublisher, cleanup) {
	if cfg.RabbitURI == "" {
		log.Printf("[audit][broker] disabled: RABBIT_URI not set")
		return nil, func() {}
	}
	pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
	if err != nil {
		log.Printf("[audit][broker] disabled: connect failed err=%v", err)
		return nil, func() {}
	}
	log.Printf("[audit][broker] publishing to queue=%s", cfg.RabbitQueue)
	return pub, func() {
		if err := pub.Close(); err != nil {
			log.Printf("[audit][broker] close failed err=%v", err)
		}
	}
}
