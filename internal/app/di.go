package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/client/http/gemini"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/config"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/converter"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/metrics"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/migrator"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	batchrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/batch"
	settingsrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/settings"
	supplierrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/supplier"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/assistant"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/catalog"
	blconsumer "github.com/MadScie254/Bordaless-SKU-Lab/internal/service/consumer/batch_listed"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/landedcost"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/preferences"
	blproducer "github.com/MadScie254/Bordaless-SKU-Lab/internal/service/producer/batch_listed"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/session"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/service/wizard"
	thttp "github.com/MadScie254/Bordaless-SKU-Lab/internal/transport/http/catalog/v1"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/closer"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka/consumer"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka/middleware"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka/producer"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type BatchRepository interface {
	catalog.BatchRepository
	batchrepo.BatchCreator
}

type KafkaConverter interface {
	blproducer.Converter
	blconsumer.Converter
}

type AIClient interface {
	session.Interpreter
	wizard.ListingAdvisor
	wizard.QualityInspector
	assistant.ChatClient
	EvictChats(ttl time.Duration) int
}

type WizardService interface {
	thttp.WizardService
	Evict(ttl time.Duration) int
}

type CatalogService interface {
	thttp.CatalogService
	wizard.CatalogWriter
	blconsumer.Ingester
	session.BoundsSource
	session.CountrySource
	Load(ctx context.Context) error
	Subscribe(l catalog.BoundsListener)
}

type BatchListedConsumer interface {
	RunBatchListedConsume(ctx context.Context) error
}

type di struct {
	metrics *metrics.Metrics

	mongo      *mongo.Client
	collection *mongo.Collection
	batchRepo  BatchRepository

	redis        redis.UniversalClient
	dbPool       *pgxpool.Pool
	migrator     *migrator.Migrator
	settingsRepo preferences.SettingsStore
	suppliers    thttp.SupplierDirectory

	consumerGroup       sarama.ConsumerGroup
	batchListedConsumer kafka.Consumer
	catalogConsumer     BatchListedConsumer

	syncProducer        sarama.SyncProducer
	batchListedProducer kafka.Producer
	batchListedSender   wizard.BatchListedSender

	conv KafkaConverter
	ai   AIClient

	catalog   CatalogService
	sessions  *session.Store
	search    thttp.SearchBridge
	prefs     thttp.PreferencesService
	wizard    WizardService
	assistant thttp.AssistantService

	handler interface{ Routes(r chi.Router) }
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) Metrics(_ context.Context) *metrics.Metrics {
	if d.metrics == nil {
		d.metrics = metrics.New()
	}

	return d.metrics
}

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) BatchesCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.BatchesCollection())
	}

	return d.collection
}

func (d *di) BatchRepository(ctx context.Context) BatchRepository {
	if d.batchRepo == nil {
		switch config.C().Catalog.Storage() {
		case config.StorageMongo:
			repo := batchrepo.NewBatchRepository(d.BatchesCollection(ctx))
			if err := repo.EnsureIndexes(ctx); err != nil {
				panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
			}
			d.batchRepo = repo
		default:
			d.batchRepo = batchrepo.NewMemoryRepository()
		}
	}

	return d.batchRepo
}

func (d *di) Redis(ctx context.Context) redis.UniversalClient {
	if d.redis == nil {
		cfg := config.C()

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address(),
			Password: cfg.Redis.Password(),
			DB:       cfg.Redis.DB(),
		})
		closer.AddNamed("Redis Client",
			func(ctx context.Context) error {
				return rdb.Close()
			})

		if err := rdb.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis: %v\n", err))
		}

		d.redis = rdb
	}

	return d.redis
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(stdlib.OpenDBFromPool(d.DBPool(ctx)))

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) SettingsRepository(ctx context.Context) preferences.SettingsStore {
	if d.settingsRepo == nil {
		switch config.C().Settings.Storage() {
		case config.StorageRedis:
			d.settingsRepo = settingsrepo.NewRedisRepository(d.Redis(ctx), config.C().Redis.SettingsTTL())
		case config.StoragePostgres:
			d.settingsRepo = settingsrepo.NewPostgresRepository(d.DBPool(ctx))
		default:
			d.settingsRepo = settingsrepo.NewMemoryRepository()
		}
	}

	return d.settingsRepo
}

func (d *di) KafkaConverter(_ context.Context) KafkaConverter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.BatchListedConsumerGroupID(),
			cfg.Kafka.BatchListedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) BatchListedConsumer(ctx context.Context) kafka.Consumer {
	if d.batchListedConsumer == nil {
		d.batchListedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.BatchListedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Observe(d.Metrics(ctx)),
			middleware.Logging(logger.L()),
			middleware.OnlyEvent(model.EventBatchListed, logger.L()),
		)
	}

	return d.batchListedConsumer
}

func (d *di) CatalogConsumer(ctx context.Context) BatchListedConsumer {
	if d.catalogConsumer == nil {
		d.catalogConsumer = blconsumer.NewBatchListedConsumer(
			d.BatchListedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.CatalogService(ctx),
		)
	}

	return d.catalogConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.BatchListedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) BatchListedProducer(ctx context.Context) kafka.Producer {
	if d.batchListedProducer == nil {
		d.batchListedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.BatchListedTopic(),
			logger.L(),
		)
	}

	return d.batchListedProducer
}

func (d *di) BatchListedSender(ctx context.Context) wizard.BatchListedSender {
	if d.batchListedSender == nil {
		if config.C().Kafka.Enabled() {
			d.batchListedSender = blproducer.NewBatchListedProducer(
				d.BatchListedProducer(ctx),
				d.KafkaConverter(ctx),
			)
		} else {
			d.batchListedSender = blproducer.NewNoopProducer()
		}
	}

	return d.batchListedSender
}

func (d *di) AIClient(ctx context.Context) AIClient {
	if d.ai == nil {
		cfg := config.C().Gemini

		c, err := gemini.NewClient(ctx, gemini.Options{
			APIKey:      cfg.APIKey(),
			FastModel:   cfg.FastModel(),
			ChatModel:   cfg.ChatModel(),
			Temperature: cfg.Temperature(),
		}, d.Metrics(ctx))
		if err != nil {
			panic(fmt.Sprintf("failed to create gemini client: %v\n", err))
		}
		if !c.Available() {
			logger.Warn(ctx, "GEMINI_API_KEY is not set, AI features are disabled")
		}

		d.ai = c
	}

	return d.ai
}

func (d *di) SupplierRepository(_ context.Context) thttp.SupplierDirectory {
	if d.suppliers == nil {
		d.suppliers = supplierrepo.NewMemoryRepository(supplierrepo.SeedSuppliers())
	}

	return d.suppliers
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalog == nil {
		cfg := config.C()

		svc := catalog.NewCatalogService(
			d.BatchRepository(ctx),
			cfg.Catalog.FallbackBounds(),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
		m := d.Metrics(ctx)
		svc.Subscribe(func(_, next model.Bounds) {
			m.SetCatalog(len(svc.Snapshot()), next.MaxPrice, next.MaxMOQ)
		})

		d.catalog = svc
	}

	return d.catalog
}

func (d *di) SessionStore(ctx context.Context) *session.Store {
	if d.sessions == nil {
		d.sessions = session.NewStore(d.CatalogService(ctx)).
			ReportTo(d.Metrics(ctx)).
			ExpireWith(
				session.Expirer{Name: "wizard_drafts", Evict: d.WizardService(ctx).Evict},
				session.Expirer{Name: "chats", Evict: d.AIClient(ctx).EvictChats},
			)
		d.CatalogService(ctx).Subscribe(d.sessions.Reclamp)
	}

	return d.sessions
}

func (d *di) SearchBridge(ctx context.Context) thttp.SearchBridge {
	if d.search == nil {
		d.search = session.NewBridge(
			d.AIClient(ctx),
			d.CatalogService(ctx),
			d.Metrics(ctx),
			config.C().Session.InterpretTimeout(),
		)
	}

	return d.search
}

func (d *di) PreferencesService(ctx context.Context) thttp.PreferencesService {
	if d.prefs == nil {
		d.prefs = preferences.NewPreferencesService(
			d.SettingsRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.prefs
}

func (d *di) WizardService(ctx context.Context) WizardService {
	if d.wizard == nil {
		cfg := config.C()

		d.wizard = wizard.NewWizardService(
			d.AIClient(ctx),
			d.AIClient(ctx),
			d.CatalogService(ctx),
			d.BatchListedSender(ctx),
			wizard.Options{
				DefaultCountry: cfg.Wizard.DefaultCountry(),
				AITimeout:      cfg.Gemini.Timeout(),
				MaxImageBytes:  int(cfg.Wizard.MaxImageBytes()),
			},
		)
	}

	return d.wizard
}

func (d *di) AssistantService(ctx context.Context) thttp.AssistantService {
	if d.assistant == nil {
		d.assistant = assistant.NewAssistantService(
			d.AIClient(ctx),
			config.C().Gemini.ChatTimeout(),
		)
	}

	return d.assistant
}

func (d *di) CatalogHandler(ctx context.Context) interface{ Routes(r chi.Router) } {
	if d.handler == nil {
		d.handler = thttp.NewCatalogHandler(thttp.Services{
			Catalog:     d.CatalogService(ctx),
			Suppliers:   d.SupplierRepository(ctx),
			Sessions:    d.SessionStore(ctx),
			Search:      d.SearchBridge(ctx),
			Preferences: d.PreferencesService(ctx),
			Wizard:      d.WizardService(ctx),
			Assistant:   d.AssistantService(ctx),
			LandedCost:  landedcost.Estimate,
		}, config.C().Wizard.MaxImageBytes())
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
