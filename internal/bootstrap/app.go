package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"resume-intake/internal/notify"
	"resume-intake/internal/resumes"
	"resume-intake/internal/shared/config"
	"resume-intake/internal/shared/storage/db"
	"resume-intake/internal/shared/storage/object"
	localstore "resume-intake/internal/shared/storage/object/local"
	s3store "resume-intake/internal/shared/storage/object/s3"
	"resume-intake/internal/shared/telemetry"
	"resume-intake/internal/uploads"
)

// App holds the process-wide dependencies, built once at startup.
type App struct {
	Config    config.Config
	DB        *sql.DB
	Store     object.ObjectStore
	Records   resumes.Repo
	Publisher notify.Publisher
	Handler   *uploads.Handler
}

// Build validates cfg and constructs every client handle the intake handler needs.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	telemetry.SetLevel(cfg.LogLevel)

	// Loaded lazily so local-only configurations never touch the AWS credential chain.
	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		loaded, err := loadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return aws.Config{}, err
		}
		awsCfg = &loaded
		return loaded, nil
	}

	app := &App{Config: cfg}

	store, err := buildStore(cfg, loadAWS)
	if err != nil {
		return nil, fmt.Errorf("object store: %w", err)
	}
	app.Store = store

	records, sqlDB, err := buildRecords(ctx, cfg, loadAWS)
	if err != nil {
		return nil, fmt.Errorf("record store: %w", err)
	}
	app.Records = records
	app.DB = sqlDB

	publisher, err := buildPublisher(cfg, loadAWS)
	if err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("notifier: %w", err)
	}
	app.Publisher = publisher

	app.Handler = uploads.NewHandler(store, records, publisher, uploads.Limits{
		MaxFileMB:          cfg.MaxFileMB,
		AllowedContentType: cfg.AllowedContentType,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"object_store": cfg.ObjectStoreType,
		"record_store": cfg.RecordStoreType,
		"notify":       cfg.NotifyChannel,
		"max_file_mb":  cfg.MaxFileMB,
		"allowed_type": cfg.AllowedContentType,
	})
	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

type awsLoader func() (aws.Config, error)

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

func buildStore(cfg config.Config, loadAWS awsLoader) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		return s3store.New(awsCfg, cfg.UploadBucket, cfg.UploadPrefix, cfg.SSEKMSKeyID)
	}
}

func buildRecords(ctx context.Context, cfg config.Config, loadAWS awsLoader) (resumes.Repo, *sql.DB, error) {
	switch cfg.RecordStoreType {
	case "memory":
		return resumes.NewMemoryRepo(), nil, nil
	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultOptions()))
		if err != nil {
			return nil, nil, err
		}
		return &resumes.PGRepo{DB: sqlDB}, sqlDB, nil
	default:
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, nil, err
		}
		repo, err := resumes.NewDynamoRepo(awsCfg, cfg.DDBTable)
		return repo, nil, err
	}
}

func buildPublisher(cfg config.Config, loadAWS awsLoader) (notify.Publisher, error) {
	switch cfg.NotifyChannel {
	case "log":
		return notify.LogPublisher{}, nil
	case "sqs":
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		return notify.NewSQSPublisher(awsCfg, cfg.SQSQueueURL)
	default:
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		return notify.NewSNSPublisher(awsCfg, cfg.SNSTopicARN)
	}
}
