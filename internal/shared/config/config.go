package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultMaxFileMB          = 5
	defaultAllowedContentType = "application/pdf"
)

// Config holds application configuration.
type Config struct {
	Env      string `env:"ENV"`
	Port     string `env:"PORT"`
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	AWSRegion string `env:"AWS_REGION"`

	ObjectStoreType string `env:"OBJECT_STORE" validate:"oneof=s3 local"`
	UploadBucket    string `env:"UPLOAD_BUCKET" validate:"required_if=ObjectStoreType s3"`
	UploadPrefix    string `env:"UPLOAD_PREFIX"`
	SSEKMSKeyID     string `env:"SSE_KMS_KEY_ID"`
	LocalStoreDir   string `env:"LOCAL_STORE_DIR" validate:"required_if=ObjectStoreType local"`

	RecordStoreType string `env:"RECORD_STORE" validate:"oneof=dynamodb postgres memory"`
	DDBTable        string `env:"DDB_TABLE" validate:"required_if=RecordStoreType dynamodb"`
	DatabaseURL     string `env:"DATABASE_URL" validate:"required_if=RecordStoreType postgres"`

	NotifyChannel string `env:"NOTIFY_CHANNEL" validate:"oneof=sns sqs log"`
	SNSTopicARN   string `env:"SNS_TOPIC_ARN" validate:"required_if=NotifyChannel sns"`
	SQSQueueURL   string `env:"SQS_QUEUE_URL" validate:"required_if=NotifyChannel sqs"`

	MaxFileMB          int    `env:"MAX_FILE_MB" validate:"gt=0"`
	AllowedContentType string `env:"ALLOWED_CONTENT_TYPE" validate:"required"`
}

// Load reads configuration from environment variables with sensible defaults.
// It fails only when a value cannot be parsed; call Validate before using the result.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	maxFileMB, err := getEnvInt("MAX_FILE_MB", defaultMaxFileMB)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           normalize(getEnv("LOG_LEVEL", "info")),
		AWSRegion:          strings.TrimSpace(getEnv("AWS_REGION", "")),
		ObjectStoreType:    normalize(getEnv("OBJECT_STORE", "s3")),
		UploadBucket:       strings.TrimSpace(getEnv("UPLOAD_BUCKET", "")),
		UploadPrefix:       getEnv("UPLOAD_PREFIX", ""),
		SSEKMSKeyID:        strings.TrimSpace(getEnv("SSE_KMS_KEY_ID", "")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data"),
		RecordStoreType:    normalize(getEnv("RECORD_STORE", "dynamodb")),
		DDBTable:           strings.TrimSpace(getEnv("DDB_TABLE", "")),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		NotifyChannel:      normalize(getEnv("NOTIFY_CHANNEL", "sns")),
		SNSTopicARN:        strings.TrimSpace(getEnv("SNS_TOPIC_ARN", "")),
		SQSQueueURL:        strings.TrimSpace(getEnv("SQS_QUEUE_URL", "")),
		MaxFileMB:          maxFileMB,
		AllowedContentType: strings.TrimSpace(getEnv("ALLOWED_CONTENT_TYPE", defaultAllowedContentType)),
	}, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate reports every missing or invalid setting, naming the environment variable.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return val, nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func normalizeEnv(raw string) string {
	switch normalize(raw) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
