package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// sentiment backend: vader | hugot | huggingface | openai
	SentimentBackend string
	HFEndpoint       string
	HFHealthEndpoint string
	HFToken          string
	HugotModel       string
	HugotModelDir    string
	OpenAIKey        string
	OpenAIModel      string

	// feedback store: csv | sqlite | valkey | dynamodb
	StoreBackend   string
	CSVPath        string
	SQLitePath     string
	ValkeyAddr     string
	ValkeyPassword string
	ValkeyTLS      bool
	ValkeyKey      string
	AWSEndpoint    string
	AWSRegion      string
	DynamoDBTable  string

	KeywordTopK   int
	StopWordsFile string

	SlackToken     string
	SlackChannelID string
	DigestSchedule string

	Kafka KafkaConfig
}

type KafkaConfig struct {
	Broker  string
	GroupID string
	Topic   string
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pull in the .env file for the current APP_ENV.
func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SentimentBackend: strings.ToLower(getEnv("SENTIMENT_BACKEND", "vader")),
		HFEndpoint:       getEnv("HF_SENTIMENT_ENDPOINT", "https://spacesedan-sentiment-analyzer.hf.space/analyze_batch"),
		HFHealthEndpoint: getEnv("HF_HEALTH_ENDPOINT", "https://spacesedan-sentiment-analyzer.hf.space/health"),
		HFToken:          os.Getenv("HF_API_TOKEN"),
		HugotModel:       getEnv("HUGOT_MODEL", "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"),
		HugotModelDir:    getEnv("HUGOT_MODEL_DIR", "./models"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", "csv")),
		CSVPath:        getEnv("FEEDBACK_CSV_PATH", "data.csv"),
		SQLitePath:     getEnv("SQLITE_PATH", "smartnotes.db"),
		ValkeyAddr:     getEnv("VALKEY_INIT_ADDRESS", "localhost:6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:      os.Getenv("VALKEY_TLS") == "true",
		ValkeyKey:      getEnv("VALKEY_FEEDBACK_KEY", "smartnotes:feedback"),
		AWSEndpoint:    os.Getenv("AWS_ENDPOINT"),
		AWSRegion:      getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable:  getEnv("DYNAMODB_FEEDBACK_TABLE", "PatientFeedback"),

		KeywordTopK:   getEnvInt("KEYWORD_TOP_K", 10),
		StopWordsFile: os.Getenv("STOP_WORDS_FILE"),

		SlackToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 9 * * 1-5"),

		Kafka: KafkaConfig{
			Broker:  getEnv("KAFKA_BROKER", "localhost:29092"),
			GroupID: getEnv("KAFKA_CONSUMER_GROUP_ID", "smartnotes-ingest"),
			Topic:   getEnv("KAFKA_FEEDBACK_TOPIC", "patient-feedback"),
		},
	}
}
