package kafka

// Config holds Kafka connection parameters. The decision service only
// produces, so the config is broker addresses plus an optional client ID.
type Config struct {
	Brokers  []string
	ClientID string
}
