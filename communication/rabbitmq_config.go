package communication

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// DefaultResultsQueue durable queue in which statistic results are published
func DefaultResultsQueue(name string) QueueDeclarationConfig {
	return QueueDeclarationConfig{
		Name:    name,
		Durable: true,
	}
}
