package rabbitmq

// QueueConfig очередь и ключ, которым она привязана к exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// AccountQueues очереди для событий учётных записей.
func AccountQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "jboard.account.audit", RoutingKey: "user.#"},
	}
}
