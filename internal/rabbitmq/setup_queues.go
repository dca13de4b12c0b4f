package rabbitmq

import "github.com/magabrotheeeer/accounts-service/internal/models"

const prefetchCount = 10

// QueueConfig привязка очереди к exchange по ключу маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// AuditQueues привязывает очередь аудита ко всем типам событий.
func AuditQueues(queueName string) []QueueConfig {
	queues := make([]QueueConfig, 0, len(models.AllEventTypes))
	for _, t := range models.AllEventTypes {
		queues = append(queues, QueueConfig{QueueName: queueName, RoutingKey: string(t)})
	}
	return queues
}
