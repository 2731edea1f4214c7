//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_events_test
package delivery_events

import "github.com/IBM/sarama"

// producer - часть sarama.SyncProducer, нужная публикатору.
type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
