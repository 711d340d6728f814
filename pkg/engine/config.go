package engine

import "fmt"

type Algorithm string

const (
	ALGORITHM_NOI    Algorithm = "noi"
	ALGORITHM_CACTUS Algorithm = "cactus"
	ALGORITHM_VIECUT Algorithm = "vc"
)

type QueueImpl string

const (
	QUEUE_BQUEUE QueueImpl = "bqueue"
	QUEUE_BSTACK QueueImpl = "bstack"
	QUEUE_HEAP   QueueImpl = "heap"
)

const (
	DEFAULT_ALGORITHM = ALGORITHM_NOI
	DEFAULT_QUEUE     = QUEUE_BQUEUE
)

// Config is the small configuration surface handed to the engine. Values are
// passed through unvalidated; the engine decides what it supports.
type Config struct {
	Algorithm Algorithm
	QueueImpl QueueImpl
	Balanced  bool
}

func NewConfig(algorithm, queueImpl string, balanced bool) Config {
	return Config{
		Algorithm: Algorithm(algorithm),
		QueueImpl: QueueImpl(queueImpl),
		Balanced:  balanced,
	}
}

func (c Config) String() string {
	return fmt.Sprintf("algorithm=%s queue=%s balanced=%t", c.Algorithm, c.QueueImpl, c.Balanced)
}
