package kafka

import "time"

// Message is a transport-neutral view of a consumed record.
type Message struct {
	Headers   map[string][]byte
	Timestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// Header returns the string value of a record header, empty when absent.
func (m Message) Header(key string) string {
	return string(m.Headers[key])
}

type Header struct {
	Key   string
	Value string
}
