package kafka_client

import "time"

const (
	KAFKA_TOPIC_PATIENT_FEEDBACK = "patient-feedback" // raw feedback submitted from kiosks and forms
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
	POLL_TIMEOUT  = time.Second
	FLUSH_TIMEOUT = 5 * time.Second
)
