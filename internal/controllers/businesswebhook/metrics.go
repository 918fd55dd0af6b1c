package businesswebhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeReplied    = "replied"
	outcomeNoMatch    = "no_match"
	outcomeOwner      = "owner"
	outcomeDuplicate  = "duplicate"
	outcomeSendFailed = "send_failed"
	outcomeNoChat     = "no_chat"
)

var (
	messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "business_messages_received_total",
		Help: "Number of valid business messages received on the webhook.",
	})
	repliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "business_replies_total",
		Help: "Business message handling outcomes.",
	}, []string{"outcome"})
	messageLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "message_log_failures_total",
		Help: "Number of business messages that could not be written to the message log.",
	})
)
