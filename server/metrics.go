package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gstoney/mcproto/protocol"
)

var (
	registerOnce sync.Once

	packetsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcproto",
			Subsystem: "server",
			Name:      "packets_decoded_total",
			Help:      "Packets decoded from clients.",
		},
		[]string{"state", "packet"},
	)
	packetsUnknown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcproto",
			Subsystem: "server",
			Name:      "packets_unknown_total",
			Help:      "Frames skipped because their opcode has no record.",
		},
		[]string{"state"},
	)
	connections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mcproto",
			Subsystem: "server",
			Name:      "connections_total",
			Help:      "Connections served, by final state and outcome.",
		},
		[]string{"state", "success"},
	)
	connectionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mcproto",
			Subsystem: "server",
			Name:      "connection_duration_seconds",
			Help:      "Connection lifetime in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"state"},
	)
)

// RegisterMetrics adds the server collectors to the default registry.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(packetsDecoded, packetsUnknown, connections, connectionDuration)
	})
}

func recordPacket(s protocol.State, pk protocol.Packet) {
	name := fmt.Sprintf("%T", pk)
	name = name[strings.LastIndexByte(name, '.')+1:]
	packetsDecoded.WithLabelValues(s.String(), name).Inc()
}

// recordUnknown counts a skipped frame. The opcode is peer-controlled, so
// it is logged rather than used as a label.
func recordUnknown(s protocol.State) {
	packetsUnknown.WithLabelValues(s.String()).Inc()
}

func recordConnection(s protocol.State, err error, d time.Duration) {
	success := "true"
	if err != nil {
		success = "false"
	}
	connections.WithLabelValues(s.String(), success).Inc()
	connectionDuration.WithLabelValues(s.String()).Observe(d.Seconds())
}
