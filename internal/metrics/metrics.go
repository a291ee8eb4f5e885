package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Logins counts login attempts by outcome (success, invalid, error).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ridsmovil_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	// RefreshRotations counts successful refresh-token rotations.
	RefreshRotations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ridsmovil_refresh_rotations_total",
		Help: "Successful refresh-token rotations.",
	})

	// ReplayDetections counts presentations of already-revoked refresh
	// tokens, each of which revokes the user's whole active token set.
	ReplayDetections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ridsmovil_replay_detections_total",
		Help: "Revoked refresh tokens presented again (possible replay).",
	})
)
