package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	UsersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created",
		},
	)
	ExercisesLoggedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_logged_total",
			Help: "Total exercises logged",
		},
	)
	StoreErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total document store failures",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(UsersCreatedTotal)
	prometheus.MustRegister(ExercisesLoggedTotal)
	prometheus.MustRegister(StoreErrorsTotal)
}
