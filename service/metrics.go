package service

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// 实际入账的积分
	creditsAwardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_credits_awarded_total",
			Help: "Total credits awarded to users",
		},
		[]string{"change_type"},
	)

	achievementsGrantedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyhub_achievements_granted_total",
			Help: "Total achievements unlocked",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(creditsAwardedTotal)
	prometheus.MustRegister(achievementsGrantedTotal)
}

func observeAward(changeType int8, amount int64) {
	creditsAwardedTotal.WithLabelValues(strconv.Itoa(int(changeType))).Add(float64(amount))
}
