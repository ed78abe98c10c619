package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Automation Metrics
var (
	MachinePolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMachinePolls,
			Help: HelpTextMachinePolls,
		},
		[]string{LabelMachineType, LabelState},
	)

	FactoriesRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFactoriesRegistered,
			Help: HelpTextFactoriesRegistered,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Garden Metrics
var (
	HarvestsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsStored,
			Help: HelpTextHarvestsStored,
		},
		[]string{LabelMachineType},
	)

	HarvestItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestItems,
			Help: HelpTextHarvestItems,
		},
		[]string{LabelItem},
	)

	Waterings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWaterings,
			Help: HelpTextWaterings,
		},
		[]string{LabelMachineType},
	)

	DaysStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysStarted,
			Help: HelpTextDaysStarted,
		},
	)
)
