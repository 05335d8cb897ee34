package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sol-instruction-api/internal/consts"
)

// 指标名不允许出现 '-'
var namespace = strings.ReplaceAll(consts.ServiceName, "-", "_")

const (
	ResultSuccess = "success"
)

// Metrics 服务级指标，使用独立 Registry，避免与 go-zero 内置指标冲突
type Metrics struct {
	Registry *prometheus.Registry

	operations   *prometheus.CounterVec
	instructions *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of handled operations by result (success or error kind).",
			},
			[]string{"operation", "result"},
		),
		instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "instructions_total",
				Help:      "Total number of instruction descriptors built, by program and instruction.",
			},
			[]string{"program", "instruction"},
		),
	}
	m.Registry.MustRegister(
		m.operations,
		m.instructions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveOperation result 为 "success" 或错误分类名
func (m *Metrics) ObserveOperation(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveInstruction(programID, instruction string) {
	m.instructions.WithLabelValues(programID, instruction).Inc()
}

// Handler 暴露 Registry 中的指标
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
