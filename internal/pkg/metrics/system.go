package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "Host memory usage in bytes",
		},
	)

	ProcessRSS = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_process_rss_bytes",
			Help: "Resident set size of the dispatch process",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_heap_alloc_bytes",
			Help: "Go heap allocation of the dispatch process",
		},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_goroutines",
			Help: "Number of goroutines, grows with open feed streams and tracking jobs",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста и процесса каждые interval до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	// без доступа к /proc RSS просто не публикуется
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		self = nil
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, self)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, self *process.Process) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if self != nil {
		if info, err := self.MemoryInfoWithContext(ctx); err == nil {
			ProcessRSS.Set(float64(info.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	HeapAlloc.Set(float64(m.Alloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))
}
