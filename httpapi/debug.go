package httpapi

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/process"
)

// RegisterDebugRoutes wires the self-stats endpoint, off unless enabled.
func RegisterDebugRoutes(router *gin.Engine, enabled bool) {
	if !enabled {
		return
	}

	router.GET("/debug/stats", func(c *gin.Context) {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "process handle unavailable"})
			return
		}

		rss, cpu, status, err := getSelfStats(p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats collection failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"pid":         os.Getpid(),
			"pid_status":  status,
			"cpu_percent": cpu,
			"ram_bytes":   rss,
		})
	})
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
