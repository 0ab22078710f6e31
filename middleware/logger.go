package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/logger"
)

// AccessLogEntry is one JSON access log line, shaped like common/logger output.
type AccessLogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	Msg       string `json:"msg"`
	RequestId string `json:"request_id"`
	Status    int    `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	ClientIP  string `json:"client_ip"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

// SetUpLogger writes an access log line for every failed request, and for
// every request when debug is enabled. Generation calls are slow, so latency
// is always recorded.
func SetUpLogger(server *gin.Engine) {
	server.Use(gin.LoggerWithFormatter(formatAccessLog))
}

func formatAccessLog(param gin.LogFormatterParams) string {
	if param.StatusCode < 400 && !config.DebugEnabled {
		return ""
	}

	var requestID string
	if v, ok := param.Keys[logger.RequestIdKey]; ok {
		requestID, _ = v.(string)
	}

	level := "info"
	if param.StatusCode >= 500 {
		level = "error"
	} else if param.StatusCode >= 400 {
		level = "warning"
	}

	entry := AccessLogEntry{
		Ts:        param.TimeStamp.Format(time.RFC3339Nano),
		Level:     level,
		Msg:       fmt.Sprintf("%s %s %d", param.Method, param.Path, param.StatusCode),
		RequestId: requestID,
		Status:    param.StatusCode,
		LatencyMs: param.Latency.Milliseconds(),
		ClientIP:  param.ClientIP,
		Method:    param.Method,
		Path:      param.Path,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return `{"level":"error","msg":"access log marshal error"}` + "\n"
	}
	return string(jsonBytes) + "\n"
}
