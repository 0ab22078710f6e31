package monitor

import (
	"fmt"
	"os/exec"

	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/logger"
)

type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Check is the outcome of one startup dependency check.
type Check struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
}

func (c Check) Failed() bool {
	return c.Severity == SeverityError
}

// LookPath resolves binaries; tests replace it.
var LookPath = exec.LookPath

func checkBinary(name string, path string, required bool) Check {
	resolved, err := LookPath(path)
	if err != nil {
		severity := SeverityWarning
		if required {
			severity = SeverityError
		}
		return Check{Name: name, Severity: severity, Detail: fmt.Sprintf("%s not found: %s", path, err.Error())}
	}
	return Check{Name: name, Severity: SeverityOK, Detail: resolved}
}

func checkCredential(name string, value string, required bool, purpose string) Check {
	if value != "" {
		return Check{Name: name, Severity: SeverityOK, Detail: "set"}
	}
	severity := SeverityWarning
	if required {
		severity = SeverityError
	}
	return Check{Name: name, Severity: severity, Detail: "not set, " + purpose}
}

// Preflight inspects the external binaries and credentials the server depends on.
// ffmpeg and the Replicate token are required, the rest only degrade features.
func Preflight() []Check {
	return []Check{
		checkBinary("ffmpeg", config.FFmpegPath, true),
		checkBinary("ffprobe", config.FFprobePath, false),
		checkCredential("REPLICATE_API_TOKEN", config.ReplicateAPIToken, true, "image and video generation will fail"),
		checkCredential("GEMINI_API_KEY", config.GeminiAPIKey, false, "prompt refinement will use the fixed template"),
	}
}

// LogPreflight reports every non-ok check. The server still starts.
func LogPreflight(checks []Check) {
	for _, check := range checks {
		switch check.Severity {
		case SeverityError:
			logger.SysError(fmt.Sprintf("preflight %s: %s", check.Name, check.Detail))
		case SeverityWarning:
			logger.SysWarn(fmt.Sprintf("preflight %s: %s", check.Name, check.Detail))
		default:
			if config.DebugEnabled {
				logger.SysLog(fmt.Sprintf("preflight %s: %s", check.Name, check.Detail))
			}
		}
	}
}

func AnyFailed(checks []Check) bool {
	for _, check := range checks {
		if check.Failed() {
			return true
		}
	}
	return false
}
