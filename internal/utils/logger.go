package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per domain event:
//
//	[MODULE] action=... request_id=... msg=...
//
// Messages are summaries; never pass passwords, tokens or document contents.
func LogEvent(requestID, module, action, message string) {
	logLine("", requestID, module, action, message)
}

// LogWarn is LogEvent for refused or degraded operations.
func LogWarn(requestID, module, action, message string) {
	logLine("warn", requestID, module, action, message)
}

func logLine(level, requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	mod := strings.ToUpper(strings.TrimSpace(module))
	if level != "" {
		log.Printf("[%s] level=%s action=%s request_id=%s msg=%s", mod, level, action, req, message)
		return
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", mod, action, req, message)
}
