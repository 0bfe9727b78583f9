// ABOUTME: This file implements the -health-check probe for container runtimes
// ABOUTME: Queries the local admin API health endpoint and maps it to an exit code

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultAdminAddr = ":8082"

// performHealthCheck queries the running service's health endpoint and
// returns the process exit code. Degraded is a passing state; only
// unreachable or unhealthy fails the probe.
func performHealthCheck(addr string) int {
	status, body, err := probeHealth(addr, 5*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		return 1
	}

	fmt.Println(body)

	if status != http.StatusOK {
		return 1
	}
	return 0
}

func probeHealth(addr string, timeout time.Duration) (int, string, error) {
	if addr == "" {
		addr = defaultAdminAddr
	}
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get("http://" + addr + "/v1/health")
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	var report struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return 0, "", fmt.Errorf("malformed health response: %w", err)
	}

	return resp.StatusCode, report.Status, nil
}
