package module

import (
	"maps"
	"time"

	"patchgate/internal/platform/config"
)

// Options controls dispatch behavior and GH client settings
type Options struct {
	// GitHub client
	Token     string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// workflow location
	Owner    string
	Repo     string
	Workflow string
	Ref      string

	// Workflows maps extra target names to workflow files
	Workflows map[string]string

	// per-client submit limit, RPS <= 0 disables it
	SubmitRPS   float64
	SubmitBurst int
}

// FromConfig reads GH_* and SUBMIT_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GH_")
	return Options{
		Token:       gc.MaySecret("TOKEN"),
		BaseURL:     gc.MayString("BASE_URL", "https://api.github.com"),
		UserAgent:   gc.MayString("UA", "patchgate-api"),
		Timeout:     gc.MayDuration("TIMEOUT", 15*time.Second),
		Owner:       gc.MayString("OWNER", "aurora9331"),
		Repo:        gc.MayString("REPO", "A16-FrameworkPatcher"),
		Workflow:    gc.MayString("WORKFLOW", "patcher.yml"),
		Ref:         gc.MayString("REF", "main"),
		Workflows:   workflows(gc),
		SubmitRPS:   cfg.MayFloat64("SUBMIT_RPS", 0),
		SubmitBurst: cfg.MayInt("SUBMIT_BURST", 5),
	}
}

// defaultWorkflows are the per Android version workflows of the patcher repo
var defaultWorkflows = map[string]string{
	"android15": "Android 15 Framework Patcher.yml",
	"android16": "Android 16 Framework Patcher.yml",
}

// workflows reads GH_WORKFLOWS; unset means the defaults, set but empty means none
func workflows(gc config.Conf) map[string]string {
	if !gc.Has("WORKFLOWS") {
		return maps.Clone(defaultWorkflows)
	}
	return gc.MayKV("WORKFLOWS")
}
