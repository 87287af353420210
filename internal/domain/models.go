package domain

import "net/http"

// Stage identifies a pipeline state. Ready and Failed are terminal.
type Stage string

const (
	StageInit              Stage = "init"
	StageConfigValidated   Stage = "config_validated"
	StageContainersLocated Stage = "containers_located"
	StagePatcherInstalled  Stage = "patcher_installed"
	StageManifestFetched   Stage = "manifest_fetched"
	StageAssetsIdentified  Stage = "assets_identified"
	StageStylesLoaded      Stage = "styles_loaded"
	StageStylesSkipped     Stage = "styles_skipped"
	StageScriptLoaded      Stage = "script_loaded"
	StageReady             Stage = "ready"
	StageFailed            Stage = "failed"
)

// Terminal reports whether the stage ends the pipeline
func (s Stage) Terminal() bool {
	return s == StageReady || s == StageFailed
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
}
