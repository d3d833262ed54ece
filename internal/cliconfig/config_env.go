package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LOGOSTAMP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("path", os.Getenv("LOGOSTAMP_PATH"), &cfg.Path)
	s.setString("watermark", os.Getenv("LOGOSTAMP_WATERMARK"), &cfg.Watermark)
	s.setString("watermarks", os.Getenv("LOGOSTAMP_WATERMARKS_FILE"), &cfg.WatermarksFile)
	s.setString("output-dir", os.Getenv("LOGOSTAMP_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("report", os.Getenv("LOGOSTAMP_REPORT"), &cfg.Report)
	s.setString("log-level", os.Getenv("LOGOSTAMP_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", os.Getenv("LOGOSTAMP_LOG_FILE"), &cfg.LogFile)

	if err := s.setIntFromString("quality", os.Getenv("LOGOSTAMP_QUALITY"), &cfg.Quality); err != nil {
		return err
	}
	if err := s.setIntFromString("dpi", os.Getenv("LOGOSTAMP_DPI"), &cfg.DPI); err != nil {
		return err
	}
	if err := s.setFloatFromString("margin", os.Getenv("LOGOSTAMP_MARGIN"), &cfg.Margin); err != nil {
		return err
	}
	if err := s.setIntsFromString("rotated-tags", os.Getenv("LOGOSTAMP_ROTATED_TAGS"), &cfg.RotatedTags); err != nil {
		return err
	}

	s.setBoolFromString("fail-fast", os.Getenv("LOGOSTAMP_FAIL_FAST"), &cfg.FailFast)
	s.setBoolFromString("pause", os.Getenv("LOGOSTAMP_PAUSE"), &cfg.Pause)

	return nil
}
