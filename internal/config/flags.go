package config

import "errors"

// Flags are the configuration values given on the command line.
type Flags struct {
	ConfigPath   string
	CodeRoot     string
	DocsRoot     string
	CodeIncludes string
	DocIncludes  string
	DocExcludes  string
	FragmentsDir string
	Separator    string
	LogLevel     string
}

func (f Flags) optionsSet() bool {
	return f.CodeIncludes != "" || f.DocIncludes != "" || f.DocExcludes != "" ||
		f.FragmentsDir != "" || f.Separator != ""
}

// Resolve builds the configuration either from the config file or from flags.
// The two sources are mutually exclusive.
func Resolve(f Flags) (*Config, error) {
	rootSet := f.CodeRoot != "" || f.DocsRoot != ""

	if f.ConfigPath != "" {
		if rootSet || f.optionsSet() {
			return nil, wrapValidationError(errors.New(
				"config path cannot be set when code-root, docs-root or optional params are set"))
		}
		cfg, err := LoadConfig(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		if f.LogLevel != "" {
			cfg.Log.Level = f.LogLevel
		}
		return cfg, nil
	}

	if rootSet && (f.CodeRoot == "" || f.DocsRoot == "") {
		return nil, wrapValidationError(errors.New("code-root and docs-root must both be set"))
	}

	cfg := &Config{
		CodeRoot:          f.CodeRoot,
		DocumentationRoot: f.DocsRoot,
		CodeIncludes:      ParseList(f.CodeIncludes),
		DocIncludes:       ParseList(f.DocIncludes),
		DocExcludes:       ParseList(f.DocExcludes),
		FragmentsDir:      f.FragmentsDir,
		Separator:         f.Separator,
	}
	cfg.Log.Level = f.LogLevel
	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
