// Package config resolves command settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/branched-services/go-unique/internal/github"
	"github.com/branched-services/go-unique/internal/pipeline"
	"github.com/branched-services/go-unique/internal/registry"
	"github.com/branched-services/go-unique/internal/solc"
	"github.com/branched-services/go-unique/internal/version"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "UNIQUE_SDK"

var (
	ErrInvalidLogLevel  = errors.New("config: invalid log level")
	ErrInvalidLogFormat = errors.New("config: invalid log format")
	ErrEmptyValue       = errors.New("config: empty value")
	ErrNegativeValue    = errors.New("config: negative value")
)

// Log configures the logger.
type Log struct {
	Level  string
	Format string
}

// Validate checks the level and format names.
func (l Log) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, l.Format)
	}
	return nil
}

// Bump configures the version bumper.
type Bump struct {
	Manifest string
	Registry string
	PreID    string
}

// Validate checks that every field is set.
func (b Bump) Validate() error {
	return nonEmpty(map[string]string{
		ManifestKey: b.Manifest,
		RegistryKey: b.Registry,
		PreIDKey:    b.PreID,
	})
}

// Interfaces configures the interface-download pipeline.
type Interfaces struct {
	Root        string
	Repo        github.Repo
	StubsDir    string
	Compiler    string
	APIURL      string
	RawURL      string
	UserAgent   string
	Concurrency int
	V1Dir       string
	V2Dir       string
}

// Validate checks required fields and the concurrency limit.
func (i Interfaces) Validate() error {
	if err := nonEmpty(map[string]string{
		RootKey:     i.Root,
		OwnerKey:    i.Repo.Owner,
		RepoKey:     i.Repo.Name,
		BranchKey:   i.Repo.Branch,
		StubsDirKey: i.StubsDir,
		CompilerKey: i.Compiler,
		V1DirKey:    i.V1Dir,
		V2DirKey:    i.V2Dir,
	}); err != nil {
		return err
	}
	if i.V1Dir == i.V2Dir {
		return fmt.Errorf("config: %s and %s must differ", V1DirKey, V2DirKey)
	}
	if i.Concurrency < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeValue, ConcurrencyKey)
	}
	return nil
}

// Pipeline converts the settings into a pipeline configuration.
func (i Interfaces) Pipeline() pipeline.Config {
	return pipeline.Config{
		Root:        i.Root,
		Repo:        i.Repo,
		StubsDir:    i.StubsDir,
		Concurrency: i.Concurrency,
		V1Dir:       i.V1Dir,
		V2Dir:       i.V2Dir,
	}
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(LogLevelKey, "info")
	v.SetDefault(LogFormatKey, "console")

	v.SetDefault(ManifestKey, "package.json")
	v.SetDefault(RegistryKey, registry.DefaultURL)
	v.SetDefault(PreIDKey, version.DefaultPreID)

	v.SetDefault(RootKey, ".")
	v.SetDefault(OwnerKey, pipeline.DefaultRepo.Owner)
	v.SetDefault(RepoKey, pipeline.DefaultRepo.Name)
	v.SetDefault(BranchKey, pipeline.DefaultRepo.Branch)
	v.SetDefault(StubsDirKey, pipeline.DefaultStubsDir)
	v.SetDefault(CompilerKey, solc.DefaultCompiler)
	v.SetDefault(APIURLKey, github.DefaultAPIURL)
	v.SetDefault(RawURLKey, github.DefaultRawURL)
	v.SetDefault(UserAgentKey, github.DefaultUserAgent)
	v.SetDefault(ConcurrencyKey, 0)
	v.SetDefault(V1DirKey, pipeline.DefaultV1Dir)
	v.SetDefault(V2DirKey, pipeline.DefaultV2Dir)
	return v
}

// ReadFile merges the config file named by ConfigFileKey, if any.
func ReadFile(v *viper.Viper) error {
	file := v.GetString(ConfigFileKey)
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", file, err)
	}
	return nil
}

// GetLog reads and validates the logging settings.
func GetLog(v *viper.Viper) (Log, error) {
	l := Log{
		Level:  strings.ToLower(v.GetString(LogLevelKey)),
		Format: strings.ToLower(v.GetString(LogFormatKey)),
	}
	return l, l.Validate()
}

// GetBump reads and validates the version bumper settings.
func GetBump(v *viper.Viper) (Bump, error) {
	b := Bump{
		Manifest: v.GetString(ManifestKey),
		Registry: v.GetString(RegistryKey),
		PreID:    v.GetString(PreIDKey),
	}
	return b, b.Validate()
}

// GetInterfaces reads and validates the pipeline settings.
func GetInterfaces(v *viper.Viper) (Interfaces, error) {
	i := Interfaces{
		Root: v.GetString(RootKey),
		Repo: github.Repo{
			Owner:  v.GetString(OwnerKey),
			Name:   v.GetString(RepoKey),
			Branch: v.GetString(BranchKey),
		},
		StubsDir:    v.GetString(StubsDirKey),
		Compiler:    v.GetString(CompilerKey),
		APIURL:      v.GetString(APIURLKey),
		RawURL:      v.GetString(RawURLKey),
		UserAgent:   v.GetString(UserAgentKey),
		Concurrency: v.GetInt(ConcurrencyKey),
		V1Dir:       v.GetString(V1DirKey),
		V2Dir:       v.GetString(V2DirKey),
	}
	return i, i.Validate()
}

func nonEmpty(fields map[string]string) error {
	var missing []string
	for key, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrEmptyValue, strings.Join(missing, ", "))
}
