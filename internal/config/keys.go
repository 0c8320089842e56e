package config

// Keys are shared by flags, environment variables (UNIQUE_SDK_ prefix, dots
// and dashes become underscores) and config files.
const (
	ConfigFileKey = "config"

	LogLevelKey  = "log.level"
	LogFormatKey = "log.format"

	ManifestKey = "bump.manifest"
	RegistryKey = "bump.registry"
	PreIDKey    = "bump.preid"

	RootKey        = "interfaces.root"
	OwnerKey       = "interfaces.owner"
	RepoKey        = "interfaces.repo"
	BranchKey      = "interfaces.branch"
	StubsDirKey    = "interfaces.stubs-dir"
	CompilerKey    = "interfaces.compiler"
	APIURLKey      = "interfaces.api-url"
	RawURLKey      = "interfaces.raw-url"
	UserAgentKey   = "interfaces.user-agent"
	ConcurrencyKey = "interfaces.concurrency"
	V1DirKey       = "interfaces.v1-dir"
	V2DirKey       = "interfaces.v2-dir"
)
