package bootstrap

import (
	"github.com/vkngwrapper/core/v3/common"
)

// AppInfo identifies the application and engine to the Vulkan driver.
type AppInfo struct {
	Name          string
	Version       common.Version
	EngineName    string
	EngineVersion common.Version
	APIVersion    common.APIVersion
}

// Config carries the settings the application lifecycle is started with.
// There are no flags or environment lookups behind these values: callers
// build a Config once and hand it to NewApp, which also keeps tests free to
// substitute layer lists without rebuilding.
type Config struct {
	WindowWidth  int32
	WindowHeight int32
	WindowTitle  string

	App AppInfo

	// ValidationLayers are requested only when EnableValidation is set.
	// Layer availability is enforced, not degraded: a missing layer fails
	// startup.
	ValidationLayers []string
	EnableValidation bool
}

// DefaultConfig returns the stock hello-triangle configuration. Validation
// follows the build type: on under the debug build tag, off otherwise.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "Vulkan",
		App: AppInfo{
			Name:          "Hello Triangle",
			Version:       common.CreateVersion(1, 0, 0),
			EngineName:    "No Engine",
			EngineVersion: common.CreateVersion(1, 0, 0),
			APIVersion:    common.Vulkan1_2,
		},
		ValidationLayers: []string{"VK_LAYER_KHRONOS_validation"},
		EnableValidation: enableValidationLayers,
	}
}
