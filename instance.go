package bootstrap

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// CreateInstance assembles and creates the Vulkan instance.
//
// When validation is enabled, layer availability is checked before the
// driver is asked to create anything, so a misconfigured host fails fast
// with *ValidationUnavailableError and no driver-side effect. Every
// platform-required extension must be advertised by the host, or the
// builder refuses with *ExtensionUnavailableError, again before any driver
// call; portability enumeration is enabled when offered, which MoltenVK
// needs. A rejected creation surfaces as *InstanceCreationError. There are
// no retries.
func CreateInstance(api Driver, cfg Config, platformExtensions []string, logger *log.Logger) (Instance, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	prober := NewProber(api, logger)

	if cfg.EnableValidation {
		available, err := prober.InstanceLayers()
		if err != nil {
			return nil, errors.Wrap(err, "createInstance")
		}
		if !LayersSupported(cfg.ValidationLayers, available) {
			return nil, &ValidationUnavailableError{Missing: missingLayers(cfg.ValidationLayers, available)}
		}
	}

	options := core1_0.InstanceCreateInfo{
		ApplicationName:    cfg.App.Name,
		ApplicationVersion: cfg.App.Version,
		EngineName:         cfg.App.EngineName,
		EngineVersion:      cfg.App.EngineVersion,
		APIVersion:         cfg.App.APIVersion,
	}

	extensions, err := prober.InstanceExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "createInstance")
	}

	var missing []string
	for _, ext := range platformExtensions {
		if !extensions.Contains(ext) {
			missing = append(missing, ext)
			continue
		}
		options.EnabledExtensionNames = append(options.EnabledExtensionNames, ext)
	}
	if len(missing) > 0 {
		return nil, &ExtensionUnavailableError{Missing: missing}
	}

	if extensions.Contains(khr_portability_enumeration.ExtensionName) {
		options.EnabledExtensionNames = append(options.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		options.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if cfg.EnableValidation {
		options.EnabledLayerNames = append(options.EnabledLayerNames, cfg.ValidationLayers...)
	}

	instance, res, err := api.CreateInstance(options)
	if err != nil {
		return nil, &InstanceCreationError{Result: res, cause: err}
	}

	logger.WithFields(log.Fields{
		"extensions": options.EnabledExtensionNames,
		"layers":     options.EnabledLayerNames,
	}).Debug("vulkan instance created")

	return instance, nil
}
