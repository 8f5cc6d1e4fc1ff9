package bootstrap

import (
	"fmt"
	"strings"

	"github.com/vkngwrapper/core/v3/common"
)

// ValidationUnavailableError reports validation layers that were requested
// but not offered by the host. It usually means the LunarG Vulkan SDK is
// missing or out of date on the development machine.
type ValidationUnavailableError struct {
	Missing []string
}

func (e *ValidationUnavailableError) Error() string {
	return fmt.Sprintf("validation layers not available: %s - install LunarG Vulkan SDK", strings.Join(e.Missing, ", "))
}

// ExtensionUnavailableError reports platform-required instance extensions
// the host does not advertise. Creation could not succeed, so the builder
// refuses before calling the driver.
type ExtensionUnavailableError struct {
	Missing []string
}

func (e *ExtensionUnavailableError) Error() string {
	return fmt.Sprintf("required instance extensions not available: %s", strings.Join(e.Missing, ", "))
}

// InstanceCreationError reports that the driver rejected instance creation.
type InstanceCreationError struct {
	Result common.VkResult

	cause error
}

func (e *InstanceCreationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("vulkan instance creation failed: %s", e.cause)
	}
	return fmt.Sprintf("vulkan instance creation failed: %s", e.Result)
}

func (e *InstanceCreationError) Unwrap() error {
	return e.cause
}
