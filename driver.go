package bootstrap

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Driver is the slice of the Vulkan global driver the bootstrap needs. The
// enumeration methods hide Vulkan's count-then-fill protocol behind
// ready-made maps keyed by name, so call sites and tests never see the raw
// two-step queries.
type Driver interface {
	AvailableExtensions() (map[string]*core1_0.ExtensionProperties, common.VkResult, error)
	AvailableLayers() (map[string]*core1_0.LayerProperties, common.VkResult, error)
	CreateInstance(options core1_0.InstanceCreateInfo) (Instance, common.VkResult, error)
}

// Instance is the live connection to the Vulkan driver, the root object
// everything else is derived from. Destroy must be called exactly once,
// after every resource derived from the instance is gone.
type Instance interface {
	Destroy()
}

// NewDriver connects a Driver to the Vulkan loader reachable through the
// vkGetInstanceProcAddr pointer the window system hands out.
func NewDriver(procAddr unsafe.Pointer) (Driver, error) {
	global, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, err
	}

	return &vulkanDriver{global: global}, nil
}

type vulkanDriver struct {
	global core1_0.GlobalDriver
}

func (d *vulkanDriver) AvailableExtensions() (map[string]*core1_0.ExtensionProperties, common.VkResult, error) {
	return d.global.AvailableExtensions()
}

func (d *vulkanDriver) AvailableLayers() (map[string]*core1_0.LayerProperties, common.VkResult, error) {
	return d.global.AvailableLayers()
}

func (d *vulkanDriver) CreateInstance(options core1_0.InstanceCreateInfo) (Instance, common.VkResult, error) {
	instanceDriver, res, err := d.global.CreateInstance(nil, options)
	if err != nil {
		return nil, res, err
	}

	return &vulkanInstance{driver: instanceDriver}, res, nil
}

type vulkanInstance struct {
	driver core1_0.CoreInstanceDriver
}

func (i *vulkanInstance) Destroy() {
	i.driver.DestroyInstance(nil)
}
