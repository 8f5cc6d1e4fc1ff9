package bootstrap

import (
	"io"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

// recorder logs resource acquisition and release in call order.
type recorder struct {
	events []string
}

func (r *recorder) record(event string) {
	if r != nil {
		r.events = append(r.events, event)
	}
}

func extensionMap(names ...string) map[string]*core1_0.ExtensionProperties {
	m := make(map[string]*core1_0.ExtensionProperties, len(names))
	for _, name := range names {
		m[name] = &core1_0.ExtensionProperties{ExtensionName: name}
	}
	return m
}

func layerMap(names ...string) map[string]*core1_0.LayerProperties {
	m := make(map[string]*core1_0.LayerProperties, len(names))
	for _, name := range names {
		m[name] = &core1_0.LayerProperties{LayerName: name}
	}
	return m
}

type fakeDriver struct {
	rec *recorder

	extensions map[string]*core1_0.ExtensionProperties
	layers     map[string]*core1_0.LayerProperties

	extensionsErr error
	layersErr     error
	createErr     error
	createResult  common.VkResult

	createCalls int
	lastOptions core1_0.InstanceCreateInfo
	instance    *fakeInstance
}

func (d *fakeDriver) AvailableExtensions() (map[string]*core1_0.ExtensionProperties, common.VkResult, error) {
	if d.extensionsErr != nil {
		return nil, d.createResult, d.extensionsErr
	}
	return d.extensions, core1_0.VKSuccess, nil
}

func (d *fakeDriver) AvailableLayers() (map[string]*core1_0.LayerProperties, common.VkResult, error) {
	if d.layersErr != nil {
		return nil, d.createResult, d.layersErr
	}
	return d.layers, core1_0.VKSuccess, nil
}

func (d *fakeDriver) CreateInstance(options core1_0.InstanceCreateInfo) (Instance, common.VkResult, error) {
	d.createCalls++
	d.lastOptions = options
	if d.createErr != nil {
		return nil, d.createResult, d.createErr
	}

	d.rec.record("instance create")
	d.instance = &fakeInstance{rec: d.rec}
	return d.instance, core1_0.VKSuccess, nil
}

type fakeInstance struct {
	rec       *recorder
	destroyed int
}

func (i *fakeInstance) Destroy() {
	i.destroyed++
	i.rec.record("instance destroy")
}

type fakeWindowSystem struct {
	rec *recorder

	initErr          error
	createErr        error
	pollsBeforeClose int

	window *fakeWindow
	quits  int
}

func (ws *fakeWindowSystem) Init() error {
	if ws.initErr != nil {
		return ws.initErr
	}
	ws.rec.record("subsystem init")
	return nil
}

func (ws *fakeWindowSystem) CreateWindow(width, height int32, title string) (Window, error) {
	if ws.createErr != nil {
		return nil, ws.createErr
	}
	ws.rec.record("window create")
	ws.window = &fakeWindow{
		rec:              ws.rec,
		extensions:       []string{"VK_KHR_surface"},
		pollsBeforeClose: ws.pollsBeforeClose,
	}
	return ws.window, nil
}

func (ws *fakeWindowSystem) Quit() {
	ws.quits++
	ws.rec.record("subsystem quit")
}

type fakeWindow struct {
	rec *recorder

	extensions       []string
	pollsBeforeClose int

	polls     int
	destroyed int
}

func (w *fakeWindow) RequiredExtensionNames() []string {
	return w.extensions
}

func (w *fakeWindow) InstanceProcAddr() unsafe.Pointer {
	return nil
}

func (w *fakeWindow) PollEvents() {
	w.polls++
}

func (w *fakeWindow) ShouldClose() bool {
	return w.polls >= w.pollsBeforeClose
}

func (w *fakeWindow) Destroy() {
	w.destroyed++
	w.rec.record("window destroy")
}
