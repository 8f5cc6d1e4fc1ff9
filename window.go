package bootstrap

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// WindowSystem is the platform windowing collaborator. Init is process-wide
// and must precede CreateWindow; Quit tears the subsystem down after every
// window has been destroyed.
type WindowSystem interface {
	Init() error
	CreateWindow(width, height int32, title string) (Window, error)
	Quit()
}

// Window is one platform window plus the Vulkan plumbing attached to it.
type Window interface {
	// RequiredExtensionNames lists the instance extensions the platform
	// needs to eventually present to this window.
	RequiredExtensionNames() []string

	// InstanceProcAddr exposes vkGetInstanceProcAddr from the Vulkan
	// loader the window system linked against.
	InstanceProcAddr() unsafe.Pointer

	// PollEvents drains pending platform events without blocking.
	PollEvents()

	// ShouldClose reports whether the user or OS asked the window to
	// close.
	ShouldClose() bool

	Destroy()
}

// SDL returns the go-sdl2 backed WindowSystem. SDL calls must stay on the
// thread that initialized the subsystem.
func SDL() WindowSystem {
	return sdlSystem{}
}

type sdlSystem struct{}

func (sdlSystem) Init() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func (sdlSystem) CreateWindow(width, height int32, title string) (Window, error) {
	// No WINDOW_RESIZABLE and no GL context: a fixed-size Vulkan window.
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, err
	}

	return &sdlWindow{window: window}, nil
}

func (sdlSystem) Quit() {
	sdl.Quit()
}

type sdlWindow struct {
	window      *sdl.Window
	shouldClose bool
}

func (w *sdlWindow) RequiredExtensionNames() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *sdlWindow) InstanceProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.shouldClose = true
			}
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *sdlWindow) Destroy() {
	w.window.Destroy()
}
