/*
Package bootstrap brings up the two root objects every Vulkan application
starts from: a platform window and a Vulkan instance.

The package owns the full startup sequence - windowing subsystem init,
window creation, instance-extension and layer discovery, optional
validation-layer enforcement, and instance creation - plus the matching
teardown in exact reverse order. Everything past the instance (physical
device selection, surfaces, swapchains, pipelines) is left to the caller.

Validation layers are requested only in debug builds (the "debug" build
tag); release builds never query the validator and enable no layers.
*/
package bootstrap
