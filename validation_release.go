//go:build !debug

package bootstrap

const enableValidationLayers = false
