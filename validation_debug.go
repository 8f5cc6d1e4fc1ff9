//go:build debug

package bootstrap

const enableValidationLayers = true
