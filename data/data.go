// Package data embeds the sandbox's bundled levels and sounds.
package data

import "embed"

const SandboxLevel = "levels/sandbox.tmx"

//go:embed levels/*.tmx sfx/*.wav
var FS embed.FS
