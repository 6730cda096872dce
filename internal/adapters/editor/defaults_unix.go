//go:build !windows

package editor

var defaultEditors = []string{
	"nvim",
	"vim",
	"nano",
	"vi",
}
