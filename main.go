package main

import (
	"os"
	"runtime/debug"

	"github.com/siyuan-infoblox/java-import-add/pkg/cmd"
	"github.com/siyuan-infoblox/java-import-add/pkg/version"
)

func main() {
	// ldflags take precedence; module build info covers go install builds.
	ver := version.Version
	if info, ok := debug.ReadBuildInfo(); ok && ver == "dev" && info.Main.Version != "" {
		ver = info.Main.Version
	}
	if err := cmd.Execute(ver); err != nil {
		os.Exit(1)
	}
}
