package hotlib

// PlatformFileNamer returns the artifact naming rule for a target OS as
// reported by runtime.GOOS. The rule is a pure function so the reload
// algorithm itself never branches on the platform, hosts targeting an
// environment with other conventions inject their own rule via WithFileNamer.
func PlatformFileNamer(goos string) FileNamer {
	switch goos {
	case "windows":
		return func(name string) string { return name + ".dll" }
	case "darwin", "ios":
		return func(name string) string { return "lib" + name + ".dylib" }
	default:
		return func(name string) string { return "lib" + name + ".so" }
	}
}
